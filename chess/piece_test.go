package chess_test

import (
	"testing"

	"chess-core/chess"
)

func TestPieceFromCharRoundTrip(t *testing.T) {
	const letters = "KPRNBQkprnbq"
	seen := make(map[int]bool)
	for i := 0; i < len(letters); i++ {
		p := chess.PieceFromChar(letters[i])
		if p.IsEmpty() {
			t.Fatalf("PieceFromChar(%c): got Empty", letters[i])
		}
		if p.Char() != letters[i] {
			t.Fatalf("char round trip: got %c want %c", p.Char(), letters[i])
		}
		if p.Index() != i {
			t.Fatalf("index of %c: got %d want %d", letters[i], p.Index(), i)
		}
		if seen[p.Index()] {
			t.Fatalf("duplicate index %d", p.Index())
		}
		seen[p.Index()] = true
	}
	if !chess.PieceFromChar('x').IsEmpty() {
		t.Fatalf("PieceFromChar(x): expected Empty")
	}
}

func TestPieceColors(t *testing.T) {
	wk := chess.PieceFromChar('K')
	bq := chess.PieceFromChar('q')
	if wk.Color != chess.White || wk.Type != chess.King {
		t.Fatalf("K: got %+v", wk)
	}
	if bq.Color != chess.Black || bq.Type != chess.Queen {
		t.Fatalf("q: got %+v", bq)
	}
	if chess.White.Other() != chess.Black || chess.Black.Other() != chess.White {
		t.Fatalf("Color.Other is broken")
	}
}

func TestPieceWeights(t *testing.T) {
	if w := chess.PieceFromChar('Q').Weight(); w != 9 {
		t.Fatalf("white queen weight: got %d", w)
	}
	if w := chess.PieceFromChar('q').Weight(); w != -9 {
		t.Fatalf("black queen weight: got %d", w)
	}
	if w := chess.PieceFromChar('p').Weight(); w != -1 {
		t.Fatalf("black pawn weight: got %d", w)
	}
}
