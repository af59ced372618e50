package chess_test

import (
	"testing"
)

func TestCheckmateFoolsMate(t *testing.T) {
	// Black just played Qh4#; White to move and mated.
	b := mustParse(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	if !b.IsCheck() {
		t.Fatalf("expected White in check")
	}
	if len(b.LegalMoves()) != 0 {
		t.Fatalf("expected no legal moves, got %v", b.LegalMoves())
	}
	if !b.IsCheckmate() {
		t.Fatalf("expected checkmate")
	}
	if b.IsStalemate() {
		t.Fatalf("mate is not stalemate")
	}
	if b.IsDraw() {
		t.Fatalf("mate is not a draw")
	}
}

func TestStalemateBasic(t *testing.T) {
	b := mustParse(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if b.IsCheck() {
		t.Fatalf("expected Black not in check")
	}
	if !b.IsStalemate() {
		t.Fatalf("expected stalemate")
	}
	if b.IsCheckmate() {
		t.Fatalf("stalemate is not mate")
	}
	if !b.IsDraw() {
		t.Fatalf("stalemate is a draw")
	}
}

func TestMateInOneMakeAndDetect(t *testing.T) {
	// Qxg7# with the c3 bishop guarding g7.
	b := mustParse(t, "7k/6pp/6Q1/8/8/2B5/8/6K1 w - - 0 1")
	m := b.CreateMove(mustSquare(t, "g6"), mustSquare(t, "g7"), 0)
	if m.IsInvalid() {
		t.Fatalf("Qxg7 missing")
	}
	b.ExecuteMove(m)
	if !b.IsCheckmate() {
		t.Fatalf("expected checkmate after Qxg7")
	}
	b.UndoMove()
	if b.IsCheckmate() {
		t.Fatalf("mate flag survived undo")
	}
}

func TestFiftyMoveDraw(t *testing.T) {
	b := mustParse(t, "k7/8/8/8/8/8/1R6/K7 w - - 100 80")
	if !b.IsDraw() {
		t.Fatalf("expected fifty-move draw at clock 100")
	}
	b = mustParse(t, "k7/8/8/8/8/8/1R6/K7 w - - 99 80")
	if b.IsDraw() {
		t.Fatalf("clock 99 is not yet a draw")
	}
}

func TestInsufficientMaterial(t *testing.T) {
	cases := []struct {
		fen  string
		want bool
	}{
		{"k7/8/8/8/8/8/8/K7 w - - 0 1", true},            // bare kings
		{"k7/8/8/8/8/8/8/KN6 w - - 0 1", true},           // lone knight
		{"kb6/8/8/8/8/8/8/K7 w - - 0 1", true},           // lone bishop
		{"kb6/8/8/8/8/8/8/K1B5 w - - 0 1", true},         // bishops on the same colour
		{"kb6/8/8/8/8/8/8/KB6 w - - 0 1", false},         // bishops on opposite colours
		{"k7/8/8/8/8/8/8/KNN5 w - - 0 1", false},         // two knights can still mate
		{"k7/p7/8/8/8/8/8/K7 w - - 0 1", false},          // pawns promote
		{"k7/8/8/8/8/8/8/K6R w - - 0 1", false},          // rook mates
	}
	for _, c := range cases {
		if got := mustParse(t, c.fen).IsDraw(); got != c.want {
			t.Fatalf("IsDraw(%q): got %v want %v", c.fen, got, c.want)
		}
	}
}
