package chess_test

import (
	"testing"

	"chess-core/chess"
)

func movesFrom(b *chess.Board, from chess.Square) []chess.Move {
	var out []chess.Move
	for _, m := range b.LegalMoves() {
		if m.From == from {
			out = append(out, m)
		}
	}
	return out
}

func TestInitialMoveCount(t *testing.T) {
	b := chess.NewBoard()
	if got := len(b.LegalMoves()); got != 20 {
		t.Fatalf("initial moves: got %d want 20", got)
	}
	// e2e4 carries both pawn-advance flags
	m := b.CreateMove(mustSquare(t, "e2"), mustSquare(t, "e4"), 0)
	if m.IsInvalid() {
		t.Fatalf("e2e4 missing")
	}
	if m.Flags&chess.PawnAdvance == 0 || m.Flags&chess.PawnDouble == 0 {
		t.Fatalf("e2e4 flags: got %#x", m.Flags)
	}
	// single advances carry only PawnAdvance
	m = b.CreateMove(mustSquare(t, "e2"), mustSquare(t, "e3"), 0)
	if m.Flags != chess.PawnAdvance {
		t.Fatalf("e2e3 flags: got %#x", m.Flags)
	}
}

func TestCreateMoveUntrusted(t *testing.T) {
	b := chess.NewBoard()
	if m := b.CreateMove(mustSquare(t, "e2"), mustSquare(t, "e5"), 0); !m.IsInvalid() {
		t.Fatalf("e2e5 should be invalid, got %v", m)
	}
	if m := b.CreateMove(mustSquare(t, "d8"), mustSquare(t, "d5"), 0); !m.IsInvalid() {
		t.Fatalf("moving the opponent's piece should be invalid, got %v", m)
	}
	if m := b.CreateMove(mustSquare(t, "e4"), mustSquare(t, "e5"), 0); !m.IsInvalid() {
		t.Fatalf("moving an empty square should be invalid, got %v", m)
	}
	// a promotion letter on a non-promotion move is ignored
	if m := b.CreateMove(mustSquare(t, "e2"), mustSquare(t, "e4"), 'q'); m.IsInvalid() {
		t.Fatalf("e2e4 with stray promotion letter should resolve")
	}
}

func TestRookCaptureDropsBothQueensideRights(t *testing.T) {
	b := mustParse(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	m := b.CreateMove(mustSquare(t, "a1"), mustSquare(t, "a8"), 0)
	if m.IsInvalid() {
		t.Fatalf("a1a8 missing")
	}
	if m.Flags&chess.Capture == 0 {
		t.Fatalf("a1a8 should be a capture, flags %#x", m.Flags)
	}
	b.ExecuteMove(m)
	if got := b.CastlingRights(); got != chess.CastleWhiteKing|chess.CastleBlackKing {
		t.Fatalf("rights after a1a8: got %b want Kk", got)
	}
	b.UndoMove()
	if got := b.CastlingRights(); got != chess.CastleWhiteKing|chess.CastleWhiteQueen|chess.CastleBlackKing|chess.CastleBlackQueen {
		t.Fatalf("rights after undo: got %b want KQkq", got)
	}
}

func TestEnPassantDiscoveredCheckForbidden(t *testing.T) {
	// White king a5 and pawn d5, black pawn c5 just doubled, black rook
	// h5: capturing en passant removes both pawns from the fifth rank
	// and exposes the king to the rook.
	b := mustParse(t, "8/8/8/K1pP3r/8/8/8/7k w - c6 0 1")
	if m := b.CreateMove(mustSquare(t, "d5"), mustSquare(t, "c6"), 0); !m.IsInvalid() {
		t.Fatalf("pinned en passant capture should be invalid, got %v", m)
	}
	for _, m := range b.LegalMoves() {
		if m.Flags&chess.EnPassant != 0 {
			t.Fatalf("en passant move leaked into legal list: %v", m)
		}
	}
	// the plain advance d5d6 stays legal
	if m := b.CreateMove(mustSquare(t, "d5"), mustSquare(t, "d6"), 0); m.IsInvalid() {
		t.Fatalf("d5d6 should be legal")
	}
}

func TestCastlingThroughAttackedSquare(t *testing.T) {
	// Black rook on f2 attacks f1: kingside castling is barred, the
	// queenside path d1/c1 stays clean.
	b := mustParse(t, "r3k2r/8/8/8/8/8/5r2/R3K2R w KQkq - 0 1")
	if m := b.CreateMove(mustSquare(t, "e1"), mustSquare(t, "g1"), 0); !m.IsInvalid() {
		t.Fatalf("castling through attacked f1 should be invalid, got %v", m)
	}
	m := b.CreateMove(mustSquare(t, "e1"), mustSquare(t, "c1"), 0)
	if m.IsInvalid() {
		t.Fatalf("queenside castle should be legal")
	}
	if m.Flags&chess.Castling == 0 {
		t.Fatalf("e1c1 flags: got %#x", m.Flags)
	}
}

func TestCastlingInCheckForbidden(t *testing.T) {
	// Black rook on e2 gives check: neither castle is available.
	b := mustParse(t, "r3k2r/8/8/8/8/8/4r3/R3K2R w KQkq - 0 1")
	if !b.IsCheck() {
		t.Fatalf("expected check from the e2 rook")
	}
	for _, m := range b.LegalMoves() {
		if m.Flags&chess.Castling != 0 {
			t.Fatalf("castle generated while in check: %v", m)
		}
	}
}

func TestPinnedKnightHasNoMoves(t *testing.T) {
	// White queen on e2 pins the black knight on e7 against the black
	// king on e8.
	b := mustParse(t, "4k3/4n3/8/8/8/8/4Q3/4K3 b - - 0 1")
	if got := movesFrom(b, mustSquare(t, "e7")); len(got) != 0 {
		t.Fatalf("pinned knight moves: got %v", got)
	}
	if len(b.LegalMoves()) == 0 {
		t.Fatalf("the king should still have moves")
	}
}

func TestPromotionFanOut(t *testing.T) {
	b := mustParse(t, "8/P7/8/8/8/8/8/k6K w - - 0 1")
	promos := movesFrom(b, mustSquare(t, "a7"))
	if len(promos) != 4 {
		t.Fatalf("promotion variants: got %d want 4, moves %v", len(promos), promos)
	}
	seen := make(map[chess.PieceType]bool)
	for _, m := range promos {
		if m.To != mustSquare(t, "a8") {
			t.Fatalf("unexpected destination: %v", m)
		}
		if m.Flags&chess.PawnAdvance == 0 {
			t.Fatalf("promotion advance flags: got %#x", m.Flags)
		}
		seen[m.Promotion()] = true
	}
	for _, p := range []chess.PieceType{chess.Queen, chess.Rook, chess.Bishop, chess.Knight} {
		if !seen[p] {
			t.Fatalf("missing promotion to piece type %d", p)
		}
	}
	// the bare from/to pair no longer names a unique move
	if m := b.CreateMove(mustSquare(t, "a7"), mustSquare(t, "a8"), 0); !m.IsInvalid() {
		t.Fatalf("promotion without a piece letter should be invalid, got %v", m)
	}
	m := b.CreateMove(mustSquare(t, "a7"), mustSquare(t, "a8"), 'n')
	if m.IsInvalid() || m.Promotion() != chess.Knight {
		t.Fatalf("underpromotion pick: got %v", m)
	}
}

func TestCapturePromotion(t *testing.T) {
	b := mustParse(t, "1n5k/P7/8/8/8/8/8/7K w - - 0 1")
	if got := len(b.LegalMoves()); got != 11 {
		t.Fatalf("legal moves: got %d want 11", got)
	}
	m := b.CreateMove(mustSquare(t, "a7"), mustSquare(t, "b8"), 'q')
	if m.IsInvalid() {
		t.Fatalf("a7xb8q missing")
	}
	if m.Flags&chess.Capture == 0 || m.Promotion() != chess.Queen {
		t.Fatalf("a7xb8q flags: got %#x", m.Flags)
	}
}

func TestKingCannotRetreatAlongCheckingRay(t *testing.T) {
	// Rook on e8 checks the king on e4; e3 lies behind the king on the
	// same ray and stays attacked even though the king currently blocks
	// it.
	b := mustParse(t, "4r3/8/8/8/4K3/8/8/7k w - - 0 1")
	if !b.IsCheck() {
		t.Fatalf("expected check")
	}
	if m := b.CreateMove(mustSquare(t, "e4"), mustSquare(t, "e3"), 0); !m.IsInvalid() {
		t.Fatalf("retreat along the ray should be invalid, got %v", m)
	}
	if m := b.CreateMove(mustSquare(t, "e4"), mustSquare(t, "e5"), 0); !m.IsInvalid() {
		t.Fatalf("advance along the ray should be invalid, got %v", m)
	}
	if m := b.CreateMove(mustSquare(t, "e4"), mustSquare(t, "d4"), 0); m.IsInvalid() {
		t.Fatalf("stepping off the ray should be legal")
	}
	if got := len(b.LegalMoves()); got != 6 {
		t.Fatalf("king escape count: got %d want 6, moves %v", got, b.LegalMoves())
	}
}

func TestKingCannotCaptureDefendedPiece(t *testing.T) {
	// Black queen on f2 gives check and is defended by the rook on f8.
	b := mustParse(t, "5r1k/8/8/8/8/8/5q2/6K1 w - - 0 1")
	if !b.IsCheck() {
		t.Fatalf("expected check")
	}
	if m := b.CreateMove(mustSquare(t, "g1"), mustSquare(t, "f2"), 0); !m.IsInvalid() {
		t.Fatalf("capturing the defended queen should be invalid, got %v", m)
	}
	m := b.CreateMove(mustSquare(t, "g1"), mustSquare(t, "h1"), 0)
	if m.IsInvalid() {
		t.Fatalf("g1h1 should be the escape")
	}
	if got := len(b.LegalMoves()); got != 1 {
		t.Fatalf("escape count: got %d want 1, moves %v", got, b.LegalMoves())
	}
}

func TestKingCanCaptureUndefendedChecker(t *testing.T) {
	b := mustParse(t, "7k/8/8/8/8/8/5q2/6K1 w - - 0 1")
	if m := b.CreateMove(mustSquare(t, "g1"), mustSquare(t, "f2"), 0); m.IsInvalid() {
		t.Fatalf("capturing the undefended queen should be legal")
	}
}
