package chess

import (
	"errors"
	"math/bits"
	"strings"
)

// CastlingRights is a bitset of the four castle permissions.
type CastlingRights uint8

const (
	CastleWhiteKing CastlingRights = 1 << iota
	CastleWhiteQueen
	CastleBlackKing
	CastleBlackQueen
)

// Bitboard slots 0-5 hold White's pieces, 6-11 Black's, and the last two
// the per-colour aggregates.
const (
	whiteIndex = 12
	blackIndex = 13
)

func pieceIndex(c Color, t PieceType) int {
	return 6*int(c) + int(t)
}

func colorIndex(c Color) int {
	return 12 + int(c)
}

// Board is a full position: piece placement, side to move, castling
// rights, en passant target and move clocks, plus cached attack and
// legal-move state for the side to move. Boards are mutated in place by
// ExecuteMove and restored by UndoMove.
type Board struct {
	bitboards       [14]uint64
	turn            Color
	castlingRights  CastlingRights
	enPassantTarget Square
	halfmoves       int
	fullmoves       int

	// Caches regenerated after every mutation: squares attacked by the
	// opponent of the side to move, and the side to move's legal moves.
	attackers  uint64
	legalMoves []Move

	history []undoFrame
}

// undoFrame snapshots everything ExecuteMove changes except the side to
// move and the fullmove counter, which UndoMove derives.
type undoFrame struct {
	bitboards       [14]uint64
	castlingRights  CastlingRights
	enPassantTarget Square
	halfmoves       int
	attackers       uint64
	legalMoves      []Move
}

// NewBoard returns the standard starting position.
func NewBoard() *Board {
	b, err := ParseFEN(FENStartPos)
	if err != nil {
		panic(err)
	}
	return b
}

// Turn returns the side to move.
func (b *Board) Turn() Color {
	return b.turn
}

// CastlingRights returns the remaining castle permissions.
func (b *Board) CastlingRights() CastlingRights {
	return b.castlingRights
}

// EnPassantTarget returns the square a pawn may capture onto en passant,
// or NoSquare when the last move was not a double pawn advance.
func (b *Board) EnPassantTarget() Square {
	return b.enPassantTarget
}

// Halfmoves returns the fifty-move-rule clock.
func (b *Board) Halfmoves() int {
	return b.halfmoves
}

// Fullmoves returns the fullmove number, starting at 1.
func (b *Board) Fullmoves() int {
	return b.fullmoves
}

// LegalMoves returns the side to move's legal moves. The slice is owned
// by the board and must not be modified; it stays valid until the next
// mutation.
func (b *Board) LegalMoves() []Move {
	return b.legalMoves
}

// GetAt returns the piece on the square, or Empty.
func (b *Board) GetAt(sq Square) Piece {
	mask := sq.Mask()
	if (b.bitboards[whiteIndex]|b.bitboards[blackIndex])&mask == 0 {
		return Empty
	}
	for i := 0; i < 12; i++ {
		if b.bitboards[i]&mask != 0 {
			return Piece{PieceType(i % 6), Color(i / 6)}
		}
	}
	return Empty
}

// GetAtCoords returns the piece at the zero-based rank and file.
func (b *Board) GetAtCoords(rank, file int) Piece {
	return b.GetAt(SquareAt(rank, file))
}

// setAt places a piece without refreshing the caches; ExecuteMove calls
// this and regenerates once at the end.
func (b *Board) setAt(sq Square, p Piece) {
	b.clearAt(sq)
	mask := sq.Mask()
	b.bitboards[p.Index()] |= mask
	b.bitboards[p.ColorIndex()] |= mask
}

// clearAt removes any piece without refreshing the caches.
func (b *Board) clearAt(sq Square) {
	mask := ^sq.Mask()
	for i := range b.bitboards {
		b.bitboards[i] &= mask
	}
}

// SetAt places a piece and refreshes the caches.
func (b *Board) SetAt(sq Square, p Piece) {
	b.setAt(sq, p)
	b.generate()
}

// SetAtCoords places a piece at the zero-based rank and file.
func (b *Board) SetAtCoords(rank, file int, p Piece) {
	b.SetAt(SquareAt(rank, file), p)
}

// ClearAt removes any piece from the square and refreshes the caches.
func (b *Board) ClearAt(sq Square) {
	b.clearAt(sq)
	b.generate()
}

// ClearAtCoords removes any piece at the zero-based rank and file.
func (b *Board) ClearAtCoords(rank, file int) {
	b.ClearAt(SquareAt(rank, file))
}

// IsCheck reports whether the side to move's king is attacked.
func (b *Board) IsCheck() bool {
	return b.attackers&b.bitboards[pieceIndex(b.turn, King)] != 0
}

// IsCheckmate reports whether the side to move is in check with no legal
// moves.
func (b *Board) IsCheckmate() bool {
	return len(b.legalMoves) == 0 && b.IsCheck()
}

// IsStalemate reports whether the side to move has no legal moves while
// not in check.
func (b *Board) IsStalemate() bool {
	return len(b.legalMoves) == 0 && !b.IsCheck()
}

// IsDraw reports whether the position is drawn by the fifty-move rule,
// stalemate, or insufficient material. Repetition is not tracked; callers
// wanting threefold detection must keep their own position history.
func (b *Board) IsDraw() bool {
	return b.halfmoves >= 100 || b.IsStalemate() || b.insufficientMaterial()
}

// insufficientMaterial reports bare kings, king and one minor piece, or
// same-coloured single bishops.
func (b *Board) insufficientMaterial() bool {
	heavy := b.bitboards[pieceIndex(White, Pawn)] | b.bitboards[pieceIndex(Black, Pawn)] |
		b.bitboards[pieceIndex(White, Rook)] | b.bitboards[pieceIndex(Black, Rook)] |
		b.bitboards[pieceIndex(White, Queen)] | b.bitboards[pieceIndex(Black, Queen)]
	if heavy != 0 {
		return false
	}
	whiteBishops := b.bitboards[pieceIndex(White, Bishop)]
	blackBishops := b.bitboards[pieceIndex(Black, Bishop)]
	whiteMinors := bits.OnesCount64(b.bitboards[pieceIndex(White, Knight)] | whiteBishops)
	blackMinors := bits.OnesCount64(b.bitboards[pieceIndex(Black, Knight)] | blackBishops)
	if whiteMinors+blackMinors <= 1 {
		return true
	}
	if whiteMinors == 1 && blackMinors == 1 && whiteBishops != 0 && blackBishops != 0 {
		return (whiteBishops&lightSquares != 0) == (blackBishops&lightSquares != 0)
	}
	return false
}

// Material returns the weighted material balance, positive when White is
// ahead.
func (b *Board) Material() int {
	score := 0
	for i := 0; i < 12; i++ {
		score += pieceWeights[i] * bits.OnesCount64(b.bitboards[i])
	}
	return score
}

// Validate checks the board's structural invariants: each square holds at
// most one piece and the colour aggregates match their piece boards.
func (b *Board) Validate() error {
	var white, black uint64
	for i := 0; i < 6; i++ {
		if white&b.bitboards[i] != 0 {
			return errors.New("overlapping white piece bitboards")
		}
		white |= b.bitboards[i]
	}
	for i := 6; i < 12; i++ {
		if black&b.bitboards[i] != 0 {
			return errors.New("overlapping black piece bitboards")
		}
		black |= b.bitboards[i]
	}
	if white&black != 0 {
		return errors.New("white and black occupy the same square")
	}
	if white != b.bitboards[whiteIndex] {
		return errors.New("white aggregate out of sync")
	}
	if black != b.bitboards[blackIndex] {
		return errors.New("black aggregate out of sync")
	}
	if bits.OnesCount64(b.bitboards[pieceIndex(White, King)]) != 1 ||
		bits.OnesCount64(b.bitboards[pieceIndex(Black, King)]) != 1 {
		return errors.New("expected exactly one king per side")
	}
	return nil
}

// String renders the board as an 8x8 grid with rank and file legends,
// rank 8 first.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte(byte('1' + rank))
		for file := 0; file < 8; file++ {
			sb.WriteByte(' ')
			if p := b.GetAtCoords(rank, file); p.IsEmpty() {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(p.Char())
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
