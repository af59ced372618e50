package chess

// Color identifies a side. White moves first.
type Color uint8

const (
	White Color = iota
	Black
	NoColor
)

// Other returns the opposing side.
func (c Color) Other() Color {
	return c ^ 1
}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	}
	return "none"
}

// PieceType enumerates the six piece kinds. The ordering fixes each
// piece's bitboard slot within a colour block.
type PieceType uint8

const (
	King PieceType = iota
	Pawn
	Rook
	Knight
	Bishop
	Queen
	NoPieceType
)

// Piece pairs a type with a colour. The zero-value-like Empty piece
// stands for an unoccupied square.
type Piece struct {
	Type  PieceType
	Color Color
}

// Empty is the piece returned for unoccupied squares.
var Empty = Piece{NoPieceType, NoColor}

// pieceChars maps piece indexes to FEN letters.
const pieceChars = "KPRNBQkprnbq"

// pieceGlyphs maps piece indexes to figurine glyphs for display.
var pieceGlyphs = [12]string{
	"♔", "♙", "♖", "♘", "♗", "♕",
	"♚", "♟", "♜", "♞", "♝", "♛",
}

// pieceWeights holds the material value of each piece index, negated
// for Black.
var pieceWeights = [12]int{
	4, 1, 5, 3, 3, 9,
	-4, -1, -5, -3, -3, -9,
}

// PieceFromChar decodes a FEN letter; unknown letters yield Empty.
func PieceFromChar(c byte) Piece {
	for i := 0; i < len(pieceChars); i++ {
		if pieceChars[i] == c {
			return Piece{PieceType(i % 6), Color(i / 6)}
		}
	}
	return Empty
}

// IsEmpty reports whether the piece stands for an unoccupied square.
func (p Piece) IsEmpty() bool {
	return p.Color == NoColor
}

// Index returns the piece's bitboard slot: 0-5 for White, 6-11 for Black.
func (p Piece) Index() int {
	return 6*int(p.Color) + int(p.Type)
}

// ColorIndex returns the slot of the piece's colour aggregate bitboard.
func (p Piece) ColorIndex() int {
	return 12 + int(p.Color)
}

// Char returns the piece's FEN letter.
func (p Piece) Char() byte {
	return pieceChars[p.Index()]
}

// Glyph returns the piece's figurine glyph.
func (p Piece) Glyph() string {
	return pieceGlyphs[p.Index()]
}

// Weight returns the piece's material value, negative for Black.
func (p Piece) Weight() int {
	return pieceWeights[p.Index()]
}
