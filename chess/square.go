package chess

import "errors"

// Square indexes a board cell from 0 (a1) to 63 (h8). File is the low
// three bits, rank the high three; rank 0 is White's back rank.
type Square int

// NoSquare marks the absence of a square, e.g. no en passant target.
const NoSquare Square = -1

var errBadSquare = errors.New("invalid square notation")

// SquareAt builds a square from zero-based rank and file.
func SquareAt(rank, file int) Square {
	return Square(rank*8 + file)
}

// ParseSquare reads algebraic notation like "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, errBadSquare
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, errBadSquare
	}
	return SquareAt(rank, file), nil
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s >= 0 && s < 64
}

// File returns the zero-based file (0 = a).
func (s Square) File() int {
	return int(s) & 7
}

// Rank returns the zero-based rank (0 = White's back rank).
func (s Square) Rank() int {
	return int(s) >> 3
}

// Mask returns the single-bit bitboard for the square.
func (s Square) Mask() uint64 {
	return 1 << uint(s)
}

func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + s.File()), byte('1' + s.Rank())})
}
