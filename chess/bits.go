package chess

import "math/bits"

// Direction enumerates the eight board directions. North is the direction
// of increasing rank (White's forward direction), East is increasing file.
type Direction int

const (
	North Direction = iota
	South
	East
	West
	NorthEast
	NorthWest
	SouthEast
	SouthWest
)

// directionShift holds the signed square-index delta for each direction.
var directionShift = [8]int{8, -8, 1, -1, 9, 7, -7, -9}

// wrapMasks clear the bits that would wrap around a board edge after
// shifting in the corresponding direction.
var wrapMasks = [8]uint64{
	0xffffffffffffff00, // North
	0x00ffffffffffffff, // South
	0xfefefefefefefefe, // East
	0x7f7f7f7f7f7f7f7f, // West
	0xfefefefefefefe00, // NorthEast
	0x7f7f7f7f7f7f7f00, // NorthWest
	0x00fefefefefefefe, // SouthEast
	0x007f7f7f7f7f7f7f, // SouthWest
}

const (
	maskRank4    uint64 = 0x00000000ff000000
	maskRank5    uint64 = 0x000000ff00000000
	maskEndRanks uint64 = 0xff000000000000ff
	mainDiagonal uint64 = 0x8040201008040201
	antiDiagonal uint64 = 0x0102040810204080
	lightSquares uint64 = 0x55aa55aa55aa55aa
	debruijn64   uint64 = 0x07edd5e59a4e28c2
)

// bitscanTable maps De Bruijn products to least-significant-bit indexes.
var bitscanTable = [64]int{
	63, 0, 58, 1, 59, 47, 53, 2,
	60, 39, 48, 27, 54, 33, 42, 3,
	61, 51, 37, 40, 49, 18, 28, 20,
	55, 30, 34, 11, 43, 14, 22, 4,
	62, 57, 46, 52, 38, 26, 32, 41,
	50, 36, 17, 19, 29, 10, 13, 21,
	56, 45, 25, 31, 35, 16, 9, 12,
	44, 24, 15, 8, 23, 7, 6, 5,
}

// BitScan returns the index of the least significant set bit via De Bruijn
// multiplication. The result is undefined for an empty bitboard.
func BitScan(bb uint64) int {
	return bitscanTable[((bb&-bb)*debruijn64)>>58]
}

// FlipVertical mirrors the bitboard across the horizontal axis between
// ranks 4 and 5, swapping ranks.
func FlipVertical(bb uint64) uint64 {
	return bits.ReverseBytes64(bb)
}

// FlipHorizontal mirrors the bitboard across the vertical axis between
// files d and e, swapping files.
func FlipHorizontal(bb uint64) uint64 {
	bb = ((bb >> 1) & 0x5555555555555555) + 2*(bb&0x5555555555555555)
	bb = ((bb >> 2) & 0x3333333333333333) + 4*(bb&0x3333333333333333)
	bb = ((bb >> 4) & 0x0f0f0f0f0f0f0f0f) + 16*(bb&0x0f0f0f0f0f0f0f0f)
	return bb
}

// shift moves every bit by the given signed amount; negative amounts
// shift toward the least significant bit.
func shift(bb uint64, amount int) uint64 {
	if amount < 0 {
		return bb >> uint(-amount)
	}
	return bb << uint(amount)
}

// Adjacent returns the bitboard shifted one step in the given direction,
// with bits that would wrap across a board edge cleared.
func Adjacent(bb uint64, dir Direction) uint64 {
	return shift(bb, directionShift[dir]) & wrapMasks[dir]
}

// RankMask returns the rank containing the given square index.
func RankMask(sq int) uint64 {
	return 0xff << uint(sq&56)
}

// FileMask returns the file containing the given square index.
func FileMask(sq int) uint64 {
	return 0x0101010101010101 << uint(sq&7)
}

// DiagonalMask returns the a1-h8 direction diagonal through the square.
func DiagonalMask(sq int) uint64 {
	diag := 8*(sq&7) - (sq & 56)
	nort := -diag & (diag >> 31)
	sout := diag & (-diag >> 31)
	return (mainDiagonal >> uint(sout)) << uint(nort)
}

// AntiDiagMask returns the h1-a8 direction diagonal through the square.
func AntiDiagMask(sq int) uint64 {
	diag := 56 - 8*(sq&7) - (sq & 56)
	nort := -diag & (diag >> 31)
	sout := diag & (-diag >> 31)
	return (antiDiagonal >> uint(sout)) << uint(nort)
}

// RayAttack computes sliding attacks along a positive ray. The occupancy
// must already be restricted to the ray's line mask; the result covers
// every square up to and including the first blocker. Negative rays are
// handled by flipping into positive orientation first.
func RayAttack(from, occupied uint64) uint64 {
	return occupied ^ (occupied - 2*from)
}
