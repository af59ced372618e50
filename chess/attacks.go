package chess

// KingAttacks returns the king's destination squares, excluding squares
// occupied by its own side. Pass zero for sameColor to get the raw
// attack footprint.
func KingAttacks(bb, sameColor uint64) uint64 {
	moves := Adjacent(bb, North) |
		Adjacent(bb, South) |
		Adjacent(bb, East) |
		Adjacent(bb, West) |
		Adjacent(bb, NorthEast) |
		Adjacent(bb, NorthWest) |
		Adjacent(bb, SouthEast) |
		Adjacent(bb, SouthWest)
	return moves &^ sameColor
}

// KnightAttacks returns knight destination squares for every knight on
// the bitboard, excluding squares occupied by its own side.
func KnightAttacks(bb, sameColor uint64) uint64 {
	moves := Adjacent(Adjacent(bb, NorthWest), West) |
		Adjacent(Adjacent(bb, SouthWest), West) |
		Adjacent(Adjacent(bb, NorthEast), East) |
		Adjacent(Adjacent(bb, SouthEast), East) |
		Adjacent(Adjacent(bb, NorthWest), North) |
		Adjacent(Adjacent(bb, NorthEast), North) |
		Adjacent(Adjacent(bb, SouthWest), South) |
		Adjacent(Adjacent(bb, SouthEast), South)
	return moves &^ sameColor
}

// pawnAttackSpread returns the squares the pawns attack diagonally,
// regardless of occupancy.
func pawnAttackSpread(bb uint64, side Color) uint64 {
	if side == White {
		return Adjacent(bb, NorthEast) | Adjacent(bb, NorthWest)
	}
	return Adjacent(bb, SouthEast) | Adjacent(bb, SouthWest)
}

// PawnAdvances returns the single-step advance squares that are empty.
func PawnAdvances(bb, allPieces uint64, side Color) uint64 {
	if side == White {
		return Adjacent(bb, North) &^ allPieces
	}
	return Adjacent(bb, South) &^ allPieces
}

// PawnDoubles returns the double-step advance squares. Both the skipped
// square and the destination must be empty, and the destination must lie
// on the side's double-advance rank.
func PawnDoubles(bb, allPieces uint64, side Color) uint64 {
	adv := PawnAdvances(PawnAdvances(bb, allPieces, side), allPieces, side)
	if side == White {
		return adv & maskRank4
	}
	return adv & maskRank5
}

// PawnCaptures returns the diagonal capture squares occupied by the
// opposing side.
func PawnCaptures(bb, oppositeColor uint64, side Color) uint64 {
	return pawnAttackSpread(bb, side) & oppositeColor
}

// PawnEnPassant returns the capture squares matching the en passant
// target mask.
func PawnEnPassant(bb, enPassant uint64, side Color) uint64 {
	return pawnAttackSpread(bb, side) & enPassant
}

// CastlingDestination returns the king's destination square for the
// given right when the squares between king and rook are empty, or zero
// when the path is blocked. Whether the path is attacked is a legality
// question and is tested elsewhere.
func CastlingDestination(allPieces uint64, right CastlingRights) uint64 {
	switch right {
	case CastleWhiteKing:
		if allPieces&castleEmptyWK == 0 {
			return 1 << 6 // g1
		}
	case CastleWhiteQueen:
		if allPieces&castleEmptyWQ == 0 {
			return 1 << 2 // c1
		}
	case CastleBlackKing:
		if allPieces&castleEmptyBK == 0 {
			return 1 << 62 // g8
		}
	case CastleBlackQueen:
		if allPieces&castleEmptyBQ == 0 {
			return 1 << 58 // c8
		}
	}
	return 0
}

// RookAttacks returns rook destination squares for a single rook. Rays
// stop at and include the first occupied square; squares occupied by the
// rook's own side are then removed. Negative rays reuse the positive ray
// kernel by flipping the board into positive orientation.
func RookAttacks(bb, sameColor, oppositeColor uint64) uint64 {
	sq := BitScan(bb)
	rank := RankMask(sq)
	file := FileMask(sq)

	occupied := sameColor | oppositeColor
	rankPositive := RayAttack(bb, occupied&rank) & rank
	rankNegative := RayAttack(FlipHorizontal(bb), FlipHorizontal(occupied&rank)) & rank
	filePositive := RayAttack(bb, occupied&file) & file
	fileNegative := RayAttack(FlipVertical(bb), FlipVertical(occupied&file)) & file
	return (rankPositive | FlipHorizontal(rankNegative) |
		filePositive | FlipVertical(fileNegative)) &^ sameColor
}

// BishopAttacks returns bishop destination squares for a single bishop.
func BishopAttacks(bb, sameColor, oppositeColor uint64) uint64 {
	sq := BitScan(bb)
	diag := DiagonalMask(sq)
	anti := AntiDiagMask(sq)

	occupied := sameColor | oppositeColor
	diagPositive := RayAttack(bb, occupied&diag) & diag
	diagNegative := RayAttack(FlipVertical(bb), FlipVertical(occupied&diag)) & FlipVertical(diag)
	antiPositive := RayAttack(bb, occupied&anti) & anti
	antiNegative := RayAttack(FlipVertical(bb), FlipVertical(occupied&anti)) & FlipVertical(anti)
	return (diagPositive | FlipVertical(diagNegative) |
		antiPositive | FlipVertical(antiNegative)) &^ sameColor
}

// QueenAttacks returns queen destination squares for a single queen.
func QueenAttacks(bb, sameColor, oppositeColor uint64) uint64 {
	return RookAttacks(bb, sameColor, oppositeColor) |
		BishopAttacks(bb, sameColor, oppositeColor)
}
