package chess

// Castling path constants: squares that must be empty between king and
// rook, king home squares, and king destinations.
const (
	castleEmptyWK uint64 = 0x0000000000000060 // f1 g1
	castleEmptyWQ uint64 = 0x000000000000000e // b1 c1 d1
	castleEmptyBK uint64 = 0x6000000000000000 // f8 g8
	castleEmptyBQ uint64 = 0x0e00000000000000 // b8 c8 d8

	kingHomeWhite uint64 = 1 << 4  // e1
	kingHomeBlack uint64 = 1 << 60 // e8
)

// generate refreshes the attacker footprint and the legal-move cache for
// the side to move. Called after every mutation; a fresh slice is
// allocated each time so snapshots in the undo stack stay valid.
func (b *Board) generate() {
	b.attackers = b.computeAttackers(0, 0, 0)
	b.legalMoves = b.generateLegalMoves()
}

// computeAttackers returns every square the opponent of the side to move
// attacks, under a hypothetical adjustment of the position: include adds
// a friendly piece (a move's destination), excludeAlly removes one (the
// move's origin), and excludeEnemy removes an opposing piece (an en
// passant victim). Opposing pieces on include or excludeEnemy squares no
// longer attack. The defending king is left out of the slider occupancy
// so a checked king cannot hide on its own escape ray, and squares
// defended by the attacker's own pieces are kept in the footprint.
func (b *Board) computeAttackers(include, excludeAlly, excludeEnemy uint64) uint64 {
	attacker := b.turn.Other()
	ignore := include | excludeEnemy

	kingBB := b.bitboards[pieceIndex(b.turn, King)]
	defenderOcc := (b.bitboards[colorIndex(b.turn)] | include) &^ excludeAlly &^ kingBB
	attackerOcc := b.bitboards[colorIndex(attacker)] &^ ignore
	occupied := attackerOcc | defenderOcc

	attacks := pawnAttackSpread(b.bitboards[pieceIndex(attacker, Pawn)]&^ignore, attacker)
	attacks |= KnightAttacks(b.bitboards[pieceIndex(attacker, Knight)]&^ignore, 0)
	attacks |= KingAttacks(b.bitboards[pieceIndex(attacker, King)]&^ignore, 0)
	for bb := b.bitboards[pieceIndex(attacker, Rook)] &^ ignore; bb != 0; bb &= bb - 1 {
		attacks |= RookAttacks(bb&-bb, 0, occupied)
	}
	for bb := b.bitboards[pieceIndex(attacker, Bishop)] &^ ignore; bb != 0; bb &= bb - 1 {
		attacks |= BishopAttacks(bb&-bb, 0, occupied)
	}
	for bb := b.bitboards[pieceIndex(attacker, Queen)] &^ ignore; bb != 0; bb &= bb - 1 {
		attacks |= QueenAttacks(bb&-bb, 0, occupied)
	}
	return attacks
}

// isLegal decides whether a pseudo-legal move leaves the mover's king
// safe, without applying the move. Each case recomputes the attacker
// footprint under the move's occupancy changes; castling reuses the
// cached footprint since the king's path squares are tested as-is.
func (b *Board) isLegal(m Move) bool {
	king := b.bitboards[pieceIndex(b.turn, King)]
	from := m.From.Mask()
	to := m.To.Mask()

	switch {
	case m.Flags&EnPassant != 0:
		captured := SquareAt(m.From.Rank(), m.To.File()).Mask()
		return b.computeAttackers(to, from, captured)&king == 0
	case m.Flags&Castling != 0:
		mid := (m.From + m.To) / 2
		return b.attackers&(from|to|mid.Mask()) == 0
	case from&king != 0:
		return b.computeAttackers(to, from, 0)&to == 0
	default:
		return b.computeAttackers(to, from, 0)&king == 0
	}
}

// generateLegalMoves enumerates the side to move's legal moves: pawns,
// then knights, sliders, king steps, and castling.
func (b *Board) generateLegalMoves() []Move {
	same := b.bitboards[colorIndex(b.turn)]
	opposite := b.bitboards[colorIndex(b.turn.Other())]
	moves := make([]Move, 0, 48)
	moves = b.appendPawnMoves(moves, same, opposite)
	moves = b.appendStepMoves(moves, Knight, KnightAttacks, same, opposite)
	moves = b.appendSliderMoves(moves, Rook, RookAttacks, same, opposite)
	moves = b.appendSliderMoves(moves, Bishop, BishopAttacks, same, opposite)
	moves = b.appendSliderMoves(moves, Queen, QueenAttacks, same, opposite)
	moves = b.appendStepMoves(moves, King, KingAttacks, same, opposite)
	moves = b.appendCastlingMoves(moves, same|opposite)
	return moves
}

// appendTargets splits a destination mask into moves with the given
// flags, keeping the legal ones.
func (b *Board) appendTargets(moves []Move, from Square, targets uint64, flags MoveFlag) []Move {
	for ; targets != 0; targets &= targets - 1 {
		m := Move{from, Square(BitScan(targets)), flags}
		if b.isLegal(m) {
			moves = append(moves, m)
		}
	}
	return moves
}

// appendPawnTargets is appendTargets with promotion fan-out: a
// destination on the first or last rank yields the four promotion
// variants instead of a single move.
func (b *Board) appendPawnTargets(moves []Move, from Square, targets uint64, flags MoveFlag) []Move {
	for ; targets != 0; targets &= targets - 1 {
		to := Square(BitScan(targets))
		if to.Mask()&maskEndRanks == 0 {
			m := Move{from, to, flags}
			if b.isLegal(m) {
				moves = append(moves, m)
			}
			continue
		}
		for _, promo := range [4]MoveFlag{QueenPromo, KnightPromo, RookPromo, BishopPromo} {
			m := Move{from, to, flags | promo}
			if b.isLegal(m) {
				moves = append(moves, m)
			}
		}
	}
	return moves
}

func (b *Board) appendPawnMoves(moves []Move, same, opposite uint64) []Move {
	all := same | opposite
	var epMask uint64
	if b.enPassantTarget != NoSquare {
		epMask = b.enPassantTarget.Mask()
	}
	for bb := b.bitboards[pieceIndex(b.turn, Pawn)]; bb != 0; bb &= bb - 1 {
		piece := bb & -bb
		from := Square(BitScan(piece))
		moves = b.appendPawnTargets(moves, from, PawnAdvances(piece, all, b.turn), PawnAdvance)
		moves = b.appendTargets(moves, from, PawnDoubles(piece, all, b.turn), PawnAdvance|PawnDouble)
		moves = b.appendPawnTargets(moves, from, PawnCaptures(piece, opposite, b.turn), Capture)
		moves = b.appendTargets(moves, from, PawnEnPassant(piece, epMask, b.turn), Capture|EnPassant)
	}
	return moves
}

func (b *Board) appendStepMoves(moves []Move, t PieceType, mask func(bb, sameColor uint64) uint64, same, opposite uint64) []Move {
	for bb := b.bitboards[pieceIndex(b.turn, t)]; bb != 0; bb &= bb - 1 {
		piece := bb & -bb
		from := Square(BitScan(piece))
		targets := mask(piece, same)
		moves = b.appendTargets(moves, from, targets&^opposite, Quiet)
		moves = b.appendTargets(moves, from, targets&opposite, Capture)
	}
	return moves
}

func (b *Board) appendSliderMoves(moves []Move, t PieceType, mask func(bb, sameColor, oppositeColor uint64) uint64, same, opposite uint64) []Move {
	for bb := b.bitboards[pieceIndex(b.turn, t)]; bb != 0; bb &= bb - 1 {
		piece := bb & -bb
		from := Square(BitScan(piece))
		targets := mask(piece, same, opposite)
		moves = b.appendTargets(moves, from, targets&^opposite, Quiet)
		moves = b.appendTargets(moves, from, targets&opposite, Capture)
	}
	return moves
}

// appendCastlingMoves emits castle moves whose between-squares are
// empty; isLegal then rejects paths through attacked squares. The king
// must still be on its home square for a right to apply.
func (b *Board) appendCastlingMoves(moves []Move, all uint64) []Move {
	king := b.bitboards[pieceIndex(b.turn, King)]
	home := kingHomeWhite
	rights := [2]CastlingRights{CastleWhiteKing, CastleWhiteQueen}
	if b.turn == Black {
		home = kingHomeBlack
		rights = [2]CastlingRights{CastleBlackKing, CastleBlackQueen}
	}
	if king&home == 0 {
		return moves
	}
	from := Square(BitScan(king))
	for _, right := range rights {
		if b.castlingRights&right == 0 {
			continue
		}
		if dest := CastlingDestination(all, right); dest != 0 {
			moves = b.appendTargets(moves, from, dest, Castling)
		}
	}
	return moves
}

// CreateMove resolves untrusted from/to/promotion input against the
// current legal moves. promo is the lowercase letter of the promotion
// piece ('n', 'b', 'r' or 'q'), or 0 when not promoting. Anything that
// does not name a legal move comes back as InvalidMove.
func (b *Board) CreateMove(from, to Square, promo byte) Move {
	for _, m := range b.legalMoves {
		if m.From != from || m.To != to {
			continue
		}
		if m.Flags&promoFlags == 0 {
			return m
		}
		if m.promoChar() == promo {
			return m
		}
	}
	return InvalidMove
}

// Perft counts the leaf nodes of the legal move tree at the given depth.
func Perft(b *Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		b.ExecuteMove(m)
		nodes += Perft(b, depth-1)
		b.UndoMove()
	}
	return nodes
}

// PerftDivide returns the leaf count below each root move.
func PerftDivide(b *Board, depth int) map[Move]uint64 {
	counts := make(map[Move]uint64, len(b.legalMoves))
	for _, m := range b.LegalMoves() {
		b.ExecuteMove(m)
		counts[m] = Perft(b, depth-1)
		b.UndoMove()
	}
	return counts
}
