package chess

// ExecuteMove applies a move produced by this board's move generation.
// The previous state is pushed onto the undo stack, the clocks and
// castling rights are updated, the board mutates, and the caches are
// regenerated for the new side to move. Panics on an Invalid move; the
// caller is expected to have gone through CreateMove or LegalMoves.
func (b *Board) ExecuteMove(m Move) {
	if m.IsInvalid() {
		panic("chess: ExecuteMove called with invalid move")
	}
	b.history = append(b.history, undoFrame{
		bitboards:       b.bitboards,
		castlingRights:  b.castlingRights,
		enPassantTarget: b.enPassantTarget,
		halfmoves:       b.halfmoves,
		attackers:       b.attackers,
		legalMoves:      b.legalMoves,
	})

	piece := b.GetAt(m.From)
	target := b.GetAt(m.To)
	b.halfmoves++
	b.updateCastlingRights(m, piece, target)

	b.clearAt(m.From)
	if promo := m.Promotion(); promo != NoPieceType {
		b.setAt(m.To, Piece{promo, b.turn})
	} else {
		b.setAt(m.To, piece)
	}

	if m.Flags&Castling != 0 {
		backRank := m.From & 56
		var rookFrom, rookTo Square
		if m.To > m.From {
			rookFrom = backRank + 7
			rookTo = m.To - 1
		} else {
			rookFrom = backRank
			rookTo = m.To + 1
		}
		b.clearAt(rookFrom)
		b.setAt(rookTo, Piece{Rook, b.turn})
	}

	if m.Flags&EnPassant != 0 {
		b.clearAt(SquareAt(m.From.Rank(), m.To.File()))
	}

	if m.Flags&PawnDouble != 0 {
		b.enPassantTarget = (m.From + m.To) / 2
	} else {
		b.enPassantTarget = NoSquare
	}

	if m.Flags&(Capture|EnPassant|PawnAdvance|PawnDouble) != 0 {
		b.halfmoves = 0
	}
	if b.turn == Black {
		b.fullmoves++
	}
	b.turn = b.turn.Other()
	b.generate()
}

// updateCastlingRights clears rights when a king moves, when a rook
// leaves its corner, or when a rook is captured on its corner.
func (b *Board) updateCastlingRights(m Move, piece, target Piece) {
	switch piece.Type {
	case King:
		if piece.Color == White {
			b.castlingRights &^= CastleWhiteKing | CastleWhiteQueen
		} else {
			b.castlingRights &^= CastleBlackKing | CastleBlackQueen
		}
	case Rook:
		switch m.From {
		case 0:
			b.castlingRights &^= CastleWhiteQueen
		case 7:
			b.castlingRights &^= CastleWhiteKing
		case 56:
			b.castlingRights &^= CastleBlackQueen
		case 63:
			b.castlingRights &^= CastleBlackKing
		}
	}
	if target.Type == Rook {
		switch m.To {
		case 0:
			b.castlingRights &^= CastleWhiteQueen
		case 7:
			b.castlingRights &^= CastleWhiteKing
		case 56:
			b.castlingRights &^= CastleBlackQueen
		case 63:
			b.castlingRights &^= CastleBlackKing
		}
	}
}

// UndoMove reverts the most recent ExecuteMove in constant time by
// restoring the snapshot from the undo stack; nothing is recomputed.
// Panics when no move has been applied.
func (b *Board) UndoMove() {
	n := len(b.history) - 1
	if n < 0 {
		panic("chess: UndoMove called with empty history")
	}
	frame := b.history[n]
	b.history = b.history[:n]
	b.bitboards = frame.bitboards
	b.castlingRights = frame.castlingRights
	b.enPassantTarget = frame.enPassantTarget
	b.halfmoves = frame.halfmoves
	b.attackers = frame.attackers
	b.legalMoves = frame.legalMoves
	b.turn = b.turn.Other()
	if b.turn == Black {
		b.fullmoves--
	}
}
