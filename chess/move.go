package chess

// MoveFlag is a bitset describing a move's effects. A quiet move carries
// no flags; a double pawn advance carries PawnAdvance|PawnDouble; at most
// one promotion flag is ever set, and only together with a destination on
// the first or last rank.
type MoveFlag uint16

const (
	Quiet       MoveFlag = 0
	Capture     MoveFlag = 1 << 0
	EnPassant   MoveFlag = 1 << 1
	PawnAdvance MoveFlag = 1 << 2
	PawnDouble  MoveFlag = 1 << 3
	Castling    MoveFlag = 1 << 4
	KnightPromo MoveFlag = 1 << 5
	QueenPromo  MoveFlag = 1 << 6
	BishopPromo MoveFlag = 1 << 7
	RookPromo   MoveFlag = 1 << 8
	Invalid     MoveFlag = 1 << 9
)

const promoFlags = KnightPromo | QueenPromo | BishopPromo | RookPromo

// Move is a from/to square pair plus flags. Moves are plain values;
// comparing them with == is meaningful.
type Move struct {
	From  Square
	To    Square
	Flags MoveFlag
}

// InvalidMove is returned when a requested move is not legal in the
// current position.
var InvalidMove = Move{NoSquare, NoSquare, Invalid}

// IsInvalid reports whether the move carries the Invalid flag.
func (m Move) IsInvalid() bool {
	return m.Flags&Invalid != 0
}

// Promotion returns the piece type a promotion move promotes to, or
// NoPieceType for non-promotion moves.
func (m Move) Promotion() PieceType {
	switch {
	case m.Flags&KnightPromo != 0:
		return Knight
	case m.Flags&BishopPromo != 0:
		return Bishop
	case m.Flags&RookPromo != 0:
		return Rook
	case m.Flags&QueenPromo != 0:
		return Queen
	}
	return NoPieceType
}

// promoChar returns the lowercase letter for the promotion piece, or 0.
func (m Move) promoChar() byte {
	switch m.Promotion() {
	case Knight:
		return 'n'
	case Bishop:
		return 'b'
	case Rook:
		return 'r'
	case Queen:
		return 'q'
	}
	return 0
}

// String renders the move in long algebraic notation, e.g. "e2e4" or
// "a7a8q".
func (m Move) String() string {
	if m.IsInvalid() {
		return "0000"
	}
	s := m.From.String() + m.To.String()
	if c := m.promoChar(); c != 0 {
		s += string(c)
	}
	return s
}
