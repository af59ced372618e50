package chess

import (
	"errors"
	"strconv"
	"strings"
)

// FENStartPos is the standard chess starting position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN builds a board from Forsyth-Edwards Notation. The clock
// fields may be omitted; they default to 0 and 1. The caches are
// generated before the board is returned, so LegalMoves is immediately
// usable.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, errors.New("invalid FEN: expected at least 4 fields")
	}
	b := &Board{enPassantTarget: NoSquare, fullmoves: 1}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, errors.New("invalid FEN: expected 8 ranks")
	}
	for i, row := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			p := PieceFromChar(c)
			if p.IsEmpty() {
				return nil, errors.New("invalid FEN: unknown piece letter")
			}
			if file > 7 {
				return nil, errors.New("invalid FEN: rank overflow")
			}
			b.setAt(SquareAt(rank, file), p)
			file++
		}
		if file != 8 {
			return nil, errors.New("invalid FEN: rank does not cover 8 files")
		}
	}

	switch fields[1] {
	case "w":
		b.turn = White
	case "b":
		b.turn = Black
	default:
		return nil, errors.New("invalid FEN: bad side to move")
	}

	if fields[2] != "-" {
		for i := 0; i < len(fields[2]); i++ {
			switch fields[2][i] {
			case 'K':
				b.castlingRights |= CastleWhiteKing
			case 'Q':
				b.castlingRights |= CastleWhiteQueen
			case 'k':
				b.castlingRights |= CastleBlackKing
			case 'q':
				b.castlingRights |= CastleBlackQueen
			default:
				return nil, errors.New("invalid FEN: bad castling rights")
			}
		}
	}

	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return nil, errors.New("invalid FEN: bad en passant square")
		}
		b.enPassantTarget = sq
	}

	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return nil, errors.New("invalid FEN: bad halfmove clock")
		}
		b.halfmoves = n
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return nil, errors.New("invalid FEN: bad fullmove number")
		}
		b.fullmoves = n
	}

	b.generate()
	return b, nil
}

// ToFEN serialises the position. For any valid FEN f,
// ParseFEN(f).ToFEN() == f up to omitted clock fields.
func (b *Board) ToFEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.GetAtCoords(rank, file)
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.Char())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	if b.turn == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	if b.castlingRights == 0 {
		sb.WriteByte('-')
	} else {
		if b.castlingRights&CastleWhiteKing != 0 {
			sb.WriteByte('K')
		}
		if b.castlingRights&CastleWhiteQueen != 0 {
			sb.WriteByte('Q')
		}
		if b.castlingRights&CastleBlackKing != 0 {
			sb.WriteByte('k')
		}
		if b.castlingRights&CastleBlackQueen != 0 {
			sb.WriteByte('q')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(b.enPassantTarget.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.halfmoves))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.fullmoves))
	return sb.String()
}
