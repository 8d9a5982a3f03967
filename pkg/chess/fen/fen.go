// Package fen decodes and encodes chess positions in Forsyth-Edwards Notation.
package fen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/seekerror/stdlib/pkg/lang"

	"github.com/solchess/castle/pkg/chess"
)

// Initial is the standard starting position.
const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -"

// Decode parses the first four FEN fields (placement, side, castling,
// en-passant target) into a GameState. A 5th/6th field (halfmove/fullmove
// counters) is tolerated if present but otherwise has no bearing on the
// resulting GameState.
//
// Example:
//
//	"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
func Decode(s string) (*chess.GameState, error) {
	parts := strings.Fields(strings.TrimSpace(s))
	if len(parts) != 4 && len(parts) != 6 {
		return nil, fmt.Errorf("%w: expected 4 or 6 fields in fen %q", chess.ErrFenParse, s)
	}

	board, err := decodePlacement(parts[0])
	if err != nil {
		return nil, err
	}

	turn, err := decodeSide(parts[1])
	if err != nil {
		return nil, err
	}

	castling, err := decodeCastling(parts[2])
	if err != nil {
		return nil, err
	}

	ep, err := decodeEnPassant(parts[3])
	if err != nil {
		return nil, err
	}

	return chess.NewGameFrom(board, turn, castling, ep), nil
}

// Encode renders g's position as the first four FEN fields, followed by a
// halfmove clock and fullmove number of 0 and 1 — the core has no notion of
// either counter, so they are always reported at their starting values.
func Encode(g *chess.GameState) string {
	var sb strings.Builder
	sb.WriteString(encodePlacement(g.Board()))
	sb.WriteByte(' ')
	sb.WriteString(encodeSide(g.SideToMove()))
	sb.WriteByte(' ')
	sb.WriteString(encodeCastling(g.Castling()))
	sb.WriteByte(' ')
	sb.WriteString(encodeEnPassant(g))
	sb.WriteString(" 0 1")
	return sb.String()
}

func decodePlacement(field string) (*chess.Board, error) {
	b := chess.NewEmptyBoard()

	rank := 7
	file := 0
	for _, r := range field {
		switch {
		case r == '/':
			if file != chess.NumFiles {
				return nil, fmt.Errorf("%w: malformed rank length in placement %q", chess.ErrFenParse, field)
			}
			rank--
			file = 0

		case unicode.IsDigit(r):
			n := int(r - '0')
			if n < 1 || n > 8 {
				return nil, fmt.Errorf("%w: invalid empty-square count in placement %q", chess.ErrFenParse, field)
			}
			file += n

		case unicode.IsLetter(r):
			p, err := chess.ParsePieceLetter(r)
			if err != nil {
				return nil, fmt.Errorf("%w: unknown piece letter %q in placement %q", chess.ErrFenParse, r, field)
			}
			if rank < 0 || file >= chess.NumFiles {
				return nil, fmt.Errorf("%w: file count out of range in placement %q", chess.ErrFenParse, field)
			}
			b.Place(p, chess.NewSquare(file, rank))
			file++

		default:
			return nil, fmt.Errorf("%w: invalid character %q in placement %q", chess.ErrFenParse, r, field)
		}
	}
	if rank != 0 || file != chess.NumFiles {
		return nil, fmt.Errorf("%w: malformed number of ranks/squares in placement %q", chess.ErrFenParse, field)
	}
	return b, nil
}

func encodePlacement(b *chess.Board) string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		blanks := 0
		for file := 0; file < chess.NumFiles; file++ {
			p, ok := b.Occupant(chess.NewSquare(file, rank))
			if !ok {
				blanks++
				continue
			}
			if blanks > 0 {
				sb.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}
			sb.WriteRune(p.Letter())
		}
		if blanks > 0 {
			sb.WriteString(strconv.Itoa(blanks))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

func decodeSide(field string) (chess.Color, error) {
	switch field {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return 0, fmt.Errorf("%w: invalid side to move %q", chess.ErrFenParse, field)
	}
}

func encodeSide(c chess.Color) string {
	if c == chess.White {
		return "w"
	}
	return "b"
}

func decodeCastling(field string) (chess.CastlingRights, error) {
	var r chess.CastlingRights
	if field == "-" {
		return r, nil
	}
	for _, c := range field {
		switch c {
		case 'K':
			r.WhiteShort = true
		case 'Q':
			r.WhiteLong = true
		case 'k':
			r.BlackShort = true
		case 'q':
			r.BlackLong = true
		default:
			return chess.CastlingRights{}, fmt.Errorf("%w: invalid castling letter %q", chess.ErrFenParse, c)
		}
	}
	return r, nil
}

func encodeCastling(r chess.CastlingRights) string {
	s := ""
	if r.WhiteShort {
		s += "K"
	}
	if r.WhiteLong {
		s += "Q"
	}
	if r.BlackShort {
		s += "k"
	}
	if r.BlackLong {
		s += "q"
	}
	if s == "" {
		return "-"
	}
	return s
}

func decodeEnPassant(field string) (lang.Optional[chess.Square], error) {
	if field == "-" {
		return lang.Optional[chess.Square]{}, nil
	}
	sq, err := chess.ParseSquareStr(field)
	if err != nil {
		return lang.Optional[chess.Square]{}, fmt.Errorf("%w: invalid en passant target %q", chess.ErrFenParse, field)
	}
	return lang.Some(sq), nil
}

func encodeEnPassant(g *chess.GameState) string {
	if sq, ok := g.EnPassantTarget(); ok {
		return sq.String()
	}
	return "-"
}
