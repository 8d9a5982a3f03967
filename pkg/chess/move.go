package chess

import "fmt"

// MoveKind distinguishes the three Move variants. Moves of different kinds
// are never equal to one another.
type MoveKind uint8

const (
	NormalMove MoveKind = iota
	CastleMove
	EnPassantMove
)

// Move is a tagged union of the three move variants a position can produce.
// Only the fields relevant to Kind are meaningful; the rest are left zero.
//
// Normal uses From, To, Color, Piece, Captured, IsCapture, SAN.
// Castle uses Color, Kingside.
// EnPassant uses Attacker, Target, Unsafe, Color.
type Move struct {
	Kind MoveKind

	// Normal
	From, To  Square
	Color     Color
	Piece     Piece // the moving piece's identity at the time of Apply
	Captured  Piece
	IsCapture bool
	SAN       string

	// Castle
	Kingside bool

	// EnPassant
	Attacker Square
	Target   Square
	Unsafe   Square
}

// NewNormalMove constructs a Normal move.
func NewNormalMove(from, to Square, color Color, piece Piece) Move {
	return Move{Kind: NormalMove, From: from, To: to, Color: color, Piece: piece}
}

// NewCastleMove constructs a Castle move.
func NewCastleMove(color Color, kingside bool) Move {
	return Move{Kind: CastleMove, Color: color, Kingside: kingside}
}

// NewEnPassantMove constructs an EnPassant move.
func NewEnPassantMove(attacker, target, unsafe Square, color Color) Move {
	return Move{Kind: EnPassantMove, Attacker: attacker, Target: target, Unsafe: unsafe, Color: color}
}

// Equals implements the per-variant equality defined in the data model:
// Normal compares (color, from, to); Castle compares (color, kingside);
// EnPassant compares (attacker, target, unsafe).
func (m Move) Equals(o Move) bool {
	if m.Kind != o.Kind {
		return false
	}
	switch m.Kind {
	case NormalMove:
		return m.Color == o.Color && m.From == o.From && m.To == o.To
	case CastleMove:
		return m.Color == o.Color && m.Kingside == o.Kingside
	case EnPassantMove:
		return m.Attacker == o.Attacker && m.Target == o.Target && m.Unsafe == o.Unsafe
	default:
		return false
	}
}

// Key returns a comparable value suitable for use as a map key, matching the
// same per-variant equality as Equals.
func (m Move) Key() interface{} {
	switch m.Kind {
	case NormalMove:
		return [4]uint8{uint8(NormalMove), uint8(m.Color), uint8(m.From), uint8(m.To)}
	case CastleMove:
		side := uint8(0)
		if m.Kingside {
			side = 1
		}
		return [4]uint8{uint8(CastleMove), uint8(m.Color), side, 0}
	case EnPassantMove:
		return [4]uint8{uint8(EnPassantMove), uint8(m.Attacker), uint8(m.Target), uint8(m.Unsafe)}
	default:
		return [4]uint8{}
	}
}

// String renders the canonical output notation: Normal is
// "<PieceLetter if non-pawn><from-file>[x]<to-square>" (the leading pawn
// letter used internally is stripped); Castle is "O-O"/"O-O-O"; EnPassant is
// "<from-file>x<to-square>". This intentionally differs from strict SAN,
// which omits the from-file unless disambiguation requires it.
func (m Move) String() string {
	switch m.Kind {
	case CastleMove:
		if m.Kingside {
			return "O-O"
		}
		return "O-O-O"
	case EnPassantMove:
		return fmt.Sprintf("%cx%v", m.Attacker.FileLetter(), m.Target)
	default:
		var letter string
		if m.Piece.Kind != Pawn && m.Piece.Kind != NoPieceKind {
			letter = string(m.Piece.Kind.Symbol())
		}
		x := ""
		if m.IsCapture {
			x = "x"
		}
		return fmt.Sprintf("%v%c%v%v", letter, m.From.FileLetter(), x, m.To)
	}
}
