// Package san parses and formats a single half-move in Standard Algebraic
// Notation against a GameState. Multi-move PGN records are out of scope.
package san

import (
	"fmt"
	"unicode"

	"github.com/solchess/castle/pkg/chess"
)

// Parse parses s as one half-move for g's side to move. Legality beyond
// disambiguation is not checked here — callers must pass the result through
// g.LegalMoves before applying it.
func Parse(s string, g *chess.GameState) (chess.Move, error) {
	if s == "" {
		return chess.Move{}, fmt.Errorf("%w: empty move text", chess.ErrInvalidNotation)
	}

	switch s {
	case "O-O":
		return chess.NewCastleMove(g.SideToMove(), true), nil
	case "O-O-O":
		return chess.NewCastleMove(g.SideToMove(), false), nil
	}

	runes := []rune(s)
	if unicode.IsLower(runes[0]) {
		// Pawn push or pawn capture: treat as if prefixed with 'P'.
		runes = append([]rune{'P'}, runes...)
	}

	if idx := indexRune(runes, 'x'); idx >= 0 {
		return parseCapture(runes[:idx], runes[idx+1:], g)
	}
	return parseQuiet(runes, g)
}

func indexRune(rs []rune, target rune) int {
	for i, r := range rs {
		if r == target {
			return i
		}
	}
	return -1
}

// parseCapture handles "<prefix>x<dest>", where prefix is a piece letter
// optionally followed by a file disambiguator.
func parseCapture(prefix, destRunes []rune, g *chess.GameState) (chess.Move, error) {
	kind, file, hasFile, err := parsePrefix(prefix)
	if err != nil {
		return chess.Move{}, err
	}
	dest, err := parseDest(destRunes)
	if err != nil {
		return chess.Move{}, err
	}

	candidates := matchingMoves(g, kind, dest, hasFile, file)
	switch len(candidates) {
	case 1:
		return candidates[0], nil
	case 0:
		if ep, ok := matchEnPassant(g, dest, hasFile, file); ok {
			return ep, nil
		}
		return chess.Move{}, fmt.Errorf("%w: no piece can capture on %v", chess.ErrInvalidNotation, dest)
	default:
		return chess.Move{}, fmt.Errorf("%w: ambiguous capture to %v", chess.ErrInvalidNotation, dest)
	}
}

// parseQuiet handles a move with no 'x': the first rune is the piece letter;
// if the total length is >= 4, the second rune is a file disambiguator and
// the remainder is the destination; otherwise the remainder is the destination.
func parseQuiet(runes []rune, g *chess.GameState) (chess.Move, error) {
	if len(runes) < 3 {
		return chess.Move{}, fmt.Errorf("%w: move too short: %q", chess.ErrInvalidNotation, string(runes))
	}
	kind, err := chess.ParsePieceKind(runes[0])
	if err != nil {
		return chess.Move{}, err
	}

	hasFile := false
	file := 0
	dest := runes[1:]
	if len(runes) >= 4 {
		f, ferr := chess.ParseFile(runes[1])
		if ferr == nil {
			hasFile, file = true, f
			dest = runes[2:]
		}
	}

	destSq, err := parseDest(dest)
	if err != nil {
		return chess.Move{}, err
	}

	candidates := matchingMoves(g, kind, destSq, hasFile, file)
	switch len(candidates) {
	case 1:
		return candidates[0], nil
	case 0:
		return chess.Move{}, fmt.Errorf("%w: no piece can reach %v", chess.ErrInvalidNotation, destSq)
	default:
		return chess.Move{}, fmt.Errorf("%w: ambiguous move to %v", chess.ErrInvalidNotation, destSq)
	}
}

func parsePrefix(prefix []rune) (kind chess.PieceKind, file int, hasFile bool, err error) {
	if len(prefix) == 0 {
		return chess.Pawn, 0, false, nil
	}
	kind, err = chess.ParsePieceKind(prefix[0])
	if err != nil {
		return 0, 0, false, err
	}
	if len(prefix) == 2 {
		f, ferr := chess.ParseFile(prefix[1])
		if ferr != nil {
			return 0, 0, false, ferr
		}
		return kind, f, true, nil
	}
	if len(prefix) > 2 {
		return 0, 0, false, fmt.Errorf("%w: unsupported disambiguation in %q", chess.ErrInvalidNotation, string(prefix))
	}
	return kind, 0, false, nil
}

func parseDest(runes []rune) (chess.Square, error) {
	if len(runes) != 2 {
		return 0, fmt.Errorf("%w: invalid destination square %q", chess.ErrInvalidNotation, string(runes))
	}
	return chess.ParseSquare(runes[0], runes[1])
}

// matchingMoves finds every friendly piece of kind whose pseudo-legal set
// contains dest, filtered by the file disambiguator if present.
func matchingMoves(g *chess.GameState, kind chess.PieceKind, dest chess.Square, hasFile bool, file int) []chess.Move {
	f := chess.Filter{Kind: kind}.ByColor(g.SideToMove()).ByCanReach(dest)
	if hasFile {
		f = f.ByFile(file)
	}

	var ret []chess.Move
	for _, sq := range g.Board().FilterSquares(f) {
		p, _ := g.Board().Occupant(sq)
		m := chess.NewNormalMove(sq, dest, p.Color, p)
		if occ, ok := g.Board().Occupant(dest); ok {
			m.Captured, m.IsCapture = occ, true
		}
		ret = append(ret, m)
	}
	return ret
}

// matchEnPassant checks whether dest is the current en-passant target and a
// pawn sits on the disambiguator file able to make that capture.
func matchEnPassant(g *chess.GameState, dest chess.Square, hasFile bool, file int) (chess.Move, bool) {
	target, ok := g.EnPassantTarget()
	if !ok || target != dest {
		return chess.Move{}, false
	}
	for _, m := range g.LegalMoves(g.SideToMove()) {
		if m.Kind != chess.EnPassantMove || m.Target != dest {
			continue
		}
		if hasFile && m.Attacker.File() != file {
			continue
		}
		return m, true
	}
	return chess.Move{}, false
}

// Format renders m in the canonical notation Move.String already produces;
// Format exists as the named inverse of Parse for callers that think in
// terms of a parse/format pair.
func Format(m chess.Move) string {
	return m.String()
}
