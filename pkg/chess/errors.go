package chess

import "errors"

// Sentinel error kinds. Callers use errors.Is against these; the core wraps
// them with fmt.Errorf("%w: ...") for context instead of defining a richer
// error hierarchy.
var (
	// ErrInvalidNotation means the input text (a SAN move, square or piece
	// letter) is not well-formed. FEN failures use ErrFenParse instead.
	ErrInvalidNotation = errors.New("invalid notation")

	// ErrIllegalMove means a well-formed Move is not in the current legal-move set.
	ErrIllegalMove = errors.New("illegal move")

	// ErrFenParse means FEN text violates the grammar or describes an impossible position.
	ErrFenParse = errors.New("fen parse error")

	// ErrInternalInvariant means a caller asked for something the engine's invariants
	// forbid (undo with empty history). Caller bug. Board.MoveRaw from an empty
	// square panics rather than returning this error.
	ErrInternalInvariant = errors.New("internal invariant violation")
)
