package chess

import (
	"fmt"

	"github.com/seekerror/stdlib/pkg/lang"
)

// CastlingRights is the four persistent castling-eligibility booleans.
type CastlingRights struct {
	WhiteShort, WhiteLong bool
	BlackShort, BlackLong bool
}

// FullCastlingRights grants every right, the starting-position default.
func FullCastlingRights() CastlingRights {
	return CastlingRights{true, true, true, true}
}

func (r CastlingRights) has(c Color, kingside bool) bool {
	switch {
	case c == White && kingside:
		return r.WhiteShort
	case c == White && !kingside:
		return r.WhiteLong
	case c == Black && kingside:
		return r.BlackShort
	default:
		return r.BlackLong
	}
}

func (r *CastlingRights) revoke(c Color, kingside bool) {
	switch {
	case c == White && kingside:
		r.WhiteShort = false
	case c == White && !kingside:
		r.WhiteLong = false
	case c == Black && kingside:
		r.BlackShort = false
	default:
		r.BlackLong = false
	}
}

func (r *CastlingRights) revokeBoth(c Color) {
	r.revoke(c, true)
	r.revoke(c, false)
}

// Outcome is the decided result of a finished game.
type Outcome uint8

const (
	WhiteWins Outcome = iota
	BlackWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case WhiteWins:
		return "white wins"
	case BlackWins:
		return "black wins"
	default:
		return "draw"
	}
}

// historyEntry snapshots everything needed to reverse apply_move exactly:
// the concrete Move (with Captured/IsCapture filled in) plus the
// pre-move castling rights and en-passant target, since both are
// path-dependent and cannot be re-derived from the board alone.
type historyEntry struct {
	move         Move
	preCastling  CastlingRights
	preEnPassant lang.Optional[Square]
}

// GameState owns one Board and a Move stack: side to move, castling rights,
// en-passant target, and history. It is mutated only through ApplyMove and
// UndoMove.
type GameState struct {
	board     *Board
	turn      Color
	castling  CastlingRights
	enPassant lang.Optional[Square]
	history   []historyEntry

	finished bool
	winner   lang.Optional[Outcome]
}

// NewGame returns a GameState set up for a standard new game.
func NewGame() *GameState {
	return &GameState{
		board:    NewStandardBoard(),
		turn:     White,
		castling: FullCastlingRights(),
	}
}

// NewGameFrom builds a GameState from an already-constructed board and
// metadata. Used by the fen package.
func NewGameFrom(b *Board, turn Color, castling CastlingRights, enPassant lang.Optional[Square]) *GameState {
	return &GameState{board: b, turn: turn, castling: castling, enPassant: enPassant}
}

// Board returns the underlying board. Callers must not mutate it directly.
func (g *GameState) Board() *Board {
	return g.board
}

// SideToMove returns the color to move.
func (g *GameState) SideToMove() Color {
	return g.turn
}

// Castling returns the current castling rights.
func (g *GameState) Castling() CastlingRights {
	return g.castling
}

// EnPassantTarget returns the en-passant target square, if the immediately
// preceding move was a two-square pawn advance.
func (g *GameState) EnPassantTarget() (Square, bool) {
	return g.enPassant.V()
}

// History returns the applied moves in order, oldest first.
func (g *GameState) History() []Move {
	ret := make([]Move, len(g.history))
	for i, h := range g.history {
		ret[i] = h.move
	}
	return ret
}

// Finished reports whether the game has ended, and the Outcome if so.
func (g *GameState) Finished() (Outcome, bool) {
	if !g.finished {
		return 0, false
	}
	return g.winner.V()
}

// LegalMoves returns every legal move for c in the current position. Order
// is unspecified; treat the result as a set.
func (g *GameState) LegalMoves(c Color) []Move {
	ep, hasEP := g.enPassant.V()
	return legalMoves(g.board, c, g.castling, ep, hasEP)
}

// LegalMovesFrom filters LegalMoves(c) to those starting on sq, where c is
// the occupant's color. Convenience projection for move-prompt UIs.
func (g *GameState) LegalMovesFrom(sq Square) []Move {
	p, ok := g.board.Occupant(sq)
	if !ok {
		return nil
	}
	var ret []Move
	for _, m := range g.LegalMoves(p.Color) {
		if moveFromSquare(m) == sq {
			ret = append(ret, m)
		}
	}
	return ret
}

func moveFromSquare(m Move) Square {
	switch m.Kind {
	case EnPassantMove:
		return m.Attacker
	case CastleMove:
		rank := 0
		if m.Color == Black {
			rank = 7
		}
		return NewSquare(4, rank)
	default:
		return m.From
	}
}

// IsInCheck reports whether c's king is attacked.
func (g *GameState) IsInCheck(c Color) bool {
	return isInCheck(g.board, c)
}

// IsCheckmate reports check with zero legal moves.
func (g *GameState) IsCheckmate(c Color) bool {
	return g.IsInCheck(c) && len(g.LegalMoves(c)) == 0
}

// IsStalemate reports zero legal moves without check.
func (g *GameState) IsStalemate(c Color) bool {
	return !g.IsInCheck(c) && len(g.LegalMoves(c)) == 0
}

// ApplyMove requires m to be a member of LegalMoves(g.SideToMove()); the SAN
// path and any other caller must membership-test before calling this.
func (g *GameState) ApplyMove(m Move) error {
	if !isMember(g.LegalMoves(g.turn), m) {
		return fmt.Errorf("%w: %v is not legal for %v", ErrIllegalMove, m, g.turn)
	}

	entry := historyEntry{preCastling: g.castling, preEnPassant: g.enPassant}
	entry.move = applyMove(g.board, m)
	g.history = append(g.history, entry)

	g.updateEnPassant(entry.move)
	g.updateCastlingRights(entry.move)
	g.turn = g.turn.Opposite()

	g.finished, g.winner = false, lang.Optional[Outcome]{}
	if g.IsCheckmate(g.turn) {
		g.finished = true
		if g.turn == White {
			g.winner = lang.Some(BlackWins)
		} else {
			g.winner = lang.Some(WhiteWins)
		}
	} else if g.IsStalemate(g.turn) {
		g.finished = true
		g.winner = lang.Some(Draw)
	}
	return nil
}

// UndoMove reverses the most recently applied move.
func (g *GameState) UndoMove() error {
	if len(g.history) == 0 {
		return fmt.Errorf("%w: undo with empty history", ErrInternalInvariant)
	}
	last := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]

	undoMove(g.board, last.move)
	g.turn = g.turn.Opposite()
	g.castling = last.preCastling
	g.enPassant = last.preEnPassant
	g.finished = false
	g.winner = lang.Optional[Outcome]{}
	return nil
}

func isMember(moves []Move, m Move) bool {
	for _, c := range moves {
		if c.Equals(m) {
			return true
		}
	}
	return false
}

// updateEnPassant clears the target, then sets it to the intermediate square
// if m was a two-square pawn advance.
func (g *GameState) updateEnPassant(m Move) {
	g.enPassant = lang.Optional[Square]{}
	if m.Kind != NormalMove || m.Piece.Kind != Pawn {
		return
	}
	delta := m.To.Rank() - m.From.Rank()
	if delta == 2 || delta == -2 {
		mid := (m.To.Rank() + m.From.Rank()) / 2
		g.enPassant = lang.Some(NewSquare(m.From.File(), mid))
	}
}

func (g *GameState) updateCastlingRights(m Move) {
	if m.Kind == CastleMove {
		g.castling.revokeBoth(m.Color)
		return
	}
	if m.Kind != NormalMove {
		return
	}

	if m.Piece.Kind == King {
		g.castling.revokeBoth(m.Color)
	}
	if m.Piece.Kind == Rook {
		revokeForRookSquare(&g.castling, m.Color, m.From)
	}
	if m.IsCapture && m.Captured.Kind == Rook {
		revokeForRookSquare(&g.castling, m.Color.Opposite(), m.To)
	}
}

// revokeForRookSquare revokes the castling right matching the rook's home
// square, whether the rook moved away from it or was captured there.
func revokeForRookSquare(r *CastlingRights, c Color, sq Square) {
	rank := 0
	if c == Black {
		rank = 7
	}
	if sq.Rank() != rank {
		return
	}
	switch sq.File() {
	case 0:
		r.revoke(c, false)
	case 7:
		r.revoke(c, true)
	}
}
