package chess

import (
	"context"
	"math/rand"
)

// MoveSelector picks a move for the side to move in g. The core ships exactly
// one implementation, RandomMover; anything resembling search or evaluation
// is an external collaborator.
type MoveSelector interface {
	SelectMove(ctx context.Context, g *GameState) (Move, bool)
}

// RandomMover selects uniformly at random among the legal moves of the side
// to move.
type RandomMover struct {
	rand *rand.Rand
}

// NewRandomMover returns a RandomMover seeded deterministically from seed.
func NewRandomMover(seed int64) *RandomMover {
	return &RandomMover{rand: rand.New(rand.NewSource(seed))}
}

// SelectMove implements MoveSelector. Returns false if there are no legal moves.
func (m *RandomMover) SelectMove(ctx context.Context, g *GameState) (Move, bool) {
	moves := g.LegalMoves(g.SideToMove())
	if len(moves) == 0 {
		return Move{}, false
	}
	return moves[m.rand.Intn(len(moves))], true
}
