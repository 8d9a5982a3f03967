package chess_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solchess/castle/pkg/chess"
)

func TestRandomMoverPicksALegalMove(t *testing.T) {
	g := chess.NewGame()
	mover := chess.NewRandomMover(42)

	m, ok := mover.SelectMove(context.Background(), g)
	assert.True(t, ok)

	legal := g.LegalMoves(g.SideToMove())
	var found bool
	for _, l := range legal {
		if l.Equals(m) {
			found = true
		}
	}
	assert.True(t, found)
}

func TestRandomMoverNoLegalMovesOnCheckmate(t *testing.T) {
	g := chess.NewGame()
	applySAN(t, g, "f3", "e5", "g4", "Qh4")

	mover := chess.NewRandomMover(1)
	_, ok := mover.SelectMove(context.Background(), g)
	assert.False(t, ok)
}
