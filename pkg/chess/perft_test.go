package chess_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solchess/castle/pkg/chess"
	"github.com/solchess/castle/pkg/chess/fen"
)

func TestPerftStandardStart(t *testing.T) {
	if testing.Short() {
		t.Skip("deep perft is slow; skipped under -short")
	}

	g, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	want := []int64{20, 400, 8902, 197281, 4865609}
	for i, w := range want {
		require.EqualValues(t, w, chess.Perft(g, i+1), "perft(%d)", i+1)
	}
}

func TestPerftKingAndPawnEndgame(t *testing.T) {
	g, err := fen.Decode("8/5p2/8/2k3P1/p3K3/8/1P6/8 b - -")
	require.NoError(t, err)

	want := []int64{9, 85, 795, 7658}
	for i, w := range want {
		require.EqualValues(t, w, chess.Perft(g, i+1), "perft(%d)", i+1)
	}
}

func TestPerftCastlingRights(t *testing.T) {
	g, err := fen.Decode("r3k2r/p6p/8/B7/1pp1p3/3b4/P6P/R3K2R w KQkq -")
	require.NoError(t, err)

	want := []int64{17, 341, 6666}
	for i, w := range want {
		require.EqualValues(t, w, chess.Perft(g, i+1), "perft(%d)", i+1)
	}
}
