package fen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solchess/castle/pkg/chess"
	"github.com/solchess/castle/pkg/chess/fen"
)

func TestDecodeEncodeRoundTrip(t *testing.T) {
	// Encode always emits all six fields, since the core tracks neither
	// counter; inputs are given in that normalized six-field form.
	tests := []string{
		fen.Initial + " 0 1",
		"4k3/2pppp2/8/4P1K1/4PP2/3P4/8/8 w - - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/5P2/PPPPP1PP/RNBQKBNR w KQkq - 0 1",
		"r3k2r/p6p/8/B7/1pp1p3/3b4/P6P/R3K2R w KQkq - 0 1",
		"8/5p2/8/2k3P1/p3K3/8/1P6/8 b - e3 0 1",
	}

	for _, tt := range tests {
		g, err := fen.Decode(tt)
		require.NoError(t, err, tt)
		assert.Equal(t, tt, fen.Encode(g), tt)
	}
}

func TestDecodeToleratesFourFields(t *testing.T) {
	g, err := fen.Decode("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -")
	require.NoError(t, err)
	assert.Equal(t, chess.White, g.SideToMove())
	assert.Equal(t, chess.FullCastlingRights(), g.Castling())
	_, hasEP := g.EnPassantTarget()
	assert.False(t, hasEP)
}

func TestDecodeStandardStartMatchesHandBuilt(t *testing.T) {
	g, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	want := chess.NewStandardBoard()
	for _, s := range want.Squares() {
		wp, wok := want.Occupant(s)
		gp, gok := g.Board().Occupant(s)
		assert.Equal(t, wok, gok, "square %v", s)
		assert.Equal(t, wp, gp, "square %v", s)
	}
}

func TestDecodeInvalidInputs(t *testing.T) {
	tests := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq -",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq -",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w ZQkq -",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9",
		"9/8/8/8/8/8/8/8 w - -",
	}
	for _, tt := range tests {
		_, err := fen.Decode(tt)
		assert.ErrorIs(t, err, chess.ErrFenParse, tt)
	}
}

func TestEncodeCastlingRightsSubset(t *testing.T) {
	g, err := fen.Decode("8/8/8/8/8/8/8/8 w Kq -")
	require.NoError(t, err)
	assert.Equal(t, "8/8/8/8/8/8/8/8 w Kq - 0 1", fen.Encode(g))
}

func TestEncodeNoCastlingRightsIsHyphen(t *testing.T) {
	g, err := fen.Decode("8/8/8/8/8/8/8/8 b - -")
	require.NoError(t, err)
	assert.Equal(t, "8/8/8/8/8/8/8/8 b - - 0 1", fen.Encode(g))
}
