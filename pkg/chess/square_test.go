package chess_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solchess/castle/pkg/chess"
)

func TestSquareRoundTrip(t *testing.T) {
	tests := []struct {
		str        string
		file, rank int
	}{
		{"a1", 0, 0},
		{"h1", 7, 0},
		{"a8", 0, 7},
		{"h8", 7, 7},
		{"e4", 4, 3},
	}

	for _, tt := range tests {
		sq, err := chess.ParseSquareStr(tt.str)
		require.NoError(t, err)
		assert.Equal(t, tt.file, sq.File())
		assert.Equal(t, tt.rank, sq.Rank())
		assert.Equal(t, tt.str, sq.String())
		assert.Equal(t, chess.NewSquare(tt.file, tt.rank), sq)
	}
}

func TestParseSquareStrInvalid(t *testing.T) {
	tests := []string{"", "i1", "a9", "a", "e44"}
	for _, tt := range tests {
		_, err := chess.ParseSquareStr(tt)
		assert.ErrorIs(t, err, chess.ErrInvalidNotation)
	}
}

func TestNumSquares(t *testing.T) {
	assert.True(t, chess.Square(63).IsValid())
	assert.False(t, chess.Square(64).IsValid())
}
