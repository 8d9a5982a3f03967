package chess_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solchess/castle/pkg/chess"
)

func hasCastle(moves []chess.Move, kingside bool) bool {
	for _, m := range moves {
		if m.Kind == chess.CastleMove && m.Kingside == kingside {
			return true
		}
	}
	return false
}

func TestCastleRequiresRight(t *testing.T) {
	b := chess.NewEmptyBoard()
	b.Place(chess.Piece{Kind: chess.King, Color: chess.White}, sq("e1"))
	b.Place(chess.Piece{Kind: chess.Rook, Color: chess.White}, sq("h1"))
	b.Place(chess.Piece{Kind: chess.King, Color: chess.Black}, sq("e8"))

	g := chess.NewGameFrom(b, chess.White, chess.CastlingRights{}, noEnPassant())
	assert.False(t, hasCastle(g.LegalMoves(chess.White), true))

	g2 := chess.NewGameFrom(b, chess.White, chess.CastlingRights{WhiteShort: true}, noEnPassant())
	assert.True(t, hasCastle(g2.LegalMoves(chess.White), true))
}

func TestCastleBlockedByObstruction(t *testing.T) {
	b := chess.NewEmptyBoard()
	b.Place(chess.Piece{Kind: chess.King, Color: chess.White}, sq("e1"))
	b.Place(chess.Piece{Kind: chess.Rook, Color: chess.White}, sq("h1"))
	b.Place(chess.Piece{Kind: chess.Bishop, Color: chess.White}, sq("f1"))
	b.Place(chess.Piece{Kind: chess.King, Color: chess.Black}, sq("e8"))

	g := chess.NewGameFrom(b, chess.White, chess.CastlingRights{WhiteShort: true}, noEnPassant())
	assert.False(t, hasCastle(g.LegalMoves(chess.White), true))
}

func TestCastleBlockedByAttackedTraversalSquare(t *testing.T) {
	b := chess.NewEmptyBoard()
	b.Place(chess.Piece{Kind: chess.King, Color: chess.White}, sq("e1"))
	b.Place(chess.Piece{Kind: chess.Rook, Color: chess.White}, sq("h1"))
	b.Place(chess.Piece{Kind: chess.Rook, Color: chess.Black}, sq("f8")) // attacks f1, the king's transit square
	b.Place(chess.Piece{Kind: chess.King, Color: chess.Black}, sq("e8"))

	g := chess.NewGameFrom(b, chess.White, chess.CastlingRights{WhiteShort: true}, noEnPassant())
	assert.False(t, hasCastle(g.LegalMoves(chess.White), true))
}

func TestCastleBlockedWhileInCheck(t *testing.T) {
	b := chess.NewEmptyBoard()
	b.Place(chess.Piece{Kind: chess.King, Color: chess.White}, sq("e1"))
	b.Place(chess.Piece{Kind: chess.Rook, Color: chess.White}, sq("h1"))
	b.Place(chess.Piece{Kind: chess.Rook, Color: chess.Black}, sq("e8")) // checks e1 directly
	b.Place(chess.Piece{Kind: chess.King, Color: chess.Black}, sq("a8"))

	g := chess.NewGameFrom(b, chess.White, chess.CastlingRights{WhiteShort: true}, noEnPassant())
	assert.False(t, hasCastle(g.LegalMoves(chess.White), true))
}

func TestCastlingRightRevokedByRookCapture(t *testing.T) {
	g := chess.NewGame()

	// Clear a path for a White knight to take the Black rook on a8, revoking
	// Black's queenside right without Black's king or rook ever moving.
	g.Board().Clear()
	g.Board().Place(chess.Piece{Kind: chess.King, Color: chess.White}, sq("e1"))
	g.Board().Place(chess.Piece{Kind: chess.King, Color: chess.Black}, sq("e8"))
	g.Board().Place(chess.Piece{Kind: chess.Rook, Color: chess.Black}, sq("a8"))
	g.Board().Place(chess.Piece{Kind: chess.Knight, Color: chess.White}, sq("b6"))

	g2 := chess.NewGameFrom(g.Board(), chess.White, chess.CastlingRights{BlackShort: true, BlackLong: true}, noEnPassant())

	var capture chess.Move
	var found bool
	for _, m := range g2.LegalMoves(chess.White) {
		if m.Kind == chess.NormalMove && m.To == sq("a8") {
			capture, found = m, true
		}
	}
	a := assert.New(t)
	a.True(found, "knight must be able to capture the rook on a8")
	a.Equal(sq("b6"), capture.From)

	a.NoError(g2.ApplyMove(capture))
	a.False(g2.Castling().BlackLong)
	a.True(g2.Castling().BlackShort)
}
