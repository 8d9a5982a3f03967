package chess

// castleSquares returns the king and rook from/to squares for a castle of the
// given color and side: rank 0 (White) or 7 (Black); king
// e->g (kingside) or e->c (queenside); rook h->f (kingside) or a->d (queenside).
func castleSquares(color Color, kingside bool) (kingFrom, kingTo, rookFrom, rookTo Square) {
	rank := 0
	if color == Black {
		rank = 7
	}
	if kingside {
		return NewSquare(4, rank), NewSquare(6, rank), NewSquare(7, rank), NewSquare(5, rank)
	}
	return NewSquare(4, rank), NewSquare(2, rank), NewSquare(0, rank), NewSquare(3, rank)
}

// applyMove mutates b for m and returns the concrete Move to push onto
// history — for Normal moves this fills in Captured/IsCapture from the
// board's actual state at apply time.
func applyMove(b *Board, m Move) Move {
	switch m.Kind {
	case NormalMove:
		captured, ok := b.Occupant(m.To)
		m.Captured = captured
		m.IsCapture = ok
		b.MoveRaw(m.From, m.To)

	case CastleMove:
		kingFrom, kingTo, rookFrom, rookTo := castleSquares(m.Color, m.Kingside)
		// Rook first, then king: order only matters to predicates inspecting
		// intermediate state, not to the final position.
		b.MoveRaw(rookFrom, rookTo)
		b.MoveRaw(kingFrom, kingTo)

	case EnPassantMove:
		b.MoveRaw(m.Attacker, m.Target)
		b.Place(Piece{}, m.Unsafe)
	}
	return m
}

// undoMove reverses m on b, restoring the exact pre-apply occupancy. Normal
// moves are reversed with direct placement rather than MoveRaw, since MoveRaw's
// auto-queen side effect must not fire on the way back: a promoted move's
// mover must reappear at From as whatever Piece was recorded on m at apply
// time (a Pawn), not as the Queen sitting on To.
func undoMove(b *Board, m Move) {
	switch m.Kind {
	case NormalMove:
		b.Place(m.Piece, m.From)
		if m.IsCapture {
			b.Place(m.Captured, m.To)
		} else {
			b.Place(Piece{}, m.To)
		}

	case CastleMove:
		kingFrom, kingTo, rookFrom, rookTo := castleSquares(m.Color, m.Kingside)
		b.MoveRaw(kingTo, kingFrom)
		b.MoveRaw(rookTo, rookFrom)

	case EnPassantMove:
		b.MoveRaw(m.Target, m.Attacker)
		b.Place(Piece{Kind: Pawn, Color: m.Color.Opposite()}, m.Unsafe)
	}
}
