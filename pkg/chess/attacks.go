package chess

// isAttacked reports whether sq is attacked by color c: some piece of color c
// could capture an enemy placed on sq. Pawn attacks are the two forward
// diagonals regardless of what (if anything) actually occupies sq — the
// pseudo-legal pawn generator only produces a diagonal destination when it is
// occupied by an enemy, so it cannot be reused as-is to test an arbitrary
// empty square. This routine is the dedicated attack-square query, rather
// than a virtual-piece-then-requery workaround.
func isAttacked(b *Board, c Color, sq Square) bool {
	f, r := sq.File(), sq.Rank()

	for _, sq2 := range b.FilterSquares(Filter{}.ByColor(c)) {
		p, _ := b.Occupant(sq2)
		switch p.Kind {
		case Pawn:
			if pawnAttacks(sq2, p.Color, f, r) {
				return true
			}
		case Knight:
			if stepAttacks(sq2, f, r, knightOffsets) {
				return true
			}
		case King:
			if stepAttacks(sq2, f, r, kingOffsets) {
				return true
			}
		case Bishop:
			if rayAttacks(b, sq2, f, r, diagonalDirs) {
				return true
			}
		case Rook:
			if rayAttacks(b, sq2, f, r, orthogonalDirs) {
				return true
			}
		case Queen:
			if rayAttacks(b, sq2, f, r, diagonalDirs) || rayAttacks(b, sq2, f, r, orthogonalDirs) {
				return true
			}
		}
	}
	return false
}

func pawnAttacks(from Square, color Color, targetFile, targetRank int) bool {
	dir := 1
	if color == Black {
		dir = -1
	}
	df := targetFile - from.File()
	dr := targetRank - from.Rank()
	return dr == dir && (df == 1 || df == -1)
}

func stepAttacks(from Square, targetFile, targetRank int, offsets []offset) bool {
	f, r := from.File(), from.Rank()
	for _, o := range offsets {
		if f+o.df == targetFile && r+o.dr == targetRank {
			return true
		}
	}
	return false
}

func rayAttacks(b *Board, from Square, targetFile, targetRank int, dirs []offset) bool {
	f0, r0 := from.File(), from.Rank()
	for _, d := range dirs {
		f, r := f0+d.df, r0+d.dr
		for inBoard(f, r) {
			if f == targetFile && r == targetRank {
				return true
			}
			if !b.IsEmpty(NewSquare(f, r)) {
				break
			}
			f, r = f+d.df, r+d.dr
		}
	}
	return false
}

// findKing returns the square of c's king. Panics if absent, which the
// Board/GameState invariants forbid at any non-terminal time.
func findKing(b *Board, c Color) Square {
	sqs := b.FilterSquares(Filter{Kind: King}.ByColor(c))
	if len(sqs) != 1 {
		panic("chess: expected exactly one king")
	}
	return sqs[0]
}

// isInCheck reports whether c's king is attacked by the opponent.
func isInCheck(b *Board, c Color) bool {
	return isAttacked(b, c.Opposite(), findKing(b, c))
}
