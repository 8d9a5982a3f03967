package chess

// pseudoLegalMovesFrom generates every pseudo-legal destination for the piece
// on sq, ignoring whether the mover's own king ends up attacked, and ignoring
// castling and en passant — those are added by the Legality Filter (legality.go).
func pseudoLegalMovesFrom(b *Board, sq Square) []Move {
	p, ok := b.Occupant(sq)
	if !ok {
		return nil
	}

	var ret []Move
	switch p.Kind {
	case Pawn:
		ret = pawnMoves(b, sq, p)
	case Knight:
		ret = stepMoves(b, sq, p, knightOffsets)
	case Bishop:
		ret = rayMoves(b, sq, p, diagonalDirs)
	case Rook:
		ret = rayMoves(b, sq, p, orthogonalDirs)
	case Queen:
		ret = append(rayMoves(b, sq, p, diagonalDirs), rayMoves(b, sq, p, orthogonalDirs)...)
	case King:
		ret = stepMoves(b, sq, p, kingOffsets)
	}
	return ret
}

// pseudoLegalMoves is the union, over every square occupied by c, of Normal
// moves produced by the per-piece generator.
func pseudoLegalMoves(b *Board, c Color) []Move {
	var ret []Move
	for _, sq := range b.FilterSquares(Filter{}.ByColor(c)) {
		ret = append(ret, pseudoLegalMovesFrom(b, sq)...)
	}
	return ret
}

type offset struct{ df, dr int }

var knightOffsets = []offset{
	{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingOffsets = []offset{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

var diagonalDirs = []offset{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var orthogonalDirs = []offset{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

func inBoard(file, rank int) bool {
	return file >= 0 && file < NumFiles && rank >= 0 && rank < NumRanks
}

// stepMoves produces destinations for single-step pieces (knight, king):
// every in-board offset, blocked only by a friendly occupant on the destination.
func stepMoves(b *Board, from Square, p Piece, offsets []offset) []Move {
	var ret []Move
	f, r := from.File(), from.Rank()
	for _, o := range offsets {
		nf, nr := f+o.df, r+o.dr
		if !inBoard(nf, nr) {
			continue
		}
		to := NewSquare(nf, nr)
		if occ, ok := b.Occupant(to); ok && occ.Color == p.Color {
			continue
		}
		ret = append(ret, normalMoveAt(b, from, to, p))
	}
	return ret
}

// rayMoves produces destinations along sliding rays (bishop, rook, queen):
// each ray stops when it leaves the board or hits an occupied square, which
// is included iff it is an enemy piece.
func rayMoves(b *Board, from Square, p Piece, dirs []offset) []Move {
	var ret []Move
	f0, r0 := from.File(), from.Rank()
	for _, d := range dirs {
		f, r := f0+d.df, r0+d.dr
		for inBoard(f, r) {
			to := NewSquare(f, r)
			occ, ok := b.Occupant(to)
			if !ok {
				ret = append(ret, normalMoveAt(b, from, to, p))
				f, r = f+d.df, r+d.dr
				continue
			}
			if occ.Color != p.Color {
				ret = append(ret, normalMoveAt(b, from, to, p))
			}
			break
		}
	}
	return ret
}

// pawnMoves implements pawn pushes (one and two square), and the two forward
// diagonal captures.
func pawnMoves(b *Board, from Square, p Piece) []Move {
	var ret []Move
	f, r := from.File(), from.Rank()

	dir, startRank := 1, 1
	if p.Color == Black {
		dir, startRank = -1, 6
	}

	if inBoard(f, r+dir) {
		one := NewSquare(f, r+dir)
		if b.IsEmpty(one) {
			ret = append(ret, normalMoveAt(b, from, one, p))
			if r == startRank {
				two := NewSquare(f, r+2*dir)
				if b.IsEmpty(two) {
					ret = append(ret, normalMoveAt(b, from, two, p))
				}
			}
		}
	}

	for _, df := range []int{-1, 1} {
		nf := f + df
		if !inBoard(nf, r+dir) {
			continue
		}
		to := NewSquare(nf, r+dir)
		if occ, ok := b.Occupant(to); ok && occ.Color != p.Color {
			ret = append(ret, normalMoveAt(b, from, to, p))
		}
	}
	return ret
}

// normalMoveAt builds a Normal Move from source/destination, recording the
// destination's current occupant (if any) as the capture.
func normalMoveAt(b *Board, from, to Square, p Piece) Move {
	m := NewNormalMove(from, to, p.Color, p)
	if occ, ok := b.Occupant(to); ok {
		m.Captured = occ
		m.IsCapture = true
	}
	return m
}
