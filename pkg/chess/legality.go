package chess

// legalMoves computes the legal moves for color c against the given board,
// castling rights and en-passant target. It uses make/unmake on the live
// board rather than copying, per step 2.
func legalMoves(b *Board, c Color, rights CastlingRights, ep Square, hasEP bool) []Move {
	var ret []Move

	for _, m := range pseudoLegalMoves(b, c) {
		if moveKeepsKingSafe(b, c, m) {
			ret = append(ret, m)
		}
	}

	if hasEP {
		ret = append(ret, enPassantCandidates(b, c, ep)...)
	}

	ret = append(ret, castleCandidates(b, c, rights)...)

	return ret
}

// moveKeepsKingSafe applies m to the live board, tests whether c's king is
// then attacked, and undoes m regardless of the outcome.
func moveKeepsKingSafe(b *Board, c Color, m Move) bool {
	applied := applyMove(b, m)
	safe := !isInCheck(b, c)
	undoMove(b, applied)
	return safe
}

// enPassantCandidates adds one EnPassant Move per opposite-color pawn sitting
// on the same rank as the captured pawn and adjacent in file to the target
// square, each independently passing the self-check filter.
func enPassantCandidates(b *Board, c Color, target Square) []Move {
	capturedRank := target.Rank() - 1
	if c == Black {
		capturedRank = target.Rank() + 1
	}
	unsafe := NewSquare(target.File(), capturedRank)

	var ret []Move
	for _, df := range []int{-1, 1} {
		f := target.File() + df
		if !inBoard(f, capturedRank) {
			continue
		}
		attacker := NewSquare(f, capturedRank)
		occ, ok := b.Occupant(attacker)
		if !ok || occ.Kind != Pawn || occ.Color != c {
			continue
		}
		m := NewEnPassantMove(attacker, target, unsafe, c)
		if moveKeepsKingSafe(b, c, m) {
			ret = append(ret, m)
		}
	}
	return ret
}

// castleCandidates adds a Castle Move for each side whose right is held,
// the mover is not in check, the path is unobstructed, no traversed or
// landing square is attacked, and the result leaves the mover safe.
func castleCandidates(b *Board, c Color, rights CastlingRights) []Move {
	var ret []Move
	if isInCheck(b, c) {
		return ret
	}

	type side struct {
		allowed             bool
		kingside            bool
		obstruct, unattacked []Square
	}

	rank := 0
	if c == Black {
		rank = 7
	}
	sq := func(file int) Square { return NewSquare(file, rank) }

	sides := []side{
		{
			allowed:      rights.has(c, true),
			kingside:     true,
			obstruct:     []Square{sq(5), sq(6)},
			unattacked:   []Square{sq(4), sq(5), sq(6)},
		},
		{
			allowed:      rights.has(c, false),
			kingside:     false,
			obstruct:     []Square{sq(1), sq(2), sq(3)},
			unattacked:   []Square{sq(4), sq(3), sq(2)},
		},
	}

	for _, s := range sides {
		if !s.allowed {
			continue
		}
		if !allEmpty(b, s.obstruct) {
			continue
		}
		if anyAttacked(b, c.Opposite(), s.unattacked) {
			continue
		}
		m := NewCastleMove(c, s.kingside)
		if moveKeepsKingSafe(b, c, m) {
			ret = append(ret, m)
		}
	}
	return ret
}

func allEmpty(b *Board, sqs []Square) bool {
	for _, sq := range sqs {
		if !b.IsEmpty(sq) {
			return false
		}
	}
	return true
}

func anyAttacked(b *Board, by Color, sqs []Square) bool {
	for _, sq := range sqs {
		if isAttacked(b, by, sq) {
			return true
		}
	}
	return false
}
