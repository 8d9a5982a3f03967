package chess

// Perft counts the leaf positions reachable by depth half-moves of legal
// play from g's current position. It is the primary correctness oracle for
// the apply/undo/legality triangle: it exercises make, unmake and legality
// filtering together across a deep, branching tree.
func Perft(g *GameState, depth int) int64 {
	if depth == 0 {
		return 1
	}

	var nodes int64
	for _, m := range g.LegalMoves(g.SideToMove()) {
		if err := g.ApplyMove(m); err != nil {
			panic(err) // LegalMoves and ApplyMove disagreeing is an internal bug.
		}
		nodes += Perft(g, depth-1)
		if err := g.UndoMove(); err != nil {
			panic(err)
		}
	}
	return nodes
}

// PerftDivide returns the node count contributed by each of the side to
// move's legal moves at the top level, for cmd/perft's -divide flag.
func PerftDivide(g *GameState, depth int) map[string]int64 {
	ret := map[string]int64{}
	for _, m := range g.LegalMoves(g.SideToMove()) {
		if err := g.ApplyMove(m); err != nil {
			panic(err)
		}
		ret[m.String()] = Perft(g, depth-1)
		if err := g.UndoMove(); err != nil {
			panic(err)
		}
	}
	return ret
}
