// Package chess implements the rules of chess: board representation, move
// generation, legality, SAN and FEN parsing, and perft. It has no I/O and no
// knowledge of any interactive loop, board printer, or search/evaluation —
// those are external collaborators.
package chess

// Board is an 8x8 occupancy grid. It holds only piece placement: castling
// rights, en-passant target and move history live on GameState instead, since
// they are path-dependent rather than a function of the current placement.
// Not safe for concurrent use.
type Board struct {
	squares [NumSquares]Piece
}

// NewEmptyBoard returns a Board with no pieces placed.
func NewEmptyBoard() *Board {
	return &Board{}
}

// NewStandardBoard returns a Board set up for a new game.
func NewStandardBoard() *Board {
	b := NewEmptyBoard()
	back := [NumFiles]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < NumFiles; file++ {
		b.Place(Piece{Kind: back[file], Color: White}, NewSquare(file, 0))
		b.Place(Piece{Kind: Pawn, Color: White}, NewSquare(file, 1))
		b.Place(Piece{Kind: Pawn, Color: Black}, NewSquare(file, 6))
		b.Place(Piece{Kind: back[file], Color: Black}, NewSquare(file, 7))
	}
	return b
}

// Place puts piece on sq, overwriting any existing occupant.
func (b *Board) Place(p Piece, sq Square) {
	b.squares[sq] = p
}

// Clear empties every square.
func (b *Board) Clear() {
	for i := range b.squares {
		b.squares[i] = Piece{}
	}
}

// Occupant returns the piece on sq, if any.
func (b *Board) Occupant(sq Square) (Piece, bool) {
	p := b.squares[sq]
	return p, !p.IsEmpty()
}

// IsEmpty reports whether sq has no occupant.
func (b *Board) IsEmpty(sq Square) bool {
	return b.squares[sq].IsEmpty()
}

// MoveRaw relocates the occupant of from to to, leaving from empty. from must
// be occupied. It does not consult any rule beyond the auto-queen promotion
// side effect: a pawn arriving on its promotion rank (rank 8 for White, rank 1
// for Black) becomes a Queen.
// It is used only by the apply/undo engine and by legality probes, never
// directly by callers enumerating moves.
func (b *Board) MoveRaw(from, to Square) {
	if from == to {
		return
	}
	p, ok := b.Occupant(from)
	if !ok {
		panic("chess: move_raw from empty square")
	}
	b.squares[from] = Piece{}

	if p.Kind == Pawn {
		backRank := 7
		if p.Color == Black {
			backRank = 0
		}
		if to.Rank() == backRank {
			p = Piece{Kind: Queen, Color: p.Color}
		}
	}
	b.squares[to] = p
}

// DeepCopy returns an independent copy of the board.
func (b *Board) DeepCopy() *Board {
	cp := *b
	return &cp
}

// Squares returns all 64 squares in ascending order.
func (b *Board) Squares() []Square {
	ret := make([]Square, NumSquares)
	for i := range ret {
		ret[i] = Square(i)
	}
	return ret
}

// OccupiedSquares returns every occupied square in ascending order.
func (b *Board) OccupiedSquares() []Square {
	var ret []Square
	for i := Square(0); i < NumSquares; i++ {
		if !b.IsEmpty(i) {
			ret = append(ret, i)
		}
	}
	return ret
}

// Filter describes a predicate over occupied squares used by FilterSquares.
// A zero-value field is treated as "don't care": Kind uses NoPieceKind to mean
// unset, and color, rank, file and reach target each carry an unexported
// has-flag, so the helpers below construct Filter rather than expecting
// callers to build it by hand.
type Filter struct {
	Kind        PieceKind
	hasColor    bool
	color       Color
	hasRank     bool
	rank        int
	hasFile     bool
	file        int
	hasCanReach bool
	reachTarget Square
}

// ByColor restricts a Filter to squares occupied by the given color.
func (f Filter) ByColor(c Color) Filter {
	f.hasColor, f.color = true, c
	return f
}

// ByRank restricts a Filter to the given 0-indexed rank.
func (f Filter) ByRank(rank int) Filter {
	f.hasRank, f.rank = true, rank
	return f
}

// ByFile restricts a Filter to the given 0-indexed file.
func (f Filter) ByFile(file int) Filter {
	f.hasFile, f.file = true, file
	return f
}

// ByCanReach restricts a Filter to squares whose occupant can pseudo-legally
// reach target on the given board.
func (f Filter) ByCanReach(target Square) Filter {
	f.hasCanReach, f.reachTarget = true, target
	return f
}

// FilterSquares returns every occupied square matching f.
func (b *Board) FilterSquares(f Filter) []Square {
	var ret []Square
	for _, sq := range b.OccupiedSquares() {
		p, _ := b.Occupant(sq)
		if f.Kind != NoPieceKind && p.Kind != f.Kind {
			continue
		}
		if f.hasColor && p.Color != f.color {
			continue
		}
		if f.hasRank && sq.Rank() != f.rank {
			continue
		}
		if f.hasFile && sq.File() != f.file {
			continue
		}
		if f.hasCanReach && !canReach(b, sq, f.reachTarget) {
			continue
		}
		ret = append(ret, sq)
	}
	return ret
}

// canReach reports whether the piece on from can pseudo-legally move to to,
// ignoring check, castling and en passant (those are Legality Filter concerns).
func canReach(b *Board, from, to Square) bool {
	for _, m := range pseudoLegalMovesFrom(b, from) {
		if m.To == to {
			return true
		}
	}
	return false
}
