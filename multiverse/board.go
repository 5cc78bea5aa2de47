package multiverse

import "strings"

/*
	A board is one grid of the multiverse, tagged with the timeline and
	turn that address it. Boards are never mutated once published: every
	move produces a fresh board at the next turn.
*/
type Board struct {
	L      int
	T      int
	Width  int
	Height int

	pieces []Piece
}

func NewBoard(l, t, width, height int, pieces []Piece) *Board {
	if len(pieces) != width*height {
		panic("multiverse: board piece slice does not match dimensions")
	}

	return &Board{
		L:      l,
		T:      t,
		Width:  width,
		Height: height,
		pieces: pieces,
	}
}

func EmptyBoard(l, t, width, height int) *Board {
	return NewBoard(l, t, width, height, make([]Piece, width*height))
}

// White reports the color to move on this board, derived from turn parity.
func (b *Board) White() bool {
	return b.T%2 == 0
}

func (b *Board) Size() int {
	return b.Width * b.Height
}

func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// Get returns the tile at (x, y); the zero Piece for empty or out-of-bounds.
func (b *Board) Get(x, y int) Piece {
	if !b.InBounds(x, y) {
		return Piece{}
	}
	return b.pieces[y*b.Width+x]
}

func (b *Board) At(index int) Piece {
	return b.pieces[index]
}

func (b *Board) clone(l, t int) *Board {
	pieces := make([]Piece, len(b.pieces))
	copy(pieces, b.pieces)
	return NewBoard(l, t, b.Width, b.Height, pieces)
}

// LeaveArrive produces the successor board of a physical move: next turn,
// source square emptied, piece landed on the destination square.
func (b *Board) LeaveArrive(piece Piece, from, to Coords) *Board {
	next := b.clone(b.L, b.T+1)
	next.pieces[from.Y*b.Width+from.X] = Piece{}
	next.pieces[to.Y*b.Width+to.X] = piece
	return next
}

// Leave produces the successor board of a travel move's source: next turn,
// source square emptied.
func (b *Board) Leave(from Coords) *Board {
	next := b.clone(b.L, b.T+1)
	next.pieces[from.Y*b.Width+from.X] = Piece{}
	return next
}

// Arrive produces the successor board of a travel move's target on timeline
// l: next turn, traveling piece placed on the destination square. The target
// timeline differs from b.L when the arrival branches a new timeline.
func (b *Board) Arrive(l int, piece Piece, to Coords) *Board {
	next := b.clone(l, b.T+1)
	next.pieces[to.Y*b.Width+to.X] = piece
	return next
}

func (b *Board) String() string {
	var sb strings.Builder
	for y := b.Height - 1; y >= 0; y-- {
		for x := 0; x < b.Width; x++ {
			sb.WriteString(b.Get(x, y).String())
		}
		if y != 0 {
			sb.WriteRune('/')
		}
	}
	return sb.String()
}
