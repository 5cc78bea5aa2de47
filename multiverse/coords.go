package multiverse

import "fmt"

/*
	A square in the multiverse is addressed by four coordinates:
	the timeline it sits on, the turn of its board (counted in plies),
	and the physical file/rank on that board.
*/
type Coords struct {
	L int // timeline index
	T int // turn index, in plies
	X int // file
	Y int // rank
}

func NewCoords(l, t, x, y int) Coords {
	return Coords{L: l, T: t, X: x, Y: y}
}

// Physical reports whether moving from c to o stays on the same board.
func (c Coords) Physical(o Coords) bool {
	return c.L == o.L && c.T == o.T
}

func (c Coords) String() string {
	return fmt.Sprintf("(%d %d %c%d)", c.L, c.T, rune('a'+c.X), c.Y+1)
}
