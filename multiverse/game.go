package multiverse

import (
	"golang.org/x/exp/slices"
)

/*
	Timeline metadata: the boards of one branch, in turn order. The first
	board sits at turn BeginsAt, so boards[i] is the board at turn
	BeginsAt+i and the tip is the last element.
*/
type Timeline struct {
	Index    int
	BeginsAt int
	Boards   []*Board
}

// Tip returns the latest board of the timeline.
func (tl *Timeline) Tip() *Board {
	return tl.Boards[len(tl.Boards)-1]
}

/*
	Game is the immutable baseline state a search runs over: board
	dimensions, the player whose turn it is, and every board of every
	timeline as parsed from an external game description. A Game is never
	mutated; speculative state lives in PartialGame overlays.
*/
type Game struct {
	Width        int
	Height       int
	ActivePlayer bool // true for white

	timelines map[int]*Timeline
	indexes   []int // timeline indexes, ascending
}

func NewGame(width, height int, activePlayer bool, timelines []*Timeline) *Game {
	byIndex := make(map[int]*Timeline, len(timelines))
	indexes := make([]int, 0, len(timelines))
	for _, tl := range timelines {
		if _, ok := byIndex[tl.Index]; ok {
			panic("multiverse: duplicate timeline index")
		}
		if len(tl.Boards) == 0 {
			panic("multiverse: timeline with no boards")
		}
		byIndex[tl.Index] = tl
		indexes = append(indexes, tl.Index)
	}
	slices.Sort(indexes)

	return &Game{
		Width:        width,
		Height:       height,
		ActivePlayer: activePlayer,
		timelines:    byIndex,
		indexes:      indexes,
	}
}

// Timeline returns the metadata for one timeline, or nil.
func (g *Game) Timeline(l int) *Timeline {
	return g.timelines[l]
}

// TimelineIndexes returns the timeline indexes in ascending order.
func (g *Game) TimelineIndexes() []int {
	return g.indexes
}

func (g *Game) LenTimelines() int {
	return len(g.indexes)
}

func (g *Game) MinTimeline() int {
	return g.indexes[0]
}

func (g *Game) MaxTimeline() int {
	return g.indexes[len(g.indexes)-1]
}

// Board returns the baseline board at (l, t), or nil if no such board exists.
func (g *Game) Board(l, t int) *Board {
	tl := g.timelines[l]
	if tl == nil {
		return nil
	}

	i := t - tl.BeginsAt
	if i < 0 || i >= len(tl.Boards) {
		return nil
	}
	return tl.Boards[i]
}
