package multiverse

import (
	"golang.org/x/exp/slices"
)

// BoardKey addresses one board within an overlay.
type BoardKey struct {
	L int
	T int
}

/*
	PartialGame is the speculative layer of a turn: the boards produced by
	moves tentatively made this turn, on top of a parent overlay and, at
	the bottom of the chain, the baseline Game. An overlay never rewrites
	its parent or the baseline; lookups simply stop at the first layer
	holding a board for the requested key.
*/
type PartialGame struct {
	boards map[BoardKey]*Board
	tips   map[int]*Board // per-timeline tip among this overlay's boards
	parent *PartialGame
}

// NoPartialGame builds the baseline overlay with no tentative moves. Every
// turn's enumeration starts here.
func NoPartialGame(game *Game) *PartialGame {
	return &PartialGame{
		boards: map[BoardKey]*Board{},
		tips:   map[int]*Board{},
	}
}

/*
	NewPartialGame layers freshly produced boards over a parent overlay.
	Exactly one board may exist per (timeline, turn) key; a duplicate is a
	defect in the caller and panics.
*/
func NewPartialGame(parent *PartialGame, produced []*Board) *PartialGame {
	boards := make(map[BoardKey]*Board, len(produced))
	tips := make(map[int]*Board, len(produced))
	for _, b := range produced {
		key := BoardKey{L: b.L, T: b.T}
		if _, ok := boards[key]; ok {
			panic("multiverse: two boards for one (timeline, turn) key")
		}
		boards[key] = b

		if tip, ok := tips[b.L]; !ok || b.T > tip.T {
			tips[b.L] = b
		}
	}

	return &PartialGame{
		boards: boards,
		tips:   tips,
		parent: parent,
	}
}

func (pg *PartialGame) Parent() *PartialGame {
	return pg.parent
}

// Board resolves (l, t) through the overlay chain, falling back to the
// baseline game. Returns nil if no board exists there.
func (pg *PartialGame) Board(game *Game, l, t int) *Board {
	key := BoardKey{L: l, T: t}
	for layer := pg; layer != nil; layer = layer.parent {
		if b, ok := layer.boards[key]; ok {
			return b
		}
	}
	return game.Board(l, t)
}

// Tip returns the latest board of a timeline, overlay boards included.
// Returns nil for an unknown timeline.
func (pg *PartialGame) Tip(game *Game, l int) *Board {
	var best *Board
	for layer := pg; layer != nil; layer = layer.parent {
		if b, ok := layer.tips[l]; ok && (best == nil || b.T > best.T) {
			best = b
		}
	}
	if best != nil {
		return best
	}

	tl := game.Timeline(l)
	if tl == nil {
		return nil
	}
	return tl.Tip()
}

// TimelineIndexes returns every timeline known to the overlay chain and the
// baseline, ascending.
func (pg *PartialGame) TimelineIndexes(game *Game) []int {
	seen := make(map[int]bool)
	indexes := make([]int, 0, game.LenTimelines())
	for _, l := range game.TimelineIndexes() {
		seen[l] = true
		indexes = append(indexes, l)
	}
	for layer := pg; layer != nil; layer = layer.parent {
		for l := range layer.tips {
			if !seen[l] {
				seen[l] = true
				indexes = append(indexes, l)
			}
		}
	}
	slices.Sort(indexes)
	return indexes
}

// MinTimeline returns the lowest timeline index, branches included.
func (pg *PartialGame) MinTimeline(game *Game) int {
	indexes := pg.TimelineIndexes(game)
	return indexes[0]
}

// MaxTimeline returns the highest timeline index, branches included.
func (pg *PartialGame) MaxTimeline(game *Game) int {
	indexes := pg.TimelineIndexes(game)
	return indexes[len(indexes)-1]
}

/*
	OwnBoards returns the boards the active player must play this turn: the
	tip of every timeline whose color to move is the active player, in
	ascending timeline order.
*/
func (pg *PartialGame) OwnBoards(game *Game) []*Board {
	return pg.boardsOfColor(game, game.ActivePlayer)
}

// OpponentBoards returns the timeline tips where the opponent is to move.
func (pg *PartialGame) OpponentBoards(game *Game) []*Board {
	return pg.boardsOfColor(game, !game.ActivePlayer)
}

func (pg *PartialGame) boardsOfColor(game *Game, white bool) []*Board {
	var boards []*Board
	for _, l := range pg.TimelineIndexes(game) {
		tip := pg.Tip(game, l)
		if tip != nil && tip.White() == white {
			boards = append(boards, tip)
		}
	}
	return boards
}
