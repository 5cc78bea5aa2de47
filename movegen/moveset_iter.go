package movegen

import (
	"golang.org/x/exp/slices"

	"github.com/garlicgarrison/multiverse-gen/multiverse"
)

/*
	GenMovesetIter enumerates the Cartesian product of per-board candidate
	moves as an odometer: every playable board is one digit, its base is
	the (lazily discovered) number of moves on that board, and the last
	digit varies fastest. Candidates come out structurally checked only;
	run them through GeneratePartialGame for cross-board legality.

	The product is never materialized. Worst case the iterator walks all of
	it, but each candidate is built, judged and dropped one at a time.
*/
type GenMovesetIter struct {
	game    *multiverse.Game
	partial *multiverse.PartialGame

	boards  []*multiverse.Board
	caches  []*CacheMoves
	cursors []int

	started bool
	done    bool
}

/*
	NewGenMovesetIter builds the enumerator over the given playable boards.
	Boards are ordered by ascending timeline so the emission order is
	deterministic regardless of the order the caller collected them in.
*/
func NewGenMovesetIter(ownBoards []*multiverse.Board, game *multiverse.Game, partial *multiverse.PartialGame) *GenMovesetIter {
	byTimeline := make(map[int]*multiverse.Board, len(ownBoards))
	indexes := make([]int, 0, len(ownBoards))
	for _, b := range ownBoards {
		if _, ok := byTimeline[b.L]; ok {
			panic("movegen: two playable boards on one timeline")
		}
		byTimeline[b.L] = b
		indexes = append(indexes, b.L)
	}
	slices.Sort(indexes)

	boards := make([]*multiverse.Board, 0, len(ownBoards))
	for _, l := range indexes {
		boards = append(boards, byTimeline[l])
	}

	it := &GenMovesetIter{
		game:    game,
		partial: partial,
		boards:  boards,
		caches:  make([]*CacheMoves, len(boards)),
		cursors: make([]int, len(boards)),
	}
	for i, b := range boards {
		it.caches[i] = NewCacheMoves(NewBoardGen(b), game, partial)
	}
	return it
}

/*
	Next yields the next candidate moveset. Three outcomes:
	(ms, nil) a candidate; (nil, err) a combination rejected by the cheap
	structural checks; (nil, nil) enumeration is over.
*/
func (it *GenMovesetIter) Next() (*Moveset, error) {
	if it.done {
		return nil, nil
	}

	if !it.started {
		it.started = true
		if len(it.boards) == 0 {
			it.done = true
			return nil, nil
		}
		// a board with no moves empties the whole product
		for _, cache := range it.caches {
			if cache == nil {
				it.done = true
				return nil, nil
			}
			if _, ok := cache.Get(0); !ok {
				it.done = true
				return nil, nil
			}
		}
		return it.emit()
	}

	// advance the last digit; carry left on exhaustion
	for i := len(it.cursors) - 1; i >= 0; i-- {
		it.cursors[i]++
		if _, ok := it.caches[i].Get(it.cursors[i]); ok {
			return it.emit()
		}
		// rewind this digit; the cache replays its sequence from the start
		it.cursors[i] = 0
	}

	it.done = true
	return nil, nil
}

func (it *GenMovesetIter) emit() (*Moveset, error) {
	moves := make([]multiverse.Move, len(it.cursors))
	for i, cursor := range it.cursors {
		mv, ok := it.caches[i].Get(cursor)
		if !ok {
			panic("movegen: moveset cursor past its cache")
		}
		moves[i] = mv
	}

	ms, err := NewMoveset(moves)
	if err != nil {
		return nil, err
	}
	return &ms, nil
}
