package movegen

import (
	"testing"

	"github.com/garlicgarrison/multiverse-gen/multiverse"
)

// boardOf builds a board from rank rows, highest rank first, '.' for empty.
func boardOf(t *testing.T, l, turn int, rows ...string) *multiverse.Board {
	t.Helper()

	height := len(rows)
	width := len([]rune(rows[0]))
	pieces := make([]multiverse.Piece, width*height)
	for i, row := range rows {
		y := height - 1 - i
		cells := []rune(row)
		if len(cells) != width {
			t.Fatalf("row %q does not match width %d", row, width)
		}

		for x, r := range cells {
			if r == '.' {
				continue
			}

			white := r >= 'A' && r <= 'Z'
			if white {
				r = r - 'A' + 'a'
			}
			kind, ok := multiverse.KindFromRune(r)
			if !ok {
				t.Fatalf("unknown piece rune %q", r)
			}
			pieces[y*width+x] = multiverse.NewPiece(kind, white)
		}
	}

	return multiverse.NewBoard(l, turn, width, height, pieces)
}

// gameOf builds a game whose timelines each hold a contiguous run of boards.
func gameOf(t *testing.T, activeWhite bool, timelines ...[]*multiverse.Board) *multiverse.Game {
	t.Helper()

	tls := make([]*multiverse.Timeline, 0, len(timelines))
	for _, boards := range timelines {
		if len(boards) == 0 {
			t.Fatal("timeline with no boards")
		}
		tls = append(tls, &multiverse.Timeline{
			Index:    boards[0].L,
			BeginsAt: boards[0].T,
			Boards:   boards,
		})
	}

	first := timelines[0][0]
	return multiverse.NewGame(first.Width, first.Height, activeWhite, tls)
}

func drain(iter MoveIter) []multiverse.Move {
	var moves []multiverse.Move
	if iter == nil {
		return moves
	}
	for {
		mv, ok := iter.Next()
		if !ok {
			return moves
		}
		moves = append(moves, mv)
	}
}
