package movegen

import (
	"github.com/garlicgarrison/multiverse-gen/multiverse"
)

/*
	BoardGen is the board-level GenMoves implementor. Its sequence covers
	every piece on the board belonging to the board's color to move, in
	increasing square-index order, chaining one piece sequence per occupied
	own-color square.
*/
type BoardGen struct {
	Board *multiverse.Board
}

func NewBoardGen(board *multiverse.Board) BoardGen {
	return BoardGen{Board: board}
}

func (bg BoardGen) GenerateMoves(game *multiverse.Game, partial *multiverse.PartialGame) MoveIter {
	if bg.Board == nil {
		return nil
	}
	return &boardIter{
		board:   bg.Board,
		game:    game,
		partial: partial,
	}
}

func (bg BoardGen) ValidateMove(game *multiverse.Game, partial *multiverse.PartialGame, mv multiverse.Move) bool {
	if bg.Board == nil || bg.Board.L != mv.From.L || bg.Board.T != mv.From.T {
		return false
	}

	tile := bg.Board.Get(mv.From.X, mv.From.Y)
	if tile.Empty() {
		return false
	}
	return NewPiecePosition(tile, mv.From).ValidateMove(game, partial, mv)
}

/*
	boardIter scans square indexes with a bounded loop. Sparse boards are
	just skipped over; the scan never recurses, so stack usage stays
	constant no matter how empty the board is.
*/
type boardIter struct {
	board   *multiverse.Board
	game    *multiverse.Game
	partial *multiverse.PartialGame

	index   int
	current MoveIter
}

func (it *boardIter) Next() (multiverse.Move, bool) {
	for {
		if it.current != nil {
			if mv, ok := it.current.Next(); ok {
				return mv, true
			}
			it.current = nil
			it.index++
		}

		for it.index < it.board.Size() && !it.board.At(it.index).IsPieceOfColor(it.board.White()) {
			it.index++
		}
		if it.index >= it.board.Size() {
			return multiverse.Move{}, false
		}

		piece := it.board.At(it.index)
		coords := multiverse.NewCoords(
			it.board.L,
			it.board.T,
			it.index%it.board.Width,
			it.index/it.board.Width,
		)
		it.current = NewPiecePosition(piece, coords).GenerateMoves(it.game, it.partial)
		if it.current == nil {
			// the overlay superseded this square; skip it
			it.index++
		}
	}
}
