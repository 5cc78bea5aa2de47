package movegen

import (
	"github.com/garlicgarrison/multiverse-gen/multiverse"
)

// Iter is a one-shot, pull-based sequence. Exhaustion is reported through
// the second return value; a sequence cannot be restarted, only rebuilt.
type Iter[T any] interface {
	Next() (T, bool)
}

// MoveIter is the move sequence produced by every generator in this package.
type MoveIter = Iter[multiverse.Move]

/*
	GenMoves is anything that can generate moves against a (game, overlay)
	pair: a single piece at a position, or a whole board. GenerateMoves
	returns nil when the generator's reference went stale (the piece or
	board is no longer there in the overlay) -- that is absence, not an
	error. ValidateMove checks a single move against the movement rules
	directly, without enumerating the sequence.
*/
type GenMoves interface {
	GenerateMoves(game *multiverse.Game, partial *multiverse.PartialGame) MoveIter
	ValidateMove(game *multiverse.Game, partial *multiverse.PartialGame, mv multiverse.Move) bool
}
