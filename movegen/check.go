package movegen

import (
	"github.com/garlicgarrison/multiverse-gen/multiverse"
)

/*
	IsIllegal reports whether the active player's position is lost on the
	spot: some opponent reply, on any timeline, captures one of the active
	player's kings. King safety spans the whole multiverse, not just the
	board a move was made on, so every opponent-playable board is scanned.
*/
func IsIllegal(game *multiverse.Game, partial *multiverse.PartialGame) bool {
	for _, board := range partial.OpponentBoards(game) {
		iter := NewBoardGen(board).GenerateMoves(game, partial)
		if iter == nil {
			continue
		}

		for {
			mv, ok := iter.Next()
			if !ok {
				break
			}
			if mv.Capture.Kind == multiverse.King && mv.Capture.White == game.ActivePlayer {
				return true
			}
		}
	}
	return false
}
