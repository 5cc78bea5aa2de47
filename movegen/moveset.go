package movegen

import (
	"strings"

	"github.com/garlicgarrison/multiverse-gen/multiverse"
)

/*
	MovesetValidityErr enumerates every reason a candidate turn can be
	rejected. Rejections are normal outcomes of enumeration -- the caller
	moves on to the next candidate -- so they are values, never panics.
*/
type MovesetValidityErr int

const (
	ErrNoMoves MovesetValidityErr = iota
	ErrDuplicateBoard
	ErrMissingBoard
	ErrIllegalMove
	ErrKingInCheck
	ErrTimelineConflict
)

func (e MovesetValidityErr) Error() string {
	switch e {
	case ErrNoMoves:
		return "moveset: no moves"
	case ErrDuplicateBoard:
		return "moveset: board played twice"
	case ErrMissingBoard:
		return "moveset: playable board not played"
	case ErrIllegalMove:
		return "moveset: illegal move"
	case ErrKingInCheck:
		return "moveset: king left in check"
	case ErrTimelineConflict:
		return "moveset: inconsistent timeline creation"
	}
	return "moveset: invalid"
}

/*
	Moveset is one candidate turn: one move per playable board, in
	ascending timeline order of the source boards. Construction checks the
	cheap structural rules; the expensive cross-board rules (every playable
	board covered, king safety) belong to GeneratePartialGame.
*/
type Moveset struct {
	moves []multiverse.Move
}

func NewMoveset(moves []multiverse.Move) (Moveset, error) {
	if len(moves) == 0 {
		return Moveset{}, ErrNoMoves
	}

	seen := make(map[multiverse.BoardKey]bool, len(moves))
	for _, mv := range moves {
		key := multiverse.BoardKey{L: mv.From.L, T: mv.From.T}
		if seen[key] {
			return Moveset{}, ErrDuplicateBoard
		}
		seen[key] = true
	}

	ms := Moveset{moves: make([]multiverse.Move, len(moves))}
	copy(ms.moves, moves)
	return ms, nil
}

func (ms Moveset) Moves() []multiverse.Move {
	return ms.moves
}

func (ms Moveset) String() string {
	parts := make([]string, len(ms.moves))
	for i, mv := range ms.moves {
		parts[i] = mv.String()
	}
	return strings.Join(parts, " ")
}

/*
	GeneratePartialGame validates the moveset against (game, partial) and,
	if it holds up, applies it: every played board gets its successor at
	the next turn, travel moves additionally produce their target's
	successor (branching a fresh timeline when the target is not its
	timeline's tip). The result is a new overlay chained onto partial;
	neither partial nor game is touched.
*/
func (ms Moveset) GeneratePartialGame(game *multiverse.Game, partial *multiverse.PartialGame) (*multiverse.PartialGame, error) {
	if len(ms.moves) == 0 {
		return nil, ErrNoMoves
	}

	own := partial.OwnBoards(game)
	ownKeys := make(map[multiverse.BoardKey]bool, len(own))
	for _, b := range own {
		ownKeys[multiverse.BoardKey{L: b.L, T: b.T}] = true
	}

	// every playable board exactly once
	played := make(map[multiverse.BoardKey]bool, len(ms.moves))
	for _, mv := range ms.moves {
		key := multiverse.BoardKey{L: mv.From.L, T: mv.From.T}
		if !ownKeys[key] {
			return nil, ErrIllegalMove
		}
		if played[key] {
			return nil, ErrDuplicateBoard
		}
		played[key] = true
	}
	if len(played) != len(own) {
		return nil, ErrMissingBoard
	}

	// no board targeted twice, no travel onto a board that also moves
	targeted := make(map[multiverse.BoardKey]bool)
	for _, mv := range ms.moves {
		if mv.Physical() {
			continue
		}
		key := multiverse.BoardKey{L: mv.To.L, T: mv.To.T}
		if ownKeys[key] || targeted[key] {
			return nil, ErrTimelineConflict
		}
		targeted[key] = true
	}

	// defensive re-validation of every single move
	for _, mv := range ms.moves {
		source := partial.Board(game, mv.From.L, mv.From.T)
		if source == nil || !NewBoardGen(source).ValidateMove(game, partial, mv) {
			return nil, ErrIllegalMove
		}
	}

	// apply
	minL := partial.MinTimeline(game)
	maxL := partial.MaxTimeline(game)
	produced := make([]*multiverse.Board, 0, len(ms.moves))
	for _, mv := range ms.moves {
		source := partial.Board(game, mv.From.L, mv.From.T)

		if mv.Physical() {
			produced = append(produced, source.LeaveArrive(mv.Piece, mv.From, mv.To))
			continue
		}

		target := partial.Board(game, mv.To.L, mv.To.T)
		if target == nil {
			return nil, ErrIllegalMove
		}

		// the target is never a tip here, so the arrival branches
		var branch int
		if game.ActivePlayer {
			maxL++
			branch = maxL
		} else {
			minL--
			branch = minL
		}
		produced = append(produced, source.Leave(mv.From))
		produced = append(produced, target.Arrive(branch, mv.Piece, mv.To))
	}

	next := multiverse.NewPartialGame(partial, produced)
	if IsIllegal(game, next) {
		return nil, ErrKingInCheck
	}
	return next, nil
}
