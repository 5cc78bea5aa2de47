package movegen

import (
	"github.com/garlicgarrison/multiverse-gen/multiverse"
)

/*
	Movement is defined over the four axes (timeline, time, file, rank).
	One unit along the time axis is a full turn, two plies, so a traveling
	piece always lands on a board where its owner is to move; one unit
	along the timeline axis is one timeline.

	Sliders pick a signed unit vector on a fixed number of axes:
	rook 1, bishop 2, unicorn 3, dragon 4, queen any. The king steps once
	along any such vector, the knight jumps 2 along one axis and 1 along
	another.
*/
type delta struct {
	dl, dt, dx, dy int
}

var (
	rookDirs    []delta
	bishopDirs  []delta
	unicornDirs []delta
	dragonDirs  []delta
	royalDirs   []delta // every nonzero combination; queen slides, king steps
	knightDirs  []delta
)

func init() {
	for dl := -1; dl <= 1; dl++ {
		for dt := -1; dt <= 1; dt++ {
			for dx := -1; dx <= 1; dx++ {
				for dy := -1; dy <= 1; dy++ {
					d := delta{dl, dt, dx, dy}
					switch axes(d) {
					case 0:
						continue
					case 1:
						rookDirs = append(rookDirs, d)
					case 2:
						bishopDirs = append(bishopDirs, d)
					case 3:
						unicornDirs = append(unicornDirs, d)
					case 4:
						dragonDirs = append(dragonDirs, d)
					}
					royalDirs = append(royalDirs, d)
				}
			}
		}
	}

	// 2 along one axis, 1 along another, any signs
	for a := 0; a < 4; a++ {
		for b := 0; b < 4; b++ {
			if a == b {
				continue
			}
			for _, sa := range []int{-1, 1} {
				for _, sb := range []int{-1, 1} {
					var c [4]int
					c[a] = 2 * sa
					c[b] = sb
					knightDirs = append(knightDirs, delta{c[0], c[1], c[2], c[3]})
				}
			}
		}
	}
}

func axes(d delta) int {
	n := 0
	for _, c := range [4]int{d.dl, d.dt, d.dx, d.dy} {
		if c != 0 {
			n++
		}
	}
	return n
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func kindDirs(kind multiverse.PieceKind) (dirs []delta, slide bool) {
	switch kind {
	case multiverse.Rook:
		return rookDirs, true
	case multiverse.Bishop:
		return bishopDirs, true
	case multiverse.Unicorn:
		return unicornDirs, true
	case multiverse.Dragon:
		return dragonDirs, true
	case multiverse.Queen:
		return royalDirs, true
	case multiverse.King:
		return royalDirs, false
	case multiverse.Knight:
		return knightDirs, false
	}
	panic("movegen: no direction table for piece kind")
}

// resolve walks k steps from `from` along d and returns the landing square
// and its tile. ok is false when the landing board does not exist or the
// square is out of bounds.
func resolve(game *multiverse.Game, partial *multiverse.PartialGame, from multiverse.Coords, d delta, k int) (multiverse.Coords, multiverse.Piece, bool) {
	to := multiverse.NewCoords(
		from.L+d.dl*k,
		from.T+2*d.dt*k,
		from.X+d.dx*k,
		from.Y+d.dy*k,
	)

	board := partial.Board(game, to.L, to.T)
	if board == nil || !board.InBounds(to.X, to.Y) {
		return to, multiverse.Piece{}, false
	}
	return to, board.Get(to.X, to.Y), true
}

/*
	PiecePosition is the piece-level GenMoves implementor: one piece at one
	coordinate. The position is a plain reference; if the overlay no longer
	holds this piece at this square, generation reports absence.
*/
type PiecePosition struct {
	Piece  multiverse.Piece
	Coords multiverse.Coords
}

func NewPiecePosition(piece multiverse.Piece, coords multiverse.Coords) PiecePosition {
	return PiecePosition{Piece: piece, Coords: coords}
}

// stale reports whether the overlay no longer holds this piece here.
func (pp PiecePosition) stale(game *multiverse.Game, partial *multiverse.PartialGame) bool {
	board := partial.Board(game, pp.Coords.L, pp.Coords.T)
	return board == nil || board.Get(pp.Coords.X, pp.Coords.Y) != pp.Piece
}

func (pp PiecePosition) GenerateMoves(game *multiverse.Game, partial *multiverse.PartialGame) MoveIter {
	if pp.Piece.Empty() || pp.stale(game, partial) {
		return nil
	}

	if pp.Piece.Kind == multiverse.Pawn {
		return &pawnIter{game: game, partial: partial, piece: pp.Piece, from: pp.Coords}
	}

	dirs, slide := kindDirs(pp.Piece.Kind)
	return &pieceIter{
		game:    game,
		partial: partial,
		piece:   pp.Piece,
		from:    pp.Coords,
		dirs:    dirs,
		slide:   slide,
	}
}

func (pp PiecePosition) ValidateMove(game *multiverse.Game, partial *multiverse.PartialGame, mv multiverse.Move) bool {
	if mv.Piece != pp.Piece || mv.From != pp.Coords || pp.Piece.Empty() {
		return false
	}
	if pp.stale(game, partial) {
		return false
	}

	if pp.Piece.Kind == multiverse.Pawn {
		return pp.validatePawn(game, partial, mv)
	}

	dl := mv.To.L - mv.From.L
	dt2 := mv.To.T - mv.From.T
	dx := mv.To.X - mv.From.X
	dy := mv.To.Y - mv.From.Y
	if dt2%2 != 0 {
		return false
	}
	dt := dt2 / 2

	full := delta{dl, dt, dx, dy}
	if axes(full) == 0 {
		return false
	}

	if pp.Piece.Kind == multiverse.Knight || pp.Piece.Kind == multiverse.King {
		dirs, _ := kindDirs(pp.Piece.Kind)
		found := false
		for _, d := range dirs {
			if d == full {
				found = true
				break
			}
		}
		if !found {
			return false
		}
		return pp.landing(game, partial, full, 1, mv)
	}

	// slider: equal magnitude on every used axis
	k := abs(dl)
	for _, c := range [4]int{dl, dt, dx, dy} {
		if abs(c) > k {
			k = abs(c)
		}
	}
	unit := delta{}
	for i, c := range [4]int{dl, dt, dx, dy} {
		if c == 0 {
			continue
		}
		if abs(c) != k {
			return false
		}
		switch i {
		case 0:
			unit.dl = c / k
		case 1:
			unit.dt = c / k
		case 2:
			unit.dx = c / k
		case 3:
			unit.dy = c / k
		}
	}

	switch pp.Piece.Kind {
	case multiverse.Rook:
		if axes(unit) != 1 {
			return false
		}
	case multiverse.Bishop:
		if axes(unit) != 2 {
			return false
		}
	case multiverse.Unicorn:
		if axes(unit) != 3 {
			return false
		}
	case multiverse.Dragon:
		if axes(unit) != 4 {
			return false
		}
	case multiverse.Queen:
	default:
		return false
	}

	// the ray up to the landing square must be empty
	for i := 1; i < k; i++ {
		_, tile, ok := resolve(game, partial, pp.Coords, unit, i)
		if !ok || !tile.Empty() {
			return false
		}
	}
	return pp.landing(game, partial, unit, k, mv)
}

// landing checks the final square of a validated ray or step: the board
// must exist, the tile must not be friendly, and the move's capture
// metadata must match what actually sits there.
func (pp PiecePosition) landing(game *multiverse.Game, partial *multiverse.PartialGame, d delta, k int, mv multiverse.Move) bool {
	to, tile, ok := resolve(game, partial, pp.Coords, d, k)
	if !ok || to != mv.To {
		return false
	}
	if tile.IsPieceOfColor(pp.Piece.White) {
		return false
	}
	return tile == mv.Capture
}

func (pp PiecePosition) validatePawn(game *multiverse.Game, partial *multiverse.PartialGame, mv multiverse.Move) bool {
	if !mv.Physical() {
		return false
	}

	board := partial.Board(game, pp.Coords.L, pp.Coords.T)
	dir := 1
	home := 1
	if !pp.Piece.White {
		dir = -1
		home = board.Height - 2
	}

	dx := mv.To.X - mv.From.X
	dy := mv.To.Y - mv.From.Y
	if !board.InBounds(mv.To.X, mv.To.Y) {
		return false
	}
	tile := board.Get(mv.To.X, mv.To.Y)

	switch {
	case dx == 0 && dy == dir:
		return tile.Empty() && mv.Capture.Empty()
	case dx == 0 && dy == 2*dir:
		step := board.Get(mv.From.X, mv.From.Y+dir)
		return mv.From.Y == home && step.Empty() && tile.Empty() && mv.Capture.Empty()
	case (dx == 1 || dx == -1) && dy == dir:
		return tile.IsPieceOfColor(!pp.Piece.White) && tile == mv.Capture
	}
	return false
}

/*
	pieceIter yields the candidate moves of a non-pawn piece, direction by
	direction. Sliders extend the current direction until blocked; steppers
	try each offset once. The sequence is finite and one-shot.
*/
type pieceIter struct {
	game    *multiverse.Game
	partial *multiverse.PartialGame
	piece   multiverse.Piece
	from    multiverse.Coords

	dirs  []delta
	slide bool
	dir   int
	dist  int
}

func (it *pieceIter) Next() (multiverse.Move, bool) {
	for it.dir < len(it.dirs) {
		d := it.dirs[it.dir]
		it.dist++

		to, tile, ok := resolve(it.game, it.partial, it.from, d, it.dist)
		if !ok || tile.IsPieceOfColor(it.piece.White) {
			it.dir++
			it.dist = 0
			continue
		}

		if tile.IsPieceOfColor(!it.piece.White) {
			// capture ends the ray
			it.dir++
			it.dist = 0
			return multiverse.NewMove(it.piece, it.from, to, tile), true
		}

		if !it.slide {
			it.dir++
			it.dist = 0
		}
		return multiverse.NewMove(it.piece, it.from, to, multiverse.Piece{}), true
	}

	return multiverse.Move{}, false
}

// pawnIter yields pushes then captures, left capture before right.
type pawnIter struct {
	game    *multiverse.Game
	partial *multiverse.PartialGame
	piece   multiverse.Piece
	from    multiverse.Coords

	stage int
}

func (it *pawnIter) Next() (multiverse.Move, bool) {
	board := it.partial.Board(it.game, it.from.L, it.from.T)
	dir := 1
	home := 1
	if !it.piece.White {
		dir = -1
		home = board.Height - 2
	}

	for it.stage < 4 {
		stage := it.stage
		it.stage++

		switch stage {
		case 0: // single push
			if board.InBounds(it.from.X, it.from.Y+dir) && board.Get(it.from.X, it.from.Y+dir).Empty() {
				to := multiverse.NewCoords(it.from.L, it.from.T, it.from.X, it.from.Y+dir)
				return multiverse.NewMove(it.piece, it.from, to, multiverse.Piece{}), true
			}
			it.stage = 2 // a blocked push blocks the double push too
		case 1: // double push
			if it.from.Y == home && board.InBounds(it.from.X, it.from.Y+2*dir) &&
				board.Get(it.from.X, it.from.Y+2*dir).Empty() {
				to := multiverse.NewCoords(it.from.L, it.from.T, it.from.X, it.from.Y+2*dir)
				return multiverse.NewMove(it.piece, it.from, to, multiverse.Piece{}), true
			}
		case 2, 3: // captures
			dx := -1
			if stage == 3 {
				dx = 1
			}
			tile := board.Get(it.from.X+dx, it.from.Y+dir)
			if tile.IsPieceOfColor(!it.piece.White) {
				to := multiverse.NewCoords(it.from.L, it.from.T, it.from.X+dx, it.from.Y+dir)
				return multiverse.NewMove(it.piece, it.from, to, tile), true
			}
		}
	}

	return multiverse.Move{}, false
}
