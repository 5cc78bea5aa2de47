package parse

import (
	"errors"
	"io/ioutil"

	chess "github.com/garlicgarrison/go-chess"
	"gopkg.in/yaml.v2"

	"github.com/garlicgarrison/multiverse-gen/multiverse"
)

var (
	ErrBadDescription = errors.New("parse: bad game description")
	ErrBadLayout      = errors.New("parse: bad board layout")
	ErrBadFEN         = errors.New("parse: bad fen placement")
)

/*
	A game description is the YAML form of a whole multiverse: dimensions,
	the player to move, and per timeline the boards already on it. Board
	layouts come in two forms -- `fen` for 8x8 boards, parsed through the
	standard chess FEN machinery, and `rows` for arbitrary dimensions,
	highest rank first, with `.` for empty squares.
*/
type BoardDescription struct {
	FEN  string   `yaml:"fen,omitempty"`
	Rows []string `yaml:"rows,omitempty"`
}

type TimelineDescription struct {
	Index    int                `yaml:"index"`
	BeginsAt int                `yaml:"begins_at"`
	Boards   []BoardDescription `yaml:"boards"`
}

type GameDescription struct {
	Width        int                   `yaml:"width"`
	Height       int                   `yaml:"height"`
	ActivePlayer string                `yaml:"active_player"`
	Timelines    []TimelineDescription `yaml:"timelines"`
}

// Load reads a YAML game description from disk and builds the game.
func Load(path string) (*multiverse.Game, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(raw)
}

// Parse builds a fully constructed game from a YAML game description.
func Parse(raw []byte) (*multiverse.Game, error) {
	var desc GameDescription
	if err := yaml.Unmarshal(raw, &desc); err != nil {
		return nil, err
	}
	return Build(desc)
}

// Build turns an already unmarshalled description into a game.
func Build(desc GameDescription) (*multiverse.Game, error) {
	if desc.Width <= 0 || desc.Height <= 0 || len(desc.Timelines) == 0 {
		return nil, ErrBadDescription
	}

	var active bool
	switch desc.ActivePlayer {
	case "white", "":
		active = true
	case "black":
		active = false
	default:
		return nil, ErrBadDescription
	}

	timelines := make([]*multiverse.Timeline, 0, len(desc.Timelines))
	for _, tl := range desc.Timelines {
		if len(tl.Boards) == 0 {
			return nil, ErrBadDescription
		}

		boards := make([]*multiverse.Board, 0, len(tl.Boards))
		for i, bd := range tl.Boards {
			t := tl.BeginsAt + i
			board, err := buildBoard(bd, tl.Index, t, desc.Width, desc.Height)
			if err != nil {
				return nil, err
			}
			boards = append(boards, board)
		}

		timelines = append(timelines, &multiverse.Timeline{
			Index:    tl.Index,
			BeginsAt: tl.BeginsAt,
			Boards:   boards,
		})
	}

	return multiverse.NewGame(desc.Width, desc.Height, active, timelines), nil
}

func buildBoard(desc BoardDescription, l, t, width, height int) (*multiverse.Board, error) {
	switch {
	case desc.FEN != "" && desc.Rows != nil:
		return nil, ErrBadLayout
	case desc.FEN != "":
		return fenBoard(desc.FEN, l, t, width, height)
	case desc.Rows != nil:
		return rowsBoard(desc.Rows, l, t, width, height)
	}
	return nil, ErrBadLayout
}

/*
	fenBoard leans on the chess library's FEN parser for the usual 8x8
	case, so castled-up standard positions don't need hand-rolled grids.
	Only the placement field is taken from the description.
*/
func fenBoard(placement string, l, t, width, height int) (*multiverse.Board, error) {
	if width != 8 || height != 8 {
		return nil, ErrBadFEN
	}

	fen, err := chess.FEN(placement + " w - - 0 1")
	if err != nil {
		return nil, ErrBadFEN
	}

	pieces := make([]multiverse.Piece, width*height)
	for sq, piece := range chess.NewGame(fen).Position().Board().SquareMap() {
		kind, ok := kindFromChess(piece.Type())
		if !ok {
			return nil, ErrBadFEN
		}
		x := int(sq.File())
		y := int(sq.Rank())
		pieces[y*width+x] = multiverse.NewPiece(kind, piece.Color() == chess.White)
	}

	return multiverse.NewBoard(l, t, width, height, pieces), nil
}

func kindFromChess(t chess.PieceType) (multiverse.PieceKind, bool) {
	switch t {
	case chess.Pawn:
		return multiverse.Pawn, true
	case chess.Knight:
		return multiverse.Knight, true
	case chess.Bishop:
		return multiverse.Bishop, true
	case chess.Rook:
		return multiverse.Rook, true
	case chess.Queen:
		return multiverse.Queen, true
	case chess.King:
		return multiverse.King, true
	}
	return multiverse.NoPiece, false
}

func rowsBoard(rows []string, l, t, width, height int) (*multiverse.Board, error) {
	if len(rows) != height {
		return nil, ErrBadLayout
	}

	pieces := make([]multiverse.Piece, width*height)
	for i, row := range rows {
		y := height - 1 - i
		cells := []rune(row)
		if len(cells) != width {
			return nil, ErrBadLayout
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
				return nil, ErrBadLayout
			}
			pieces[y*width+x] = multiverse.NewPiece(kind, white)
		}
	}

	return multiverse.NewBoard(l, t, width, height, pieces), nil
}
