package parse

import (
	"log"
	"testing"

	"github.com/garlicgarrison/multiverse-gen/multiverse"
)

const standardGame = `
width: 8
height: 8
active_player: white
timelines:
  - index: 0
    begins_at: 0
    boards:
      - fen: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"
`

const rowsGame = `
width: 3
height: 4
active_player: black
timelines:
  - index: 0
    begins_at: 0
    boards:
      - rows: ["...", "..p", ".P.", "..."]
      - rows: ["...", "...", ".Pp", "..."]
  - index: 1
    begins_at: 1
    boards:
      - rows: ["...", "..p", ".P.", "..."]
`

func TestParseStandardFEN(t *testing.T) {
	game, err := Parse([]byte(standardGame))
	if err != nil {
		t.Fatalf("err -- %s", err)
	}

	if game.Width != 8 || game.Height != 8 || !game.ActivePlayer {
		t.Fatal("game header wrong")
	}

	board := game.Board(0, 0)
	if board == nil {
		t.Fatal("board missing")
	}
	if board.Get(4, 0) != multiverse.NewPiece(multiverse.King, true) {
		t.Fatalf("e1 should hold the white king, got %v", board.Get(4, 0))
	}
	if board.Get(3, 7) != multiverse.NewPiece(multiverse.Queen, false) {
		t.Fatalf("d8 should hold the black queen, got %v", board.Get(3, 7))
	}
	for x := 0; x < 8; x++ {
		if board.Get(x, 1) != multiverse.NewPiece(multiverse.Pawn, true) {
			t.Fatalf("rank 2 should be white pawns, %d is %v", x, board.Get(x, 1))
		}
	}
	log.Printf("parsed board -- %s", board)
}

func TestParseRows(t *testing.T) {
	game, err := Parse([]byte(rowsGame))
	if err != nil {
		t.Fatalf("err -- %s", err)
	}

	if game.ActivePlayer {
		t.Fatal("active player should be black")
	}
	if game.LenTimelines() != 2 {
		t.Fatalf("expected 2 timelines, got %d", game.LenTimelines())
	}

	board := game.Board(0, 0)
	if board.Get(1, 1) != multiverse.NewPiece(multiverse.Pawn, true) {
		t.Fatal("white pawn misplaced")
	}
	if board.Get(2, 2) != multiverse.NewPiece(multiverse.Pawn, false) {
		t.Fatal("black pawn misplaced")
	}

	// begins_at offsets the turn index
	if game.Board(1, 0) != nil {
		t.Fatal("timeline 1 should not reach turn 0")
	}
	if game.Board(1, 1) == nil {
		t.Fatal("timeline 1 board missing at turn 1")
	}
	if game.Board(0, 1) == nil {
		t.Fatal("timeline 0 second board missing")
	}
}

func TestParseRejectsBadDescriptions(t *testing.T) {
	cases := []string{
		``,
		`width: 0`,
		`
width: 3
height: 3
timelines:
  - index: 0
    boards:
      - rows: ["...", "...."]
`,
		`
width: 3
height: 3
timelines:
  - index: 0
    boards:
      - rows: ["...", "...", "..Z"]
`,
		`
width: 8
height: 8
active_player: purple
timelines:
  - index: 0
    boards:
      - fen: "8/8/8/8/8/8/8/8"
`,
		`
width: 4
height: 4
timelines:
  - index: 0
    boards:
      - fen: "8/8/8/8/8/8/8/8"
`,
	}

	for i, raw := range cases {
		if _, err := Parse([]byte(raw)); err == nil {
			t.Fatalf("case %d parsed successfully", i)
		}
	}
}
