package movegen

import (
	"testing"

	"github.com/garlicgarrison/multiverse-gen/multiverse"
)

func TestKingMovesOnNarrowBoard(t *testing.T) {
	board := boardOf(t, 0, 0, ".K.")
	game := gameOf(t, true, []*multiverse.Board{board})
	partial := multiverse.NoPartialGame(game)

	king := multiverse.NewPiece(multiverse.King, true)
	pp := NewPiecePosition(king, multiverse.NewCoords(0, 0, 1, 0))
	moves := drain(pp.GenerateMoves(game, partial))
	if len(moves) != 2 {
		t.Fatalf("expected 2 king moves, got %d: %v", len(moves), moves)
	}

	dests := map[multiverse.Coords]bool{}
	for _, mv := range moves {
		if mv.Piece != king {
			t.Fatalf("move carries wrong piece: %s", mv)
		}
		dests[mv.To] = true
	}
	if !dests[multiverse.NewCoords(0, 0, 0, 0)] || !dests[multiverse.NewCoords(0, 0, 2, 0)] {
		t.Fatalf("unexpected destinations: %v", moves)
	}
}

func TestStalePieceHasNoSequence(t *testing.T) {
	board := boardOf(t, 0, 0, ".K.")
	game := gameOf(t, true, []*multiverse.Board{board})
	partial := multiverse.NoPartialGame(game)

	// the square holds a king, not a rook
	rook := multiverse.NewPiece(multiverse.Rook, true)
	pp := NewPiecePosition(rook, multiverse.NewCoords(0, 0, 1, 0))
	if pp.GenerateMoves(game, partial) != nil {
		t.Fatal("stale piece reference produced a sequence")
	}

	// empty square
	king := multiverse.NewPiece(multiverse.King, true)
	pp = NewPiecePosition(king, multiverse.NewCoords(0, 0, 0, 0))
	if pp.GenerateMoves(game, partial) != nil {
		t.Fatal("empty square produced a sequence")
	}
}

func TestRookTravelsAcrossTimelines(t *testing.T) {
	rookBoard := boardOf(t, 0, 0, "R")
	emptyBoard := boardOf(t, 1, 0, ".")
	game := gameOf(t, true,
		[]*multiverse.Board{rookBoard},
		[]*multiverse.Board{emptyBoard},
	)
	partial := multiverse.NoPartialGame(game)

	rook := multiverse.NewPiece(multiverse.Rook, true)
	pp := NewPiecePosition(rook, multiverse.NewCoords(0, 0, 0, 0))
	moves := drain(pp.GenerateMoves(game, partial))
	if len(moves) != 1 {
		t.Fatalf("expected exactly the timeline hop, got %v", moves)
	}

	want := multiverse.NewCoords(1, 0, 0, 0)
	if moves[0].To != want {
		t.Fatalf("expected hop to %s, got %s", want, moves[0].To)
	}
	if !pp.ValidateMove(game, partial, moves[0]) {
		t.Fatal("generated travel move failed direct validation")
	}
}

func TestRookTravelsBackInTime(t *testing.T) {
	past := boardOf(t, 0, 0, "R.")
	mid := boardOf(t, 0, 1, "R.")
	tip := boardOf(t, 0, 2, ".R")
	game := gameOf(t, true, []*multiverse.Board{past, mid, tip})
	partial := multiverse.NoPartialGame(game)

	rook := multiverse.NewPiece(multiverse.Rook, true)
	pp := NewPiecePosition(rook, multiverse.NewCoords(0, 2, 1, 0))
	moves := drain(pp.GenerateMoves(game, partial))
	if len(moves) != 2 {
		t.Fatalf("expected a time hop and a physical move, got %v", moves)
	}

	dests := map[multiverse.Coords]bool{}
	for _, mv := range moves {
		dests[mv.To] = true
	}
	if !dests[multiverse.NewCoords(0, 0, 1, 0)] {
		t.Fatalf("missing hop to the past board: %v", moves)
	}
	if !dests[multiverse.NewCoords(0, 2, 0, 0)] {
		t.Fatalf("missing physical move: %v", moves)
	}
}

func TestSliderBlockedByOwnPiece(t *testing.T) {
	board := boardOf(t, 0, 0, "RP..")
	game := gameOf(t, true, []*multiverse.Board{board})
	partial := multiverse.NoPartialGame(game)

	rook := multiverse.NewPiece(multiverse.Rook, true)
	pp := NewPiecePosition(rook, multiverse.NewCoords(0, 0, 0, 0))
	moves := drain(pp.GenerateMoves(game, partial))
	if len(moves) != 0 {
		t.Fatalf("rook should be boxed in, got %v", moves)
	}
}

func TestSliderCaptureEndsRay(t *testing.T) {
	board := boardOf(t, 0, 0, "R.p.")
	game := gameOf(t, true, []*multiverse.Board{board})
	partial := multiverse.NoPartialGame(game)

	rook := multiverse.NewPiece(multiverse.Rook, true)
	pp := NewPiecePosition(rook, multiverse.NewCoords(0, 0, 0, 0))
	moves := drain(pp.GenerateMoves(game, partial))
	if len(moves) != 2 {
		t.Fatalf("expected slide then capture, got %v", moves)
	}

	var capture *multiverse.Move
	for i := range moves {
		if moves[i].Captures() {
			capture = &moves[i]
		}
	}
	if capture == nil {
		t.Fatalf("no capture generated: %v", moves)
	}
	if capture.To != multiverse.NewCoords(0, 0, 2, 0) {
		t.Fatalf("capture lands on %s", capture.To)
	}
	if capture.Capture != multiverse.NewPiece(multiverse.Pawn, false) {
		t.Fatalf("capture metadata wrong: %+v", capture.Capture)
	}

	// nothing beyond the captured pawn
	for _, mv := range moves {
		if mv.To.X > 2 {
			t.Fatalf("ray continued past a capture: %s", mv)
		}
	}
}

func TestPawnMoves(t *testing.T) {
	board := boardOf(t, 0, 0,
		"...",
		"..p",
		".P.",
		"...",
	)
	game := gameOf(t, true, []*multiverse.Board{board})
	partial := multiverse.NoPartialGame(game)

	pawn := multiverse.NewPiece(multiverse.Pawn, true)
	pp := NewPiecePosition(pawn, multiverse.NewCoords(0, 0, 1, 1))
	moves := drain(pp.GenerateMoves(game, partial))
	if len(moves) != 3 {
		t.Fatalf("expected push, double push and capture, got %v", moves)
	}

	for _, mv := range moves {
		if !mv.Physical() {
			t.Fatalf("pawn traveled: %s", mv)
		}
		if !pp.ValidateMove(game, partial, mv) {
			t.Fatalf("generated pawn move failed direct validation: %s", mv)
		}
	}
}

func TestValidateMoveRejectsGarbage(t *testing.T) {
	board := boardOf(t, 0, 0, "R.p.")
	game := gameOf(t, true, []*multiverse.Board{board})
	partial := multiverse.NoPartialGame(game)

	rook := multiverse.NewPiece(multiverse.Rook, true)
	pp := NewPiecePosition(rook, multiverse.NewCoords(0, 0, 0, 0))

	// diagonal rook move
	bad := multiverse.NewMove(rook,
		multiverse.NewCoords(0, 0, 0, 0),
		multiverse.NewCoords(0, 0, 1, 1),
		multiverse.Piece{})
	if pp.ValidateMove(game, partial, bad) {
		t.Fatal("diagonal rook move validated")
	}

	// sliding through the enemy pawn
	through := multiverse.NewMove(rook,
		multiverse.NewCoords(0, 0, 0, 0),
		multiverse.NewCoords(0, 0, 3, 0),
		multiverse.Piece{})
	if pp.ValidateMove(game, partial, through) {
		t.Fatal("rook slid through an occupied square")
	}

	// wrong capture metadata
	wrongCapture := multiverse.NewMove(rook,
		multiverse.NewCoords(0, 0, 0, 0),
		multiverse.NewCoords(0, 0, 2, 0),
		multiverse.NewPiece(multiverse.Queen, false))
	if pp.ValidateMove(game, partial, wrongCapture) {
		t.Fatal("capture metadata mismatch validated")
	}
}
