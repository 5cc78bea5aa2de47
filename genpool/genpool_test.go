package genpool

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/garlicgarrison/multiverse-gen/multiverse"
)

func pawnGame(t *testing.T) *multiverse.Game {
	t.Helper()

	pieces := make([]multiverse.Piece, 12) // 3x4
	pieces[1*3+1] = multiverse.NewPiece(multiverse.Pawn, true)
	board := multiverse.NewBoard(0, 0, 3, 4, pieces)

	return multiverse.NewGame(3, 4, true, []*multiverse.Timeline{
		{Index: 0, BeginsAt: 0, Boards: []*multiverse.Board{board}},
	})
}

func TestPoolAcquireRelease(t *testing.T) {
	pool := NewPool(2, 1, zerolog.Nop())

	a := pool.Acquire()
	b := pool.Acquire()
	if a == b {
		t.Fatal("pool handed out the same session twice")
	}

	if err := pool.Release(a); err != nil {
		t.Fatalf("err -- %s", err)
	}
	if err := pool.Release(b); err != nil {
		t.Fatalf("err -- %s", err)
	}

	c := pool.Acquire()
	if err := pool.Release(c); err != nil {
		t.Fatalf("err -- %s", err)
	}
}

func TestPoolRejectsForeignSession(t *testing.T) {
	pool := NewPool(1, 1, zerolog.Nop())
	other := NewPool(1, 1, zerolog.Nop())

	foreign := other.Acquire()
	if err := pool.Release(foreign); err != ErrWrongSession {
		t.Fatalf("expected ErrWrongSession, got %v", err)
	}
}

func TestSessionEnumerate(t *testing.T) {
	pool := NewPool(1, 1, zerolog.Nop())
	session := pool.Acquire()
	defer pool.Release(session)

	// a lone pawn with push and double push
	res := session.Enumerate(pawnGame(t), 0)
	if res.Candidates != 2 || res.Accepted != 2 || res.Rejected != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}

	limited := session.Enumerate(pawnGame(t), 1)
	if limited.Candidates != 1 {
		t.Fatalf("limit ignored: %+v", limited)
	}
}
