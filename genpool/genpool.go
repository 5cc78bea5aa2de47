package genpool

import (
	"errors"
	"time"

	guuid "github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/garlicgarrison/multiverse-gen/movegen"
	"github.com/garlicgarrison/multiverse-gen/multiverse"
)

var (
	ErrWrongSession = errors.New("genpool: wrong session released")
)

/*
	The enumeration core is single-threaded by design, so callers that
	want to drive many games at once check sessions out of a bounded pool
	instead of sharing iterators. A session owns nothing between runs;
	pooling just caps concurrency and keeps identities honest.
*/
type Session struct {
	id  guuid.UUID
	log zerolog.Logger
}

// Result is one full enumerate-and-validate pass over a game.
type Result struct {
	Candidates int
	Accepted   int
	Rejected   int
	Elapsed    time.Duration
}

/*
	Enumerate streams every candidate moveset of the game's current turn
	through full validation. limit > 0 stops after that many candidates;
	limit <= 0 walks the whole product.
*/
func (s *Session) Enumerate(game *multiverse.Game, limit int) Result {
	start := time.Now()
	partial := multiverse.NoPartialGame(game)
	iter := movegen.NewGenMovesetIter(partial.OwnBoards(game), game, partial)

	var res Result
	for {
		ms, err := iter.Next()
		if ms == nil && err == nil {
			break
		}

		res.Candidates++
		if err != nil {
			res.Rejected++
		} else if _, err := ms.GeneratePartialGame(game, partial); err != nil {
			res.Rejected++
		} else {
			res.Accepted++
		}

		if limit > 0 && res.Candidates >= limit {
			break
		}
	}

	res.Elapsed = time.Since(start)
	s.log.Debug().
		Int("candidates", res.Candidates).
		Int("accepted", res.Accepted).
		Dur("elapsed", res.Elapsed).
		Msg("enumeration pass done")
	return res
}

type Pool struct {
	idSet   map[guuid.UUID]bool
	pool    chan *Session
	timeout int
}

// NewPool builds a pool of limit sessions; Acquire polls every timeout
// milliseconds while the pool is empty.
func NewPool(limit, timeout int, log zerolog.Logger) *Pool {
	idSet := make(map[guuid.UUID]bool)
	ch := make(chan *Session, limit)

	for i := 0; i < limit; i++ {
		id := guuid.New()
		idSet[id] = true
		ch <- &Session{
			id:  id,
			log: log.With().Str("session", id.String()).Logger(),
		}
	}

	return &Pool{
		idSet:   idSet,
		pool:    ch,
		timeout: timeout,
	}
}

func (p *Pool) Acquire() *Session {
	for {
		select {
		case session := <-p.pool:
			return session
		default:
			time.Sleep(time.Duration(p.timeout) * time.Millisecond)
		}
	}
}

func (p *Pool) Release(s *Session) error {
	_, ok := p.idSet[s.id]
	if !ok {
		return ErrWrongSession
	}

	p.pool <- s
	return nil
}
