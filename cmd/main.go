package main

import (
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/garlicgarrison/multiverse-gen/genpool"
	"github.com/garlicgarrison/multiverse-gen/movegen"
	"github.com/garlicgarrison/multiverse-gen/multiverse"
	"github.com/garlicgarrison/multiverse-gen/parse"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

func main() {
	root := &cobra.Command{
		Use:   "multiverse-gen",
		Short: "Legal-turn enumeration for multiverse chess games",
	}

	var gamePath string
	var limit int
	var verbose bool

	enumerate := &cobra.Command{
		Use:   "enumerate",
		Short: "Stream and validate every candidate moveset of a game's current turn",
		RunE: func(cmd *cobra.Command, args []string) error {
			game, err := parse.Load(gamePath)
			if err != nil {
				return err
			}

			partial := multiverse.NoPartialGame(game)
			own := partial.OwnBoards(game)
			log.Info().
				Int("timelines", game.LenTimelines()).
				Int("own_boards", len(own)).
				Msg("game loaded")

			iter := movegen.NewGenMovesetIter(own, game, partial)
			candidates, accepted := 0, 0
			start := time.Now()
			for {
				ms, err := iter.Next()
				if ms == nil && err == nil {
					break
				}

				candidates++
				if err == nil {
					if _, err = ms.GeneratePartialGame(game, partial); err == nil {
						accepted++
						if verbose {
							log.Info().Str("moveset", ms.String()).Msg("accepted")
						}
					}
				}
				if err != nil && verbose {
					log.Info().Err(err).Msg("rejected")
				}

				if limit > 0 && candidates >= limit {
					break
				}
			}

			log.Info().
				Int("candidates", candidates).
				Int("accepted", accepted).
				Dur("elapsed", time.Since(start)).
				Msg("enumeration done")
			return nil
		},
	}
	enumerate.Flags().StringVar(&gamePath, "game", "", "path to a YAML game description")
	enumerate.Flags().IntVar(&limit, "limit", 0, "stop after this many candidates (0 for all)")
	enumerate.Flags().BoolVar(&verbose, "verbose", false, "log each candidate's outcome")
	enumerate.MarkFlagRequired("game")

	var sessions, rounds int

	bench := &cobra.Command{
		Use:   "bench",
		Short: "Drive concurrent enumeration sessions over one game and report throughput",
		RunE: func(cmd *cobra.Command, args []string) error {
			game, err := parse.Load(gamePath)
			if err != nil {
				return err
			}

			pool := genpool.NewPool(sessions, 10, log)
			var wg sync.WaitGroup
			var mu sync.Mutex
			var total genpool.Result

			start := time.Now()
			for i := 0; i < rounds; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()

					session := pool.Acquire()
					defer pool.Release(session)

					res := session.Enumerate(game, limit)
					mu.Lock()
					total.Candidates += res.Candidates
					total.Accepted += res.Accepted
					total.Rejected += res.Rejected
					mu.Unlock()
				}()
			}
			wg.Wait()

			elapsed := time.Since(start)
			perMS := float64(total.Candidates) / float64(elapsed.Milliseconds()+1)
			log.Info().
				Int("rounds", rounds).
				Int("candidates", total.Candidates).
				Int("accepted", total.Accepted).
				Int("rejected", total.Rejected).
				Float64("movesets_per_ms", perMS).
				Dur("elapsed", elapsed).
				Msg("bench done")
			return nil
		},
	}
	bench.Flags().StringVar(&gamePath, "game", "", "path to a YAML game description")
	bench.Flags().IntVar(&limit, "limit", 0, "candidate cap per round (0 for all)")
	bench.Flags().IntVar(&sessions, "sessions", 4, "pool size")
	bench.Flags().IntVar(&rounds, "rounds", 16, "enumeration passes to run")
	bench.MarkFlagRequired("game")

	root.AddCommand(enumerate, bench)
	if err := root.Execute(); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}
