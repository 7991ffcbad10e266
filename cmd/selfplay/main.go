// Command selfplay plays engine-vs-engine matches and records the results.
// It is the tool used to compare time budgets against each other: give the
// two sides different budgets and read the win rates back from the store.
package main

import (
	"flag"
	"os"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"

	"othelloplay/internal/board"
	"othelloplay/internal/config"
	"othelloplay/internal/engine"
	"othelloplay/internal/storage"
)

func main() {
	configFile := flag.String("config", "", "path to YAML config file")
	games := flag.Int("games", 10, "number of games to play")
	parallel := flag.Int("parallel", 2, "games played concurrently")
	blackBudget := flag.Duration("black", 0, "black's move budget (default: config move_budget)")
	whiteBudget := flag.Duration("white", 0, "white's move budget (default: config move_budget)")
	randomPlies := flag.Int("random-plies", 4, "opening plies played at random for variety")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		log = log.Level(level)
	}
	if *blackBudget <= 0 {
		*blackBudget = cfg.MoveBudget
	}
	if *whiteBudget <= 0 {
		*whiteBudget = cfg.MoveBudget
	}

	dir := cfg.DataDir
	if dir == "" {
		dir, err = storage.DatabaseDir()
		if err != nil {
			log.Fatal().Err(err).Msg("resolving data directory")
		}
	}
	store, err := storage.Open(dir)
	if err != nil {
		log.Fatal().Err(err).Msg("opening match store")
	}
	defer store.Close()

	log.Info().
		Int("games", *games).
		Int("parallel", *parallel).
		Dur("black_budget", *blackBudget).
		Dur("white_budget", *whiteBudget).
		Msg("starting selfplay")

	var played atomic.Int64
	g := new(errgroup.Group)
	g.SetLimit(*parallel)
	for i := 0; i < *games; i++ {
		g.Go(func() error {
			result := playGame(*blackBudget, *whiteBudget, *randomPlies)
			if err := store.RecordMatch(result); err != nil {
				return err
			}
			n := played.Add(1)
			log.Info().
				Int64("game", n).
				Str("winner", result.Winner).
				Int("black", result.BlackDiscs).
				Int("white", result.WhiteDiscs).
				Int("plies", result.Plies).
				Dur("took", result.Duration).
				Msg("game finished")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("selfplay failed")
	}

	stats, err := store.Stats()
	if err != nil {
		log.Fatal().Err(err).Msg("reading stats")
	}
	log.Info().
		Int("games", stats.Games).
		Int("black_wins", stats.BlackWins).
		Int("white_wins", stats.WhiteWins).
		Int("draws", stats.Draws).
		Float64("black_win_rate", stats.BlackWinRate()).
		Msg("store totals")
}

// playGame runs one full game between two fresh engines. The first
// randomPlies moves are picked uniformly from the legal moves so repeated
// games do not all follow the same line.
func playGame(blackBudget, whiteBudget time.Duration, randomPlies int) storage.MatchResult {
	engines := map[board.Side]*engine.Engine{
		board.Black: engine.NewEngine(blackBudget),
		board.White: engine.NewEngine(whiteBudget),
	}

	pos := board.Initial()
	toMove := board.Black
	plies := 0
	start := time.Now()

	for !pos.GameOver() {
		if !pos.HasLegalMove(toMove) {
			toMove = toMove.Opponent()
			continue
		}

		var move board.Move
		if plies < randomPlies {
			legal := pos.LegalMoves(toMove)
			move = legal[frand.Intn(len(legal))]
		} else {
			move = engines[toMove].SelectMove(pos, toMove)
		}

		next, err := pos.Apply(toMove, move)
		if err != nil {
			// Engines only return legal moves, so this ends the game early
			// rather than looping forever on a broken state.
			break
		}
		pos = next
		toMove = toMove.Opponent()
		plies++
	}

	black := pos.Count(board.Black)
	white := pos.Count(board.White)
	winner := "draw"
	switch {
	case black > white:
		winner = "black"
	case white > black:
		winner = "white"
	}

	return storage.MatchResult{
		PlayedAt:      time.Now(),
		Winner:        winner,
		BlackDiscs:    black,
		WhiteDiscs:    white,
		BlackBudgetMs: blackBudget.Milliseconds(),
		WhiteBudgetMs: whiteBudget.Milliseconds(),
		Plies:         plies,
		Duration:      time.Since(start),
	}
}
