// Command serve runs the HTTP/websocket game server. The human plays one
// side over the JSON API and the engine answers for the other.
package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/rs/zerolog"

	"othelloplay/internal/board"
	"othelloplay/internal/config"
	"othelloplay/internal/engine"
	"othelloplay/internal/server"
)

func main() {
	configFile := flag.String("config", "", "path to YAML config file")
	humanSide := flag.String("side", "black", "side the human plays (black or white)")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		log = log.Level(level)
	}

	var side board.Side
	switch *humanSide {
	case "black":
		side = board.Black
	case "white":
		side = board.White
	default:
		log.Fatal().Str("side", *humanSide).Msg("side must be black or white")
	}

	eng := engine.NewEngine(cfg.MoveBudget)
	srv := server.New(eng, side, log)

	log.Info().
		Str("addr", cfg.ListenAddr).
		Str("human_side", side.String()).
		Dur("move_budget", cfg.MoveBudget).
		Msg("starting game server")

	if err := http.ListenAndServe(cfg.ListenAddr, srv.Router()); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
