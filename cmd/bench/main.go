// Command bench times the engine on a fixed set of positions and reports
// nodes searched, depth reached and nodes per second.
package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"

	"othelloplay/internal/board"
	"othelloplay/internal/engine"
)

type benchPosition struct {
	name    string
	diagram string
	toMove  board.Side
}

var positions = []benchPosition{
	{
		name:   "opening",
		toMove: board.Black,
		diagram: "........\n" +
			"........\n" +
			"........\n" +
			"...OX...\n" +
			"...XO...\n" +
			"........\n" +
			"........\n" +
			"........",
	},
	{
		name:   "midgame",
		toMove: board.White,
		diagram: "........\n" +
			"..XXX...\n" +
			".XXOX...\n" +
			".XOOOO..\n" +
			"..XOXO..\n" +
			"..OOX...\n" +
			"...O....\n" +
			"........",
	},
	{
		name:   "endgame",
		toMove: board.Black,
		diagram: "XXXXXXXO\n" +
			"XOOOOOXO\n" +
			"XOXXOXXO\n" +
			"XOXOXOXO\n" +
			"XOXXOO.O\n" +
			"XOOXOX.O\n" +
			"X.OOOO.O\n" +
			".XXXXXX.",
	},
}

func main() {
	budget := flag.Duration("budget", engine.DefaultBudget, "move budget per position")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	var totalNodes uint64
	var totalTime time.Duration

	for _, bp := range positions {
		pos, err := board.Parse(bp.diagram)
		if err != nil {
			log.Fatal().Err(err).Str("position", bp.name).Msg("bad bench position")
		}

		eng := engine.NewEngine(*budget)
		var last engine.SearchInfo
		eng.OnInfo = func(info engine.SearchInfo) { last = info }

		start := time.Now()
		move := eng.SelectMove(pos, bp.toMove)
		took := time.Since(start)

		nodes := eng.Nodes()
		totalNodes += nodes
		totalTime += took

		nps := float64(0)
		if took > 0 {
			nps = float64(nodes) / took.Seconds()
		}
		log.Info().
			Str("position", bp.name).
			Str("side", bp.toMove.String()).
			Str("move", move.String()).
			Int("depth", last.Depth).
			Int("score", last.Score).
			Uint64("nodes", nodes).
			Dur("took", took).
			Float64("nps", nps).
			Msg("bench position")
	}

	nps := float64(0)
	if totalTime > 0 {
		nps = float64(totalNodes) / totalTime.Seconds()
	}
	log.Info().
		Uint64("nodes", totalNodes).
		Dur("took", totalTime).
		Float64("nps", nps).
		Msg("bench complete")
}
