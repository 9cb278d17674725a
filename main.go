package main

import (
	"flag"
	"fmt"
	"inversi/engine"
	"inversi/experiments"
	"inversi/experiments/metrics"
	"inversi/game"
	"inversi/render"
	"inversi/searcher/agent"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	x := flag.String("x", agent.KindAlphaBeta, "Agent for seat x: "+strings.Join(agent.Kinds, ", "))
	o := flag.String("o", agent.KindRandom, "Agent for seat o: "+strings.Join(agent.Kinds, ", "))
	depth := flag.Int("depth", 0, "Search depth of minimax and alpha-beta agents (0 = default)")
	seed := flag.Uint64("seed", 0, "Seed of random agents")
	maxTurns := flag.Int("max-turns", 0, "Turn cap (0 = default)")
	quiet := flag.Bool("quiet", false, "Do not print the board")
	experiment := flag.Bool("experiment", false, "Run agent matchups instead of a single game")
	config := flag.String("config", "", "YAML experiment setup (implies -experiment)")
	out := flag.String("out", "experiments", "Directory for experiment records")
	level := flag.String("level", "info", "Log level")
	flag.Parse()

	setupLogging(*level)

	if *experiment || *config != "" {
		if err := runExperiment(*config, *out); err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		return
	}

	if err := runGame(*x, *o, *depth, *seed, *maxTurns, *quiet); err != nil {
		log.Fatal().Err(err).Msg("game failed")
	}
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		log.Warn().Err(err).Msgf("unknown log level %q, using info", level)
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

// runGame executes a single game between two agents and prints the outcome
func runGame(x, o string, depth int, seed uint64, maxTurns int, quiet bool) error {
	var agents [2]agent.Agent
	for seat, kind := range []string{x, o} {
		// Give both random agents their own stream
		a, err := agent.FromConfig(metrics.AgentConfig{Kind: kind, Depth: depth, Seed: seed + uint64(seat)})
		if err != nil {
			return err
		}
		agents[seat] = a
	}

	options := []engine.Option{engine.WithMaxTurns(maxTurns)}
	if !quiet {
		options = append(options, engine.WithRenderer(render.NewText(os.Stdout)))
	}
	result, _, _ := engine.Local(agents, options...).Run()

	counts := result.Counts
	fmt.Printf("\n%s: %d, %s: %d finalized after %d turns (%d passes)\n",
		game.SeatX, counts[2], game.SeatO, counts[3], result.Turns, result.Passes)
	switch {
	case !result.Ended:
		fmt.Println("Game stopped at the turn cap")
	case result.Winner == "":
		fmt.Println("Draw")
	default:
		fmt.Printf("Winner: %s\n", result.Winner)
	}
	return nil
}

func runExperiment(config, out string) error {
	setup := experiments.DefaultSetup()
	if config != "" {
		var err error
		setup, err = experiments.LoadSetup(config)
		if err != nil {
			return err
		}
	}
	summary, err := experiments.Run(setup, out)
	if err != nil {
		return err
	}
	log.Info().Msgf("records written to %s", summary.Dir)
	return nil
}
