package experiments

import (
	"fmt"
	"inversi/engine"
	"inversi/experiments/metrics"
	"inversi/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Tally counts the outcomes of one matchup.
type Tally struct {
	Agent1, Agent2 int // agent IDs for seats x and o
	Wins1, Wins2   int
	Draws          int
	Unfinished     int
}

type Summary struct {
	Dir     string // where the records were written, empty if not written
	Tallies []Tally
}

type match struct {
	id      int
	matchup int
	index   int
	result  engine.Result
	metric  metrics.GameMetric
	moves   []metrics.MoveMetric
}

// Run plays every matchup of setup. Games run concurrently, each with its own
// board and agents. When root is not empty the records are written below it.
func Run(setup Setup, root string) (Summary, error) {
	if err := setup.Validate(); err != nil {
		return Summary{}, err
	}
	// Fail on unknown kinds before any game starts
	for _, config := range setup.Agents {
		if _, err := agent.FromConfig(config); err != nil {
			return Summary{}, err
		}
	}

	log.Info().Msgf("starting %s experiment...", setup.Name)
	start := time.Now()

	games := make([]match, 0, len(setup.Matchups)*setup.Games)
	for mi := range setup.Matchups {
		for i := 0; i < setup.Games; i++ {
			games = append(games, match{id: len(games) + 1, matchup: mi, index: i})
		}
	}

	g := errgroup.Group{}
	if setup.Workers > 0 {
		g.SetLimit(setup.Workers)
	}
	for i := range games {
		gm := &games[i]
		g.Go(func() error {
			return setup.play(gm)
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	summary := Summary{Tallies: tally(setup, games)}
	for _, t := range summary.Tallies {
		log.Info().Msgf("agent %d vs agent %d: %d-%d, %d draws, %d unfinished", t.Agent1, t.Agent2, t.Wins1, t.Wins2, t.Draws, t.Unfinished)
	}
	log.Info().Msgf("completed %s experiment in %s", setup.Name, time.Since(start))

	if root == "" {
		return summary, nil
	}
	dir, err := write(setup, root, games)
	if err != nil {
		return Summary{}, err
	}
	summary.Dir = dir
	return summary, nil
}

func (s Setup) play(gm *match) error {
	matchup := s.Matchups[gm.matchup]
	configs := [2]metrics.AgentConfig{s.agent(matchup[0]), s.agent(matchup[1])}

	var agents [2]agent.Agent
	for seat, config := range configs {
		// Vary random agents between games of a matchup
		config.Seed += uint64(gm.index)
		a, err := agent.FromConfig(config)
		if err != nil {
			return err
		}
		agents[seat] = a
	}

	log.Debug().Msgf("starting matchup %d game %d...", gm.matchup+1, gm.index+1)
	gm.result, gm.metric, gm.moves = engine.Local(agents, engine.WithMaxTurns(s.MaxTurns)).Run()
	log.Debug().Msgf("completed matchup %d game %d with winner: %q", gm.matchup+1, gm.index+1, gm.result.Winner)
	return nil
}

func tally(setup Setup, games []match) []Tally {
	tallies := make([]Tally, len(setup.Matchups))
	for i, m := range setup.Matchups {
		tallies[i].Agent1, tallies[i].Agent2 = m[0], m[1]
	}
	for _, gm := range games {
		t := &tallies[gm.matchup]
		switch {
		case !gm.result.Ended:
			t.Unfinished++
		case gm.result.Winner == "x":
			t.Wins1++
		case gm.result.Winner == "o":
			t.Wins2++
		default:
			t.Draws++
		}
	}
	return tallies
}

func write(setup Setup, root string, games []match) (string, error) {
	writer, err := metrics.NewWriter(root, setup.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	gameRecords := make([]metrics.GameRecord, 0, len(games))
	moveRecords := []metrics.MoveRecord{}
	for _, gm := range games {
		matchup := setup.Matchups[gm.matchup]
		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         gm.id,
			Agent1:     matchup[0],
			Agent2:     matchup[1],
			GameMetric: gm.metric,
		})
		for _, mm := range gm.moves {
			moveRecords = append(moveRecords, metrics.MoveRecord{Game: gm.id, MoveMetric: mm})
		}
	}

	if err := writer.WriteAgentConfigs(setup.Agents); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}
