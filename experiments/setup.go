package experiments

import (
	"fmt"
	"inversi/experiments/metrics"
	"os"

	"gopkg.in/yaml.v3"
)

// Setup describes which agents meet and how often.
type Setup struct {
	Name     string                `yaml:"name"`
	Games    int                   `yaml:"games"`   // per matchup
	Workers  int                   `yaml:"workers"` // games played at once
	MaxTurns int                   `yaml:"maxTurns,omitempty"`
	Agents   []metrics.AgentConfig `yaml:"agents"`
	Matchups [][2]int              `yaml:"matchups"` // agent IDs for seats x and o
}

// DefaultSetup pits every search agent against the random agent, and minimax
// against the greedy agent.
func DefaultSetup() Setup {
	return Setup{
		Name:    "default",
		Games:   10,
		Workers: 4,
		Agents: []metrics.AgentConfig{
			{ID: 1, Kind: "alphabeta"},
			{ID: 2, Kind: "minimax"},
			{ID: 3, Kind: "greedy"},
			{ID: 4, Kind: "random", Seed: 1},
			{ID: 5, Kind: "none"},
		},
		Matchups: [][2]int{{1, 4}, {2, 4}, {2, 3}},
	}
}

// LoadSetup reads a YAML setup file.
func LoadSetup(path string) (Setup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Setup{}, fmt.Errorf("failed to read setup: %w", err)
	}
	return ParseSetup(data)
}

func ParseSetup(data []byte) (Setup, error) {
	var setup Setup
	if err := yaml.Unmarshal(data, &setup); err != nil {
		return Setup{}, fmt.Errorf("failed to parse setup: %w", err)
	}
	if err := setup.Validate(); err != nil {
		return Setup{}, err
	}
	return setup, nil
}

func (s Setup) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("setup needs a name")
	}
	if s.Games <= 0 {
		return fmt.Errorf("setup %q needs a positive number of games, got %d", s.Name, s.Games)
	}
	ids := make(map[int]bool, len(s.Agents))
	for _, a := range s.Agents {
		if ids[a.ID] {
			return fmt.Errorf("setup %q: duplicate agent id %d", s.Name, a.ID)
		}
		ids[a.ID] = true
	}
	if len(s.Matchups) == 0 {
		return fmt.Errorf("setup %q has no matchups", s.Name)
	}
	for _, m := range s.Matchups {
		for _, id := range m {
			if !ids[id] {
				return fmt.Errorf("setup %q: matchup %v refers to unknown agent %d", s.Name, m, id)
			}
		}
	}
	return nil
}

func (s Setup) agent(id int) metrics.AgentConfig {
	for _, a := range s.Agents {
		if a.ID == id {
			return a
		}
	}
	panic(fmt.Sprintf("unknown agent %d", id))
}
