package agent

import (
	"inversi/experiments/metrics"
	"inversi/game"
	"time"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rand *rand.Rand
}

// NewRandom returns an agent picking uniformly among the possible moves. The
// same seed replays the same choices.
func NewRandom(seed uint64) Agent {
	return &randomAgent{rand: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(b *game.Board, seat game.Seat) (game.Move, bool, metrics.SearchMetric) {
	start := time.Now()
	moves := b.PossibleMoves(seat)
	metric := metrics.SearchMetric{Strategy: KindRandom, Nodes: 1}
	if len(moves) == 0 {
		metric.Duration = time.Since(start)
		return game.Move{}, false, metric
	}
	move := moves[a.rand.Intn(len(moves))]
	metric.Duration = time.Since(start)
	return move, true, metric
}

type noneAgent struct{}

// NewNone returns an agent that always passes.
func NewNone() Agent {
	return noneAgent{}
}

func (noneAgent) FindMove(b *game.Board, seat game.Seat) (game.Move, bool, metrics.SearchMetric) {
	return game.Move{}, false, metrics.SearchMetric{Strategy: KindNone}
}
