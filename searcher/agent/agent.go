package agent

import (
	"fmt"
	"inversi/experiments/metrics"
	"inversi/game"
	"inversi/searcher"
)

type Agent interface {
	// FindMove returns a move for seat, or false to pass, and the search metrics (if collected).
	// b is a private copy the agent may mutate.
	FindMove(b *game.Board, seat game.Seat) (game.Move, bool, metrics.SearchMetric)
}

const (
	KindRandom    = "random"
	KindNone      = "none"
	KindGreedy    = "greedy"
	KindMinimax   = "minimax"
	KindAlphaBeta = "alphabeta"
)

// Kinds lists every agent FromConfig can build.
var Kinds = []string{KindRandom, KindNone, KindGreedy, KindMinimax, KindAlphaBeta}

// FromConfig builds the agent described by config.
func FromConfig(config metrics.AgentConfig) (Agent, error) {
	switch config.Kind {
	case KindRandom:
		return NewRandom(config.Seed), nil
	case KindNone:
		return NewNone(), nil
	case KindGreedy:
		return NewGreedy(game.DefaultWeights), nil
	case KindMinimax:
		return NewSearch(searcher.Minimax{}, game.DefaultWeights, config.Depth), nil
	case KindAlphaBeta:
		return NewSearch(searcher.AlphaBeta{}, game.DefaultWeights, config.Depth), nil
	default:
		return nil, fmt.Errorf("unknown agent kind %q, want one of %v", config.Kind, Kinds)
	}
}
