package agent

import (
	"inversi/experiments/metrics"
	"inversi/game"
	"inversi/meta"
	"inversi/searcher"
)

type searchAgent struct {
	searcher *searcher.Searcher
}

// NewSearch returns an agent playing the best move found by strategy. A
// non-positive depth falls back to meta.SEARCH_DEPTH.
func NewSearch(strategy searcher.Strategy, weights game.WeightSet, depth int) Agent {
	return searchAgent{
		searcher: searcher.NewSearcher(strategy,
			searcher.WithDepth(depth),
			searcher.WithWeights(weights),
			searcher.WithMetrics(),
		),
	}
}

// NewGreedy returns a one ply minimax agent scoring only with the first table.
func NewGreedy(weights game.WeightSet) Agent {
	return searchAgent{
		searcher: searcher.NewSearcher(searcher.Minimax{},
			searcher.WithDepth(meta.GREEDY_DEPTH),
			searcher.WithWeights(weights),
			searcher.WithGreedyWeights(),
			searcher.WithMetrics(),
		),
	}
}

func (a searchAgent) FindMove(b *game.Board, seat game.Seat) (game.Move, bool, metrics.SearchMetric) {
	return a.searcher.FindMove(b, seat)
}
