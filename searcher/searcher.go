package searcher

import (
	"inversi/experiments/metrics"
	"inversi/game"
	"inversi/meta"

	"github.com/rs/zerolog/log"
)

type Option func(s *Searcher)

// Searcher runs a Strategy to a fixed depth from one seat's perspective.
type Searcher struct {
	strategy Strategy
	depth    int
	weights  game.WeightSet
	greedy   bool
	evaluate game.Evaluate
	metrics  metrics.Collector
}

func WithDepth(depth int) Option {
	return func(s *Searcher) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

func WithWeights(weights game.WeightSet) Option {
	return func(s *Searcher) {
		s.weights = weights
	}
}

// WithGreedyWeights scores only with the first table of the set.
func WithGreedyWeights() Option {
	return func(s *Searcher) {
		s.greedy = true
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *Searcher) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = metrics.NewCollector()
	}
}

func NewSearcher(strategy Strategy, options ...Option) *Searcher {
	if strategy == nil {
		panic("searcher needs a strategy")
	}
	s := &Searcher{ // Default values
		strategy: strategy,
		depth:    meta.SEARCH_DEPTH,
		weights:  game.DefaultWeights,
		evaluate: game.EvaluateWeights,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Searcher) Depth() int {
	return s.depth
}

func (s *Searcher) Name() string {
	return s.strategy.Name()
}

// FindMove searches b for seat. b is mutated during the search and restored
// afterwards, so it must not be shared with anything else meanwhile.
func (s *Searcher) FindMove(b *game.Board, seat game.Seat) (game.Move, bool, metrics.SearchMetric) {
	weights := s.weights.For(seat)
	if s.greedy {
		weights = s.weights.Greedy(seat)
	}
	params := &Params{
		Weights:     weights,
		Perspective: seat,
		Evaluate:    s.evaluate,
		Metrics:     s.metrics,
	}

	s.metrics.Start(s.strategy.Name(), s.depth)
	result := s.strategy.Search(b, seat, s.depth, params)
	metric := s.metrics.Complete(result.Score)

	log.Debug().
		Str("strategy", s.strategy.Name()).
		Str("seat", seat.String()).
		Int("depth", s.depth).
		Int("score", result.Score).
		Bool("found", result.Found).
		Str("move", result.Move.String()).
		Int("nodes", metric.Nodes).
		Msg("search complete")

	return result.Move, result.Found, metric
}
