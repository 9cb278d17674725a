package searcher

import (
	"fmt"
	"inversi/experiments/metrics"
	"inversi/game"
	"math"

	"github.com/rs/zerolog/log"
)

// Infinity bounds every score; it is negated freely without overflow.
const Infinity = math.MaxInt32

type Result struct {
	Score int
	Move  game.Move
	Found bool // false at leaves and when no candidate beat the window
}

// Params stays fixed for a whole search tree.
type Params struct {
	Weights     game.Weights
	Perspective game.Seat // seat the weights were built for
	Evaluate    game.Evaluate
	Metrics     metrics.Collector
}

func NewParams(weights game.Weights, perspective game.Seat) *Params {
	return &Params{
		Weights:     weights,
		Perspective: perspective,
		Evaluate:    game.EvaluateWeights,
		Metrics:     metrics.NewDummyCollector(),
	}
}

// Strategy explores the tree below b by mutating b in place. b is restored
// before Search returns.
type Strategy interface {
	Name() string
	Search(b *game.Board, seat game.Seat, depth int, p *Params) Result
}

// leaf reports whether the node is evaluated statically, with seat's moves.
func leaf(b *game.Board, seat game.Seat, depth int) (bool, []game.Move) {
	if depth <= 0 {
		return true, nil
	}
	moves := b.PossibleMoves(seat)
	return len(moves) == 0, moves
}

func play(b *game.Board, move game.Move, seat game.Seat) bool {
	if err := b.Place(move, seat); err != nil {
		log.Warn().Err(err).Msg("skipping candidate move")
		return false
	}
	return true
}

func undo(b *game.Board) {
	if err := b.Undo(); err != nil {
		panic(fmt.Sprintf("undo after place failed: %v", err))
	}
}
