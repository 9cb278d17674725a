package searcher

import "inversi/game"

// Minimax is a negamax search without pruning.
type Minimax struct{}

func (Minimax) Name() string {
	return "minimax"
}

func (m Minimax) Search(b *game.Board, seat game.Seat, depth int, p *Params) Result {
	p.Metrics.AddNode()

	isLeaf, moves := leaf(b, seat, depth)
	if isLeaf {
		return Result{Score: p.Evaluate(b, p.Weights, seat)}
	}

	best := Result{Score: -Infinity}
	for _, move := range moves {
		if !play(b, move, seat) {
			continue
		}
		score := -m.Search(b, seat.Other(), depth-1, p).Score
		undo(b)

		// Strict: the first of equally good moves is kept
		if score > best.Score {
			best = Result{Score: score, Move: move, Found: true}
		}
	}
	return best
}
