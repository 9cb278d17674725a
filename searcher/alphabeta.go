package searcher

import "inversi/game"

// AlphaBeta is a negamax search with alpha-beta pruning. On ties at a cutoff it
// may pick a different move than Minimax, the score is the same.
type AlphaBeta struct{}

func (AlphaBeta) Name() string {
	return "alphabeta"
}

func (a AlphaBeta) Search(b *game.Board, seat game.Seat, depth int, p *Params) Result {
	return a.SearchWindow(b, seat, depth, -Infinity, Infinity, p)
}

// SearchWindow searches with explicit bounds. A move scoring exactly alpha is
// never returned.
func (a AlphaBeta) SearchWindow(b *game.Board, seat game.Seat, depth, alpha, beta int, p *Params) Result {
	p.Metrics.AddNode()

	isLeaf, moves := leaf(b, seat, depth)
	if isLeaf {
		return Result{Score: p.Evaluate(b, p.Weights, seat)}
	}

	best := Result{Score: alpha}
	for i, move := range moves {
		if !play(b, move, seat) {
			continue
		}
		score := -a.SearchWindow(b, seat.Other(), depth-1, -beta, -best.Score, p).Score
		undo(b)

		if score > best.Score {
			best = Result{Score: score, Move: move, Found: true}
			if best.Score >= beta {
				if i < len(moves)-1 {
					p.Metrics.AddCutoff()
				}
				break
			}
		}
	}
	return best
}
