package searcher

import (
	"inversi/experiments/metrics"
	"inversi/game"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

var strategies = []Strategy{Minimax{}, AlphaBeta{}}

func finalizedX(bonus map[game.Position]int) game.Weights {
	var w game.Weights
	for x := 0; x < game.Size; x++ {
		for y := 0; y < game.Size; y++ {
			w[2][x][y] = 1 + bonus[game.Position{X: x, Y: y}]
		}
	}
	return w
}

// randomBoard plays random moves from the start, stopping before the game ends.
func randomBoard(seed uint64, turns int) (*game.Board, game.Seat) {
	r := rand.New(rand.NewSource(seed))
	b := game.NewBoard()
	seat := game.SeatX
	for i := 0; i < turns; i++ {
		moves := b.PossibleMoves(seat)
		if len(moves) > 0 {
			c := b.Clone()
			move := moves[r.Intn(len(moves))]
			_ = c.Place(move, seat)
			if c.HasEnded() {
				break
			}
			_ = b.Place(move, seat)
		}
		seat = seat.Other()
	}
	return b, seat
}

func TestSearchLeaves(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.Name()+" evaluates at depth zero", func(t *testing.T) {
			b := game.NewBoard()
			w := game.DefaultWeights.For(game.SeatX)

			got := s.Search(b, game.SeatX, 0, NewParams(w, game.SeatX))

			require.False(t, got.Found, "Leaves carry no move")
			require.Equal(t, game.EvaluateWeights(b, w, game.SeatX), got.Score)
		})

		t.Run(s.Name()+" evaluates when the seat cannot move", func(t *testing.T) {
			grid := game.NewBoard().Grid()
			for i := 0; i < game.Size; i++ {
				grid[i][0], grid[i][game.Size-1] = 3, 3
				grid[0][i], grid[game.Size-1][i] = 3, 3
			}
			b := game.NewBoardFrom(grid, [2]game.Stone{2, 3})
			require.Empty(t, b.PossibleMoves(game.SeatX))
			w := game.DefaultWeights.For(game.SeatX)

			got := s.Search(b, game.SeatX, 3, NewParams(w, game.SeatX))

			require.False(t, got.Found)
			require.Equal(t, game.EvaluateWeights(b, w, game.SeatX), got.Score)
		})
	}
}

func TestSearchOnePly(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.Name()+" keeps the first of equal moves", func(t *testing.T) {
			b := game.NewBoard()

			got := s.Search(b, game.SeatX, 1, NewParams(finalizedX(nil), game.SeatX))

			require.True(t, got.Found)
			require.Equal(t, game.Move{Position: game.Position{X: 0, Y: 0}, Direction: game.Down}, got.Move)
			require.Equal(t, 1, got.Score, "One finalized x is on the board after any move")
		})

		t.Run(s.Name()+" finds the single best cell", func(t *testing.T) {
			b := game.NewBoard()
			w := finalizedX(map[game.Position]int{{X: 5, Y: 0}: 9})

			got := s.Search(b, game.SeatX, 1, NewParams(w, game.SeatX))

			require.True(t, got.Found)
			require.Equal(t, game.Move{Position: game.Position{X: 5, Y: 0}, Direction: game.Down}, got.Move)
			require.Equal(t, 10, got.Score)
		})
	}
}

func TestSearchRestoresBoard(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.Name(), func(t *testing.T) {
			b, seat := randomBoard(17, 8)
			grid, history := b.Grid(), b.History()
			stones := [2]game.Stone{b.Stone(game.SeatX), b.Stone(game.SeatO)}

			s.Search(b, seat, 3, NewParams(game.DefaultWeights.For(seat), seat))

			require.Equal(t, grid, b.Grid(), "Search should leave the grid as it found it")
			require.Equal(t, history, b.History())
			require.Equal(t, stones, [2]game.Stone{b.Stone(game.SeatX), b.Stone(game.SeatO)})
		})
	}
}

func TestMinimaxAlphaBetaEquivalence(t *testing.T) {
	for seed := uint64(1); seed <= 6; seed++ {
		b, seat := randomBoard(seed, int(seed)*3)
		w := game.DefaultWeights.For(seat)

		for depth := 1; depth <= 3; depth++ {
			full := Minimax{}.Search(b, seat, depth, NewParams(w, seat))
			pruned := AlphaBeta{}.Search(b, seat, depth, NewParams(w, seat))

			require.Equal(t, full.Score, pruned.Score, "seed %d depth %d: scores should match", seed, depth)
			require.Equal(t, full.Found, pruned.Found)
			if uniqueBest(b, seat, depth, w, full.Score) {
				require.Equal(t, full.Move, pruned.Move, "seed %d depth %d: unique best move should match", seed, depth)
			}
		}
	}
}

// uniqueBest reports whether exactly one root move reaches score.
func uniqueBest(b *game.Board, seat game.Seat, depth int, w game.Weights, score int) bool {
	count := 0
	for _, move := range b.PossibleMoves(seat) {
		_ = b.Place(move, seat)
		if -(Minimax{}).Search(b, seat.Other(), depth-1, NewParams(w, seat)).Score == score {
			count++
		}
		_ = b.Undo()
	}
	return count == 1
}

func TestAlphaBetaWindow(t *testing.T) {
	t.Run("no move beats alpha", func(t *testing.T) {
		b := game.NewBoard()
		p := NewParams(game.DefaultWeights.For(game.SeatX), game.SeatX)

		got := AlphaBeta{}.SearchWindow(b, game.SeatX, 2, Infinity-1, Infinity, p)

		require.False(t, got.Found, "A move scoring at most alpha is never returned")
		require.Equal(t, Infinity-1, got.Score)
	})

	t.Run("prunes nodes", func(t *testing.T) {
		b, seat := randomBoard(4, 6)
		w := game.DefaultWeights.For(seat)

		full := NewParams(w, seat)
		full.Metrics = metrics.NewCollector()
		full.Metrics.Start("minimax", 3)
		Minimax{}.Search(b, seat, 3, full)

		pruned := NewParams(w, seat)
		pruned.Metrics = metrics.NewCollector()
		pruned.Metrics.Start("alphabeta", 3)
		AlphaBeta{}.Search(b, seat, 3, pruned)

		fullMetric, prunedMetric := full.Metrics.Complete(0), pruned.Metrics.Complete(0)
		require.LessOrEqual(t, prunedMetric.Nodes, fullMetric.Nodes)
		require.Zero(t, fullMetric.Cutoffs, "Minimax never cuts off")
	})
}

func TestSearcher(t *testing.T) {
	t.Run("defaults to three plies", func(t *testing.T) {
		s := NewSearcher(AlphaBeta{})

		require.Equal(t, 3, s.Depth())
		require.Equal(t, "alphabeta", s.Name())
	})

	t.Run("ignores non-positive depth", func(t *testing.T) {
		require.Equal(t, 3, NewSearcher(Minimax{}, WithDepth(0)).Depth())
		require.Equal(t, 1, NewSearcher(Minimax{}, WithDepth(1)).Depth())
	})

	t.Run("panics without a strategy", func(t *testing.T) {
		require.Panics(t, func() { NewSearcher(nil) })
	})

	t.Run("collects metrics when asked", func(t *testing.T) {
		s := NewSearcher(Minimax{}, WithDepth(2), WithMetrics())
		b := game.NewBoard()

		move, ok, metric := s.FindMove(b, game.SeatO)

		require.True(t, ok)
		require.Contains(t, b.PossibleMoves(game.SeatO), move)
		require.Equal(t, "minimax", metric.Strategy)
		require.Equal(t, 2, metric.Depth)
		require.Greater(t, metric.Nodes, 1+24, "Root and its 24 children are visited, then their replies")
		require.Equal(t, 0, b.History(), "FindMove should leave the board as it found it")
	})

	t.Run("greedy weights use only the first table", func(t *testing.T) {
		var ws game.WeightSet
		ws[game.MineFinalized][5][5] = 100 // ignored by greedy weights
		s := NewSearcher(Minimax{}, WithDepth(1), WithWeights(ws), WithGreedyWeights(), WithMetrics())

		_, ok, metric := s.FindMove(game.NewBoard(), game.SeatX)

		require.True(t, ok)
		require.Equal(t, 0, metric.Score)
	})

	t.Run("uses the evaluation function given", func(t *testing.T) {
		calls := 0
		eval := func(b *game.Board, w game.Weights, seat game.Seat) int {
			calls++
			return 0
		}
		s := NewSearcher(AlphaBeta{}, WithDepth(1), WithEvaluationFn(eval))

		move, ok, _ := s.FindMove(game.NewBoard(), game.SeatX)

		require.True(t, ok)
		require.Equal(t, game.Move{Position: game.Position{X: 0, Y: 0}, Direction: game.Down}, move)
		require.Greater(t, calls, 0)
	})
}
