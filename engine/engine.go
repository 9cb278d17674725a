package engine

import (
	"inversi/experiments/metrics"
	"inversi/game"
)

type Engine interface {
	// Run plays a game till the board ends or the turn cap is reached
	Run() (result Result, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

// Renderer displays the grid before and after every applied move.
type Renderer interface {
	Render(grid game.Grid, label string)
}

type Result struct {
	Ended  bool // false when the turn cap stopped the game
	Turns  int
	Passes int
	Counts [4]int // cells per stone value on the final board
	Winner string // seat with more finalized stones, "" on a draw
}

// winner compares finalized stones on the final board.
func winner(counts [4]int) string {
	x, o := counts[game.SeatX+game.FinalizeOffset], counts[game.SeatO+game.FinalizeOffset]
	switch {
	case x > o:
		return game.SeatX.String()
	case o > x:
		return game.SeatO.String()
	default:
		return ""
	}
}
