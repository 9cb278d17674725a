package engine

import (
	"inversi/experiments/metrics"
	"inversi/game"
	"inversi/meta"
	"inversi/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
)

var _ Engine = (*LocalEngine)(nil)

type Option func(e *LocalEngine)

type LocalEngine struct {
	Board    *game.Board
	Agents   [2]agent.Agent
	renderer Renderer
	maxTurns int
	starting game.Seat
}

func WithRenderer(renderer Renderer) Option {
	return func(e *LocalEngine) {
		e.renderer = renderer
	}
}

func WithMaxTurns(turns int) Option {
	return func(e *LocalEngine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

func WithStartingSeat(seat game.Seat) Option {
	return func(e *LocalEngine) {
		e.starting = seat
	}
}

// WithBoard starts from b instead of the initial position.
func WithBoard(b *game.Board) Option {
	return func(e *LocalEngine) {
		if b != nil {
			e.Board = b
		}
	}
}

// Local returns an engine where agents[0] plays x and agents[1] plays o.
func Local(agents [2]agent.Agent, options ...Option) *LocalEngine {
	if agents[0] == nil || agents[1] == nil {
		panic("need an agent for both seats")
	}
	e := &LocalEngine{
		Board:    game.NewBoard(),
		Agents:   agents,
		maxTurns: meta.MAX_TURNS,
		starting: game.SeatX,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the game loop. Each agent gets a clone of the live board, a
// declined or rejected move counts as a pass.
func (e *LocalEngine) Run() (Result, metrics.GameMetric, []metrics.MoveMetric) {
	start := time.Now()
	seat := e.starting
	result := Result{}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("seat %s is starting", seat)

	for !e.Board.HasEnded() && result.Turns < e.maxTurns {
		e.render(seat)

		move, ok, search := e.Agents[seat].FindMove(e.Board.Clone(), seat)
		if ok {
			if err := e.Board.Place(move, seat); err != nil {
				log.Warn().Err(err).Msgf("seat %s played an invalid move => forcing pass", seat)
				ok = false
			}
		}

		result.Turns++
		moveMetric := metrics.MoveMetric{
			Step:         result.Turns,
			Seat:         int(seat),
			Passed:       !ok,
			SearchMetric: search,
		}
		if ok {
			moveMetric.Move = move.String()
			e.render(seat)
		} else {
			result.Passes++
		}
		moveMetrics = append(moveMetrics, moveMetric)

		seat = seat.Other()
	}

	result.Ended = e.Board.HasEnded()
	result.Counts = e.Board.Count()
	result.Winner = winner(result.Counts)

	if result.Ended {
		log.Info().Msgf("game ended after %d turns, winner: %q", result.Turns, result.Winner)
	} else {
		log.Info().Msgf("stopped after %d turns (not ended yet)", result.Turns)
	}

	end := time.Now()
	gameMetric := metrics.GameMetric{
		StartingSeat: int(e.starting),
		Winner:       result.Winner,
		Ended:        result.Ended,
		StartTime:    start,
		EndTime:      end,
		Duration:     end.Sub(start),
		TotalMoves:   result.Turns - result.Passes,
		Passes:       result.Passes,
	}
	return result, gameMetric, moveMetrics
}

func (e *LocalEngine) render(seat game.Seat) {
	if e.renderer != nil {
		e.renderer.Render(e.Board.Grid(), seat.String())
	}
}
