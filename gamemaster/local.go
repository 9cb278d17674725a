package gamemaster

import (
	"errors"
	"fmt"
	"inversi/game"
	"inversi/utils"
)

var ErrGameOver = errors.New("game is over - no moves allowed")

// Update is published after every turn. A zero Move with Passed set is a pass.
type Update struct {
	Seat   game.Seat
	Move   game.Move
	Passed bool
	Grid   game.Grid
}

type UpdateGetter func() (Update, bool)

// Engine lets an outside caller (e.g. an interactive prompt) play a game one
// turn at a time.
type Engine interface {
	Init() (*game.Board, UpdateGetter)
	Turn() game.Seat
	Moves() []game.Move
	Play(game.Move) error
	PlayIndex(int) error
	Pass() error
}

var _ Engine = (*localEngine)(nil)

type localEngine struct {
	board    *game.Board
	turn     game.Seat
	updateCh chan Update
	gameOver bool
}

func NewLocalEngine() *localEngine {
	return &localEngine{}
}

// Init starts a new game and returns a copy of the board plus a non-blocking
// getter for turn updates. The getter reports false when no update is pending
// or the game is over.
func (e *localEngine) Init() (*game.Board, UpdateGetter) {
	e.board = game.NewBoard()
	e.turn = game.SeatX
	e.gameOver = false
	e.updateCh = make(chan Update, 1)

	updates := e.updateCh
	return e.board.Clone(), func() (Update, bool) {
		select {
		case u, ok := <-updates:
			return u, ok
		default:
			return Update{}, false
		}
	}
}

func (e *localEngine) Turn() game.Seat {
	return e.turn
}

// Moves lists the current seat's possible moves, in the order PlayIndex uses.
func (e *localEngine) Moves() []game.Move {
	if e.board == nil {
		return nil
	}
	return e.board.PossibleMoves(e.turn)
}

func (e *localEngine) PlayIndex(i int) error {
	if err := e.check(); err != nil {
		return err
	}
	moves := e.Moves()
	if i < 0 || i >= len(moves) {
		return fmt.Errorf("%w: no move number %d, have %d", game.ErrInvalidMove, i, len(moves))
	}
	return e.Play(moves[i])
}

func (e *localEngine) Play(move game.Move) error {
	if err := e.check(); err != nil {
		return err
	}
	if !utils.Contains(e.Moves(), move) {
		return fmt.Errorf("%w: %s is not possible for seat %s", game.ErrInvalidMove, move, e.turn)
	}
	if err := e.board.Place(move, e.turn); err != nil {
		return err
	}
	e.advance(Update{Seat: e.turn, Move: move, Grid: e.board.Grid()})
	return nil
}

func (e *localEngine) Pass() error {
	if err := e.check(); err != nil {
		return err
	}
	e.advance(Update{Seat: e.turn, Passed: true, Grid: e.board.Grid()})
	return nil
}

func (e *localEngine) check() error {
	if e.board == nil {
		return fmt.Errorf("game not initialised")
	}
	if e.gameOver {
		return ErrGameOver
	}
	return nil
}

func (e *localEngine) advance(u Update) {
	// Drop an update nobody collected, only the latest one matters
	select {
	case <-e.updateCh:
	default:
	}
	e.updateCh <- u
	e.turn = e.turn.Other()

	if e.board.HasEnded() {
		e.gameOver = true
		close(e.updateCh)
	}
}
