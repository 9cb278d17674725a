package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMove  = errors.New("invalid move")
	ErrEmptyHistory = errors.New("no moves to undo")
)

// Board holds the grid, the next stone of each seat and the moves applied so far.
// A Board is mutated in place and must not be shared between goroutines.
type Board struct {
	cells   Grid
	stones  [2]Stone
	history []record
}

// NewBoard returns the starting position: alternating unfinalized stones and a
// finalized stone in hand for each seat.
func NewBoard() *Board {
	b := &Board{
		stones:  [2]Stone{Stone(SeatX).Finalize(), Stone(SeatO).Finalize()},
		history: make([]record, 0, 16),
	}
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			b.cells[x][y] = Stone((x + y) % 2)
		}
	}
	return b
}

// NewBoardFrom builds a board from a grid and the stones in hand.
func NewBoardFrom(grid Grid, stones [2]Stone) *Board {
	return &Board{
		cells:   grid,
		stones:  stones,
		history: make([]record, 0, 16),
	}
}

// Clone returns a deep copy, safe to mutate independently.
func (b *Board) Clone() *Board {
	history := make([]record, len(b.history), cap(b.history))
	copy(history, b.history)

	return &Board{
		cells:   b.cells,
		stones:  b.stones,
		history: history,
	}
}

// Grid returns a copy of the cells.
func (b *Board) Grid() Grid {
	return b.cells
}

func (b *Board) At(p Position) Stone {
	return b.cells[p.X][p.Y]
}

// Stone returns the stone seat places on its next move.
func (b *Board) Stone(seat Seat) Stone {
	return b.stones[seat]
}

// History returns the number of moves that can be undone.
func (b *Board) History() int {
	return len(b.history)
}

// applyMove pushes stone into the line starting at pos and returns the stone
// pushed out at the far end.
func (b *Board) applyMove(pos Position, dir Direction, stone Stone) Stone {
	for i := 0; i < Size; i++ {
		p := pos.step(dir, i)
		b.cells[p.X][p.Y], stone = stone, b.cells[p.X][p.Y]
	}
	return stone
}

// Place plays move for seat. The board is unchanged when the move is not possible.
func (b *Board) Place(move Move, seat Seat) error {
	if !b.IsMovePossible(move, seat) {
		return fmt.Errorf("%w: %s for seat %s", ErrInvalidMove, move, seat)
	}

	previous := b.stones[seat]
	replaced := b.applyMove(move.Position, move.Direction, previous)
	b.history = append(b.history, record{
		move:     move,
		replaced: replaced,
		seat:     seat,
		previous: previous,
	})
	b.stones[seat] = replaced.Finalize()
	return nil
}

// Undo reverts the most recent move by pushing the replaced stone back in from
// the far end.
func (b *Board) Undo() error {
	if len(b.history) == 0 {
		return ErrEmptyHistory
	}

	last := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]

	b.applyMove(last.move.End(), last.move.Direction.Reverse(), last.replaced)
	b.stones[last.seat] = last.previous
	return nil
}

// IsMovePossible checks only the cell where the line leaves the board: it must
// be unfinalized or a finalized stone of seat.
func (b *Board) IsMovePossible(move Move, seat Seat) bool {
	if !move.onBoard() {
		return false
	}
	end := move.End()
	field := b.cells[end.X][end.Y]
	return !field.IsFinalized() || field == Stone(seat).Finalize()
}

// HasEnded reports whether one of the unfinalized values has vanished from the board.
func (b *Board) HasEnded() bool {
	counts := b.Count()
	return counts[SeatX] == 0 || counts[SeatO] == 0
}

// Count tallies the cells per stone value.
func (b *Board) Count() [4]int {
	var counts [4]int
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			counts[b.cells[x][y]]++
		}
	}
	return counts
}

func (b *Board) String() string {
	var buf []byte
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			buf = append(buf, b.cells[x][y].String()...)
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
