package game

import "inversi/meta"

const (
	Size = meta.BOARD_SIZE

	// FinalizeOffset is added to an unfinalized stone to finalize it.
	FinalizeOffset = 2
)

// Seat identifies one of the two players by parity.
type Seat int

const (
	SeatX Seat = iota
	SeatO
)

func (s Seat) Other() Seat {
	return 1 - s
}

func (s Seat) String() string {
	return Stone(s).String()
}

// Stone is a cell value. Its parity is the owning seat, values below
// FinalizeOffset can still be flipped.
type Stone int8

var icons = [4]string{"x", "o", "X", "O"}

func (s Stone) Seat() Seat {
	return Seat(s % 2)
}

func (s Stone) IsFinalized() bool {
	return s >= FinalizeOffset
}

// Finalize returns the finalized version of s.
func (s Stone) Finalize() Stone {
	if s < FinalizeOffset {
		return s + FinalizeOffset
	}
	return s
}

func (s Stone) String() string {
	if s < 0 || int(s) >= len(icons) {
		return "?"
	}
	return icons[s]
}

// Grid is indexed [x][y].
type Grid [Size][Size]Stone

// Evaluates the board from seat's perspective, higher is better for seat.
type Evaluate func(b *Board, w Weights, seat Seat) int
