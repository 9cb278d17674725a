package game

import "fmt"

type Position struct {
	X, Y int
}

// Direction is one of the four axis unit vectors.
type Direction struct {
	DX, DY int
}

var (
	Down  = Direction{0, 1}
	Right = Direction{1, 0}
	Up    = Direction{0, -1}
	Left  = Direction{-1, 0}
)

// Directions is the generator order. Ties in search go to the move found first.
var Directions = [4]Direction{Down, Right, Up, Left}

func (d Direction) Reverse() Direction {
	return Direction{-d.DX, -d.DY}
}

// step returns p moved n times along d.
func (p Position) step(d Direction, n int) Position {
	return Position{p.X + d.DX*n, p.Y + d.DY*n}
}

// Move enters the board at Position and travels edge to edge along Direction.
type Move struct {
	Position  Position
	Direction Direction
}

// End is the cell on the opposite edge where the line leaves the board.
func (m Move) End() Position {
	return m.Position.step(m.Direction, Size-1)
}

func (p Position) inside() bool {
	return p.X >= 0 && p.X < Size && p.Y >= 0 && p.Y < Size
}

// onBoard reports whether m runs along an axis from one edge to the opposite one.
func (m Move) onBoard() bool {
	d := m.Direction
	if d.DX*d.DX+d.DY*d.DY != 1 {
		return false
	}
	return m.Position.inside() && m.End().inside()
}

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)->(%d,%d)", m.Position.X, m.Position.Y, m.Direction.DX, m.Direction.DY)
}

type record struct {
	move     Move
	replaced Stone
	seat     Seat
	previous Stone // seat's stone counter before the move
}
