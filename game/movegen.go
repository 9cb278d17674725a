package game

// PossibleMoves returns the moves seat may play, direction-major then edge-minor.
func (b *Board) PossibleMoves(seat Seat) []Move {
	moves := make([]Move, 0, 4*Size)
	for _, dir := range Directions {
		for edge := 0; edge < Size; edge++ {
			move := Move{Position: edgePosition(dir, edge), Direction: dir}
			if b.IsMovePossible(move, seat) {
				moves = append(moves, move)
			}
		}
	}
	return moves
}

// edgePosition pins the moving axis to the edge the line enters from.
func edgePosition(dir Direction, edge int) Position {
	pos := Position{edge, edge}

	switch dir.DX {
	case 1:
		pos.X = 0
	case -1:
		pos.X = Size - 1
	}
	switch dir.DY {
	case 1:
		pos.Y = 0
	case -1:
		pos.Y = Size - 1
	}
	return pos
}
