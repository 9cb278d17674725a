package game

var _ Evaluate = EvaluateWeights

// EvaluateWeights sums w[cell][x][y] per owning seat and returns seat's total
// minus the other seat's, so negating the score flips the perspective.
func EvaluateWeights(b *Board, w Weights, seat Seat) int {
	var sum [2]int
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			field := b.cells[x][y]
			sum[field.Seat()] += w[field][x][y]
		}
	}
	return sum[seat] - sum[seat.Other()]
}
