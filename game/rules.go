package game

// Table assigns a weight to every cell, indexed [x][y].
type Table [Size][Size]int

// Weights is indexed by the raw cell value.
type Weights [4]Table

// Roles of the tables in a WeightSet, relative to the seat that searches.
const (
	MineUnfinalized = iota
	TheirsUnfinalized
	MineFinalized
	TheirsFinalized
)

// WeightSet holds one table per role.
type WeightSet [4]Table

// For maps the role tables onto cell values as seen by seat.
func (ws WeightSet) For(seat Seat) Weights {
	other := seat.Other()
	return Weights{
		ws[seat],
		ws[other],
		ws[int(seat)+FinalizeOffset],
		ws[int(other)+FinalizeOffset],
	}
}

// Greedy keeps only seat's first table and zeroes the rest.
func (ws WeightSet) Greedy(seat Seat) Weights {
	return Weights{ws[seat]}
}
