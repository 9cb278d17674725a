package game

// DefaultWeights penalises unfinalized stones of the searching seat towards the
// centre and rewards its finalized stones on the rim.
var DefaultWeights = WeightSet{
	MineUnfinalized: {
		{-5, -6, -7, -7, -6, -5},
		{-6, -11, -21, -21, -11, -6},
		{-7, -21, -40, -40, -21, -7},
		{-7, -21, -40, -40, -21, -7},
		{-6, -11, -21, -21, -11, -6},
		{-5, -6, -7, -7, -6, -5},
	},
	TheirsUnfinalized: rim,
	MineFinalized: {
		{4, 4, 4, 4, 4, 4},
		{4, -2, -5, -5, -2, 4},
		{4, -5, -9, -9, -5, 4},
		{4, -5, -9, -9, -5, 4},
		{4, -2, -5, -5, -2, 4},
		{4, 4, 4, 4, 4, 4},
	},
	TheirsFinalized: rim,
}

var rim = Table{
	{2, 1, 1, 1, 1, 2},
	{1, 0, 0, 0, 0, 1},
	{1, 0, -5, -5, 0, 1},
	{1, 0, -5, -5, 0, 1},
	{1, 0, 0, 0, 0, 1},
	{2, 1, 1, 1, 1, 2},
}
