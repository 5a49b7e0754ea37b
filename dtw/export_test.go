package dtw

// White-box bridges for dtw_test.
var (
	InitCost = initCost
	Pick     = pick
)
