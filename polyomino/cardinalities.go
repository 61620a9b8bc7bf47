package polyomino

// KnownCounts gives the number of free n-ominoes for small n (OEIS A000105),
// used as a ground-truth check on Enumerate in tests.
var KnownCounts = map[int]int{
	1: 1,
	2: 1,
	3: 2,
	4: 5,
	5: 12,
	6: 35,
	7: 108,
	8: 369,
}
