package polycube

// KnownCounts gives the number of free n-polycubes for small n (OEIS
// A000162: rotations only, no reflections), used as a ground-truth check on
// Enumerate in tests.
var KnownCounts = map[int]int{
	1: 1,
	2: 1,
	3: 2,
	4: 8,
	5: 29,
	6: 166,
}
