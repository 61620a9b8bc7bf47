// Package solve holds the two tiling search engines: a bitmap backtracking
// solver (this file), ported from original_source/src/backtracking.rs's
// Solver::backtrack, and a dancing-links solver (dlx.go) built on package
// dlx. Both operate purely on linear cell indices and placement.Placement
// values, so the same code serves 2D boards and 3D cubes alike. A solution
// uses every piece kind exactly once, matching spec.md's "one of each kind"
// convention, so the search tracks which kinds are still available
// alongside the occupied-cell bitmap.
package solve

import (
	"github.com/hexdeck/polytile/bitset"
	"github.com/hexdeck/polytile/placement"
)

// BitmapSolver finds tilings by always covering the lowest-indexed
// uncovered free cell next, trying every not-yet-used kind's placement
// whose lowest covered cell is that cell — the same "lowest zero bit"
// discipline as the reference's `bitmap.trailing_ones()` search.
type BitmapSolver struct {
	NumCells int
	NumKinds int
	Table    map[int][]placement.Placement // lowest cell -> candidate placements
	Holes    bitset.Bitset
}

// NewBitmapSolver builds a solver from a flat placement list (as produced by
// placement.Generate2D/Generate3D, holes placement included but unused here
// since BitmapSolver starts with holes pre-marked occupied) and the total
// number of piece kinds, each of which must be used exactly once.
func NewBitmapSolver(numCells, numKinds int, holes bitset.Bitset, placements []placement.Placement) *BitmapSolver {
	real := make([]placement.Placement, 0, len(placements))
	for _, p := range placements {
		if p.Kind == placement.HolesKind {
			continue
		}
		real = append(real, p)
	}
	return &BitmapSolver{
		NumCells: numCells,
		NumKinds: numKinds,
		Table:    placement.ByLowestCell(real, numCells),
		Holes:    holes,
	}
}

// Solve enumerates every exact-cover tiling, calling onSolution with the
// list of placements used (one per kind). Stops after cap solutions (0
// means unbounded) or when onSolution returns false.
func (s *BitmapSolver) Solve(cap int, onSolution func(used []placement.Placement) bool) {
	occupied := s.Holes.Clone()
	usedKind := make([]bool, s.NumKinds)
	var used []placement.Placement
	found := 0
	var backtrack func() bool
	backtrack = func() bool {
		lowest := occupied.LowestZero(s.NumCells)
		if lowest < 0 {
			found++
			sol := append([]placement.Placement(nil), used...)
			if !onSolution(sol) {
				return false
			}
			return cap <= 0 || found < cap
		}
		for _, p := range s.Table[lowest] {
			if usedKind[p.Kind] || occupied.Intersects(p.Cells) {
				continue
			}
			occupied.OrInto(p.Cells)
			usedKind[p.Kind] = true
			used = append(used, p)

			cont := backtrack()

			used = used[:len(used)-1]
			usedKind[p.Kind] = false
			occupied.AndNotInto(p.Cells)

			if !cont {
				return false
			}
		}
		return true
	}
	backtrack()
}
