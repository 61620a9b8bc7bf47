package solve

import (
	"github.com/hexdeck/polytile/dlx"
	"github.com/hexdeck/polytile/placement"
)

// DLXSolver finds tilings via Dancing Links. Each real placement becomes a
// row covering its cell columns plus a one-hot column for its piece kind
// (so a kind can be chosen at most once); a single synthetic row covers
// exactly the hole cells plus a dedicated "holes" column, so the hole cells
// participate in the exact cover without any solver special-casing them.
// Column layout: [0, numCells) cells, [numCells, numCells+numKinds) kind
// usage, numCells+numKinds the holes column — exactly spec.md §4.3's
// "(num_cells + num_pieces + 1)"-wide row, grounded on
// original_source/polymino.rs's congruent_pieces.
type DLXSolver struct {
	matrix     *dlx.Matrix
	placements []placement.Placement
}

// NewDLXSolver builds a DLXSolver over numCells cell columns and numKinds
// piece kinds from placements (holes placement included, as produced by
// placement.Generate2D/Generate3D).
func NewDLXSolver(numCells, numKinds int, placements []placement.Placement) *DLXSolver {
	numCols := numCells + numKinds + 1
	holesCol := numCells + numKinds

	rows := make([][]int, len(placements))
	for i, p := range placements {
		cols := make([]int, 0, numCells)
		for c := 0; c < numCells; c++ {
			if p.Cells.Test(c) {
				cols = append(cols, c)
			}
		}
		if p.Kind == placement.HolesKind {
			cols = append(cols, holesCol)
		} else {
			cols = append(cols, numCells+p.Kind)
		}
		rows[i] = cols
	}
	return &DLXSolver{matrix: dlx.New(numCols, rows), placements: placements}
}

// Solve enumerates every exact cover, calling onSolution with the list of
// real piece placements used (the synthetic holes row is filtered out).
func (s *DLXSolver) Solve(cap int, onSolution func(used []placement.Placement) bool) {
	s.matrix.Search(cap, func(rowIDs []int) bool {
		used := make([]placement.Placement, 0, len(rowIDs))
		for _, id := range rowIDs {
			p := s.placements[id]
			if p.Kind == placement.HolesKind {
				continue
			}
			used = append(used, p)
		}
		return onSolution(used)
	})
}
