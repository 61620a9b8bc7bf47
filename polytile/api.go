// Package polytile wires the enumerator, placement generator, and the two
// solve engines together behind the small set of entry points a caller
// needs: enumerate free pieces of a given size, then tile a board or cube
// using exactly one of each free n-piece, via either search engine. This
// mirrors how github.com/daystram/gambit/cmd/gambit's subcommands each call
// straight into board/engine functions rather than exposing their machinery.
package polytile

import (
	"github.com/hexdeck/polytile/board"
	"github.com/hexdeck/polytile/cube"
	"github.com/hexdeck/polytile/placement"
	"github.com/hexdeck/polytile/polycube"
	"github.com/hexdeck/polytile/polyomino"
	"github.com/hexdeck/polytile/solve"
	"github.com/hexdeck/polytile/symmetry"
)

// FreePolyominoes returns every free n-omino.
func FreePolyominoes(n int) []polyomino.Shape {
	return polyomino.Enumerate(n)
}

// FreePolycubes returns every free n-cube.
func FreePolycubes(n int) []polycube.Shape {
	return polycube.Enumerate(n)
}

func checkArea(freeCells, numKinds, n int) error {
	if n <= 0 {
		return ErrPieceTooLarge
	}
	if freeCells != numKinds*n {
		return ErrAreaMismatch
	}
	return nil
}

// SolvePolyominoBT tiles b with exactly one of each free n-omino using the
// bitmap backtracking engine, returning at most cap distinct (up to board
// symmetry) tilings, or every tiling if cap <= 0.
func SolvePolyominoBT(b *board.Board, n int, cap int) ([]*board.Solved, error) {
	shapes := polyomino.Enumerate(n)
	if err := checkArea(b.FreeCells(), len(shapes), n); err != nil {
		return nil, err
	}
	placements := placement.Generate2D(b, shapes)
	solver := solve.NewBitmapSolver(b.Cells(), len(shapes), b.Holes, placements)
	dedup := symmetry.NewBoardDedup(b.Symmetries())

	var results []*board.Solved
	solver.Solve(0, func(used []placement.Placement) bool {
		solved := assembleBoard(b, len(shapes), used)
		if dedup.Admit(solved) {
			results = append(results, solved)
		}
		return cap <= 0 || len(results) < cap
	})
	return results, nil
}

// SolvePolyominoDLX is the Dancing Links analogue of SolvePolyominoBT.
func SolvePolyominoDLX(b *board.Board, n int, cap int) ([]*board.Solved, error) {
	shapes := polyomino.Enumerate(n)
	if err := checkArea(b.FreeCells(), len(shapes), n); err != nil {
		return nil, err
	}
	placements := placement.Generate2D(b, shapes)
	solver := solve.NewDLXSolver(b.Cells(), len(shapes), placements)
	dedup := symmetry.NewBoardDedup(b.Symmetries())

	var results []*board.Solved
	solver.Solve(0, func(used []placement.Placement) bool {
		solved := assembleBoard(b, len(shapes), used)
		if dedup.Admit(solved) {
			results = append(results, solved)
		}
		return cap <= 0 || len(results) < cap
	})
	return results, nil
}

// SolvePolycubeBT is the 3D analogue of SolvePolyominoBT.
func SolvePolycubeBT(c *cube.Cube, n int, cap int) ([]*cube.Solved, error) {
	shapes := polycube.Enumerate(n)
	if err := checkArea(c.FreeCells(), len(shapes), n); err != nil {
		return nil, err
	}
	placements := placement.Generate3D(c, shapes)
	solver := solve.NewBitmapSolver(c.Cells(), len(shapes), c.Holes, placements)
	dedup := symmetry.NewCubeDedup(c.RotationIndices())

	var results []*cube.Solved
	solver.Solve(0, func(used []placement.Placement) bool {
		solved := assembleCube(c, len(shapes), used)
		if dedup.Admit(solved) {
			results = append(results, solved)
		}
		return cap <= 0 || len(results) < cap
	})
	return results, nil
}

// SolvePolycubeDLX is the Dancing Links analogue of SolvePolycubeBT.
func SolvePolycubeDLX(c *cube.Cube, n int, cap int) ([]*cube.Solved, error) {
	shapes := polycube.Enumerate(n)
	if err := checkArea(c.FreeCells(), len(shapes), n); err != nil {
		return nil, err
	}
	placements := placement.Generate3D(c, shapes)
	solver := solve.NewDLXSolver(c.Cells(), len(shapes), placements)
	dedup := symmetry.NewCubeDedup(c.RotationIndices())

	var results []*cube.Solved
	solver.Solve(0, func(used []placement.Placement) bool {
		solved := assembleCube(c, len(shapes), used)
		if dedup.Admit(solved) {
			results = append(results, solved)
		}
		return cap <= 0 || len(results) < cap
	})
	return results, nil
}

func assembleBoard(b *board.Board, numKinds int, used []placement.Placement) *board.Solved {
	s := board.NewSolved(b.Width, b.Height, numKinds)
	for _, p := range used {
		for i := 0; i < b.Cells(); i++ {
			if p.Cells.Test(i) {
				s.Kind[i] = p.Kind
			}
		}
	}
	return s
}

func assembleCube(c *cube.Cube, numKinds int, used []placement.Placement) *cube.Solved {
	s := cube.NewSolved(c.DX, c.DY, c.DZ, numKinds)
	for _, p := range used {
		for i := 0; i < c.Cells(); i++ {
			if p.Cells.Test(i) {
				s.Kind[i] = p.Kind
			}
		}
	}
	return s
}
