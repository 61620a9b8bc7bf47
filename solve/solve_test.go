package solve

import (
	"testing"

	"github.com/hexdeck/polytile/board"
	"github.com/hexdeck/polytile/placement"
	"github.com/hexdeck/polytile/polyomino"
)

// trominoRows is a 3x3 board with its three lower-right cells as holes. Its
// six free cells are exactly covered by one straight tromino and one
// L-tromino (the two free 3-ominoes) in two ways, a small but genuine "one
// of each kind" exact-cover instance both engines should agree on.
var trominoRows = [][]int{
	{0, 0, 0},
	{0, 0, 1},
	{0, 1, 1},
}

func countTilings(t *testing.T, rows [][]int, n int) (bt, dlxCount int) {
	t.Helper()
	b, err := board.New(rows)
	if err != nil {
		t.Fatalf("board.New() error = %v", err)
	}
	shapes := polyomino.Enumerate(n)
	placements := placement.Generate2D(b, shapes)

	bs := NewBitmapSolver(b.Cells(), len(shapes), b.Holes, placements)
	bs.Solve(0, func(used []placement.Placement) bool {
		bt++
		return true
	})

	ds := NewDLXSolver(b.Cells(), len(shapes), placements)
	ds.Solve(0, func(used []placement.Placement) bool {
		dlxCount++
		return true
	})
	return bt, dlxCount
}

func makeRows(width, height int) [][]int {
	rows := make([][]int, height)
	for r := range rows {
		rows[r] = make([]int, width)
	}
	return rows
}

func TestBitmapAndDLXAgreeOnTrominoTiling(t *testing.T) {
	bt, dlxCount := countTilings(t, trominoRows, 3)
	if bt == 0 {
		t.Fatalf("expected at least one tromino tiling of the trimmed 3x3 board")
	}
	if bt != dlxCount {
		t.Fatalf("bitmap found %d tilings, dlx found %d", bt, dlxCount)
	}
}

func TestSolveRespectsCap(t *testing.T) {
	b, _ := board.New(trominoRows)
	shapes := polyomino.Enumerate(3)
	placements := placement.Generate2D(b, shapes)
	bs := NewBitmapSolver(b.Cells(), len(shapes), b.Holes, placements)
	count := 0
	bs.Solve(1, func(used []placement.Placement) bool {
		count++
		return true
	})
	if count != 1 {
		t.Fatalf("cap=1 produced %d solutions, want 1", count)
	}
}
