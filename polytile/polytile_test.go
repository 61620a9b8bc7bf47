package polytile

import (
	"testing"

	"github.com/hexdeck/polytile/board"
)

func rectangle(width, height int, holes [][2]int) [][]int {
	rows := make([][]int, height)
	for r := range rows {
		rows[r] = make([]int, width)
	}
	for _, h := range holes {
		rows[h[0]][h[1]] = 1
	}
	return rows
}

func TestFreePolyominoCardinalities(t *testing.T) {
	want := map[int]int{1: 1, 2: 1, 3: 2, 4: 5, 5: 12, 6: 35}
	for n, count := range want {
		got := FreePolyominoes(n)
		if len(got) != count {
			t.Errorf("FreePolyominoes(%d) = %d, want %d", n, len(got), count)
		}
	}
}

// pentominoScenarios is spec.md §8's end-to-end table: rectangular boards
// (some with holes punched out) that are exactly covered by one of each of
// the 12 free pentominoes, with the known solution count after symmetry
// dedup. The 8x8-centre-hole board is the 65-solution case; the 10x10 frame
// case from the resolved Open Question (42, not 65) is covered separately.
var pentominoScenarios = []struct {
	name   string
	width  int
	height int
	holes  [][2]int
	want   int
}{
	{"8x8 centre hole", 8, 8, [][2]int{{3, 3}, {3, 4}, {4, 3}, {4, 4}}, 65},
	{"3x21 spaced holes", 21, 3, [][2]int{{0, 8}, {1, 10}, {2, 12}}, 3},
	{"7x9 with 3 holes", 9, 7, [][2]int{{3, 1}, {3, 4}, {3, 7}}, 143},
}

func TestSolvePolyominoDLXKnownScenarios(t *testing.T) {
	for _, sc := range pentominoScenarios {
		sc := sc
		t.Run(sc.name, func(t *testing.T) {
			b, err := board.New(rectangle(sc.width, sc.height, sc.holes))
			if err != nil {
				t.Fatalf("board.New() error = %v", err)
			}
			results, err := SolvePolyominoDLX(b, 5, 0)
			if err != nil {
				t.Fatalf("SolvePolyominoDLX() error = %v", err)
			}
			if len(results) != sc.want {
				t.Errorf("%s: got %d solutions, want %d", sc.name, len(results), sc.want)
			}
		})
	}
}

func TestSolveEnginesAgree(t *testing.T) {
	b, err := board.New(rectangle(20, 3, nil))
	if err != nil {
		t.Fatalf("board.New() error = %v", err)
	}
	dlxResults, err := SolvePolyominoDLX(b, 5, 0)
	if err != nil {
		t.Fatalf("SolvePolyominoDLX() error = %v", err)
	}
	btResults, err := SolvePolyominoBT(b, 5, 0)
	if err != nil {
		t.Fatalf("SolvePolyominoBT() error = %v", err)
	}
	if len(dlxResults) != 2 {
		t.Errorf("3x20 rectangle: got %d solutions, want 2", len(dlxResults))
	}
	if len(dlxResults) != len(btResults) {
		t.Errorf("engines disagree: dlx=%d bt=%d", len(dlxResults), len(btResults))
	}
}

// TestSolveTenByTenFrame resolves spec.md's Open Question: the literal
// board (original_source/polymino.rs's board7) yields 42 distinct
// solutions, not the 65 that a later, buggier source file copied from the
// unrelated 8x8-centre-hole board.
func TestSolveTenByTenFrame(t *testing.T) {
	rows := [][]int{
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 0, 0, 0, 0, 0, 0, 1, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{0, 0, 0, 0, 1, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 1, 0, 0, 0, 0},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 1, 0, 0, 0, 0, 0, 0, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	}
	b, err := board.New(rows)
	if err != nil {
		t.Fatalf("board.New() error = %v", err)
	}
	results, err := SolvePolyominoDLX(b, 5, 0)
	if err != nil {
		t.Fatalf("SolvePolyominoDLX() error = %v", err)
	}
	if len(results) != 42 {
		t.Errorf("10x10 frame: got %d solutions, want 42", len(results))
	}
}

func TestSolveRejectsAreaMismatch(t *testing.T) {
	b, err := board.New(rectangle(4, 4, nil))
	if err != nil {
		t.Fatalf("board.New() error = %v", err)
	}
	if _, err := SolvePolyominoDLX(b, 5, 0); err != ErrAreaMismatch {
		t.Fatalf("error = %v, want ErrAreaMismatch", err)
	}
}

func TestSolveCoversEveryKindExactlyOnce(t *testing.T) {
	b, err := board.New(rectangle(20, 3, nil))
	if err != nil {
		t.Fatalf("board.New() error = %v", err)
	}
	results, err := SolvePolyominoDLX(b, 5, 1)
	if err != nil {
		t.Fatalf("SolvePolyominoDLX() error = %v", err)
	}
	if len(results) == 0 {
		t.Fatalf("expected at least one solution")
	}
	s := results[0]
	seen := make([]bool, s.NumPieces)
	for _, k := range s.Kind {
		if k == s.NumPieces {
			continue
		}
		seen[k] = true
	}
	for k, ok := range seen {
		if !ok {
			t.Errorf("kind %d never placed", k)
		}
	}
}
