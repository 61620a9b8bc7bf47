package polytile

import (
	"testing"

	"github.com/hexdeck/polytile/cube"
)

func TestFreePolycubeCardinalities(t *testing.T) {
	want := map[int]int{1: 1, 2: 1, 3: 2, 4: 8}
	for n, count := range want {
		got := FreePolycubes(n)
		if len(got) != count {
			t.Errorf("FreePolycubes(%d) = %d, want %d", n, len(got), count)
		}
	}
}

func TestSolvePolycubeEnginesAgreeOnSmallBox(t *testing.T) {
	// the two free tricubes (I and L) exactly tile a 1x3x3 box whose three
	// corner cells at high y and z are holes.
	layers := [][][]int{
		{
			{0, 0, 0},
			{0, 0, 1},
			{0, 1, 1},
		},
	}
	c, err := cube.New(layers)
	if err != nil {
		t.Fatalf("cube.New() error = %v", err)
	}
	dlxResults, err := SolvePolycubeDLX(c, 3, 0)
	if err != nil {
		t.Fatalf("SolvePolycubeDLX() error = %v", err)
	}
	btResults, err := SolvePolycubeBT(c, 3, 0)
	if err != nil {
		t.Fatalf("SolvePolycubeBT() error = %v", err)
	}
	if len(dlxResults) == 0 {
		t.Fatalf("expected at least one tiling of the trimmed 1x3x3 box")
	}
	if len(dlxResults) != len(btResults) {
		t.Errorf("engines disagree: dlx=%d bt=%d", len(dlxResults), len(btResults))
	}
}
