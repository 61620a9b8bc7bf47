package geom

import "testing"

func TestShape2Normalize(t *testing.T) {
	s := Shape2{{Row: 3, Col: 5}, {Row: 4, Col: 5}, {Row: 3, Col: 6}}
	got := s.Normalize()
	want := Shape2{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cell %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestShape2Bounds(t *testing.T) {
	s := Shape2{{Row: 0, Col: 0}, {Row: 2, Col: 1}}
	maxRow, maxCol := s.Bounds()
	if maxRow != 2 || maxCol != 1 {
		t.Fatalf("Bounds() = (%d,%d), want (2,1)", maxRow, maxCol)
	}
}

func TestShape2KeyStable(t *testing.T) {
	a := Shape2{{Row: 0, Col: 0}, {Row: 1, Col: 0}}
	b := Shape2{{Row: 0, Col: 0}, {Row: 1, Col: 0}}
	if a.Key() != b.Key() {
		t.Fatalf("identical shapes produced different keys")
	}
	c := Shape2{{Row: 0, Col: 0}, {Row: 0, Col: 1}}
	if a.Key() == c.Key() {
		t.Fatalf("distinct shapes produced the same key")
	}
}

func TestShape3Normalize(t *testing.T) {
	s := Shape3{{X: 1, Y: 1, Z: 1}, {X: 2, Y: 1, Z: 1}}
	got := s.Normalize()
	want := Shape3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cell %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}
