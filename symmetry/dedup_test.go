package symmetry

import (
	"testing"

	"github.com/hexdeck/polytile/board"
)

func TestBoardDedupCollapsesMirroredSolutions(t *testing.T) {
	b, err := board.New([][]int{{0, 0}, {0, 0}})
	if err != nil {
		t.Fatalf("board.New() error = %v", err)
	}
	s1 := board.NewSolved(2, 2, 2)
	s1.Kind[board.Index(2, 0, 0)] = 0
	s1.Kind[board.Index(2, 0, 1)] = 0
	s1.Kind[board.Index(2, 1, 0)] = 1
	s1.Kind[board.Index(2, 1, 1)] = 1

	s2 := s1.Transform(board.Transpose)

	dedup := NewBoardDedup(b.Symmetries())
	if !dedup.Admit(s1) {
		t.Fatalf("first solution should be admitted")
	}
	if dedup.Admit(s2) {
		t.Fatalf("transpose of an already-seen solution should be rejected as a duplicate")
	}
	if dedup.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", dedup.Count())
	}
}

func TestBoardDedupKeepsDistinctSolutions(t *testing.T) {
	b, _ := board.New([][]int{{0, 0}, {0, 0}})
	s1 := board.NewSolved(2, 2, 2)
	s1.Kind[board.Index(2, 0, 0)] = 0
	s1.Kind[board.Index(2, 0, 1)] = 0
	s1.Kind[board.Index(2, 1, 0)] = 1
	s1.Kind[board.Index(2, 1, 1)] = 1

	s3 := board.NewSolved(2, 2, 2)
	s3.Kind[board.Index(2, 0, 0)] = 0
	s3.Kind[board.Index(2, 1, 1)] = 0
	s3.Kind[board.Index(2, 0, 1)] = 1
	s3.Kind[board.Index(2, 1, 0)] = 1

	dedup := NewBoardDedup(b.Symmetries())
	dedup.Admit(s1)
	if !dedup.Admit(s3) {
		t.Fatalf("a genuinely distinct tiling should be admitted")
	}
	if dedup.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", dedup.Count())
	}
}
