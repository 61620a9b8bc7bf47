// Package symmetry deduplicates solved tilings that are congruent under the
// board's (or cube's) own symmetry group, so a solution and its mirror
// image are reported once, not twice. It is the Go analogue of
// original_source/src/solutionset.rs's SolutionSet, which keeps a
// congruent_solutions set and only accepts a tiling whose canonical
// (lexicographically smallest) image under every board symmetry has not
// already been seen.
package symmetry

import (
	"github.com/hexdeck/polytile/board"
	"github.com/hexdeck/polytile/cube"
)

// BoardDedup deduplicates board.Solved tilings under a set of board symmetries.
type BoardDedup struct {
	symmetries []board.Transform
	seen       map[string]bool
}

// NewBoardDedup builds a deduplicator for the given symmetry group
// (typically b.Symmetries()).
func NewBoardDedup(symmetries []board.Transform) *BoardDedup {
	return &BoardDedup{symmetries: symmetries, seen: make(map[string]bool)}
}

// Admit reports whether s is the first representative seen of its
// congruence class; if so it is recorded and true is returned, otherwise
// false (the caller should discard s as a duplicate).
func (d *BoardDedup) Admit(s *board.Solved) bool {
	canonKey := ""
	for _, t := range d.symmetries {
		key := s.Transform(t).Key()
		if canonKey == "" || key < canonKey {
			canonKey = key
		}
	}
	if d.seen[canonKey] {
		return false
	}
	d.seen[canonKey] = true
	return true
}

// Count returns how many distinct congruence classes have been admitted so far.
func (d *BoardDedup) Count() int {
	return len(d.seen)
}

// CubeDedup is the 3D analogue of BoardDedup, over the box's rotation group.
type CubeDedup struct {
	rotations []int
	seen      map[string]bool
}

// NewCubeDedup builds a deduplicator for the given rotation indices
// (typically c.RotationIndices()).
func NewCubeDedup(rotations []int) *CubeDedup {
	return &CubeDedup{rotations: rotations, seen: make(map[string]bool)}
}

// Admit is the CubeDedup analogue of BoardDedup.Admit.
func (d *CubeDedup) Admit(s *cube.Solved) bool {
	canonKey := ""
	for _, k := range d.rotations {
		key := s.Rotate(k).Key()
		if canonKey == "" || key < canonKey {
			canonKey = key
		}
	}
	if d.seen[canonKey] {
		return false
	}
	d.seen[canonKey] = true
	return true
}

// Count returns how many distinct congruence classes have been admitted so far.
func (d *CubeDedup) Count() int {
	return len(d.seen)
}
