// Package cube is the 3D analogue of package board: a rectangular box of
// cells, some marked as holes, plus the rotation group that maps the box
// onto itself. Its shape follows board.Board exactly, generalised from two
// axes to three; the rotations themselves are geom.Rotate24, grounded on
// original_source/src/cube.rs's explicit rotate_k table.
package cube

import (
	"errors"
	"fmt"

	"github.com/hexdeck/polytile/bitset"
	"github.com/hexdeck/polytile/geom"
)

var (
	// ErrInconsistentLayer is returned when input layers are not all the same shape.
	ErrInconsistentLayer = errors.New("polytile/cube: inconsistent layer shape")
	// ErrEmptyCube is returned for a box with a zero-length axis.
	ErrEmptyCube = errors.New("polytile/cube: empty cube")
	// ErrUnknownCell is returned for a cell value other than 0 (free) or 1 (hole).
	ErrUnknownCell = errors.New("polytile/cube: cell value must be 0 or 1")
)

// Cube is a DX x DY x DZ box of cells, with a bitmap marking holes that no
// piece may cover. Cells are addressed (x, y, z) with x the slowest-varying
// axis, matching geom.Rotate24's dim0/dim1/dim2 convention.
type Cube struct {
	DX, DY, DZ int
	Holes      bitset.Bitset
}

// New builds a Cube from layers[x][y][z] of 0 (free) / 1 (hole) values.
func New(layers [][][]int) (*Cube, error) {
	if len(layers) == 0 || len(layers[0]) == 0 || len(layers[0][0]) == 0 {
		return nil, ErrEmptyCube
	}
	dx := len(layers)
	dy := len(layers[0])
	dz := len(layers[0][0])
	holes := bitset.New(dx * dy * dz)
	for x, layer := range layers {
		if len(layer) != dy {
			return nil, fmt.Errorf("%w: layer %d has %d rows, want %d", ErrInconsistentLayer, x, len(layer), dy)
		}
		for y, row := range layer {
			if len(row) != dz {
				return nil, fmt.Errorf("%w: layer %d row %d has %d cells, want %d", ErrInconsistentLayer, x, y, len(row), dz)
			}
			for z, v := range row {
				switch v {
				case 0:
				case 1:
					holes.Set(Index(dy, dz, x, y, z))
				default:
					return nil, fmt.Errorf("%w: got %d at (%d,%d,%d)", ErrUnknownCell, v, x, y, z)
				}
			}
		}
	}
	return &Cube{DX: dx, DY: dy, DZ: dz, Holes: holes}, nil
}

// Index returns the linear cell index of (x, y, z) in a box with the given
// DY, DZ extents (DX need not be known to linearise).
func Index(dy, dz, x, y, z int) int {
	return x*dy*dz + y*dz + z
}

// Cells returns the total number of cells, free and hole alike.
func (c *Cube) Cells() int {
	return c.DX * c.DY * c.DZ
}

// FreeCells returns the number of non-hole cells.
func (c *Cube) FreeCells() int {
	return c.Cells() - c.Holes.PopCount()
}

// InBounds reports whether (x, y, z) lies within the box.
func (c *Cube) InBounds(x, y, z int) bool {
	return x >= 0 && x < c.DX && y >= 0 && y < c.DY && z >= 0 && z < c.DZ
}

// RotationIndices returns the indices into geom.Rotate24 that map this box
// onto itself: 4, 8, or all 24, depending on how many of DX, DY, DZ coincide
// (spec.md §4.2/§9, resolving the rotation-only — no reflection — convention
// against original_source/src/cube.rs).
func (c *Cube) RotationIndices() []int {
	return geom.Rotate24Indices(c.DX, c.DY, c.DZ)
}

// Rotate maps a cell coordinate through the k'th symmetry of this box.
func (c *Cube) Rotate(k, x, y, z int) (int, int, int) {
	return geom.Rotate24(k, c.DX, c.DY, c.DZ, x, y, z)
}
