// Package placement turns a set of piece shapes into the concrete
// placements (translated, oriented copies) that fit on a given board or
// cube without overlapping a hole. It is the shared precomputation stage
// both solvers (bitmap backtracking and dancing links) consume, grounded on
// original_source/polymino.rs's congruent_pieces: one exact-cover row per
// placement, plus a synthetic row covering exactly the hole cells so the
// DLX column set can include holes without special-casing them (the bitmap
// solver drops that row and starts with the holes marked occupied).
package placement

import (
	"github.com/hexdeck/polytile/bitset"
	"github.com/hexdeck/polytile/board"
	"github.com/hexdeck/polytile/cube"
	"github.com/hexdeck/polytile/geom"
	"github.com/hexdeck/polytile/polycube"
	"github.com/hexdeck/polytile/polyomino"
)

// HolesKind marks the synthetic placement whose Cells is exactly the
// board's hole mask, distinguishing it from a real piece placement (Kind
// 0..NumKinds-1) wherever the two are mixed in one placement list. It is not
// the hole tag of a solved grid, which is NumPieces.
const HolesKind = -1

// Placement is one translated, oriented copy of a piece kind that fits
// entirely within the board/cube's free cells.
type Placement struct {
	Kind  int
	Cells bitset.Bitset
}

// Generate2D builds every placement of every orientation of every shape in
// shapes against b, plus the synthetic holes placement.
func Generate2D(b *board.Board, shapes []geom.Shape2) []Placement {
	nbits := b.Cells()
	var out []Placement
	for kind, shape := range shapes {
		for _, oriented := range polyomino.Orientations(shape) {
			maxRow, maxCol := oriented.Bounds()
			for dr := 0; dr+maxRow < b.Height; dr++ {
				for dc := 0; dc+maxCol < b.Width; dc++ {
					cells := make([]int, 0, len(oriented))
					ok := true
					for _, p := range oriented {
						r, c := p.Row+dr, p.Col+dc
						if !b.InBounds(r, c) {
							ok = false
							break
						}
						idx := board.Index(b.Width, r, c)
						if b.Holes.Test(idx) {
							ok = false
							break
						}
						cells = append(cells, idx)
					}
					if !ok {
						continue
					}
					out = append(out, Placement{Kind: kind, Cells: bitset.FromCells(nbits, cells)})
				}
			}
		}
	}
	out = append(out, Placement{Kind: HolesKind, Cells: b.Holes.Clone()})
	return out
}

// Generate3D is the Generate2D analogue for cube boxes.
func Generate3D(c *cube.Cube, shapes []geom.Shape3) []Placement {
	nbits := c.Cells()
	var out []Placement
	for kind, shape := range shapes {
		for _, oriented := range polycube.Orientations(shape) {
			maxX, maxY, maxZ := oriented.Bounds()
			for dx := 0; dx+maxX < c.DX; dx++ {
				for dy := 0; dy+maxY < c.DY; dy++ {
					for dz := 0; dz+maxZ < c.DZ; dz++ {
						cells := make([]int, 0, len(oriented))
						ok := true
						for _, p := range oriented {
							x, y, z := p.X+dx, p.Y+dy, p.Z+dz
							if !c.InBounds(x, y, z) {
								ok = false
								break
							}
							idx := cube.Index(c.DY, c.DZ, x, y, z)
							if c.Holes.Test(idx) {
								ok = false
								break
							}
							cells = append(cells, idx)
						}
						if !ok {
							continue
						}
						out = append(out, Placement{Kind: kind, Cells: bitset.FromCells(nbits, cells)})
					}
				}
			}
		}
	}
	out = append(out, Placement{Kind: HolesKind, Cells: c.Holes.Clone()})
	return out
}

// ByLowestCell groups placements by the lowest-indexed cell they cover, the
// BitmapSolver's table[lowest_0] lookup (original_source/src/
// backtracking.rs's `table[lowest_0][kind]`).
func ByLowestCell(placements []Placement, nbits int) map[int][]Placement {
	out := make(map[int][]Placement)
	for _, p := range placements {
		lowest := lowestSetBit(p.Cells, nbits)
		if lowest < 0 {
			continue
		}
		out[lowest] = append(out[lowest], p)
	}
	return out
}

func lowestSetBit(b bitset.Bitset, nbits int) int {
	for i := 0; i < nbits; i++ {
		if b.Test(i) {
			return i
		}
	}
	return -1
}
