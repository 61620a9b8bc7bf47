// Package polyomino enumerates free polyominoes (connected sets of n unit
// squares, identified up to rotation and reflection) and materialises their
// symmetry orbits. The enumeration is Redelmeier's constrained DFS, ported
// from original_source/src/polyominolist.rs: grow a fixed-size polyomino one
// cell at a time from a frontier ("border") of candidate cells, each
// candidate tried in a fixed (row, col) order and retired from the border
// for its later siblings once tried. The seed cell is not pinned as the
// lowest cell of the shape, so translated copies of the same fixed
// polyomino are still produced. original_source additionally prunes
// constructions a reflection would already cover (its top-row mirror-cut);
// this port skips that optimisation and instead canonicalises every
// completed fixed polyomino against its full symmetry orbit (Canonical,
// orientation.go) before deduplicating — slower, but the resulting
// free-polyomino set is identical.
package polyomino

import (
	"sort"

	"github.com/hexdeck/polytile/geom"
)

// Shape is a free polyomino: a normalised, sorted set of cell coordinates.
type Shape = geom.Shape2

// directions lists the four edge neighbours of a cell as (row, col)
// offsets: +row, +col, -row, -col.
var directions = [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

type cell struct {
	row, col int
}

// Enumerate returns every free n-omino, one representative Shape2 per
// equivalence class under the dihedral group, normalised and sorted.
func Enumerate(n int) []geom.Shape2 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []geom.Shape2{{{Row: 0, Col: 0}}}
	}

	e := &enumerator{
		n:      n,
		order:  make(map[cell]int),
		border: make(map[cell]bool),
		seen:   make(map[string]bool),
	}
	start := cell{0, 0}
	e.cells = append(e.cells, start)
	e.order[start] = 0
	e.addBorder(start)
	e.grow(1)
	return e.results
}

type enumerator struct {
	n       int
	cells   []cell
	order   map[cell]int
	border  map[cell]bool
	seen    map[string]bool
	results []geom.Shape2
}

func (e *enumerator) addBorder(c cell) {
	for _, d := range directions {
		nb := cell{c.row + d[0], c.col + d[1]}
		if _, placed := e.order[nb]; placed {
			continue
		}
		e.border[nb] = true
	}
}

// grow extends the partial polyomino (count cells already placed) by one
// cell drawn from the current border, trying every border cell in turn and
// retiring it for the remaining siblings at this depth. Shapes that are
// still constructed more than once are dropped in emit.
func (e *enumerator) grow(count int) {
	if count == e.n {
		e.emit()
		return
	}
	candidates := make([]cell, 0, len(e.border))
	for c := range e.border {
		candidates = append(candidates, c)
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].row != candidates[j].row {
			return candidates[i].row < candidates[j].row
		}
		return candidates[i].col < candidates[j].col
	})
	for _, c := range candidates {
		delete(e.border, c)
		e.order[c] = count
		e.cells = append(e.cells, c)

		added := e.addBorderTracked(c)
		e.grow(count + 1)
		for _, a := range added {
			delete(e.border, a)
		}

		e.cells = e.cells[:len(e.cells)-1]
		delete(e.order, c)
	}
	// Every candidate tried at this depth is restored so sibling branches
	// higher up see the same border they started with.
	for _, c := range candidates {
		e.border[c] = true
	}
}

func (e *enumerator) addBorderTracked(c cell) []cell {
	var added []cell
	for _, d := range directions {
		nb := cell{c.row + d[0], c.col + d[1]}
		if _, placed := e.order[nb]; placed {
			continue
		}
		if !e.border[nb] {
			e.border[nb] = true
			added = append(added, nb)
		}
	}
	return added
}

func (e *enumerator) emit() {
	shape := make(geom.Shape2, len(e.cells))
	for i, c := range e.cells {
		shape[i] = geom.Point2{Row: c.row, Col: c.col}
	}
	canon := Canonical(shape.Normalize())
	key := canon.Key()
	if e.seen[key] {
		return
	}
	e.seen[key] = true
	e.results = append(e.results, canon)
}
