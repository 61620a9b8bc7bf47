// Package polycube is the 3D analogue of package polyomino: it enumerates
// free polycubes (connected sets of n unit cubes, identified up to the
// 24-element rotation group — no reflections, per spec.md's resolved
// convention) and materialises their rotation orbits. The enumeration
// extends original_source/src/polyominolist.rs's Redelmeier DFS from four
// planar directions to six, with the same "retire a border cell once tried"
// discipline; free-polycube deduplication goes through Canonical
// (orientation.go) rather than a mirror-cut optimisation.
package polycube

import "github.com/hexdeck/polytile/geom"

// Shape is a free polycube: a normalised, sorted set of cell coordinates.
type Shape = geom.Shape3

var directions = [6][3]int{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

type cell struct {
	x, y, z int
}

// Enumerate returns every free n-cube, one representative Shape3 per
// equivalence class under the 24-element rotation group, normalised and sorted.
func Enumerate(n int) []geom.Shape3 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []geom.Shape3{{{X: 0, Y: 0, Z: 0}}}
	}

	e := &enumerator{
		n:      n,
		order:  make(map[cell]int),
		border: make(map[cell]bool),
		seen:   make(map[string]bool),
	}
	start := cell{0, 0, 0}
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
	results []geom.Shape3
}

func (e *enumerator) addBorder(c cell) {
	for _, d := range directions {
		nb := cell{c.x + d[0], c.y + d[1], c.z + d[2]}
		if _, placed := e.order[nb]; placed {
			continue
		}
		e.border[nb] = true
	}
}

func (e *enumerator) grow(count int) {
	if count == e.n {
		e.emit()
		return
	}
	candidates := make([]cell, 0, len(e.border))
	for c := range e.border {
		candidates = append(candidates, c)
	}
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
	for _, c := range candidates {
		e.border[c] = true
	}
}

func (e *enumerator) addBorderTracked(c cell) []cell {
	var added []cell
	for _, d := range directions {
		nb := cell{c.x + d[0], c.y + d[1], c.z + d[2]}
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
	shape := make(geom.Shape3, len(e.cells))
	for i, c := range e.cells {
		shape[i] = geom.Point3{X: c.x, Y: c.y, Z: c.z}
	}
	canon := Canonical(shape.Normalize())
	key := canon.Key()
	if e.seen[key] {
		return
	}
	e.seen[key] = true
	e.results = append(e.results, canon)
}
