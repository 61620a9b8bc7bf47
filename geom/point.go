// Package geom holds the small coordinate types shared by the 2D polyomino
// and 3D polycube enumerators: plain integer points, sorted for canonical
// comparison, normalised so the minimum on every axis is zero.
package geom

import "sort"

// Point2 is a cell coordinate in a 2D polyomino. Row is the first axis,
// Col the second, matching the board's row-major cell numbering.
type Point2 struct {
	Row, Col int
}

// Point3 is a cell coordinate in a 3D polycube.
type Point3 struct {
	X, Y, Z int
}

// Shape2 is a connected set of cells. After Normalize it is sorted and
// normalised (minimum Row and Col both zero), so two translated copies of
// the same cells compare equal with reflect.DeepEqual or ==-free struct
// comparison; rotated or reflected copies do not.
type Shape2 []Point2

// Shape3 is the 3D analogue of Shape2.
type Shape3 []Point3

func (s Shape2) Len() int      { return len(s) }
func (s Shape2) Swap(i, j int) { s[i], s[j] = s[j], s[i] }
func (s Shape2) Less(i, j int) bool {
	if s[i].Row != s[j].Row {
		return s[i].Row < s[j].Row
	}
	return s[i].Col < s[j].Col
}

func (s Shape3) Len() int      { return len(s) }
func (s Shape3) Swap(i, j int) { s[i], s[j] = s[j], s[i] }
func (s Shape3) Less(i, j int) bool {
	if s[i].X != s[j].X {
		return s[i].X < s[j].X
	}
	if s[i].Y != s[j].Y {
		return s[i].Y < s[j].Y
	}
	return s[i].Z < s[j].Z
}

// Normalize shifts every point so the minimum Row and Col are both 0, then
// sorts the result into canonical (row, then col) order. The anchor cell —
// the lexicographically first after normalisation — is always s[0].
func (s Shape2) Normalize() Shape2 {
	if len(s) == 0 {
		return s
	}
	minR, minC := s[0].Row, s[0].Col
	for _, p := range s[1:] {
		if p.Row < minR {
			minR = p.Row
		}
		if p.Col < minC {
			minC = p.Col
		}
	}
	out := make(Shape2, len(s))
	for i, p := range s {
		out[i] = Point2{Row: p.Row - minR, Col: p.Col - minC}
	}
	sort.Sort(out)
	return out
}

// Normalize is the 3D analogue of Shape2.Normalize.
func (s Shape3) Normalize() Shape3 {
	if len(s) == 0 {
		return s
	}
	minX, minY, minZ := s[0].X, s[0].Y, s[0].Z
	for _, p := range s[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Z < minZ {
			minZ = p.Z
		}
	}
	out := make(Shape3, len(s))
	for i, p := range s {
		out[i] = Point3{X: p.X - minX, Y: p.Y - minY, Z: p.Z - minZ}
	}
	sort.Sort(out)
	return out
}

// Bounds returns the maximum Row and Col present (a normalised shape's
// bounding extent is therefore MaxRow+1 by MaxCol+1 cells).
func (s Shape2) Bounds() (maxRow, maxCol int) {
	for _, p := range s {
		if p.Row > maxRow {
			maxRow = p.Row
		}
		if p.Col > maxCol {
			maxCol = p.Col
		}
	}
	return
}

// Bounds is the 3D analogue of Shape2.Bounds.
func (s Shape3) Bounds() (maxX, maxY, maxZ int) {
	for _, p := range s {
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y > maxY {
			maxY = p.Y
		}
		if p.Z > maxZ {
			maxZ = p.Z
		}
	}
	return
}

// Key renders a shape into a comparable string, used as a set/map key when
// deduplicating congruent orientations. Shapes must already be normalised.
func (s Shape2) Key() string {
	b := make([]byte, 0, len(s)*6)
	for _, p := range s {
		b = appendVarint(b, p.Row)
		b = appendVarint(b, p.Col)
	}
	return string(b)
}

// Key is the 3D analogue of Shape2.Key.
func (s Shape3) Key() string {
	b := make([]byte, 0, len(s)*9)
	for _, p := range s {
		b = appendVarint(b, p.X)
		b = appendVarint(b, p.Y)
		b = appendVarint(b, p.Z)
	}
	return string(b)
}

func appendVarint(b []byte, v int) []byte {
	u := uint32(v)
	return append(b, byte(u), byte(u>>8), byte(u>>16), 0xFF)
}
