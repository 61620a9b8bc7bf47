package polyomino

import "github.com/hexdeck/polytile/geom"

// transform2 is one element of the dihedral group of order 8 acting on a
// cell coordinate: rotation by 0/90/180/270 degrees, optionally preceded by
// a reflection. Matches the decomposition in original_source/src/board.rs's
// Board::transform(vertically, horizontally, diagonally).
type transform2 func(row, col int) (int, int)

var transforms2 = [8]transform2{
	func(r, c int) (int, int) { return r, c },
	func(r, c int) (int, int) { return -c, r },
	func(r, c int) (int, int) { return -r, -c },
	func(r, c int) (int, int) { return c, -r },
	func(r, c int) (int, int) { return r, -c },
	func(r, c int) (int, int) { return -c, -r },
	func(r, c int) (int, int) { return -r, c },
	func(r, c int) (int, int) { return c, r },
}

// Orientations returns every distinct image of shape under the 8-element
// symmetry group, normalised and deduplicated (a shape with its own
// symmetry will produce fewer than 8 distinct orientations).
func Orientations(shape geom.Shape2) []geom.Shape2 {
	seen := make(map[string]bool, 8)
	var out []geom.Shape2
	for _, t := range transforms2 {
		img := applyTransform2(shape, t).Normalize()
		key := img.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, img)
	}
	return out
}

// Canonical returns the lexicographically smallest of shape's 8 symmetry
// images, the representative used to dedupe free polyominoes regardless of
// which orientation the enumerator happened to construct first.
func Canonical(shape geom.Shape2) geom.Shape2 {
	best := applyTransform2(shape, transforms2[0]).Normalize()
	bestKey := best.Key()
	for _, t := range transforms2[1:] {
		img := applyTransform2(shape, t).Normalize()
		key := img.Key()
		if key < bestKey {
			best, bestKey = img, key
		}
	}
	return best
}

func applyTransform2(shape geom.Shape2, t transform2) geom.Shape2 {
	out := make(geom.Shape2, len(shape))
	for i, p := range shape {
		r2, c2 := t(p.Row, p.Col)
		out[i] = geom.Point2{Row: r2, Col: c2}
	}
	return out
}
