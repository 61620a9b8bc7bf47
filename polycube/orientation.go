package polycube

import "github.com/hexdeck/polytile/geom"

// Orientations returns every distinct image of shape under the 24-element
// rotation group (geom.Rotate24), normalised and deduplicated.
func Orientations(shape geom.Shape3) []geom.Shape3 {
	dimX, dimY, dimZ := boundingDims(shape)
	seen := make(map[string]bool, 24)
	var out []geom.Shape3
	for k := 0; k < 24; k++ {
		img := rotateShape(shape, dimX, dimY, dimZ, k).Normalize()
		key := img.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, img)
	}
	return out
}

// Canonical returns the lexicographically smallest of shape's 24 rotation
// images, the representative used to dedupe free polycubes.
func Canonical(shape geom.Shape3) geom.Shape3 {
	dimX, dimY, dimZ := boundingDims(shape)
	best := rotateShape(shape, dimX, dimY, dimZ, 0).Normalize()
	bestKey := best.Key()
	for k := 1; k < 24; k++ {
		img := rotateShape(shape, dimX, dimY, dimZ, k).Normalize()
		key := img.Key()
		if key < bestKey {
			best, bestKey = img, key
		}
	}
	return best
}

func boundingDims(shape geom.Shape3) (int, int, int) {
	maxX, maxY, maxZ := shape.Bounds()
	return maxX + 1, maxY + 1, maxZ + 1
}

func rotateShape(shape geom.Shape3, dimX, dimY, dimZ, k int) geom.Shape3 {
	out := make(geom.Shape3, len(shape))
	for i, p := range shape {
		nx, ny, nz := geom.Rotate24(k, dimX, dimY, dimZ, p.X, p.Y, p.Z)
		out[i] = geom.Point3{X: nx, Y: ny, Z: nz}
	}
	return out
}
