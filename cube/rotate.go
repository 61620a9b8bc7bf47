package cube

import "github.com/hexdeck/polytile/geom"

func geomRotate(k, dim0, dim1, dim2, x, y, z int) (int, int, int) {
	return geom.Rotate24(k, dim0, dim1, dim2, x, y, z)
}

func rotatedDims(k, dim0, dim1, dim2 int) (int, int, int) {
	return geom.RotatedDims(k, dim0, dim1, dim2)
}
