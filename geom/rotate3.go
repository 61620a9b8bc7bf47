package geom

// Rotate24 applies the k'th entry of the 24-element cube rotation group to
// point (x, y, z) inside a dim0 x dim1 x dim2 box, returning the rotated
// point's coordinates inside the box the rotation produces. This is a
// direct transcription of original_source/src/cube.rs's `rotate_k` match,
// which this module's polycube orientation enumerator and cube symmetry
// dedup both rely on as the single source of truth for "the 24 rotations"
// (spec.md §4.2, §9: "materialise the 24 cube rotations as an explicit
// table; do not attempt to compose at runtime").
func Rotate24(k, dim0, dim1, dim2, x, y, z int) (nx, ny, nz int) {
	switch k {
	case 0:
		return x, y, z
	case 1:
		return dim0 - 1 - x, z, y
	case 2:
		return x, dim1 - 1 - z, y
	case 3:
		return x, z, dim2 - 1 - y
	case 4:
		return dim0 - 1 - y, x, z
	case 5:
		return y, dim1 - 1 - x, z
	case 6:
		return y, x, dim2 - 1 - z
	case 7:
		return y, z, x
	case 8:
		return z, x, y
	case 9:
		return dim0 - 1 - z, y, x
	case 10:
		return z, dim1 - 1 - y, x
	case 11:
		return z, y, dim2 - 1 - x
	case 12:
		return x, dim1 - 1 - y, dim2 - 1 - z
	case 13:
		return dim0 - 1 - x, y, dim2 - 1 - z
	case 14:
		return dim0 - 1 - x, dim1 - 1 - y, z
	case 15:
		return dim0 - 1 - x, dim1 - 1 - z, dim2 - 1 - y
	case 16:
		return dim0 - 1 - y, dim1 - 1 - x, dim2 - 1 - z
	case 17:
		return y, dim1 - 1 - z, dim2 - 1 - x
	case 18:
		return dim0 - 1 - y, z, dim2 - 1 - x
	case 19:
		return dim0 - 1 - y, dim1 - 1 - z, x
	case 20:
		return z, dim1 - 1 - x, dim2 - 1 - y
	case 21:
		return dim0 - 1 - z, x, dim2 - 1 - y
	case 22:
		return dim0 - 1 - z, dim1 - 1 - x, y
	case 23:
		return dim0 - 1 - z, dim1 - 1 - y, dim2 - 1 - x
	default:
		return x, y, z
	}
}

// rotationFamilies groups the 24 rotation indices by which axis
// permutation of (dim0, dim1, dim2) they require to map the box onto
// itself, following cube.rs's generate_congruent_shapes conditionals
// exactly: "x,y,z" always applies, "x,z,y" needs dim1==dim2, "y,x,z" needs
// dim0==dim1, "z,y,x" needs dim0==dim2, and "y,z,x"/"z,x,y" need a true cube.
var (
	rotationAlways  = []int{0, 12, 13, 14}
	rotationXZY     = []int{1, 2, 3, 15}
	rotationYXZ     = []int{4, 5, 6, 16}
	rotationZYX     = []int{9, 10, 11, 23}
	rotationCubeYZX = []int{7, 17, 18, 19}
	rotationCubeZXY = []int{8, 20, 21, 22}
)

// RotatedDims returns the box extents produced by rotation k: which axis of
// (dim0, dim1, dim2) lands in which output position. Grouped by the same
// six rotation families Rotate24Indices gates on.
func RotatedDims(k, dim0, dim1, dim2 int) (int, int, int) {
	switch k {
	case 0, 12, 13, 14:
		return dim0, dim1, dim2
	case 1, 2, 3, 15:
		return dim0, dim2, dim1
	case 4, 5, 6, 16:
		return dim1, dim0, dim2
	case 9, 10, 11, 23:
		return dim2, dim1, dim0
	case 7, 17, 18, 19:
		return dim1, dim2, dim0
	case 8, 20, 21, 22:
		return dim2, dim0, dim1
	default:
		return dim0, dim1, dim2
	}
}

// Rotate24Indices returns the subset of the 24 rotation indices that map a
// dim0 x dim1 x dim2 box onto a box of the same dimensions — the subgroup
// applicable to a box with that particular axis-length profile. A true
// cube (all axes equal) returns all 24; a box with exactly one pair of
// equal axes returns 8; a box with all distinct axes returns 4.
func Rotate24Indices(dim0, dim1, dim2 int) []int {
	out := append([]int(nil), rotationAlways...)
	if dim1 == dim2 {
		out = append(out, rotationXZY...)
	}
	if dim0 == dim1 {
		out = append(out, rotationYXZ...)
	}
	if dim0 == dim2 {
		out = append(out, rotationZYX...)
	}
	if dim0 == dim1 && dim1 == dim2 {
		out = append(out, rotationCubeYZX...)
		out = append(out, rotationCubeZXY...)
	}
	return out
}
