package geom

import "testing"

func TestRotate24IsBijectionOnBox(t *testing.T) {
	boxes := [][3]int{{2, 3, 4}, {2, 2, 3}, {3, 3, 3}}
	for _, box := range boxes {
		dim0, dim1, dim2 := box[0], box[1], box[2]
		for _, k := range Rotate24Indices(dim0, dim1, dim2) {
			ndim0, ndim1, ndim2 := RotatedDims(k, dim0, dim1, dim2)
			seen := make(map[[3]int]bool)
			for x := 0; x < dim0; x++ {
				for y := 0; y < dim1; y++ {
					for z := 0; z < dim2; z++ {
						nx, ny, nz := Rotate24(k, dim0, dim1, dim2, x, y, z)
						if nx < 0 || nx >= ndim0 || ny < 0 || ny >= ndim1 || nz < 0 || nz >= ndim2 {
							t.Fatalf("box=%v k=%d: (%d,%d,%d) -> (%d,%d,%d) out of (%d,%d,%d)", box, k, x, y, z, nx, ny, nz, ndim0, ndim1, ndim2)
						}
						key := [3]int{nx, ny, nz}
						if seen[key] {
							t.Fatalf("box=%v k=%d: collision at %+v", box, k, key)
						}
						seen[key] = true
					}
				}
			}
		}
	}
}

func TestRotate24IndicesCardinality(t *testing.T) {
	cases := []struct {
		dim0, dim1, dim2 int
		want             int
	}{
		{2, 3, 4, 4},
		{2, 2, 3, 8},
		{3, 3, 3, 24},
	}
	for _, c := range cases {
		got := Rotate24Indices(c.dim0, c.dim1, c.dim2)
		if len(got) != c.want {
			t.Errorf("Rotate24Indices(%d,%d,%d) has %d entries, want %d", c.dim0, c.dim1, c.dim2, len(got), c.want)
		}
	}
}
