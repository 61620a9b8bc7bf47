package cube

import "strings"

// Solved is a tiled box: every cell holds the kind index of the piece
// covering it, or NumPieces for a hole cell. Same role as board.Solved,
// generalised to three axes.
type Solved struct {
	DX, DY, DZ int
	NumPieces  int
	Kind       []int
}

// NewSolved allocates a Solved box with every cell initialised to the hole tag.
func NewSolved(dx, dy, dz, numPieces int) *Solved {
	kind := make([]int, dx*dy*dz)
	for i := range kind {
		kind[i] = numPieces
	}
	return &Solved{DX: dx, DY: dy, DZ: dz, NumPieces: numPieces, Kind: kind}
}

// Rotate returns a new Solved with cells permuted through the k'th box
// rotation (geom.Rotate24).
func (s *Solved) Rotate(k int) *Solved {
	ndx, ndy, ndz := rotatedDims(k, s.DX, s.DY, s.DZ)
	out := NewSolved(ndx, ndy, ndz, s.NumPieces)
	for x := 0; x < s.DX; x++ {
		for y := 0; y < s.DY; y++ {
			for z := 0; z < s.DZ; z++ {
				nx, ny, nz := geomRotate(k, s.DX, s.DY, s.DZ, x, y, z)
				out.Kind[Index(out.DY, out.DZ, nx, ny, nz)] = s.Kind[Index(s.DY, s.DZ, x, y, z)]
			}
		}
	}
	return out
}

// Key renders the grid as a comparable string for use as a dedup set key.
func (s *Solved) Key() string {
	b := make([]byte, len(s.Kind)*2)
	for i, k := range s.Kind {
		b[2*i] = byte(k)
		b[2*i+1] = byte(k >> 8)
	}
	return string(b)
}

// Dump renders one text layer per X slice, base-36 kind index per cell,
// '.' for holes — the 3D analogue of board.Solved.Dump.
func (s *Solved) Dump() string {
	var sb strings.Builder
	for x := 0; x < s.DX; x++ {
		fmtLayerHeader(&sb, x)
		for y := s.DY - 1; y >= 0; y-- {
			for z := 0; z < s.DZ; z++ {
				k := s.Kind[Index(s.DY, s.DZ, x, y, z)]
				if k == s.NumPieces {
					sb.WriteByte('.')
				} else {
					sb.WriteByte("0123456789abcdefghijklmnopqrstuvwxyz"[k%36])
				}
				sb.WriteByte(' ')
			}
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func fmtLayerHeader(sb *strings.Builder, x int) {
	sb.WriteString("layer ")
	sb.WriteString(itoa(x))
	sb.WriteByte('\n')
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
