package board

import "strings"

// Solved is a tiled board: every cell holds the kind index of the piece
// covering it, or NumPieces for a hole cell. It is the canonical comparison
// form the deduplicator keys on (spec.md §3, §9 "cell-by-cell
// representation, not piece-kind relabelling").
type Solved struct {
	Width, Height int
	NumPieces     int
	Kind          []int
}

// NewSolved allocates a Solved grid with every cell initialised to the hole
// tag; callers (the solvers) then fill in piece coverage.
func NewSolved(width, height, numPieces int) *Solved {
	kind := make([]int, width*height)
	for i := range kind {
		kind[i] = numPieces
	}
	return &Solved{Width: width, Height: height, NumPieces: numPieces, Kind: kind}
}

// Transform returns a new Solved with cells permuted through t, the
// board-symmetry analogue of applying t to every cell of the grid.
func (s *Solved) Transform(t Transform) *Solved {
	out := &Solved{Width: s.Width, Height: s.Height, NumPieces: s.NumPieces, Kind: make([]int, len(s.Kind))}
	for row := 0; row < s.Height; row++ {
		for col := 0; col < s.Width; col++ {
			r2, c2 := t(row, col)
			out.Kind[Index(out.Width, r2, c2)] = s.Kind[Index(s.Width, row, col)]
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

// Dump renders the grid as plain text, one character per cell followed by a
// space (base-36 kind index, '.' for holes), highest row first, the
// undecorated analogue of the teacher's Board.Dump().
func (s *Solved) Dump() string {
	var sb strings.Builder
	for row := s.Height - 1; row >= 0; row-- {
		for col := 0; col < s.Width; col++ {
			k := s.Kind[Index(s.Width, row, col)]
			if k == s.NumPieces {
				sb.WriteByte('.')
			} else {
				sb.WriteByte("0123456789abcdefghijklmnopqrstuvwxyz"[k%36])
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
