// Package board is the 2D grid model: a rectangular array of cells, some
// pre-marked as holes, plus the reflection/transpose operations spec.md's
// BoardModel calls for. Its shape — a small struct wrapping a bitmap plus
// pure transform functions — follows github.com/daystram/gambit/board's
// Board, generalised from a fixed 8x8 chessboard to an arbitrary rectangle.
package board

import (
	"errors"
	"fmt"

	"github.com/hexdeck/polytile/bitset"
)

var (
	// ErrInconsistentRow is returned when input rows are not all the same length.
	ErrInconsistentRow = errors.New("polytile/board: inconsistent row length")
	// ErrEmptyBoard is returned for a board with zero rows or zero columns.
	ErrEmptyBoard = errors.New("polytile/board: empty board")
	// ErrUnknownCell is returned for a cell value other than 0 (free) or 1 (hole).
	ErrUnknownCell = errors.New("polytile/board: cell value must be 0 or 1")
)

// Board is a Height x Width grid of cells, row-major, with a bitmap marking
// holes that no piece may cover.
type Board struct {
	Width, Height int
	Holes         bitset.Bitset
}

// New builds a Board from a rectangular grid of 0 (free) / 1 (hole) values.
func New(rows [][]int) (*Board, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyBoard
	}
	height := len(rows)
	width := len(rows[0])
	holes := bitset.New(height * width)
	for r, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInconsistentRow, r, len(row), width)
		}
		for c, v := range row {
			switch v {
			case 0:
			case 1:
				holes.Set(Index(width, r, c))
			default:
				return nil, fmt.Errorf("%w: got %d at (%d,%d)", ErrUnknownCell, v, r, c)
			}
		}
	}
	return &Board{Width: width, Height: height, Holes: holes}, nil
}

// Index returns the linear cell index of (row, col) on a board of the given width.
func Index(width, row, col int) int {
	return row*width + col
}

// Cells returns the total number of cells, free and hole alike.
func (b *Board) Cells() int {
	return b.Width * b.Height
}

// FreeCells returns the number of non-hole cells.
func (b *Board) FreeCells() int {
	return b.Cells() - b.Holes.PopCount()
}

// IsSquare reports whether Width == Height, which determines whether the
// diagonal-transpose symmetries apply (spec.md §4.6/§4.7).
func (b *Board) IsSquare() bool {
	return b.Width == b.Height
}

// InBounds reports whether (row, col) lies within the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.Height && col >= 0 && col < b.Width
}

// Transform maps a cell coordinate to another coordinate on the same-shaped
// board (possibly row/col swapped, for transpose). It is the Go equivalent
// of the reference's Board::transform(vertically, horizontally, diagonally)
// (original_source/src/board.rs), split into its constituent reflections so
// the symmetry group can be assembled rather than re-implemented per case.
type Transform func(row, col int) (row2, col2 int)

// Identity leaves coordinates unchanged.
func Identity(row, col int) (int, int) { return row, col }

// Transpose swaps row and column; only a symmetry of the board when it is square.
func Transpose(row, col int) (int, int) { return col, row }

func compose(f, g Transform) Transform {
	return func(row, col int) (int, int) {
		r, c := g(row, col)
		return f(r, c)
	}
}

// Symmetries returns every board symmetry: for a non-square board the
// Klein four-group {identity, flip-H, flip-V, flip-H∘flip-V}; for a square
// board the full 8-element dihedral group, each of those four composed
// with transpose as well (spec.md §4.6).
func (b *Board) Symmetries() []Transform {
	flipH := func(row, col int) (int, int) { return row, b.Width - 1 - col }
	flipV := func(row, col int) (int, int) { return b.Height - 1 - row, col }
	base := []Transform{
		Identity,
		flipH,
		flipV,
		compose(flipH, flipV),
	}
	if !b.IsSquare() {
		return base
	}
	out := make([]Transform, 0, 8)
	out = append(out, base...)
	for _, t := range base {
		out = append(out, compose(t, Transpose))
	}
	return out
}
