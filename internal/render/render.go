// Package render prints a solved tiling to a terminal in colour. It is
// strictly a CLI concern: only cmd/polytile imports it, no library package, the
// same carve-out spec.md draws around colourised board printing
// (original_source/src/board.rs's pprint used the `colored` crate the same
// way). Kept out of the core library so piece-kind colouring never leaks
// into library code that might run headless or under test.
package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/hexdeck/polytile/board"
	"github.com/hexdeck/polytile/cube"
)

var palette = []*color.Color{
	color.New(color.FgRed),
	color.New(color.FgGreen),
	color.New(color.FgYellow),
	color.New(color.FgBlue),
	color.New(color.FgMagenta),
	color.New(color.FgCyan),
	color.New(color.FgHiRed),
	color.New(color.FgHiGreen),
	color.New(color.FgHiYellow),
	color.New(color.FgHiBlue),
	color.New(color.FgHiMagenta),
	color.New(color.FgHiCyan),
}

func colorFor(kind int) *color.Color {
	return palette[kind%len(palette)]
}

// Board writes s to w, one coloured glyph per cell, a row per board row.
func Board(w io.Writer, s *board.Solved) {
	for row := s.Height - 1; row >= 0; row-- {
		for col := 0; col < s.Width; col++ {
			k := s.Kind[board.Index(s.Width, row, col)]
			writeCell(w, k, s.NumPieces)
		}
		fmt.Fprintln(w)
	}
}

// Cube writes s to w, one layer at a time.
func Cube(w io.Writer, s *cube.Solved) {
	for x := 0; x < s.DX; x++ {
		fmt.Fprintf(w, "layer %d\n", x)
		for y := s.DY - 1; y >= 0; y-- {
			for z := 0; z < s.DZ; z++ {
				k := s.Kind[cube.Index(s.DY, s.DZ, x, y, z)]
				writeCell(w, k, s.NumPieces)
			}
			fmt.Fprintln(w)
		}
	}
}

func writeCell(w io.Writer, kind, numPieces int) {
	if kind == numPieces {
		fmt.Fprint(w, ". ")
		return
	}
	colorFor(kind).Fprintf(w, "%s ", string("0123456789abcdefghijklmnopqrstuvwxyz"[kind%36]))
}
