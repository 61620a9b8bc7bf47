package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hexdeck/polytile/internal/render"
	"github.com/hexdeck/polytile/polytile"
)

// runRender tiles a board or cube and prints the first solution found in
// colour, the only subcommand allowed to import internal/render.
func runRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	n := fs.Int("n", 5, "piece size")
	dims := fs.Int("dim", 2, "2 for a board, 3 for a cube")
	boardPath := fs.String("board", "", "path to a board file ('.' free, '#' hole)")
	cubePath := fs.String("cube", "", "path to a cube file (layers of '.'/'#', blank line separated)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch *dims {
	case 2:
		if *boardPath == "" {
			return fmt.Errorf("render: -board is required")
		}
		b, err := readBoard(*boardPath)
		if err != nil {
			return err
		}
		results, err := polytile.SolvePolyominoDLX(b, *n, 1)
		if err != nil {
			return err
		}
		if len(results) == 0 {
			fmt.Println("no tiling found")
			return nil
		}
		render.Board(os.Stdout, results[0])
	case 3:
		if *cubePath == "" {
			return fmt.Errorf("render: -cube is required")
		}
		c, err := readCube(*cubePath)
		if err != nil {
			return err
		}
		results, err := polytile.SolvePolycubeDLX(c, *n, 1)
		if err != nil {
			return err
		}
		if len(results) == 0 {
			fmt.Println("no tiling found")
			return nil
		}
		render.Cube(os.Stdout, results[0])
	default:
		return fmt.Errorf("render: -dim must be 2 or 3, got %d", *dims)
	}
	return nil
}
