package main

import (
	"flag"
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/hexdeck/polytile/polytile"
)

// runSolve tiles a board with free n-ominoes and reports how many distinct
// (up to symmetry) tilings exist.
func runSolve(args []string) error {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	n := fs.Int("n", 5, "piece size")
	boardPath := fs.String("board", "", "path to a board file ('.' free, '#' hole)")
	engine := fs.String("engine", "dlx", "dlx or bt")
	cap := fs.Int("cap", 0, "stop after this many solutions (0 = unbounded)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *boardPath == "" {
		return fmt.Errorf("solve: -board is required")
	}

	b, err := readBoard(*boardPath)
	if err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	start := time.Now()

	switch *engine {
	case "dlx":
		results, err := polytile.SolvePolyominoDLX(b, *n, *cap)
		if err != nil {
			return err
		}
		p.Printf("%d distinct tilings (dlx, %s)\n", len(results), time.Since(start))
	case "bt":
		results, err := polytile.SolvePolyominoBT(b, *n, *cap)
		if err != nil {
			return err
		}
		p.Printf("%d distinct tilings (bt, %s)\n", len(results), time.Since(start))
	default:
		return fmt.Errorf("solve: -engine must be dlx or bt, got %q", *engine)
	}
	return nil
}
