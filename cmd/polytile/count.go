package main

import (
	"flag"
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/hexdeck/polytile/polycube"
	"github.com/hexdeck/polytile/polyomino"
)

// runCount enumerates free polyominoes or polycubes of a given size and
// reports the count and elapsed time, the same shape as cmd/gambit's perft
// report (golang.org/x/text/message for thousands separators).
func runCount(args []string) error {
	fs := flag.NewFlagSet("count", flag.ExitOnError)
	n := fs.Int("n", 5, "piece size")
	dims := fs.Int("dim", 2, "2 for polyominoes, 3 for polycubes")
	if err := fs.Parse(args); err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	start := time.Now()

	switch *dims {
	case 2:
		shapes := polyomino.Enumerate(*n)
		p.Printf("free %d-ominoes: %d (%s)\n", *n, len(shapes), time.Since(start))
	case 3:
		shapes := polycube.Enumerate(*n)
		p.Printf("free %d-cubes: %d (%s)\n", *n, len(shapes), time.Since(start))
	default:
		return fmt.Errorf("count: -dim must be 2 or 3, got %d", *dims)
	}
	return nil
}
