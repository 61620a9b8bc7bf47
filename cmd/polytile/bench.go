package main

import (
	"flag"
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/hexdeck/polytile/polytile"
)

// runBench times both solve engines against the same board and piece size,
// for comparing bitmap backtracking against dancing links.
func runBench(args []string) error {
	fs := flag.NewFlagSet("bench", flag.ExitOnError)
	n := fs.Int("n", 5, "piece size")
	boardPath := fs.String("board", "", "path to a board file ('.' free, '#' hole)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *boardPath == "" {
		return fmt.Errorf("bench: -board is required")
	}

	b, err := readBoard(*boardPath)
	if err != nil {
		return err
	}

	p := message.NewPrinter(language.English)

	btStart := time.Now()
	btResults, err := polytile.SolvePolyominoBT(b, *n, 0)
	if err != nil {
		return err
	}
	btElapsed := time.Since(btStart)

	dlxStart := time.Now()
	dlxResults, err := polytile.SolvePolyominoDLX(b, *n, 0)
	if err != nil {
		return err
	}
	dlxElapsed := time.Since(dlxStart)

	p.Printf("bitmap:  %d tilings in %s\n", len(btResults), btElapsed)
	p.Printf("dlx:     %d tilings in %s\n", len(dlxResults), dlxElapsed)
	if len(btResults) != len(dlxResults) {
		return fmt.Errorf("bench: engines disagree: bitmap=%d dlx=%d", len(btResults), len(dlxResults))
	}
	return nil
}
