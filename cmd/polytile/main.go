// Command polytile enumerates free polyominoes/polycubes and tiles boards
// and boxes with them. Subcommand dispatch follows
// github.com/daystram/gambit/cmd/gambit's main.go: a flat switch on
// os.Args[1], each subcommand its own realMain-style function returning an
// error that main turns into a log.Fatal.
package main

import (
	"fmt"
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "count":
		err = runCount(os.Args[2:])
	case "solve":
		err = runSolve(os.Args[2:])
	case "bench":
		err = runBench(os.Args[2:])
	case "render":
		err = runRender(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("polytile: %v", err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: polytile <count|solve|bench|render> [flags]")
}
