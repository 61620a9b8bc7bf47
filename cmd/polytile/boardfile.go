package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/hexdeck/polytile/board"
	"github.com/hexdeck/polytile/cube"
)

// readBoard parses a board description file: one line per row, '.' for a
// free cell and '#' for a hole. Blank lines are skipped; there is no
// comment syntax, so a line starting with '#' is a row of the board.
func readBoard(path string) (*board.Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows [][]int
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line == "" {
			continue
		}
		row := make([]int, 0, len(line))
		for _, ch := range line {
			switch ch {
			case '.':
				row = append(row, 0)
			case '#':
				row = append(row, 1)
			default:
				return nil, fmt.Errorf("readBoard: unexpected character %q in %s", ch, path)
			}
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return board.New(rows)
}

// readCube parses a cube description file: layers in x order, each layer a
// block of rows ('.' free, '#' hole) the same shape as a readBoard board,
// separated by a blank line.
func readCube(path string) (*cube.Cube, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var layers [][][]int
	var rows [][]int
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line == "" {
			if len(rows) > 0 {
				layers = append(layers, rows)
				rows = nil
			}
			continue
		}
		row := make([]int, 0, len(line))
		for _, ch := range line {
			switch ch {
			case '.':
				row = append(row, 0)
			case '#':
				row = append(row, 1)
			default:
				return nil, fmt.Errorf("readCube: unexpected character %q in %s", ch, path)
			}
		}
		rows = append(rows, row)
	}
	if len(rows) > 0 {
		layers = append(layers, rows)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cube.New(layers)
}
