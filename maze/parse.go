package maze

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadCells reads a symbol table, one row per line. Tokens are separated by
// whitespace; a line holding a single multi-character word is split into one
// token per character. Blank lines are skipped.
func ReadCells(r io.Reader) ([][]string, error) {
	var cells [][]string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		switch {
		case len(fields) == 0:
			continue
		case len(fields) == 1 && len(fields[0]) > 1:
			fields = strings.Split(fields[0], "")
		}
		cells = append(cells, fields)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read grid: %w", err)
	}
	return cells, nil
}

// Parse reads and validates a grid from r.
func Parse(r io.Reader, opts ...Option) (*Grid, error) {
	cells, err := ReadCells(r)
	if err != nil {
		return nil, err
	}
	return New(cells, opts...)
}

// Load reads and validates the grid stored in the file at path.
func Load(path string, opts ...Option) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open grid file %s: %w", path, err)
	}
	defer f.Close()

	g, err := Parse(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("invalid grid in %s: %w", path, err)
	}
	return g, nil
}
