// Package table reads the whitespace-delimited ASCII sample tables that
// grid-search output is exchanged in: one (x, y, value) row per sample.
package table

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Sample is one (x, y, value) row of a misfit or likelihood table.
type Sample struct {
	X float64
	Y float64
	V float64
}

// Table holds the parsed samples of one input file.
type Table struct {
	Path    string
	Samples []Sample
}

// Read parses the named file. An empty table is an error: downstream
// range derivation has no meaning without at least one row.
func Read(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open table: %w", err)
	}
	defer f.Close()

	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	t.Path = path
	return t, nil
}

// Parse reads samples from r. Blank lines and lines starting with '#'
// or '>' are skipped, following the toolkit's table conventions. Rows
// need at least three numeric columns; extra columns are ignored.
func Parse(r io.Reader) (*Table, error) {
	t := &Table{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ">") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, fmt.Errorf("line %d: expected 3 columns, got %d", lineNo, len(fields))
		}

		var s Sample
		var err error
		if s.X, err = strconv.ParseFloat(fields[0], 64); err != nil {
			return nil, fmt.Errorf("line %d: bad x value %q", lineNo, fields[0])
		}
		if s.Y, err = strconv.ParseFloat(fields[1], 64); err != nil {
			return nil, fmt.Errorf("line %d: bad y value %q", lineNo, fields[1])
		}
		if s.V, err = strconv.ParseFloat(fields[2], 64); err != nil {
			return nil, fmt.Errorf("line %d: bad value %q", lineNo, fields[2])
		}
		t.Samples = append(t.Samples, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(t.Samples) == 0 {
		return nil, fmt.Errorf("empty table")
	}
	return t, nil
}

// Columns returns the x, y and value columns as separate slices.
func (t *Table) Columns() (xs, ys, vs []float64) {
	xs = make([]float64, len(t.Samples))
	ys = make([]float64, len(t.Samples))
	vs = make([]float64, len(t.Samples))
	for i, s := range t.Samples {
		xs[i], ys[i], vs[i] = s.X, s.Y, s.V
	}
	return xs, ys, vs
}

// Best returns the sample with the smallest value, the best-fitting
// source for misfit tables. Ties keep the first occurrence.
func (t *Table) Best() Sample {
	best := t.Samples[0]
	for _, s := range t.Samples[1:] {
		if s.V < best.V {
			best = s
		}
	}
	return best
}

// Worst returns the sample with the largest value. For likelihood-style
// tables this is the best-fitting source.
func (t *Table) Worst() Sample {
	worst := t.Samples[0]
	for _, s := range t.Samples[1:] {
		if s.V > worst.V {
			worst = s
		}
	}
	return worst
}
