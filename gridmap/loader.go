package gridmap

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// maxLineBytes bounds a single map line; wide maps exceed bufio's 64 KiB default.
const maxLineBytes = 4 << 20

// lineReader yields non-blank lines with their 1-based line numbers.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func newLineReader(r io.Reader) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &lineReader{sc: sc}
}

// next returns the fields of the next non-blank line. ok is false at EOF.
func (lr *lineReader) next() (fields []string, ok bool, err error) {
	for lr.sc.Scan() {
		lr.line++
		fields = strings.Fields(lr.sc.Text())
		if len(fields) > 0 {
			return fields, true, nil
		}
	}
	if err = lr.sc.Err(); err != nil {
		return nil, false, fmt.Errorf("gridmap: read map: %w", err)
	}
	return nil, false, nil
}

// ints converts every field to an int, reporting the first bad token.
func (lr *lineReader) ints(fields []string) ([]int, error) {
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, &FormatError{Line: lr.line, Reason: fmt.Sprintf("token %d is not an integer", i+1), Err: err}
		}
		out[i] = v
	}
	return out, nil
}

// pair reads a line that must hold exactly two integers.
func (lr *lineReader) pair(what string) (int, int, error) {
	fields, ok, err := lr.next()
	if err != nil {
		return 0, 0, err
	}
	if !ok {
		return 0, 0, &FormatError{Reason: "missing " + what + " line"}
	}
	if len(fields) != 2 {
		return 0, 0, &FormatError{Line: lr.line, Reason: fmt.Sprintf("%s line needs 2 integers, got %d tokens", what, len(fields))}
	}
	vals, err := lr.ints(fields)
	if err != nil {
		return 0, 0, err
	}
	return vals[0], vals[1], nil
}

// Parse reads a map in the text format described in the package doc.
// Blank lines are ignored. Every malformed input yields a *FormatError
// (errors.Is(err, ErrFormat) holds); read failures are returned wrapped.
// Complexity: O(W×H).
func Parse(r io.Reader) (*Grid, error) {
	lr := newLineReader(r)

	// 1) Dimensions.
	width, height, err := lr.pair("dimensions")
	if err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, &FormatError{Line: lr.line, Reason: fmt.Sprintf("dimensions must be positive, got %dx%d", width, height)}
	}

	// 2) Start cell.
	sx, sy, err := lr.pair("start")
	if err != nil {
		return nil, err
	}
	startLine := lr.line

	// 3) Exactly height rows of width integers.
	rows := make([][]int, 0, height)
	for len(rows) < height {
		fields, ok, err := lr.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, &FormatError{Reason: fmt.Sprintf("declared height %d but found %d rows", height, len(rows))}
		}
		if len(fields) != width {
			return nil, &FormatError{Line: lr.line, Reason: fmt.Sprintf("row %d has %d columns, want %d", len(rows), len(fields), width)}
		}
		row, err := lr.ints(fields)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	// 4) Nothing but blank lines may follow.
	if _, extra, err := lr.next(); err != nil {
		return nil, err
	} else if extra {
		return nil, &FormatError{Line: lr.line, Reason: fmt.Sprintf("more than the declared %d rows", height)}
	}

	g, err := New(rows, Cell{X: sx, Y: sy})
	if errors.Is(err, ErrStartOutOfBounds) {
		return nil, &FormatError{Line: startLine, Reason: "start outside declared bounds", Err: err}
	}
	return g, err
}

// Load opens path and parses it with Parse.
func Load(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gridmap: open map: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Write emits g in the text format accepted by Parse.
func Write(w io.Writer, g *Grid) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n%d %d\n", g.width, g.height, g.start.X, g.start.Y)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if x > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.Itoa(g.costs[y*g.width+x]))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
