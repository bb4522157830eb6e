package gridmap

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for gridmap operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridmap: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridmap: all rows must have the same length")
	// ErrStartOutOfBounds indicates the declared start cell is outside the grid.
	ErrStartOutOfBounds = errors.New("gridmap: start cell out of bounds")
	// ErrOutOfBounds indicates a cell outside the grid was queried or selected.
	ErrOutOfBounds = errors.New("gridmap: cell out of bounds")
	// ErrBadCell indicates a textual cell could not be parsed as "x,y".
	ErrBadCell = errors.New("gridmap: cell must be written as x,y")
	// ErrFormat is matched (via errors.Is) by every *FormatError.
	ErrFormat = errors.New("gridmap: malformed map")
)

// Obstacle is the canonical cost of an impassable cell. Any negative cost blocks.
const Obstacle = -1

// Cell is a column/row coordinate. Identity is value-based, so Cell is a map key.
type Cell struct {
	X int `json:"x"` // column
	Y int `json:"y"` // row
}

// String renders the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Less is the total order on cells: column first, then row.
func (c Cell) Less(o Cell) bool {
	if c.X != o.X {
		return c.X < o.X
	}
	return c.Y < o.Y
}

// ParseCell reads a destination typed as "x,y" (spaces around either
// number are allowed). It does not check bounds; use Grid.Validate for that.
func ParseCell(s string) (Cell, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Cell{}, fmt.Errorf("%w: %q", ErrBadCell, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %q", ErrBadCell, s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %q", ErrBadCell, s)
	}
	return Cell{X: x, Y: y}, nil
}

// FormatError reports why a map file could not be parsed.
// Line is 1-based; zero means the problem is not tied to one line
// (for example, the input ended before all rows were read).
type FormatError struct {
	Line   int
	Reason string
	Err    error // underlying cause, e.g. a *strconv.NumError; may be nil
}

func (e *FormatError) Error() string {
	msg := "gridmap: malformed map"
	if e.Line > 0 {
		msg += fmt.Sprintf(" (line %d)", e.Line)
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes the underlying cause.
func (e *FormatError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrFormat) true for any *FormatError.
func (e *FormatError) Is(target error) bool { return target == ErrFormat }
