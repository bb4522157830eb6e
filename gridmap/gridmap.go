package gridmap

import "fmt"

// neighborOffsets fixes the enumeration order +x, −x, +y, −y.
// Searches depend on it for reproducible tie-breaking.
var neighborOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Grid is a width×height table of traversal costs with a start cell.
// It is immutable once built; a new map load produces a new Grid.
type Grid struct {
	width, height int
	costs         []int // row-major: costs[y*width+x]
	start         Cell
}

// New builds a Grid from rows[y][x] costs and a start cell.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs, and
// ErrStartOutOfBounds if start lies outside the grid.
// A start placed on an obstacle is accepted; searches from it find nothing.
// Complexity: O(W×H) time and memory.
func New(rows [][]int, start Cell) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	costs := make([]int, 0, w*h)
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		costs = append(costs, row...)
	}
	g := &Grid{width: w, height: h, costs: costs, start: start}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: %v outside %dx%d", ErrStartOutOfBounds, start, w, h)
	}

	return g, nil
}

// Width is the number of columns.
func (g *Grid) Width() int { return g.width }

// Height is the number of rows.
func (g *Grid) Height() int { return g.height }

// Len is the number of cells, Width×Height.
func (g *Grid) Len() int { return len(g.costs) }

// Start is the start cell declared by the map.
func (g *Grid) Start() Cell { return g.start }

// InBounds reports whether 0 ≤ c.X < Width and 0 ≤ c.Y < Height.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Validate returns ErrOutOfBounds (with the cell and grid size attached)
// when c lies outside the grid, nil otherwise.
func (g *Grid) Validate(c Cell) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v outside %dx%d", ErrOutOfBounds, c, g.width, g.height)
	}
	return nil
}

// IsWalkable reports whether c is inside the grid and its cost is ≥ 0.
func (g *Grid) IsWalkable(c Cell) bool {
	return g.InBounds(c) && g.costs[g.index(c)] >= 0
}

// CostOf returns the stored cost of c. A negative value only signals an
// obstacle; it must never be added into a path cost.
func (g *Grid) CostOf(c Cell) (int, error) {
	if err := g.Validate(c); err != nil {
		return 0, err
	}
	return g.costs[g.index(c)], nil
}

// Neighbors returns the up-to-4 axis-aligned cells adjacent to c that are
// in bounds and walkable, in the order +x, −x, +y, −y.
// Complexity: O(1).
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := Cell{X: c.X + d[0], Y: c.Y + d[1]}
		if g.IsWalkable(n) {
			out = append(out, n)
		}
	}
	return out
}

// Rows returns a deep copy of the costs as rows[y][x].
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.height)
	for y := range rows {
		rows[y] = make([]int, g.width)
		copy(rows[y], g.costs[y*g.width:(y+1)*g.width])
	}
	return rows
}

// index maps c to a row-major index: y*Width + x.
func (g *Grid) index(c Cell) int {
	return c.Y*g.width + c.X
}

// cellAt converts a row-major index back to a Cell.
func (g *Grid) cellAt(idx int) Cell {
	return Cell{X: idx % g.width, Y: idx / g.width}
}
