package astar

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/gridpath/gridmap"
)

// Heuristic estimates the remaining cost from a cell to the goal.
type Heuristic func(from, to gridmap.Cell) float64

// Blended adds the Euclidean and Manhattan distances: sqrt(dx²+dy²) + dx + dy.
// Not admissible on a 4-connected grid; see the package doc.
func Blended(from, to gridmap.Cell) float64 {
	dx, dy := delta(from, to)
	return math.Sqrt(float64(dx*dx+dy*dy)) + float64(dx+dy)
}

// Manhattan is dx + dy.
func Manhattan(from, to gridmap.Cell) float64 {
	dx, dy := delta(from, to)
	return float64(dx + dy)
}

// Zero always returns 0, reducing A* to Dijkstra's algorithm.
func Zero(_, _ gridmap.Cell) float64 { return 0 }

// ParseHeuristic maps a configuration name to a Heuristic.
// Accepted (case-insensitive): "blended", "manhattan", "zero", "dijkstra".
// The empty string selects Blended.
func ParseHeuristic(name string) (Heuristic, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "blended":
		return Blended, nil
	case "manhattan":
		return Manhattan, nil
	case "zero", "dijkstra":
		return Zero, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
	}
}

// delta returns the absolute coordinate differences.
func delta(a, b gridmap.Cell) (dx, dy int) {
	dx, dy = a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx, dy
}
