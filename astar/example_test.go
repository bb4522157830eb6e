// File: astar/example_test.go
package astar_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridmap"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Find
////////////////////////////////////////////////////////////////////////////////

// ExampleFind routes around a wall on a small map.
// Scenario:
//
//	S # .
//	. # G
//	. . .
//
// Expect the path to go down, across the bottom row, and up to G.
func ExampleFind() {
	g, _ := gridmap.New([][]int{
		{0, -1, 0},
		{1, -1, 0},
		{1, 1, 1},
	}, gridmap.Cell{X: 0, Y: 0})

	res, err := astar.Find(g, g.Start(), gridmap.Cell{X: 2, Y: 1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("found:", res.Found)
	fmt.Println("path:", res.Path)
	fmt.Println("cost:", res.Cost)

	// Output:
	// found: true
	// path: [(0,0) (0,1) (0,2) (1,2) (2,2) (2,1)]
	// cost: 4
}

////////////////////////////////////////////////////////////////////////////////
// Example: NoPathFound
////////////////////////////////////////////////////////////////////////////////

// ExampleFind_noPath shows that an unreachable goal is an ordinary result.
func ExampleFind_noPath() {
	g, _ := gridmap.New([][]int{{0, -1, 0}}, gridmap.Cell{})

	res, err := astar.Find(g, g.Start(), gridmap.Cell{X: 2, Y: 0})
	fmt.Println("err:", err)
	fmt.Println("found:", res.Found, "path:", res.Path)

	// Output:
	// err: <nil>
	// found: false path: []
}

////////////////////////////////////////////////////////////////////////////////
// Example: Search
////////////////////////////////////////////////////////////////////////////////

// ExampleSearch drives the search one expansion at a time.
func ExampleSearch() {
	g, _ := gridmap.New([][]int{{0, 0, 0}}, gridmap.Cell{})
	s, _ := astar.NewSearch(g, g.Start(), gridmap.Cell{X: 2, Y: 0}, astar.WithHeuristic(astar.Manhattan))

	for !s.State().Done() {
		st := s.Step()
		fmt.Println(st, s.Current())
	}

	// Output:
	// expanding (0,0)
	// expanding (1,0)
	// found (2,0)
}
