// Package gridpath finds least-cost routes across rectangular cost maps.
//
// A map is a width×height table of integer costs: a cell costing c ≥ 0 can
// be entered for c, a negative cell is a wall. Maps are plain text files:
//
//	<width> <height>
//	<start_col> <start_row>
//	<row_0: width integers>
//	...
//
// Everything is organized under these packages:
//
//	gridmap/          — Cell, the immutable Grid, the text loader/writer, regions
//	astar/            — A* search (Find, step-wise Search, FindAll), heuristics
//	render/           — text and PNG drawing of a map with a path overlay
//	server/           — HTTP API over an in-memory map store
//	cmd/gridpath/     — command line: load a map, pick destinations, print paths
//	cmd/gridpathd/    — HTTP daemon
//
// Quick example:
//
//	g, err := gridmap.Load("maps/demo.txt")
//	if err != nil { ... }
//	res, _ := astar.Find(g, g.Start(), gridmap.Cell{X: 4, Y: 2})
//	if res.Found { fmt.Println(res.Path, res.Cost) }
//
// The default heuristic reproduces the map viewer's paths and is not
// admissible; use astar.WithHeuristic(astar.Manhattan) or astar.Zero when
// the cheapest path is required. See the astar package doc.
package gridpath
