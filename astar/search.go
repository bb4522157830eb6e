package astar

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"
)

// Search holds the mutable ledger of one A* run and advances it one
// expansion at a time. Use Find to run to completion; use Search directly
// to drive a visualiser or to inspect intermediate state.
//
// A Search is not safe for concurrent use; independent Searches over the
// same Grid are.
type Search struct {
	grid      *gridmap.Grid // read-only within the search
	start     gridmap.Cell
	goal      gridmap.Cell
	heuristic Heuristic

	frontier *heap.Heap[entry]             // min-heap keyed by (f, X, Y)
	settled  mapset.Set[gridmap.Cell]      // cells whose cost is final
	cost     map[gridmap.Cell]int          // best-known g per cell
	cameFrom map[gridmap.Cell]gridmap.Cell // predecessor on the best-known path

	state    State
	current  gridmap.Cell
	expanded int
	path     []gridmap.Cell
}

// NewSearch prepares a search from start to goal on g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. Options must be valid (ErrNilHeuristic, ErrBadWorkers).
//
// A start or goal that is out of bounds or not walkable is not an error:
// the frontier starts empty and the first Step reports Exhausted.
func NewSearch(g *gridmap.Grid, start, goal gridmap.Cell, opts ...Option) (*Search, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	s := &Search{
		grid:      g,
		start:     start,
		goal:      goal,
		heuristic: cfg.Heuristic,
		frontier:  newFrontier(),
		settled:   mapset.New[gridmap.Cell](),
		cost:      make(map[gridmap.Cell]int),
		cameFrom:  make(map[gridmap.Cell]gridmap.Cell),
		state:     Initialized,
		current:   start,
	}

	if g.IsWalkable(start) && g.IsWalkable(goal) {
		s.cost[start] = 0
		s.frontier.Push(entry{f: s.heuristic(start, goal), cell: start})
	}

	return s, nil
}

// Step pops the next live frontier entry and either finishes (Found) or
// relaxes its neighbours (Expanding). Once a terminal state is reached,
// further calls are no-ops returning that state.
func (s *Search) Step() State {
	if s.state.Done() {
		return s.state
	}

	for {
		// 1) Pop the lowest (f, cell). An empty frontier means the goal is unreachable.
		e, ok := s.frontier.Pop()
		if !ok {
			s.state = Exhausted
			return s.state
		}

		// 2) Skip stale duplicates of cells that were already settled.
		if s.settled.Has(e.cell) {
			continue
		}
		s.current = e.cell
		s.expanded++

		// 3) Goal reached: walk predecessors back to start.
		if e.cell == s.goal {
			s.path = s.reconstruct()
			s.state = Found
			return s.state
		}

		// 4) Settle and relax.
		s.settled.Put(e.cell)
		s.relax(e.cell)
		s.state = Expanding
		return s.state
	}
}

// relax pushes every unsettled neighbour of u whose cost strictly improves.
func (s *Search) relax(u gridmap.Cell) {
	gu := s.cost[u]
	for _, v := range s.grid.Neighbors(u) {
		if s.settled.Has(v) {
			continue
		}
		// Neighbors only yields in-bounds walkable cells, so CostOf cannot fail
		// and the cost is never negative.
		w, _ := s.grid.CostOf(v)
		newG := gu + w
		if old, seen := s.cost[v]; seen && newG >= old {
			continue
		}
		s.cost[v] = newG
		s.cameFrom[v] = u
		s.frontier.Push(entry{f: float64(newG) + s.heuristic(v, s.goal), cell: v})
	}
}

// reconstruct walks cameFrom from goal to start and reverses the result.
func (s *Search) reconstruct() []gridmap.Cell {
	path := []gridmap.Cell{s.goal}
	for cur := s.goal; cur != s.start; {
		cur = s.cameFrom[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Run steps until a terminal state and returns the Result.
func (s *Search) Run() Result {
	for !s.Step().Done() {
	}
	return s.Result()
}

// State returns the current phase.
func (s *Search) State() State { return s.state }

// Current is the cell most recently popped (the start before the first Step).
func (s *Search) Current() gridmap.Cell { return s.current }

// Settled reports whether c has been finalised.
func (s *Search) Settled(c gridmap.Cell) bool { return s.settled.Has(c) }

// FrontierLen is the number of frontier entries, stale ones included.
func (s *Search) FrontierLen() int { return s.frontier.Size() }

// CostSoFar returns the best-known accumulated cost to c.
func (s *Search) CostSoFar(c gridmap.Cell) (int, bool) {
	g, ok := s.cost[c]
	return g, ok
}

// Result reports the outcome so far. Path and Cost are set only once Found.
func (s *Search) Result() Result {
	r := Result{Expanded: s.expanded, Found: s.state == Found}
	if r.Found {
		r.Path = append([]gridmap.Cell(nil), s.path...)
		r.Cost = s.cost[s.goal]
	}
	return r
}

// String summarises the search for logs.
func (s *Search) String() string {
	return fmt.Sprintf("astar %v→%v %s expanded=%d frontier=%d",
		s.start, s.goal, s.state, s.expanded, s.frontier.Size())
}
