// Package astar finds least-cost paths on a gridmap.Grid with A* search.
//
// A* expands the frontier cell with the lowest f = g + h, where g is the
// accumulated cost from the start (the sum of the costs of every entered
// cell) and h is a heuristic estimate of the remaining cost to the goal.
// Moving is 4-connected; obstacle cells (cost < 0) are never entered.
//
// Heuristics:
//
//   - Blended (default): sqrt(dx²+dy²) + dx + dy. It overestimates the true
//     remaining 4-connected cost for any non-zero offset, so the search is
//     greedy-biased and returns a good path quickly, but not always the
//     cheapest one. It is kept as the default because the paths it produces
//     are the reference behaviour of the map viewer.
//   - Manhattan: dx + dy. Admissible whenever every walkable cell costs ≥ 1,
//     which makes the returned path optimal for such maps.
//   - Zero: turns the search into Dijkstra's algorithm (uniform-cost search).
//     Always optimal, including maps with zero-cost cells.
//
// Determinism:
//
//   - Frontier ties on f are broken by the cell's total order (column, then
//     row), and neighbours are relaxed in the gridmap order +x, −x, +y, −y.
//     Identical inputs therefore always yield identical paths.
//   - A cell can sit in the frontier more than once ("lazy decrease-key");
//     entries for already-settled cells are skipped when popped.
//
// Outcomes:
//
//   - Result.Found reports whether the goal was reached. An unreachable,
//     blocked, or out-of-bounds goal is a normal outcome (Found=false, nil
//     Path), never an error and never a partial path.
//   - Errors are reserved for programming mistakes: ErrNilGrid,
//     ErrNilHeuristic, ErrBadWorkers.
//
// Concurrency:
//
//   - Every search owns its ledger (costs, predecessors, settled set,
//     frontier). The Grid is read-only, so independent searches can run in
//     parallel without locking; FindAll does exactly that.
//
// Complexity:
//
//   - Time:  O(N log N) for N = W×H cells in the worst case.
//   - Space: O(N) for the ledger plus O(E) heap entries under lazy deletion.
package astar
