package astar

import (
	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/zyedidia/generic/heap"
)

// entry is one frontier item. Stale entries (cell already settled) are
// left in the heap and skipped when popped.
type entry struct {
	f    float64
	cell gridmap.Cell
}

// entryLess orders by f, then by the cell's total order, so that equal
// priorities always pop in the same sequence.
func entryLess(a, b entry) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	return a.cell.Less(b.cell)
}

func newFrontier() *heap.Heap[entry] {
	return heap.New[entry](entryLess)
}
