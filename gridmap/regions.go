package gridmap

// Regions finds all 4-connected components of walkable cells.
// Components appear in row-major order of their first cell; cells inside a
// component are in BFS discovery order (using the Neighbors order).
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Regions() [][]Cell {
	seen := make([]bool, len(g.costs))
	var regions [][]Cell

	for i0, cost := range g.costs {
		if cost < 0 || seen[i0] {
			continue
		}
		seen[i0] = true
		region := []Cell{g.cellAt(i0)}
		for qi := 0; qi < len(region); qi++ {
			for _, n := range g.Neighbors(region[qi]) {
				ni := g.index(n)
				if !seen[ni] {
					seen[ni] = true
					region = append(region, n)
				}
			}
		}
		regions = append(regions, region)
	}
	return regions
}

// Connected reports whether a and b are both walkable and lie in the same
// region. It is a BFS bounded by the region of a, so a false answer proves
// that no path exists between them.
func (g *Grid) Connected(a, b Cell) bool {
	if !g.IsWalkable(a) || !g.IsWalkable(b) {
		return false
	}
	if a == b {
		return true
	}
	seen := make([]bool, len(g.costs))
	seen[g.index(a)] = true
	queue := []Cell{a}
	for qi := 0; qi < len(queue); qi++ {
		for _, n := range g.Neighbors(queue[qi]) {
			if n == b {
				return true
			}
			ni := g.index(n)
			if !seen[ni] {
				seen[ni] = true
				queue = append(queue, n)
			}
		}
	}
	return false
}
