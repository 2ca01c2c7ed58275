package grid

// ConnectedComponents finds every region of passable cells that can reach
// each other under the grid's connectivity. Cells and components are both
// listed in row-major order.
//
// Time:   O(W·H·d), d = 4 or 8.
// Memory: O(W·H).
func (g *Grid) ConnectedComponents() [][]Cell {
	labels, n := g.label()
	comps := make([][]Cell, n)
	for i, l := range labels {
		if l >= 0 {
			comps[l] = append(comps[l], g.Coordinate(i))
		}
	}

	return comps
}

// Reachable reports whether b can be reached from a. Walls and off-map cells
// reach nothing.
func (g *Grid) Reachable(a, b Cell) bool {
	if !g.Passable(a) || !g.Passable(b) {
		return false
	}
	labels, _ := g.label()

	return labels[g.index(a)] == labels[g.index(b)]
}

// label assigns a component number to every passable cell (-1 for walls)
// with a breadth-first flood from each unlabelled cell, and returns the
// number of components.
func (g *Grid) label() ([]int, int) {
	total := g.Width * g.Height
	labels := make([]int, total)
	for i := range labels {
		labels[i] = -1
	}

	n := 0
	queue := make([]int, 0, total)
	for i0 := 0; i0 < total; i0++ {
		if labels[i0] >= 0 || !g.Passable(g.Coordinate(i0)) {
			continue
		}
		labels[i0] = n
		queue = append(queue[:0], i0)
		for qi := 0; qi < len(queue); qi++ {
			u := g.Coordinate(queue[qi])
			for _, o := range g.offsets {
				v := Cell{X: u.X + o.dx, Y: u.Y + o.dy}
				if !g.Passable(v) {
					continue
				}
				if vi := g.index(v); labels[vi] < 0 {
					labels[vi] = n
					queue = append(queue, vi)
				}
			}
		}
		n++
	}

	return labels, n
}
