package gridgraph

import (
	"slices"

	"github.com/katalvlaran/pathviz/vertex"
)

// Components finds all contiguous regions of active cells according to
// gr.Conn connectivity. Each component lists vertex names in row-major
// order (vertex.Compare); components are ordered by their first cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gr *Grid) Components() [][]vertex.Name {
	seen := make([]bool, gr.Width*gr.Height)
	var comps [][]vertex.Name
	offsets := gr.NeighborOffsets()

	for y := 0; y < gr.Height; y++ {
		for x := 0; x < gr.Width; x++ {
			if !gr.cells[y][x] {
				continue // blocked
			}
			i0 := gr.index(x, y)
			if seen[i0] {
				continue
			}
			// BFS to collect component
			queue := []int{i0}
			seen[i0] = true
			var comp []vertex.Name

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				ux, uy := gr.Coordinate(u)
				comp = append(comp, vertex.At(ux, uy))
				for _, d := range offsets {
					vx, vy := ux+d[0], uy+d[1]
					if !gr.Active(vx, vy) {
						continue
					}
					vi := gr.index(vx, vy)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			slices.SortFunc(comp, vertex.Compare)
			comps = append(comps, comp)
		}
	}

	return comps
}

// Connected reports whether a and b are active cells of the same component.
func (gr *Grid) Connected(a, b vertex.Name) bool {
	for _, comp := range gr.Components() {
		var hasA, hasB bool
		for _, n := range comp {
			hasA = hasA || n == a
			hasB = hasB || n == b
		}
		if hasA || hasB {
			return hasA && hasB
		}
	}

	return false
}
