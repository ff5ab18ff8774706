// Package gridgraph provides utilities to treat a 2D occupancy grid as a graph.
package gridgraph

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/pathviz/graph"
	"github.com/katalvlaran/pathviz/vertex"
)

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGrid(values [][]bool, opts GridOptions) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]bool, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]bool, w)
		copy(cells[y], values[y])
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &Grid{
		Width:           w,
		Height:          h,
		Conn:            opts.Conn,
		cells:           cells,
		neighborOffsets: offsets,
	}, nil
}

// Parse reads a textual grid ('.', '#', 'S', 'E'). Blank lines and
// surrounding whitespace are ignored. Start/end markers become active cells.
func Parse(text string, opts GridOptions) (*Grid, error) {
	var (
		rows       [][]bool
		start, end *vertex.Position
	)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		y := len(rows)
		row := make([]bool, 0, len(line))
		for x, r := range []rune(line) {
			switch r {
			case CellOpen:
				row = append(row, true)
			case CellBlocked:
				row = append(row, false)
			case CellStart, CellEnd:
				p := &vertex.Position{X: x, Y: y}
				target := &start
				if r == CellEnd {
					target = &end
				}
				if *target != nil {
					return nil, fmt.Errorf("%w: %q at %v", ErrDuplicateMarker, r, *p)
				}
				*target = p
				row = append(row, true)
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadCell, r, x, y)
			}
		}
		rows = append(rows, row)
	}

	gr, err := NewGrid(rows, opts)
	if err != nil {
		return nil, err
	}
	gr.start, gr.end = start, end

	return gr, nil
}

// WithMarkers returns a copy of gr whose start and end markers are a and b.
func (gr *Grid) WithMarkers(a, b vertex.Position) *Grid {
	cp := *gr
	cp.start, cp.end = &a, &b

	return &cp
}

// Start returns the name of the start marker, if any.
func (gr *Grid) Start() (vertex.Name, bool) {
	if gr.start == nil {
		return "", false
	}

	return vertex.Encode(*gr.start), true
}

// End returns the name of the end marker, if any.
func (gr *Grid) End() (vertex.Name, bool) {
	if gr.end == nil {
		return "", false
	}

	return vertex.Encode(*gr.end), true
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gr *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < gr.Width && y >= 0 && y < gr.Height
}

// Active reports whether (x,y) is inside the grid and active.
func (gr *Grid) Active(x, y int) bool {
	return gr.InBounds(x, y) && gr.cells[y][x]
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Complexity: O(1).
func (gr *Grid) NeighborOffsets() [][2]int {
	return gr.neighborOffsets
}

// Names returns the vertex names of all active cells in row-major order.
// Complexity: O(W×H).
func (gr *Grid) Names() []vertex.Name {
	names := make([]vertex.Name, 0, gr.Width*gr.Height)
	for y := 0; y < gr.Height; y++ {
		for x := 0; x < gr.Width; x++ {
			if gr.cells[y][x] {
				names = append(names, vertex.At(x, y))
			}
		}
	}

	return names
}

// Build converts the grid into an undirected graph of the given representation.
// Each active cell becomes a vertex; edges join it to its active right and
// down neighbors with weight 1 (and, under Conn8, to its down-right and
// down-left neighbors with weight √2).
// Complexity: O(W×H) edge insertions.
func (gr *Grid) Build(rep graph.Representation) (graph.Graph[vertex.Name], error) {
	g, err := graph.New(rep, gr.Names())
	if err != nil {
		return nil, err
	}

	type link struct {
		dx, dy int
		w      float64
	}
	links := []link{{1, 0, 1}, {0, 1, 1}}
	if gr.Conn == Conn8 {
		links = append(links, link{1, 1, math.Sqrt2}, link{-1, 1, math.Sqrt2})
	}

	for y := 0; y < gr.Height; y++ {
		for x := 0; x < gr.Width; x++ {
			if !gr.cells[y][x] {
				continue
			}
			u := vertex.At(x, y)
			for _, l := range links {
				nx, ny := x+l.dx, y+l.dy
				if !gr.Active(nx, ny) {
					continue
				}
				if err := g.AddEdge(u, vertex.At(nx, ny), l.w); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

// String renders the grid back into its textual form.
func (gr *Grid) String() string {
	var b strings.Builder
	for y := 0; y < gr.Height; y++ {
		for x := 0; x < gr.Width; x++ {
			p := vertex.Position{X: x, Y: y}
			switch {
			case gr.start != nil && *gr.start == p:
				b.WriteRune(CellStart)
			case gr.end != nil && *gr.end == p:
				b.WriteRune(CellEnd)
			case gr.cells[y][x]:
				b.WriteRune(CellOpen)
			default:
				b.WriteRune(CellBlocked)
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gr *Grid) index(x, y int) int {
	return y*gr.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gr *Grid) Coordinate(idx int) (x, y int) {
	return idx % gr.Width, idx / gr.Width
}

// Cell decodes n and reports whether it names an active cell of the grid.
func (gr *Grid) Cell(n vertex.Name) (vertex.Position, bool) {
	p, err := vertex.Decode(n)
	if err != nil || !gr.Active(p.X, p.Y) {
		return vertex.Position{}, false
	}

	return p, true
}
