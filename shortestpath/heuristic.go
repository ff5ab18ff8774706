package shortestpath

import (
	"math"

	"github.com/katalvlaran/pathviz/vertex"
)

// Zero returns the constant-zero heuristic. With it the engine is Dijkstra.
func Zero[V comparable]() Heuristic[V] {
	return func(V, V) float64 { return 0 }
}

// Euclidean is the straight-line distance between the grid positions
// encoded in v and end. It is admissible on grids whose steps cost at least
// their geometric length (unit orthogonal moves, √2 diagonals).
// Names that do not decode fall back to 0, which is always admissible.
func Euclidean(v, end vertex.Name) float64 {
	a, err := vertex.Decode(v)
	if err != nil {
		return 0
	}
	b, err := vertex.Decode(end)
	if err != nil {
		return 0
	}

	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}
