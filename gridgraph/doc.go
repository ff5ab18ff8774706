// Package gridgraph treats a 2D occupancy grid as a graph.
//
// What:
//
//   - Grid wraps a rectangular [][]bool (true = active cell) with optional
//     start and end markers.
//   - Parse reads the ASCII form used by scenarios and tests:
//
//     S..#
//     .#..
//     ...E
//
//     '.' open, '#' blocked, 'S' start, 'E' end (both open).
//   - Names lists the vertex names (vertex.Encode of x,y) of active cells in
//     row-major order.
//   - Build produces a graph.Graph[vertex.Name] in either representation.
//   - Components groups active cells into 4/8-connected regions.
//
// Edges:
//
//   - Conn4: each active cell links to its active right and down neighbors
//     with weight 1. Left/up edges follow from undirected symmetry.
//   - Conn8: additionally down-right and down-left diagonals with weight √2,
//     so the Euclidean heuristic stays admissible.
//
// Complexity:
//
//   - Build: O(W×H) edges plus the representation cost (O((W×H)²) memory
//     for RepMatrix).
//   - Components: O(W×H×d), d = 4 or 8.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCell: Parse met a character outside ".#SE".
//   - ErrDuplicateMarker: Parse met more than one S or E.
package gridgraph
