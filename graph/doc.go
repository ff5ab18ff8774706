// Package graph provides an undirected, non-negatively weighted graph
// contract with two interchangeable representations.
//
// What:
//
//   - Graph[V] is the read/write contract consumed by the shortest-path engine.
//   - List[V] stores incident edge lists per vertex (adjacency list).
//   - Matrix[V] stores a fixed V×V table of weights (adjacency matrix).
//
// Both report an absent edge as weight +Inf, never as a missing entry,
// and both keep EdgeWeight(u,v) == EdgeWeight(v,u).
//
// Representation trade-offs:
//
//	             vertex lookup   edge lookup   neighbors   memory   resizable
//	List         O(1)            O(deg)        O(deg)      O(V+E)   yes
//	Matrix       O(1)            O(1)          O(V)        O(V²)    no
//
// Unknown vertices:
//
//   - List.AddEdge registers unknown endpoints as new vertices.
//   - Matrix.AddEdge ignores edges touching unknown vertices (the vertex set
//     given to NewMatrix is permanent).
//
// This asymmetry is part of each representation's contract; the
// representation-equivalence guarantee covers the initial vertex set only.
//
// Neighbor order differs as well: List yields edge-insertion order, Matrix
// yields vertex-index order. Compare neighbor sets, not sequences.
//
// Errors:
//
//	ErrBadWeight             – negative, NaN or infinite weight passed to AddEdge.
//	ErrUnknownRepresentation – New/ParseRepresentation got an unsupported kind.
package graph
