// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph contract, representation enum, sentinel errors and shared helpers.
// Policy:
//   - Both representations satisfy Graph[V] and agree on every query.
//   - Weights are finite and non-negative; AddEdge rejects anything else.

package graph

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors for graph construction and mutation.
var (
	// ErrBadWeight indicates a negative, NaN or infinite edge weight.
	ErrBadWeight = errors.New("graph: edge weight must be finite and non-negative")

	// ErrUnknownRepresentation indicates an unsupported Representation value or name.
	ErrUnknownRepresentation = errors.New("graph: unknown representation")
)

// Graph is an undirected graph with non-negative, finite edge weights.
//
// Contract shared by every implementation:
//   - Vertices returns the vertex set in insertion order (a copy).
//   - AddEdge adds or overwrites the edge in both directions.
//   - RemoveEdge removes the edge in both directions; absent edges are a no-op.
//   - Neighbors returns every v with a finite EdgeWeight(u, v). Order is
//     representation-specific; callers may rely on set equality only.
//   - EdgeWeight returns +Inf for absent edges and unknown vertices.
//   - EdgeWeight(u, v) == EdgeWeight(v, u) always.
//
// Reads never mutate. All implementations are safe for concurrent use.
type Graph[V comparable] interface {
	Vertices() []V
	HasVertex(u V) bool
	AddEdge(u, v V, weight float64) error
	RemoveEdge(u, v V)
	Neighbors(u V) []V
	EdgeWeight(u, v V) float64
}

// Representation selects the internal storage of a Graph.
type Representation int

const (
	// RepList stores per-vertex incident edge lists; unknown endpoints are
	// registered on AddEdge.
	RepList Representation = iota

	// RepMatrix stores a fixed V×V weight table; edges touching unknown
	// vertices are ignored.
	RepMatrix
)

// String returns "list" or "matrix".
func (r Representation) String() string {
	switch r {
	case RepList:
		return "list"
	case RepMatrix:
		return "matrix"
	default:
		return fmt.Sprintf("Representation(%d)", int(r))
	}
}

// ParseRepresentation maps "list"/"matrix" (case-insensitive) to a Representation.
func ParseRepresentation(s string) (Representation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "list", "adjacency-list":
		return RepList, nil
	case "matrix", "adjacency-matrix":
		return RepMatrix, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownRepresentation, s)
}

// New builds an empty graph of the requested representation over vertices.
// For RepMatrix the vertex list fixes the capacity permanently.
func New[V comparable](rep Representation, vertices []V) (Graph[V], error) {
	switch rep {
	case RepList:
		return NewList(vertices), nil
	case RepMatrix:
		return NewMatrix(vertices), nil
	}

	return nil, fmt.Errorf("%w: %v", ErrUnknownRepresentation, rep)
}

// checkWeight validates a weight against the Graph contract.
func checkWeight(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		return fmt.Errorf("%w: %v", ErrBadWeight, w)
	}

	return nil
}

// dedupe returns vertices without repeats, keeping first occurrences in order.
func dedupe[V comparable](vertices []V) []V {
	seen := make(map[V]struct{}, len(vertices))
	out := make([]V, 0, len(vertices))
	for _, v := range vertices {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}

// Degree returns the number of neighbors of u.
func Degree[V comparable](g Graph[V], u V) int {
	return len(g.Neighbors(u))
}

// EdgeCount returns the number of undirected edges in g; a self-loop counts once.
// Complexity: O(V + E) for lists, O(V²) for matrices.
func EdgeCount[V comparable](g Graph[V]) int {
	vertices := g.Vertices()
	pos := make(map[V]int, len(vertices))
	for i, v := range vertices {
		pos[v] = i
	}
	count := 0
	for i, u := range vertices {
		for _, v := range g.Neighbors(u) {
			if pos[v] >= i {
				count++
			}
		}
	}

	return count
}

// Compile-time checks that both representations satisfy Graph.
var (
	_ Graph[string] = (*List[string])(nil)
	_ Graph[string] = (*Matrix[string])(nil)
)
