// SPDX-License-Identifier: MIT

// Package graph - adjacency list representation.
//
// Purpose:
//   - Map each vertex to its ordered incident edges.
//   - Register unknown endpoints on AddEdge; keep neighbor order = insertion order.

package graph

import (
	"math"
	"slices"
	"sync"
)

// edge is one directed half of an undirected edge stored in a List.
type edge[V comparable] struct {
	to     V
	weight float64
}

// List is an adjacency-list Graph: vertex → incident edges in insertion order.
// Vertex lookup is O(1) amortized; edge lookup and removal are O(degree).
type List[V comparable] struct {
	mu    sync.RWMutex
	order []V
	table map[V][]edge[V]
}

// NewList creates a List over vertices (duplicates are dropped).
// Complexity: O(V).
func NewList[V comparable](vertices []V) *List[V] {
	order := dedupe(vertices)
	l := &List[V]{
		order: order,
		table: make(map[V][]edge[V], len(order)),
	}
	for _, v := range order {
		l.table[v] = nil
	}

	return l
}

// Vertices returns a copy of the vertex list in insertion order.
func (l *List[V]) Vertices() []V {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return slices.Clone(l.order)
}

// HasVertex reports whether u is registered.
func (l *List[V]) HasVertex(u V) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	_, ok := l.table[u]
	return ok
}

// AddEdge adds or overwrites the undirected edge u–v.
// Unknown endpoints are registered as new vertices with no prior edges.
// Returns ErrBadWeight and leaves the graph untouched for an invalid weight.
func (l *List[V]) AddEdge(u, v V, weight float64) error {
	if err := checkWeight(weight); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	l.ensure(u)
	l.ensure(v)
	l.upsert(u, v, weight)
	if u != v {
		l.upsert(v, u, weight)
	}

	return nil
}

// RemoveEdge deletes the undirected edge u–v; a missing edge is a no-op.
func (l *List[V]) RemoveEdge(u, v V) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.drop(u, v)
	l.drop(v, u)
}

// Neighbors returns the neighbors of u in the order their edges were first added.
func (l *List[V]) Neighbors(u V) []V {
	l.mu.RLock()
	defer l.mu.RUnlock()

	edges := l.table[u]
	out := make([]V, 0, len(edges))
	for _, e := range edges {
		out = append(out, e.to)
	}

	return out
}

// EdgeWeight returns the weight of u–v, or +Inf if there is no such edge.
func (l *List[V]) EdgeWeight(u, v V) float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, e := range l.table[u] {
		if e.to == v {
			return e.weight
		}
	}

	return math.Inf(1)
}

// ensure registers v if it is not yet known. Caller holds the write lock.
func (l *List[V]) ensure(v V) {
	if _, ok := l.table[v]; ok {
		return
	}
	l.table[v] = nil
	l.order = append(l.order, v)
}

// upsert sets the half-edge from→to, keeping its list position when it already exists.
func (l *List[V]) upsert(from, to V, weight float64) {
	edges := l.table[from]
	for i := range edges {
		if edges[i].to == to {
			edges[i].weight = weight
			return
		}
	}
	l.table[from] = append(edges, edge[V]{to: to, weight: weight})
}

// drop removes the half-edge from→to if present.
func (l *List[V]) drop(from, to V) {
	edges, ok := l.table[from]
	if !ok {
		return
	}
	l.table[from] = slices.DeleteFunc(edges, func(e edge[V]) bool { return e.to == to })
}
