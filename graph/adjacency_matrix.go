// SPDX-License-Identifier: MIT

// Package graph - adjacency matrix representation.
//
// Purpose:
//   - Fixed V×V weight table (+Inf = no edge) sized once at construction.
//   - Unknown vertices are ignored by mutations; neighbor order = vertex index order.

package graph

import (
	"math"
	"slices"
	"sync"
)

// Matrix is an adjacency-matrix Graph with capacity fixed at construction.
//
// weights is a row-major n×n table; +Inf marks "no edge". Edge lookup and
// update are O(1), neighbor enumeration is O(V), memory is O(V²).
// Edge operations that reference a vertex outside the initial set are
// silently ignored: the table is never resized.
type Matrix[V comparable] struct {
	mu       sync.RWMutex
	vertices []V
	index    map[V]int
	weights  []float64
}

// NewMatrix creates a Matrix over vertices (duplicates are dropped).
// Complexity: O(V²) time and memory.
func NewMatrix[V comparable](vertices []V) *Matrix[V] {
	order := dedupe(vertices)
	n := len(order)
	m := &Matrix[V]{
		vertices: order,
		index:    make(map[V]int, n),
		weights:  make([]float64, n*n),
	}
	for i, v := range order {
		m.index[v] = i
	}
	inf := math.Inf(1)
	for i := range m.weights {
		m.weights[i] = inf
	}

	return m
}

// Vertices returns a copy of the vertex list in construction order.
func (m *Matrix[V]) Vertices() []V {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Clone(m.vertices)
}

// HasVertex reports whether u belongs to the fixed vertex set.
func (m *Matrix[V]) HasVertex(u V) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.index[u]
	return ok
}

// AddEdge sets both cells of u–v to weight.
// Returns ErrBadWeight for an invalid weight; unknown vertices are a silent no-op.
func (m *Matrix[V]) AddEdge(u, v V, weight float64) error {
	if err := checkWeight(weight); err != nil {
		return err
	}
	m.set(u, v, weight)

	return nil
}

// RemoveEdge resets both cells of u–v to +Inf; unknown vertices are a no-op.
func (m *Matrix[V]) RemoveEdge(u, v V) {
	m.set(u, v, math.Inf(1))
}

// Neighbors returns the neighbors of u in vertex-index order.
func (m *Matrix[V]) Neighbors(u V) []V {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i, ok := m.index[u]
	if !ok {
		return []V{}
	}
	n := len(m.vertices)
	row := m.weights[i*n : (i+1)*n]
	out := make([]V, 0)
	for j, w := range row {
		if !math.IsInf(w, 1) {
			out = append(out, m.vertices[j])
		}
	}

	return out
}

// EdgeWeight returns the weight of u–v, or +Inf for no edge or an unknown vertex.
func (m *Matrix[V]) EdgeWeight(u, v V) float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i, ok1 := m.index[u]
	j, ok2 := m.index[v]
	if !ok1 || !ok2 {
		return math.Inf(1)
	}

	return m.weights[i*len(m.vertices)+j]
}

// set writes weight into both mirrored cells when both vertices are known.
func (m *Matrix[V]) set(u, v V, weight float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i, ok1 := m.index[u]
	j, ok2 := m.index[v]
	if !ok1 || !ok2 {
		return
	}
	n := len(m.vertices)
	m.weights[i*n+j] = weight
	m.weights[j*n+i] = weight
}
