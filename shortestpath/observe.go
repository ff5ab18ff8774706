package shortestpath

import (
	"maps"
	"math"
	"slices"
)

// Snapshot is an immutable copy of the observable search state.
type Snapshot[V comparable] struct {
	Step          int
	Expanding     V
	HasExpanding  bool
	Evaluating    V
	HasEvaluating bool
	Open          []V
	Visited       []V
	GScore        map[V]float64 // finite entries only
	FScore        map[V]float64 // finite entries only
	Outcome       Outcome
	Path          []V // set once Outcome is Found and a path exists
	Stats         Stats
}

// Start returns the start vertex.
func (e *Engine[V]) Start() V { return e.start }

// End returns the end vertex.
func (e *Engine[V]) End() V { return e.end }

// Done reports whether the search has terminated.
func (e *Engine[V]) Done() bool { return e.phase == phaseDone }

// Outcome reports how the search ended, or Pending while it runs.
func (e *Engine[V]) Outcome() Outcome { return e.outcome }

// Stats returns the work counters so far.
func (e *Engine[V]) Stats() Stats { return e.stats }

// Expanding returns the vertex most recently selected for expansion.
func (e *Engine[V]) Expanding() (V, bool) {
	return e.expanding, e.hasExpanding
}

// Evaluating returns the neighbor currently being evaluated, if any.
func (e *Engine[V]) Evaluating() (V, bool) {
	return e.evaluating, e.hasEvaluating
}

// OpenSet returns a copy of the frontier in its current order.
func (e *Engine[V]) OpenSet() []V {
	return slices.Clone(e.open)
}

// Visited returns the finalized vertices in finalization order.
func (e *Engine[V]) Visited() []V {
	return slices.Clone(e.visitOrder)
}

// IsVisited reports whether v has been finalized.
func (e *Engine[V]) IsVisited(v V) bool {
	_, ok := e.visited[v]
	return ok
}

// GScore returns the best known cost from start to v; +Inf when unknown.
func (e *Engine[V]) GScore(v V) float64 {
	if s, ok := e.gScore[v]; ok {
		return s
	}

	return math.Inf(1)
}

// FScore returns gScore(v) + h(v, end); +Inf when unknown.
func (e *Engine[V]) FScore(v V) float64 {
	if s, ok := e.fScore[v]; ok {
		return s
	}

	return math.Inf(1)
}

// CameFrom returns the predecessor of v on the best known path.
func (e *Engine[V]) CameFrom(v V) (V, bool) {
	p, ok := e.cameFrom[v]
	return p, ok
}

// Snapshot copies the observable state.
// Complexity: O(V) for the copies.
func (e *Engine[V]) Snapshot() Snapshot[V] {
	return Snapshot[V]{
		Step:          e.stats.Steps,
		Expanding:     e.expanding,
		HasExpanding:  e.hasExpanding,
		Evaluating:    e.evaluating,
		HasEvaluating: e.hasEvaluating,
		Open:          e.OpenSet(),
		Visited:       e.Visited(),
		GScore:        finite(e.gScore),
		FScore:        finite(e.fScore),
		Outcome:       e.outcome,
		Path:          e.Path(),
		Stats:         e.stats,
	}
}

// finite copies the entries of m that are not +Inf.
func finite[V comparable](m map[V]float64) map[V]float64 {
	out := maps.Clone(m)
	maps.DeleteFunc(out, func(_ V, s float64) bool { return math.IsInf(s, 1) })

	return out
}
