package shortestpath

import (
	"cmp"
	"math"
	"slices"

	"github.com/katalvlaran/pathviz/graph"
	"github.com/katalvlaran/pathviz/vertex"
)

// phase is the position of the engine's state machine.
type phase int

const (
	phaseSelect   phase = iota // pop the next vertex to expand
	phaseEvaluate              // walk the neighbors of the expanding vertex
	phaseDone                  // terminal
)

// Engine holds the mutable state of one search. It is not safe for
// concurrent use; drive it from a single goroutine.
type Engine[V comparable] struct {
	g     graph.Graph[V] // read-only input
	start V
	end   V
	h     Heuristic[V]
	opts  Options[V]

	open       []V            // frontier, duplicates allowed
	visited    map[V]struct{} // finalized vertices
	visitOrder []V            // visited, in finalization order
	gScore     map[V]float64  // best known cost from start
	fScore     map[V]float64  // gScore + h(v, end)
	cameFrom   map[V]V        // predecessor on the best known path

	phase         phase
	expanding     V
	hasExpanding  bool
	evaluating    V
	hasEvaluating bool
	pending       []V // neighbors of expanding still to evaluate

	outcome Outcome
	stats   Stats
}

// New builds an engine searching g from start to end, ordered by h.
// All scores are initialized here, before the first Step.
// Complexity: O(V) plus one heuristic call.
func New[V comparable](g graph.Graph[V], start, end V, h Heuristic[V], opts ...Option[V]) *Engine[V] {
	cfg := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&cfg)
	}
	if h == nil {
		h = Zero[V]()
	}

	e := &Engine[V]{
		g:     g,
		start: start,
		end:   end,
		h:     h,
		opts:  cfg,
		phase: phaseSelect,
	}
	e.init()

	return e
}

// NewDijkstra builds an engine with the zero heuristic.
func NewDijkstra[V comparable](g graph.Graph[V], start, end V, opts ...Option[V]) *Engine[V] {
	return New(g, start, end, Zero[V](), opts...)
}

// NewAStar builds an engine with the Euclidean heuristic over grid names.
func NewAStar(g graph.Graph[vertex.Name], start, end vertex.Name, opts ...Option[vertex.Name]) *Engine[vertex.Name] {
	return New(g, start, end, Euclidean, opts...)
}

// init seeds the open set and the score tables for every graph vertex.
func (e *Engine[V]) init() {
	var vertices []V
	if e.g != nil {
		vertices = e.g.Vertices()
	}
	n := len(vertices)
	e.visited = make(map[V]struct{}, n)
	e.visitOrder = make([]V, 0, n)
	e.gScore = make(map[V]float64, n)
	e.fScore = make(map[V]float64, n)
	e.cameFrom = make(map[V]V, n)

	inf := math.Inf(1)
	for _, v := range vertices {
		if v == e.start {
			e.gScore[v] = 0
			e.fScore[v] = e.h(e.start, e.end)
			continue
		}
		e.gScore[v] = inf
		e.fScore[v] = inf
	}
	e.open = []V{e.start}
	e.stats.MaxOpen = 1
}

// Step advances the search to its next suspension point.
// Returns Finished once the search has terminated; later calls do nothing.
func (e *Engine[V]) Step() Status {
	switch e.phase {
	case phaseDone:
		return Finished
	case phaseEvaluate:
		// 1) Apply the evaluation that was made observable by the previous step.
		if e.hasEvaluating {
			e.relax(e.expanding, e.evaluating)
			e.hasEvaluating = false
		}
		// 2) Expose the next neighbor and suspend.
		if len(e.pending) > 0 {
			e.evaluating, e.hasEvaluating = e.pending[0], true
			e.pending = e.pending[1:]
			e.stats.Steps++
			e.opts.Logger.Debug("evaluate", "from", e.expanding, "to", e.evaluating)
			return Running
		}
		// 3) All neighbors done; fall through to selection.
		e.phase = phaseSelect
	}

	return e.selectNext()
}

// selectNext pops open-set entries until it finds a vertex to expand,
// reaches end, or runs out of candidates.
func (e *Engine[V]) selectNext() Status {
	for len(e.open) > 0 {
		// 1) Order the frontier by fScore; stable so ties keep arrival order.
		slices.SortStableFunc(e.open, func(a, b V) int {
			return cmp.Compare(e.FScore(a), e.FScore(b))
		})
		current := e.open[0]
		e.open = slices.Delete(e.open, 0, 1)
		e.expanding, e.hasExpanding = current, true

		// 2) Reaching end settles the cameFrom chain.
		if current == e.end {
			e.finish(Found)
			return Finished
		}

		// 3) Stale duplicate of an already finalized vertex.
		if _, ok := e.visited[current]; ok {
			e.stats.StaleDiscards++
			continue
		}

		// 4) Finalize and queue its neighbors for evaluation.
		e.visited[current] = struct{}{}
		e.visitOrder = append(e.visitOrder, current)
		e.pending = e.neighbors(current)
		e.phase = phaseEvaluate
		e.stats.Expansions++
		e.stats.Steps++
		e.opts.OnExpand(current)
		e.opts.Logger.Debug("expand", "vertex", current, "g", e.GScore(current),
			"f", e.FScore(current), "open", len(e.open), "neighbors", len(e.pending))

		return Running
	}

	e.finish(Exhausted)
	return Finished
}

// neighbors returns a private copy of the neighbors of v.
func (e *Engine[V]) neighbors(v V) []V {
	if e.g == nil {
		return nil
	}

	return e.g.Neighbors(v)
}

// relax evaluates the edge from→to and records an improvement.
func (e *Engine[V]) relax(from, to V) {
	tentative := e.GScore(from) + e.g.EdgeWeight(from, to)
	improved := tentative < e.GScore(to)
	if improved {
		e.cameFrom[to] = from
		e.gScore[to] = tentative
		e.fScore[to] = tentative + e.h(to, e.end)
		if _, done := e.visited[to]; !done {
			e.open = append(e.open, to)
			e.stats.MaxOpen = max(e.stats.MaxOpen, len(e.open))
		}
		e.stats.Relaxations++
	}
	e.stats.Evaluations++
	e.opts.OnEvaluate(from, to, improved)
}

// finish moves the machine to its terminal phase exactly once.
func (e *Engine[V]) finish(outcome Outcome) {
	e.phase = phaseDone
	e.outcome = outcome
	e.pending = nil
	e.hasEvaluating = false
	e.opts.Logger.Debug("finish", "outcome", outcome.String(), "stats", e.stats.String())
	e.opts.OnFinish(outcome, e.stats)
}

// Run steps the engine until it terminates and returns the outcome.
func (e *Engine[V]) Run() Outcome {
	for e.Step() == Running {
	}

	return e.outcome
}

// FindShortestPath runs the search to completion and returns the path from
// start to end inclusive, or nil when there is no path of at least one edge.
func (e *Engine[V]) FindShortestPath() []V {
	e.Run()

	return e.Path()
}

// Path reconstructs the path by walking cameFrom back from end.
// It returns nil until the search has Found end, and nil for paths with
// fewer than two vertices.
func (e *Engine[V]) Path() []V {
	if e.outcome != Found {
		return nil
	}
	path := []V{e.end}
	// cameFrom is acyclic; the bound only protects against a broken invariant.
	for cur := e.end; len(path) <= len(e.cameFrom)+1; {
		prev, ok := e.cameFrom[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	if len(path) < 2 {
		return nil
	}
	slices.Reverse(path)

	return path
}

// PathCost sums edge weights along path. It returns +Inf for a path with
// fewer than two vertices or one that uses a missing edge.
func PathCost[V comparable](g graph.Graph[V], path []V) float64 {
	if len(path) < 2 {
		return math.Inf(1)
	}
	total := 0.0
	for i := 1; i < len(path); i++ {
		total += g.EdgeWeight(path[i-1], path[i])
	}

	return total
}
