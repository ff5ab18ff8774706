// Package shortestpath implements a single-pair shortest-path engine that
// unifies Dijkstra's algorithm and A* behind one algorithm body.
//
// Overview:
//
//   - Engine runs a best-first search ordered by fScore = gScore + h(v, end).
//   - The heuristic h is the only difference between the two algorithms:
//     Zero yields Dijkstra, Euclidean yields A* on grid-named vertices.
//   - NewDijkstra and NewAStar are thin factories over New; nothing in the
//     loop inspects which heuristic is in use.
//
// Stepwise execution:
//
// The engine is an explicit state machine. Step advances it to the next
// suspension point and reports Running or Finished:
//
//	Initialize ──► Select ──► Evaluate(n₁) ──► … ──► Evaluate(nₖ) ──► Select ──► …
//	                  │                                                  │
//	                  └──────────────► Finished (Found | Exhausted) ◄────┘
//
//   - One suspension point after a vertex is selected for expansion, before
//     any of its neighbors is evaluated.
//   - One suspension point per neighbor; the neighbor is observable as
//     "being evaluated" before its relaxation is applied.
//
// Between steps callers may read Expanding, Evaluating, OpenSet, Visited,
// GScore, FScore and Snapshot. Player paces Step with a delay for
// animation; the delay never changes the sequence of state mutations, so a
// zero delay (tests) and a visible delay (rendering) produce the same path.
//
// Algorithm (per loop iteration):
//
//  1. Stable-sort the open set by fScore; pop the minimum as current.
//  2. If current == end, stop: the cameFrom chain holds the shortest path.
//  3. If current was already visited, discard the stale duplicate.
//  4. Mark current visited.
//  5. For each neighbor n: tentative = g[current] + w(current, n); on strict
//     improvement update cameFrom, g and f, and append n to the open set
//     unless it is visited (duplicates are allowed and filtered by step 3).
//
// Results:
//
//   - FindShortestPath runs to completion and returns start..end inclusive.
//   - "No path" is a nil slice: unreachable end, start or end missing from
//     the graph, an empty graph, and start == end (a path needs one edge).
//   - The engine raises no errors.
//
// Complexity:
//
//   - Time:  O(E · V log V) worst case, the open set is re-sorted before each pop.
//   - Space: O(V + E) for scores, predecessors and duplicate open entries.
//
// An Engine owns its state exclusively and serves exactly one search; build
// a new one for the next query. The graph is only read.
package shortestpath
