// Package pathviz is an educational playground for graph data structures
// and single-pair shortest-path search, built to be watched step by step.
//
// 🚀 What is pathviz?
//
//	A small, thread-safe graph toolkit plus a search engine whose every
//	move can be observed:
//		• vertex: canonical "x,y" names for grid positions
//		• graph: undirected weighted graphs as adjacency list or matrix
//		• gridgraph: occupancy grids → graphs (4- or 8-connected)
//		• shortestpath: one engine, two configurations (Dijkstra, A*),
//		  driven by Step() with snapshots, hooks and a paced Player
//		• render / tui / server: text frames, terminal animation and a
//		  websocket stream of frames for browser visualizers
//
// ✨ Why pathviz?
//
//   - Dijkstra and A* share one loop body; only the heuristic differs
//   - Stepping is an explicit state machine, never a sleep in the algorithm
//   - The delay paces the display and never changes the result
//
// Layout:
//
//	vertex/       - position ↔ name encoding
//	graph/        - Graph contract, List and Matrix representations
//	gridgraph/    - grid parsing, graph building, connected regions
//	shortestpath/ - Engine, heuristics, snapshots, Player
//	config/       - YAML/TOML scenarios → resolved plans
//	logging/      - slog setup with rotating log files
//	render/       - lipgloss frames
//	tui/          - bubbletea animation
//	server/       - gin HTTP + websocket API with Prometheus metrics
//	cmd/pathviz/  - the CLI (run, animate, serve)
//
// Quick ASCII example:
//
//	S . #
//	. . #
//	# . E
//
//	pathviz run examples/corner.txt --trace
//
// prints every suspension point of the search and the final path
// 0,0 → 1,0 → 1,1 → 1,2 → 2,2.
//
//	go install github.com/katalvlaran/pathviz/cmd/pathviz@latest
package pathviz
