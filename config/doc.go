// Package config loads search scenarios for the pathviz commands and server.
//
// A Scenario names a grid, the algorithm, the graph representation, the
// grid connectivity and the animation delay. Scenarios are read from YAML
// (.yaml, .yml), TOML (.toml) or a bare grid file (.txt, .grid), validated
// with go-playground/validator, and resolved into a ready-to-run Plan:
//
//	sc, err := config.Load("maze.yaml")
//	if err != nil { ... }
//	plan, err := sc.Resolve()
//	if err != nil { ... }
//	path := plan.NewEngine().FindShortestPath()
//
// YAML form:
//
//	name: corridor
//	algorithm: astar
//	representation: matrix
//	connectivity: 8
//	delay: 40ms
//	grid:
//	  - "S..#"
//	  - ".#.."
//	  - "...E"
//
// Start and end default to the S and E markers of the grid and may be
// overridden with start/end coordinates.
package config
