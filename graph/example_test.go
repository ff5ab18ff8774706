package graph_test

import (
	"fmt"

	"github.com/katalvlaran/pathviz/graph"
)

// ExampleNew builds the same square in both representations.
//
//	A───B
//	│   │
//	C───D
func ExampleNew() {
	for _, rep := range []graph.Representation{graph.RepList, graph.RepMatrix} {
		g, _ := graph.New(rep, []string{"A", "B", "C", "D"})
		_ = g.AddEdge("A", "B", 1)
		_ = g.AddEdge("A", "C", 2)
		_ = g.AddEdge("B", "D", 3)
		_ = g.AddEdge("C", "D", 4)
		fmt.Println(rep, g.Neighbors("D"), g.EdgeWeight("D", "C"), g.EdgeWeight("A", "D"))
	}
	// Output:
	// list [B C] 4 +Inf
	// matrix [B C] 4 +Inf
}
