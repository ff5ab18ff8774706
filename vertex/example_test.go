package vertex_test

import (
	"fmt"

	"github.com/katalvlaran/pathviz/vertex"
)

// ExampleEncode shows the canonical name of a grid cell and its inverse.
func ExampleEncode() {
	n := vertex.Encode(vertex.Position{X: 4, Y: -2})
	p, _ := vertex.Decode(n)
	fmt.Println(n, p)
	// Output: 4,-2 (4,-2)
}
