package core_test

import (
	"fmt"

	"github.com/katalvlaran/cliquespec/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	g := core.NewGraph()
	for _, label := range []string{"a", "b", "c"} {
		_ = g.AddVertex(core.V(label))
	}
	_ = g.AddEdge(core.V("a"), core.V("b"))
	_ = g.AddEdge(core.V("b"), core.V("c"))

	fmt.Println("vertices:", g.Vertices())
	fmt.Println("edges:", g.Edges())

	err := g.AddEdge(core.V("a"), core.V("x"))
	fmt.Println("missing endpoint:", err)

	// Output:
	// vertices: [a b c]
	// edges: [{a,b} {b,c}]
	// missing endpoint: AddEdge(a,x): x: core: vertex not found
}
