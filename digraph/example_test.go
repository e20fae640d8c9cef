package digraph_test

import (
	"fmt"

	"github.com/katalvlaran/mcflow/digraph"
)

// ExampleNewFull shows the arithmetic id model of the complete digraph:
// the arc s→t simply has id s·n+t.
func ExampleNewFull() {
	g := digraph.NewFull(4)
	a := g.Arc(2, 3)
	fmt.Println(g.NodeNum(), g.ArcNum(), a, g.Source(a), g.Target(a))
	// Output:
	// 4 16 11 2 3
}

// ExampleNewFullGraph enumerates one edge of the complete undirected graph
// and its two directed arcs.
func ExampleNewFullGraph() {
	g := digraph.NewFullGraph(5)
	e := g.Edge(1, 3)
	u, v := g.Ends(e)
	fmt.Println(g.EdgeNum(), g.ArcNum(), u, v, g.Arc(1, 3)&1, g.Arc(3, 1)&1)
	// Output:
	// 10 20 1 3 0 1
}
