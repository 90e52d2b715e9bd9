package graph_test

import (
	"fmt"

	"github.com/AbheetChaudhary/PolyGone/pkg/graph"
)

func ExampleGraph_RemoveEdges() {
	// A triangle with a tail: 1-2-3-1 plus 3-4
	g, _ := graph.New(
		[]graph.Vertex{{ID: "1"}, {ID: "2"}, {ID: "3"}, {ID: "4"}},
		[]graph.Edge{
			graph.NewEdge("1", "2"),
			graph.NewEdge("2", "3"),
			graph.NewEdge("3", "1"),
			graph.NewEdge("3", "4"),
		},
	)

	removed := g.RemoveEdges([]graph.Edge{
		graph.NewEdge("2", "1"),
		graph.NewEdge("3", "2"),
		graph.NewEdge("1", "3"),
	})
	pruned := g.PruneIsolatedVertices(nil)

	fmt.Println("Removed:", removed)
	fmt.Println("Pruned:", pruned)
	fmt.Println("Edges left:", g.Edges())
	// Output:
	// Removed: [1-2 2-3 1-3]
	// Pruned: [1 2]
	// Edges left: [3-4]
}

func ExampleNewEdge() {
	fmt.Println(graph.NewEdge("b", "a"))
	fmt.Println(graph.NewEdge("a", "b") == graph.NewEdge("b", "a"))
	// Output:
	// a-b
	// true
}
