package play_test

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/AbheetChaudhary/PolyGone/pkg/graph"
	"github.com/AbheetChaudhary/PolyGone/pkg/play"
)

func ExampleController() {
	g, _ := graph.DefaultLevel().Build()
	ctrl := play.New(g, play.Options{Name: "hexagon", Logger: log.New(io.Discard)})

	for _, s := range []string{"1-2", "2-6", "1-6"} {
		e, _ := play.ParseEdge(s)
		ctrl.OnEdgeClicked(e)
	}
	fmt.Println("Chain formed:", ctrl.ChainFormed())

	r, _ := ctrl.OnRemoveCommand()
	fmt.Println("Removed:", r.Chain)
	fmt.Println("Pruned:", r.Vertices)
	fmt.Println("Edges left:", len(ctrl.Edges()))
	// Output:
	// Chain formed: true
	// Removed: [1-2 1-6 2-6]
	// Pruned: [1]
	// Edges left: 6
}
