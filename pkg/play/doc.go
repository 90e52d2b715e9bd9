// Package play runs a game of PolyGone.
//
// A [Controller] owns one level's [graph.Graph] and the player's
// [selection.Tracker]. Boundaries (the terminal UI, the HTTP server, the
// replay command) translate their input into controller calls:
//
//	ctrl := play.New(g, play.Options{Name: "hexagon", Listener: view})
//	ctrl.OnEdgeClicked(graph.NewEdge("1", "2"))
//	ctrl.OnRemoveCommand()
//
// The controller applies each call completely, then reports what changed
// through its [Listener]. Refused calls return coded errors from
// pkg/errors and leave the game untouched.
//
// # Removal
//
// When the selection holds a closed chain, [Controller.OnRemoveCommand]
// works out which selected edges actually form the chain, deletes them,
// and prunes vertices left without edges. Endpoints of selected edges that
// were not part of the chain are kept, even if they end up isolated.
package play
