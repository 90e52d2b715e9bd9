// Package pkg provides the core libraries for PolyGone.
//
// # Overview
//
// PolyGone shows an undirected graph and lets a player select connected
// edges. Once the selected edges close a polygon, the player can remove
// it; vertices left without edges are pruned with it. The pkg directory is
// organized as:
//
//  1. [graph] - Vertices, edges and level files
//  2. [graph/cycle] - Closed-chain detection and chain resolution
//  3. [selection] - The player's selection and its rules
//  4. [play] - The controller that ties input to the above
//  5. [render] - DOT, SVG, PDF and PNG output
//  6. [errors] - Coded errors for refused actions and bad input
//
// # Architecture
//
// The data flow for one click:
//
//	edge click
//	     ↓
//	[play] Controller.OnEdgeClicked
//	     ↓
//	[selection] Tracker.Toggle  ←  [graph/cycle] HasClosedChain
//	     ↓
//	play.Listener notifications
//
// and for the remove command:
//
//	[play] Controller.OnRemoveCommand
//	     ↓
//	[graph/cycle] ResolveChain → [graph] RemoveEdges → PruneIsolatedVertices
//	     ↓
//	selection reset, play.Listener notifications
//
// # Quick Start
//
//	g, _ := graph.DefaultLevel().Build()
//	ctrl := play.New(g, play.Options{Name: "hexagon"})
//	ctrl.OnEdgeClicked(graph.NewEdge("1", "2"))
//	ctrl.OnEdgeClicked(graph.NewEdge("2", "6"))
//	ctrl.OnEdgeClicked(graph.NewEdge("1", "6"))
//	removal, _ := ctrl.OnRemoveCommand()
//
// [graph]: github.com/AbheetChaudhary/PolyGone/pkg/graph
// [graph/cycle]: github.com/AbheetChaudhary/PolyGone/pkg/graph/cycle
// [selection]: github.com/AbheetChaudhary/PolyGone/pkg/selection
// [play]: github.com/AbheetChaudhary/PolyGone/pkg/play
// [render]: github.com/AbheetChaudhary/PolyGone/pkg/render
// [errors]: github.com/AbheetChaudhary/PolyGone/pkg/errors
package pkg
