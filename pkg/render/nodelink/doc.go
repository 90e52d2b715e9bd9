// Package nodelink draws a PolyGone graph as a node-link diagram.
//
// # Usage
//
// Convert the graph to DOT, passing the current selection so selected edges
// stand out, then render it:
//
//	dot := nodelink.ToDOT(ctrl, nodelink.Options{Selected: ctrl.SelectedSet()})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// [RenderAs] picks the output by [render.Format], including PDF and PNG.
//
// # DOT Format
//
// The generated DOT is an undirected graph. Vertices are
// sky-blue circles; idle edges are grey and selected edges orange and
// thicker. Colors can be overridden through [Options].
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
