// Package render holds output formats shared by the PolyGone renderers.
//
// Diagrams are produced as SVG by [nodelink]. [Convert] turns that SVG into
// PDF or PNG with the external rsvg-convert tool (from librsvg), and
// [FormatFromPath] maps an output file name to a [Format]:
//
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	pdf, err := render.Convert(ctx, svg, render.FormatPDF)
//
// [nodelink]: github.com/AbheetChaudhary/PolyGone/pkg/render/nodelink
package render
