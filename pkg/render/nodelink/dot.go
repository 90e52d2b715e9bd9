package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/AbheetChaudhary/PolyGone/pkg/graph"
	"github.com/AbheetChaudhary/PolyGone/pkg/render"
)

// Default edge colors.
const (
	DefaultSelectedColor = "orange"
	DefaultIdleColor     = "#999999"
)

// Source is anything that can list vertices and edges. Both *graph.Graph
// and *play.Controller satisfy it.
type Source interface {
	Vertices() []graph.Vertex
	Edges() []graph.Edge
}

// Options configures node-link diagram rendering.
type Options struct {
	// Selected marks edges drawn in SelectedColor. Keys must be canonical.
	Selected map[graph.Edge]bool

	// SelectedColor and IdleColor are Graphviz color names or #rrggbb values.
	// Empty values fall back to the defaults.
	SelectedColor string
	IdleColor     string

	// Title is drawn above the graph when set.
	Title string
}

// ToDOT converts a graph to undirected Graphviz DOT. Vertices are drawn as
// filled circles and edges colored by selection state.
func ToDOT(src Source, opts Options) string {
	selected, idle := opts.SelectedColor, opts.IdleColor
	if selected == "" {
		selected = DefaultSelectedColor
	}
	if idle == "" {
		idle = DefaultIdleColor
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	if opts.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n  labelloc=t;\n", opts.Title)
	}
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=skyblue, color=\"#4682b4\", fontsize=18, width=0.5];\n")
	buf.WriteString("  edge [penwidth=3];\n")
	buf.WriteString("\n")

	for _, v := range src.Vertices() {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", string(v.ID), v.DisplayLabel())
	}

	buf.WriteString("\n")
	for _, e := range src.Edges() {
		if opts.Selected[e.Canonical()] {
			fmt.Fprintf(&buf, "  %q -- %q [color=%q, penwidth=5];\n", string(e.A), string(e.B), selected)
		} else {
			fmt.Fprintf(&buf, "  %q -- %q [color=%q];\n", string(e.A), string(e.B), idle)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [RenderAs].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

// RenderAs renders a DOT graph in the given format. DOT is returned as-is,
// SVG goes through [RenderSVG], and PDF/PNG are converted from the SVG
// with [render.Convert].
func RenderAs(ctx context.Context, dot string, format render.Format) ([]byte, error) {
	if format == render.FormatDOT {
		return []byte(dot), nil
	}
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	if format == render.FormatSVG {
		return svg, nil
	}
	return render.Convert(ctx, svg, format)
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root tag so the SVG scales from its
// viewBox instead of Graphviz's fixed point sizes.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(root))
}
