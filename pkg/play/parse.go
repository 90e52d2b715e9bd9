package play

import (
	"strings"

	"github.com/AbheetChaudhary/PolyGone/pkg/errors"
	"github.com/AbheetChaudhary/PolyGone/pkg/graph"
)

// ParseEdge parses an edge written as "a-b". Surrounding whitespace is
// ignored. The result is canonical.
func ParseEdge(s string) (graph.Edge, error) {
	s = strings.TrimSpace(s)
	a, b, ok := strings.Cut(s, "-")
	if !ok {
		return graph.Edge{}, errors.New(errors.ErrCodeInvalidEdge, "edge must be written as a-b: %q", s)
	}
	return EdgeFromIDs(a, b)
}

// EdgeFromIDs validates two vertex IDs and joins them into a canonical edge.
func EdgeFromIDs(a, b string) (graph.Edge, error) {
	if err := errors.ValidateVertexID(a); err != nil {
		return graph.Edge{}, err
	}
	if err := errors.ValidateVertexID(b); err != nil {
		return graph.Edge{}, err
	}
	if a == b {
		return graph.Edge{}, errors.New(errors.ErrCodeInvalidEdge, "edge %s-%s is a self-loop", a, b)
	}
	return graph.NewEdge(graph.VertexID(a), graph.VertexID(b)), nil
}

// ParseEdges parses a list of edges. Each item may itself hold several
// comma-separated edges, so both "1-2,2-3" and ["1-2", "2-3"] work.
// Empty items are skipped.
func ParseEdges(items []string) ([]graph.Edge, error) {
	var out []graph.Edge
	for _, item := range items {
		for _, part := range strings.Split(item, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			e, err := ParseEdge(part)
			if err != nil {
				return nil, err
			}
			out = append(out, e)
		}
	}
	return out, nil
}
