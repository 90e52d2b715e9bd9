package graph

import (
	"errors"
	"fmt"
	"slices"

	perrors "github.com/AbheetChaudhary/PolyGone/pkg/errors"
)

var (
	// ErrInvalidVertexID is returned by [New] when a vertex ID could not be
	// written in "a-b" edge notation: empty, too long, containing whitespace,
	// control characters or '-'.
	ErrInvalidVertexID = errors.New("invalid vertex ID")

	// ErrDuplicateVertex is returned by [New] when two vertices share an ID.
	ErrDuplicateVertex = errors.New("duplicate vertex ID")

	// ErrUnknownVertex is returned by [New] when an edge references a vertex
	// that is not part of the vertex set.
	ErrUnknownVertex = errors.New("unknown vertex")

	// ErrSelfLoop is returned by [New] when an edge joins a vertex to itself.
	// Edges are unordered pairs of distinct vertices.
	ErrSelfLoop = errors.New("edge endpoints must differ")
)

// VertexID identifies a vertex. IDs are unique and stable for the lifetime
// of a [Graph].
type VertexID string

// Vertex is a graph vertex. Only the ID carries meaning for the selection
// rules; Label is display text for renderers.
type Vertex struct {
	ID    VertexID
	Label string
}

// DisplayLabel returns the label if set, otherwise the ID.
func (v Vertex) DisplayLabel() string {
	if v.Label != "" {
		return v.Label
	}
	return string(v.ID)
}

// Edge is an undirected edge between two distinct vertices.
//
// Edges built with [NewEdge] are canonical (A < B), so canonical edges can be
// compared with == and used as map keys. Use [Edge.Equal] when either side
// may not be canonical.
type Edge struct {
	A VertexID
	B VertexID
}

// NewEdge returns the canonical edge joining a and b.
func NewEdge(a, b VertexID) Edge {
	if b < a {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// Canonical returns e with its endpoints ordered.
func (e Edge) Canonical() Edge { return NewEdge(e.A, e.B) }

// Equal reports whether e and o join the same pair of vertices, regardless
// of endpoint order.
func (e Edge) Equal(o Edge) bool {
	return (e.A == o.A && e.B == o.B) || (e.A == o.B && e.B == o.A)
}

// Touches reports whether v is one of the edge's endpoints.
func (e Edge) Touches(v VertexID) bool { return e.A == v || e.B == v }

// SharesEndpoint reports whether e and o have at least one endpoint in common.
func (e Edge) SharesEndpoint(o Edge) bool { return o.Touches(e.A) || o.Touches(e.B) }

// String formats the edge as "a-b".
func (e Edge) String() string { return fmt.Sprintf("%s-%s", e.A, e.B) }

// Graph is an undirected simple graph owning the canonical vertex and edge
// sets. After construction it only shrinks: edges are removed with
// [Graph.RemoveEdges] and vertices left without edges are dropped with
// [Graph.PruneIsolatedVertices].
//
// The zero value is an empty graph. Graph is not safe for concurrent use.
type Graph struct {
	vertices map[VertexID]*Vertex
	order    []VertexID
	edges    []Edge
	index    map[Edge]struct{}
}

// New builds a graph from vertices and edges. Edges are canonicalized and
// duplicates (by unordered pair) collapse into one. Vertex and edge order is
// preserved for deterministic iteration.
func New(vertices []Vertex, edges []Edge) (*Graph, error) {
	g := &Graph{
		vertices: make(map[VertexID]*Vertex, len(vertices)),
		order:    make([]VertexID, 0, len(vertices)),
		index:    make(map[Edge]struct{}, len(edges)),
	}
	for _, v := range vertices {
		if err := perrors.ValidateVertexID(string(v.ID)); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidVertexID, perrors.UserMessage(err))
		}
		if _, exists := g.vertices[v.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateVertex, v.ID)
		}
		vv := v
		g.vertices[v.ID] = &vv
		g.order = append(g.order, v.ID)
	}
	for _, e := range edges {
		if e.A == e.B {
			return nil, fmt.Errorf("%w: %s", ErrSelfLoop, e)
		}
		if _, ok := g.vertices[e.A]; !ok {
			return nil, fmt.Errorf("edge %s: %w: %s", e, ErrUnknownVertex, e.A)
		}
		if _, ok := g.vertices[e.B]; !ok {
			return nil, fmt.Errorf("edge %s: %w: %s", e, ErrUnknownVertex, e.B)
		}
		c := e.Canonical()
		if _, dup := g.index[c]; dup {
			continue
		}
		g.index[c] = struct{}{}
		g.edges = append(g.edges, c)
	}
	return g, nil
}

// RemoveEdges drops every edge that is unordered-equal to one in edges.
// Edges that are not in the graph are ignored. The removed edges are
// returned in graph order.
func (g *Graph) RemoveEdges(edges []Edge) []Edge {
	if len(edges) == 0 || len(g.edges) == 0 {
		return nil
	}
	drop := make(map[Edge]struct{}, len(edges))
	for _, e := range edges {
		drop[e.Canonical()] = struct{}{}
	}

	var removed []Edge
	g.edges = slices.DeleteFunc(g.edges, func(e Edge) bool {
		if _, ok := drop[e]; ok {
			removed = append(removed, e)
			delete(g.index, e)
			return true
		}
		return false
	})
	return removed
}

// PruneIsolatedVertices removes every vertex without an incident edge,
// except vertices whose ID is in keep. The pruned IDs are returned in
// vertex order.
func (g *Graph) PruneIsolatedVertices(keep map[VertexID]struct{}) []VertexID {
	connected := Endpoints(g.edges)

	var pruned []VertexID
	g.order = slices.DeleteFunc(g.order, func(id VertexID) bool {
		if _, ok := connected[id]; ok {
			return false
		}
		if _, ok := keep[id]; ok {
			return false
		}
		pruned = append(pruned, id)
		delete(g.vertices, id)
		return true
	})
	return pruned
}

// Vertices returns a copy of all vertices in insertion order.
func (g *Graph) Vertices() []Vertex {
	out := make([]Vertex, len(g.order))
	for i, id := range g.order {
		out[i] = *g.vertices[id]
	}
	return out
}

// Edges returns a copy of all edges in insertion order. Every returned edge
// is canonical.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// Vertex returns the vertex with the given ID.
func (g *Graph) Vertex(id VertexID) (Vertex, bool) {
	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, false
	}
	return *v, true
}

// HasVertex reports whether the graph contains a vertex with the given ID.
func (g *Graph) HasVertex(id VertexID) bool {
	_, ok := g.vertices[id]
	return ok
}

// HasEdge reports whether the graph contains e, in either orientation.
func (g *Graph) HasEdge(e Edge) bool {
	_, ok := g.index[e.Canonical()]
	return ok
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.order) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Incident returns the edges touching id, in graph order.
func (g *Graph) Incident(id VertexID) []Edge {
	var out []Edge
	for _, e := range g.edges {
		if e.Touches(id) {
			out = append(out, e)
		}
	}
	return out
}

// Degree returns the number of edges touching id.
func (g *Graph) Degree(id VertexID) int { return len(g.Incident(id)) }

// Clone returns an independent copy of the graph.
func (g *Graph) Clone() *Graph {
	c, _ := New(g.Vertices(), g.edges)
	return c
}

// Endpoints returns the set of vertices touched by edges.
func Endpoints(edges []Edge) map[VertexID]struct{} {
	set := make(map[VertexID]struct{}, 2*len(edges))
	for _, e := range edges {
		set[e.A] = struct{}{}
		set[e.B] = struct{}{}
	}
	return set
}
