package play

import "github.com/AbheetChaudhary/PolyGone/pkg/graph"

// Snapshot is a point-in-time copy of a game, shaped for JSON clients.
type Snapshot struct {
	ID          string        `json:"id"`
	Level       string        `json:"level"`
	Vertices    []VertexState `json:"vertices"`
	Edges       []EdgeState   `json:"edges"`
	Selection   []string      `json:"selection"`
	ChainFormed bool          `json:"chain_formed"`
	Cleared     bool          `json:"cleared"`
}

// VertexState is a vertex in a [Snapshot].
type VertexState struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// EdgeState is an edge in a [Snapshot].
type EdgeState struct {
	A        string `json:"a"`
	B        string `json:"b"`
	Selected bool   `json:"selected"`
}

// Snapshot copies the current game state. The result shares nothing with
// the controller.
func (c *Controller) Snapshot() Snapshot {
	s := Snapshot{
		ID:          c.id,
		Level:       c.name,
		Vertices:    []VertexState{},
		Edges:       []EdgeState{},
		Selection:   []string{},
		ChainFormed: c.sel.ChainFormed(),
		Cleared:     c.Cleared(),
	}
	for _, v := range c.graph.Vertices() {
		s.Vertices = append(s.Vertices, VertexState{ID: string(v.ID), Label: v.DisplayLabel()})
	}
	for _, e := range c.graph.Edges() {
		s.Edges = append(s.Edges, EdgeState{A: string(e.A), B: string(e.B), Selected: c.sel.Contains(e)})
	}
	for _, e := range c.sel.Edges() {
		s.Selection = append(s.Selection, e.String())
	}
	return s
}

// SelectedSet returns the selected edges as a set, for renderers.
func (c *Controller) SelectedSet() map[graph.Edge]bool {
	set := make(map[graph.Edge]bool, c.sel.Len())
	for _, e := range c.sel.Edges() {
		set[e] = true
	}
	return set
}
