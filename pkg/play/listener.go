package play

import (
	"github.com/charmbracelet/log"

	"github.com/AbheetChaudhary/PolyGone/pkg/graph"
)

// Listener receives the state changes a renderer needs to mirror.
//
// All methods are called synchronously from the [Controller] operation that
// caused the change, after the change has been applied.
type Listener interface {
	// EdgeSelectionChanged reports that e was selected or deselected.
	EdgeSelectionChanged(e graph.Edge, selected bool)

	// ChainStateChanged reports that the selection closed (formed=true) or
	// reopened. It drives whether the remove command is enabled.
	ChainStateChanged(formed bool)

	// EdgesRemoved reports edges deleted from the graph.
	EdgesRemoved(edges []graph.Edge)

	// VerticesRemoved reports vertices pruned from the graph.
	VerticesRemoved(ids []graph.VertexID)
}

// =============================================================================
// Adapters
// =============================================================================

// NoopListener ignores every notification.
type NoopListener struct{}

func (NoopListener) EdgeSelectionChanged(graph.Edge, bool) {}
func (NoopListener) ChainStateChanged(bool)                {}
func (NoopListener) EdgesRemoved([]graph.Edge)             {}
func (NoopListener) VerticesRemoved([]graph.VertexID)      {}

// Listeners fans every notification out to each listener in order.
type Listeners []Listener

func (ls Listeners) EdgeSelectionChanged(e graph.Edge, selected bool) {
	for _, l := range ls {
		l.EdgeSelectionChanged(e, selected)
	}
}

func (ls Listeners) ChainStateChanged(formed bool) {
	for _, l := range ls {
		l.ChainStateChanged(formed)
	}
}

func (ls Listeners) EdgesRemoved(edges []graph.Edge) {
	for _, l := range ls {
		l.EdgesRemoved(edges)
	}
}

func (ls Listeners) VerticesRemoved(ids []graph.VertexID) {
	for _, l := range ls {
		l.VerticesRemoved(ids)
	}
}

// ListenerFuncs adapts plain functions to [Listener]. Nil fields are skipped.
type ListenerFuncs struct {
	OnEdgeSelectionChanged func(e graph.Edge, selected bool)
	OnChainStateChanged    func(formed bool)
	OnEdgesRemoved         func(edges []graph.Edge)
	OnVerticesRemoved      func(ids []graph.VertexID)
}

func (f ListenerFuncs) EdgeSelectionChanged(e graph.Edge, selected bool) {
	if f.OnEdgeSelectionChanged != nil {
		f.OnEdgeSelectionChanged(e, selected)
	}
}

func (f ListenerFuncs) ChainStateChanged(formed bool) {
	if f.OnChainStateChanged != nil {
		f.OnChainStateChanged(formed)
	}
}

func (f ListenerFuncs) EdgesRemoved(edges []graph.Edge) {
	if f.OnEdgesRemoved != nil {
		f.OnEdgesRemoved(edges)
	}
}

func (f ListenerFuncs) VerticesRemoved(ids []graph.VertexID) {
	if f.OnVerticesRemoved != nil {
		f.OnVerticesRemoved(ids)
	}
}

// LogListener writes every notification to a logger at debug level.
type LogListener struct {
	Logger *log.Logger
}

func (l LogListener) EdgeSelectionChanged(e graph.Edge, selected bool) {
	l.Logger.Debug("edge selection changed", "edge", e.String(), "selected", selected)
}

func (l LogListener) ChainStateChanged(formed bool) {
	l.Logger.Debug("chain state changed", "formed", formed)
}

func (l LogListener) EdgesRemoved(edges []graph.Edge) {
	l.Logger.Debug("edges removed", "edges", edges)
}

func (l LogListener) VerticesRemoved(ids []graph.VertexID) {
	l.Logger.Debug("vertices removed", "vertices", ids)
}

var (
	_ Listener = NoopListener{}
	_ Listener = Listeners(nil)
	_ Listener = ListenerFuncs{}
	_ Listener = LogListener{}
)
