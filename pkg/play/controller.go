package play

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/AbheetChaudhary/PolyGone/pkg/errors"
	"github.com/AbheetChaudhary/PolyGone/pkg/graph"
	"github.com/AbheetChaudhary/PolyGone/pkg/graph/cycle"
	"github.com/AbheetChaudhary/PolyGone/pkg/selection"
)

// Options configures a [Controller].
type Options struct {
	// Name is the level name, reported in snapshots and logs.
	Name string

	// Listener receives state changes. Defaults to [NoopListener].
	Listener Listener

	// Logger receives structured game events. Defaults to log.Default().
	Logger *log.Logger
}

// Removal describes a successful remove command.
type Removal struct {
	// Chain holds the edges deleted from the graph, in graph order.
	Chain []graph.Edge
	// Vertices holds the vertices pruned after the deletion.
	Vertices []graph.VertexID
	// Cleared is true when no edge is left in the graph.
	Cleared bool
}

// Controller is the entry point for player input. It receives edge clicks
// and commands, drives the selection and the graph, and notifies its
// [Listener] of every visible change.
//
// Each call runs to completion before returning; Controller is not safe for
// concurrent use. Boundaries that receive input concurrently must serialize
// calls so that events are applied in arrival order.
type Controller struct {
	id       string
	name     string
	graph    *graph.Graph
	sel      *selection.Tracker
	listener Listener
	logger   *log.Logger
}

// New creates a controller for g with an empty selection. The controller
// takes ownership of g; callers must not mutate it afterwards.
func New(g *graph.Graph, opts Options) *Controller {
	if opts.Listener == nil {
		opts.Listener = NoopListener{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	id := uuid.NewString()
	return &Controller{
		id:       id,
		name:     opts.Name,
		graph:    g,
		sel:      selection.New(),
		listener: opts.Listener,
		logger:   opts.Logger.With("game", id[:8]),
	}
}

// OnEdgeClicked toggles e in the selection.
//
// Returns an UNKNOWN_EDGE rejection if e is not in the graph, or the
// tracker's rejection (NOT_CONNECTED, CHAIN_ALREADY_FORMED) if e cannot be
// added. On success the listener is told about the new selection state of
// e and, when the chain closed or reopened, about the chain state.
func (c *Controller) OnEdgeClicked(e graph.Edge) (selection.Outcome, error) {
	if !c.graph.HasEdge(e) {
		return selection.Outcome{}, c.reject(errors.New(errors.ErrCodeUnknownEdge, "edge %s is not in the graph", e))
	}

	out, err := c.sel.Toggle(e)
	if err != nil {
		return selection.Outcome{}, c.reject(err)
	}

	c.logger.Debug("toggled edge",
		"edge", out.Edge.String(),
		"action", out.Action,
		"selected", c.sel.Len(),
		"chain", out.ChainFormed)

	c.listener.EdgeSelectionChanged(out.Edge, out.Action == selection.Added)
	if out.StateChanged {
		if out.ChainFormed {
			c.logger.Info("chain formed", "edges", c.sel.Len())
		}
		c.listener.ChainStateChanged(out.ChainFormed)
	}
	return out, nil
}

// OnRemoveCommand deletes the closed chain held by the selection.
//
// The chain edges are found by leave-one-out testing, removed from the
// graph, and every vertex left without edges is pruned, except endpoints of
// selected edges that were not part of the chain. The selection is then
// reset.
//
// Returns NO_OP_REMOVAL when nothing is selected and CHAIN_NOT_FORMED when
// the selection has not closed; neither changes any state.
func (c *Controller) OnRemoveCommand() (Removal, error) {
	if c.sel.Len() == 0 {
		return Removal{}, c.reject(errors.New(errors.ErrCodeNoOpRemoval, "no edges selected to remove"))
	}
	if !c.sel.ChainFormed() {
		return Removal{}, c.reject(errors.New(errors.ErrCodeChainNotFormed,
			"the %d selected edges do not form a closed chain", c.sel.Len()))
	}

	selected := c.sel.Edges()
	chain := cycle.ResolveChain(selected)
	removed := c.graph.RemoveEdges(chain)

	inChain := make(map[graph.Edge]struct{}, len(chain))
	for _, e := range chain {
		inChain[e] = struct{}{}
	}
	var leftover []graph.Edge
	for _, e := range selected {
		if _, ok := inChain[e]; !ok {
			leftover = append(leftover, e)
		}
	}

	keep := graph.Endpoints(leftover)
	for id := range graph.Endpoints(c.graph.Edges()) {
		keep[id] = struct{}{}
	}
	pruned := c.graph.PruneIsolatedVertices(keep)

	c.sel.Reset()

	c.listener.EdgesRemoved(removed)
	if len(pruned) > 0 {
		c.listener.VerticesRemoved(pruned)
	}
	for _, e := range leftover {
		c.listener.EdgeSelectionChanged(e, false)
	}
	c.listener.ChainStateChanged(false)

	r := Removal{Chain: removed, Vertices: pruned, Cleared: c.Cleared()}
	c.logger.Info("removed chain",
		"edges", len(r.Chain),
		"vertices", len(r.Vertices),
		"remaining", c.graph.EdgeCount())
	if r.Cleared {
		c.logger.Info("level cleared", "level", c.name)
	}
	return r, nil
}

// OnResetCommand clears the selection and reopens it. Every previously
// selected edge is reported as deselected. Resetting an empty selection
// does nothing.
func (c *Controller) OnResetCommand() {
	selected := c.sel.Edges()
	wasClosed := c.sel.ChainFormed()

	c.sel.Reset()

	for _, e := range selected {
		c.listener.EdgeSelectionChanged(e, false)
	}
	if wasClosed {
		c.listener.ChainStateChanged(false)
	}
	if len(selected) > 0 {
		c.logger.Debug("selection reset", "edges", len(selected))
	}
}

// ID returns the unique ID of this game.
func (c *Controller) ID() string { return c.id }

// Name returns the level name.
func (c *Controller) Name() string { return c.name }

// Selection returns the selected edges in the order they were added.
func (c *Controller) Selection() []graph.Edge { return c.sel.Edges() }

// IsSelected reports whether e is selected.
func (c *Controller) IsSelected(e graph.Edge) bool { return c.sel.Contains(e) }

// ChainFormed reports whether the selection holds a closed chain, which is
// also when the remove command is enabled.
func (c *Controller) ChainFormed() bool { return c.sel.ChainFormed() }

// Cleared reports whether every edge has been removed.
func (c *Controller) Cleared() bool { return c.graph.EdgeCount() == 0 }

// Vertices returns the current vertices.
func (c *Controller) Vertices() []graph.Vertex { return c.graph.Vertices() }

// Edges returns the current edges.
func (c *Controller) Edges() []graph.Edge { return c.graph.Edges() }

func (c *Controller) reject(err error) error {
	c.logger.Debug("rejected", "code", errors.GetCode(err), "reason", errors.UserMessage(err))
	return err
}
