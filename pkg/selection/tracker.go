package selection

import (
	"github.com/emirpasic/gods/sets/linkedhashset"

	"github.com/AbheetChaudhary/PolyGone/pkg/errors"
	"github.com/AbheetChaudhary/PolyGone/pkg/graph"
	"github.com/AbheetChaudhary/PolyGone/pkg/graph/cycle"
)

// State is the state of a selection.
type State int

const (
	// Open means no closed chain has formed yet. Edges can still be added
	// as long as they touch the selection.
	Open State = iota
	// Closed means the selection contains a closed chain. Edges can only be
	// deselected until the chain is removed or the selection is reset.
	Closed
)

// String returns "open" or "closed".
func (s State) String() string {
	if s == Closed {
		return "closed"
	}
	return "open"
}

// Action is what a successful toggle did to the selection.
type Action int

const (
	// Added means the edge was appended to the selection.
	Added Action = iota + 1
	// Removed means the edge was dropped from the selection.
	Removed
)

// String returns "added" or "removed".
func (a Action) String() string {
	switch a {
	case Added:
		return "added"
	case Removed:
		return "removed"
	default:
		return "unknown"
	}
}

// Outcome describes a successful toggle. StateChanged is set when the
// toggle moved the selection between [Open] and [Closed].
type Outcome struct {
	Action       Action
	Edge         graph.Edge
	ChainFormed  bool
	StateChanged bool
}

// Tracker owns the ordered list of selected edges and enforces the rules
// for growing it:
//
//   - an edge is selected at most once (edges compare as unordered pairs)
//   - while [Open], every edge after the first must share an endpoint with
//     an edge already selected
//   - while [Closed], no edge can be added
//
// Insertion order is kept because the cycle check starts from the newest
// edge. The zero value is not usable; create trackers with [New].
// Tracker is not safe for concurrent use.
type Tracker struct {
	edges *linkedhashset.Set
	state State
}

// New creates an empty, open tracker.
func New() *Tracker {
	return &Tracker{edges: linkedhashset.New()}
}

// Toggle selects e if it is not selected, or deselects it if it is.
//
// Deselecting is allowed in either state; the selection returns to [Open]
// when no closed chain remains. Selecting is refused with
// CHAIN_ALREADY_FORMED while [Closed], and with NOT_CONNECTED when e shares
// no endpoint with a non-empty selection. A refused toggle leaves the
// tracker untouched.
func (t *Tracker) Toggle(e graph.Edge) (Outcome, error) {
	e = e.Canonical()
	before := t.state

	if t.edges.Contains(e) {
		t.edges.Remove(e)
		if !cycle.HasClosedChain(t.Edges()) {
			t.state = Open
		}
		return t.outcome(Removed, e, before), nil
	}

	if t.state == Closed {
		return Outcome{}, errors.New(errors.ErrCodeChainAlreadyFormed,
			"a closed chain has formed; remove it or deselect an edge before adding %s", e)
	}
	if !t.edges.Empty() && !t.touches(e) {
		return Outcome{}, errors.New(errors.ErrCodeNotConnected,
			"edge %s is not connected to the selection", e)
	}

	t.edges.Add(e)
	if cycle.HasClosedChain(t.Edges()) {
		t.state = Closed
	}
	return t.outcome(Added, e, before), nil
}

// Reset clears the selection and reopens it.
func (t *Tracker) Reset() {
	t.edges.Clear()
	t.state = Open
}

// Edges returns the selected edges in the order they were added.
func (t *Tracker) Edges() []graph.Edge {
	values := t.edges.Values()
	out := make([]graph.Edge, len(values))
	for i, v := range values {
		out[i] = v.(graph.Edge)
	}
	return out
}

// Contains reports whether e is selected, in either orientation.
func (t *Tracker) Contains(e graph.Edge) bool { return t.edges.Contains(e.Canonical()) }

// Len returns the number of selected edges.
func (t *Tracker) Len() int { return t.edges.Size() }

// State returns the current state.
func (t *Tracker) State() State { return t.state }

// ChainFormed reports whether the selection holds a closed chain.
func (t *Tracker) ChainFormed() bool { return t.state == Closed }

func (t *Tracker) touches(e graph.Edge) bool {
	for _, s := range t.Edges() {
		if s.SharesEndpoint(e) {
			return true
		}
	}
	return false
}

func (t *Tracker) outcome(a Action, e graph.Edge, before State) Outcome {
	return Outcome{
		Action:       a,
		Edge:         e,
		ChainFormed:  t.state == Closed,
		StateChanged: t.state != before,
	}
}
