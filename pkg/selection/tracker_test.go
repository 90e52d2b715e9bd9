package selection

import (
	"slices"
	"testing"

	"github.com/AbheetChaudhary/PolyGone/pkg/errors"
	"github.com/AbheetChaudhary/PolyGone/pkg/graph"
)

func e(a, b string) graph.Edge { return graph.NewEdge(graph.VertexID(a), graph.VertexID(b)) }

func mustToggle(t *testing.T, tr *Tracker, edge graph.Edge) Outcome {
	t.Helper()
	out, err := tr.Toggle(edge)
	if err != nil {
		t.Fatalf("Toggle(%v) error = %v", edge, err)
	}
	return out
}

func TestToggleTriangleCloses(t *testing.T) {
	tr := New()

	steps := []struct {
		edge        graph.Edge
		wantFormed  bool
		wantChanged bool
	}{
		{e("1", "2"), false, false},
		{e("2", "3"), false, false},
		{e("3", "1"), true, true},
	}

	for _, s := range steps {
		out := mustToggle(t, tr, s.edge)
		if out.Action != Added {
			t.Errorf("Toggle(%v).Action = %v, want added", s.edge, out.Action)
		}
		if out.ChainFormed != s.wantFormed {
			t.Errorf("Toggle(%v).ChainFormed = %v, want %v", s.edge, out.ChainFormed, s.wantFormed)
		}
		if out.StateChanged != s.wantChanged {
			t.Errorf("Toggle(%v).StateChanged = %v, want %v", s.edge, out.StateChanged, s.wantChanged)
		}
	}

	if tr.State() != Closed {
		t.Errorf("State() = %v, want closed", tr.State())
	}
	if !tr.ChainFormed() {
		t.Error("ChainFormed() = false, want true")
	}
}

func TestToggleNotConnected(t *testing.T) {
	tr := New()
	mustToggle(t, tr, e("1", "2"))

	_, err := tr.Toggle(e("3", "4"))

	if !errors.Is(err, errors.ErrCodeNotConnected) {
		t.Fatalf("Toggle(3-4) error = %v, want NOT_CONNECTED", err)
	}
	if got := tr.Edges(); !slices.Equal(got, []graph.Edge{e("1", "2")}) {
		t.Errorf("Edges() = %v, want [1-2]", got)
	}
	if tr.State() != Open {
		t.Errorf("State() = %v, want open", tr.State())
	}
}

func TestToggleChainAlreadyFormed(t *testing.T) {
	tr := New()
	for _, edge := range []graph.Edge{e("1", "2"), e("2", "3"), e("3", "1")} {
		mustToggle(t, tr, edge)
	}

	// 3-4 touches the selection but the chain is closed.
	_, err := tr.Toggle(e("3", "4"))

	if !errors.Is(err, errors.ErrCodeChainAlreadyFormed) {
		t.Fatalf("Toggle(3-4) error = %v, want CHAIN_ALREADY_FORMED", err)
	}
	if tr.Len() != 3 {
		t.Errorf("Len() = %d, want 3", tr.Len())
	}
}

func TestToggleOffBeforeCycle(t *testing.T) {
	tr := New()
	mustToggle(t, tr, e("1", "2"))

	out := mustToggle(t, tr, e("2", "1"))

	if out.Action != Removed {
		t.Errorf("Action = %v, want removed", out.Action)
	}
	if tr.Len() != 0 {
		t.Errorf("Len() = %d, want 0", tr.Len())
	}
	if tr.State() != Open {
		t.Errorf("State() = %v, want open", tr.State())
	}
}

func TestToggleOffReopens(t *testing.T) {
	tr := New()
	for _, edge := range []graph.Edge{e("1", "2"), e("2", "3"), e("3", "1")} {
		mustToggle(t, tr, edge)
	}

	out := mustToggle(t, tr, e("2", "3"))

	if out.Action != Removed || out.ChainFormed || !out.StateChanged {
		t.Errorf("Toggle(2-3) = %+v, want removed, open, state changed", out)
	}
	if got := tr.Edges(); !slices.Equal(got, []graph.Edge{e("1", "2"), e("1", "3")}) {
		t.Errorf("Edges() = %v, want [1-2 1-3]", got)
	}

	// Open again, so connected edges are accepted.
	mustToggle(t, tr, e("3", "4"))
}

func TestToggleOffChordKeepsClosed(t *testing.T) {
	tr := New()
	// Tail 4-1 then the triangle 1-2-3.
	for _, edge := range []graph.Edge{e("4", "1"), e("1", "2"), e("2", "3"), e("3", "1")} {
		mustToggle(t, tr, edge)
	}

	out := mustToggle(t, tr, e("4", "1"))

	if !out.ChainFormed || out.StateChanged {
		t.Errorf("Toggle(4-1) = %+v, want chain still formed without state change", out)
	}
	if tr.State() != Closed {
		t.Errorf("State() = %v, want closed", tr.State())
	}
}

func TestToggleClosesAfterSplit(t *testing.T) {
	tr := New()
	for _, edge := range []graph.Edge{e("1", "2"), e("2", "3"), e("3", "4")} {
		mustToggle(t, tr, edge)
	}

	// Dropping the middle edge leaves 1-2 and 3-4 apart.
	mustToggle(t, tr, e("2", "3"))
	mustToggle(t, tr, e("4", "5"))
	out := mustToggle(t, tr, e("5", "3"))

	if !out.ChainFormed || !out.StateChanged {
		t.Errorf("Toggle(5-3) = %+v, want chain formed with state change", out)
	}
	want := []graph.Edge{e("1", "2"), e("3", "4"), e("4", "5"), e("3", "5")}
	if got := tr.Edges(); !slices.Equal(got, want) {
		t.Errorf("Edges() = %v, want %v", got, want)
	}

	// The detached 1-2 stays a tail: deselecting it keeps the chain.
	out = mustToggle(t, tr, e("1", "2"))
	if !out.ChainFormed || out.StateChanged {
		t.Errorf("Toggle(1-2) = %+v, want chain still formed without state change", out)
	}
}

func TestToggleRoundTrip(t *testing.T) {
	tr := New()
	mustToggle(t, tr, e("1", "2"))
	mustToggle(t, tr, e("2", "3"))
	before := tr.Edges()
	formedBefore := tr.ChainFormed()

	mustToggle(t, tr, e("3", "4"))
	mustToggle(t, tr, e("3", "4"))

	if got := tr.Edges(); !slices.Equal(got, before) {
		t.Errorf("Edges() = %v, want %v", got, before)
	}
	if tr.ChainFormed() != formedBefore {
		t.Errorf("ChainFormed() = %v, want %v", tr.ChainFormed(), formedBefore)
	}
}

func TestResetIdempotent(t *testing.T) {
	tr := New()
	for _, edge := range []graph.Edge{e("1", "2"), e("2", "3"), e("3", "1")} {
		mustToggle(t, tr, edge)
	}

	tr.Reset()
	tr.Reset()

	if tr.Len() != 0 {
		t.Errorf("Len() = %d, want 0", tr.Len())
	}
	if tr.State() != Open {
		t.Errorf("State() = %v, want open", tr.State())
	}

	// Any edge is accepted as the first one after a reset.
	mustToggle(t, tr, e("7", "8"))
}

func TestContainsEitherOrientation(t *testing.T) {
	tr := New()
	mustToggle(t, tr, graph.Edge{A: "2", B: "1"})

	if !tr.Contains(graph.Edge{A: "1", B: "2"}) {
		t.Error("Contains(1-2) = false, want true")
	}
	if !tr.Contains(graph.Edge{A: "2", B: "1"}) {
		t.Error("Contains(2-1) = false, want true")
	}
}

func TestEdgesKeepInsertionOrder(t *testing.T) {
	tr := New()
	order := []graph.Edge{e("5", "6"), e("4", "5"), e("2", "4"), e("1", "2")}
	for _, edge := range order {
		mustToggle(t, tr, edge)
	}

	if got := tr.Edges(); !slices.Equal(got, order) {
		t.Errorf("Edges() = %v, want %v", got, order)
	}
}

func TestStateString(t *testing.T) {
	if Open.String() != "open" || Closed.String() != "closed" {
		t.Errorf("State strings = %q, %q", Open.String(), Closed.String())
	}
	if Added.String() != "added" || Removed.String() != "removed" {
		t.Errorf("Action strings = %q, %q", Added.String(), Removed.String())
	}
}
