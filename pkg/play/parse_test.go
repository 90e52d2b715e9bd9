package play

import (
	"slices"
	"testing"

	"github.com/AbheetChaudhary/PolyGone/pkg/errors"
	"github.com/AbheetChaudhary/PolyGone/pkg/graph"
)

func TestParseEdge(t *testing.T) {
	tests := []struct {
		in      string
		want    graph.Edge
		wantErr bool
	}{
		{"1-2", e("1", "2"), false},
		{"2-1", e("1", "2"), false},
		{"  a-b ", e("a", "b"), false},
		{"hub-spoke-x", graph.Edge{}, true},
		{"12", graph.Edge{}, true},
		{"1-", graph.Edge{}, true},
		{"-1", graph.Edge{}, true},
		{"3-3", graph.Edge{}, true},
		{"a b-c", graph.Edge{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseEdge(tt.in)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidEdge) {
					t.Errorf("ParseEdge(%q) error = %v, want INVALID_EDGE", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseEdge(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseEdge(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseEdges(t *testing.T) {
	got, err := ParseEdges([]string{"1-2,2-3", "", " 3-1 ", "4-5,"})
	if err != nil {
		t.Fatalf("ParseEdges() error = %v", err)
	}
	want := []graph.Edge{e("1", "2"), e("2", "3"), e("1", "3"), e("4", "5")}
	if !slices.Equal(got, want) {
		t.Errorf("ParseEdges() = %v, want %v", got, want)
	}

	if _, err := ParseEdges([]string{"1-2,oops"}); err == nil {
		t.Error("ParseEdges(oops) error = nil, want error")
	}
}
