package render

import (
	"context"
	"testing"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"out.svg", FormatSVG},
		{"out.SVG", FormatSVG},
		{"out.pdf", FormatPDF},
		{"dir/out.png", FormatPNG},
		{"graph.dot", FormatDOT},
		{"graph.gv", FormatDOT},
		{"graph", FormatSVG},
		{"graph.txt", FormatSVG},
	}

	for _, tt := range tests {
		if got := FormatFromPath(tt.path); got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestConvertSVGPassThrough(t *testing.T) {
	svg := []byte("<svg/>")
	got, err := Convert(context.Background(), svg, FormatSVG)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if string(got) != string(svg) {
		t.Errorf("Convert() = %q, want %q", got, svg)
	}
}

func TestConvertRejectsDOT(t *testing.T) {
	if _, err := Convert(context.Background(), []byte("<svg/>"), FormatDOT); err == nil {
		t.Error("Convert(dot) error = nil, want error")
	}
}
