package errors

import (
	"strings"
	"testing"
)

func TestValidateVertexID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"digit", "1", false},
		{"word", "alpha", false},
		{"underscore", "node_7", false},
		{"unicode", "ω", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 65), true},
		{"dash", "a-b", true},
		{"space", "a b", true},
		{"tab", "a\tb", true},
		{"null byte", "a\x00b", true},
		{"newline", "a\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVertexID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateVertexID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidEdge) {
				t.Errorf("ValidateVertexID(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidEdge)
			}
		})
	}
}

func TestValidateLevelPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"toml", "levels/hexagon.toml", false},
		{"json", "square.json", false},
		{"upper case", "SQUARE.TOML", false},

		{"empty", "", true},
		{"yaml", "level.yaml", true},
		{"no extension", "level", true},
		{"control char", "lev\x01el.toml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLevelPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLevelPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
