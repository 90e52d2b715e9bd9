package errors

import (
	"strings"
	"unicode"
)

// maxVertexIDLength bounds user-supplied vertex IDs.
const maxVertexIDLength = 64

// ValidateVertexID validates a vertex ID from a level file, typed by a player,
// or sent over HTTP.
//
// Rules:
//   - Not empty
//   - At most 64 characters
//   - No control characters or whitespace
//   - No '-', which separates the endpoints in "a-b" edge notation
func ValidateVertexID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidEdge, "vertex ID cannot be empty")
	}

	if len(id) > maxVertexIDLength {
		return New(ErrCodeInvalidEdge, "vertex ID too long (max %d characters)", maxVertexIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidEdge, "vertex ID contains invalid characters: %q", id)
		}
	}

	if strings.Contains(id, "-") {
		return New(ErrCodeInvalidEdge, "vertex ID cannot contain '-': %q", id)
	}

	return nil
}

// ValidateLevelPath validates the path of a level file.
// Only .toml and .json files are accepted.
func ValidateLevelPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidLevel, "level path cannot be empty")
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidLevel, "level path contains invalid characters")
		}
	}

	lower := strings.ToLower(path)
	if !strings.HasSuffix(lower, ".toml") && !strings.HasSuffix(lower, ".json") {
		return New(ErrCodeInvalidLevel, "level file must be .toml or .json: %s", path)
	}

	return nil
}
