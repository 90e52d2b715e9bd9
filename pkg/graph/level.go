package graph

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Level file formats.
const (
	FormatTOML = "toml"
	FormatJSON = "json"
)

// ErrUnsupportedFormat is returned when a level file extension is neither
// .toml nor .json.
var ErrUnsupportedFormat = errors.New("unsupported level format")

// Level is the on-disk description of a starting graph. Levels are input
// only: the running game never writes them back.
//
//	name = "triangle"
//
//	[[vertices]]
//	id = "1"
//
//	[[edges]]
//	a = "1"
//	b = "2"
type Level struct {
	Name     string        `toml:"name" json:"name"`
	Vertices []LevelVertex `toml:"vertices" json:"vertices"`
	Edges    []LevelEdge   `toml:"edges" json:"edges"`
}

// LevelVertex is a vertex entry in a level file.
type LevelVertex struct {
	ID    string `toml:"id" json:"id"`
	Label string `toml:"label,omitempty" json:"label,omitempty"`
}

// LevelEdge is an edge entry in a level file.
type LevelEdge struct {
	A string `toml:"a" json:"a"`
	B string `toml:"b" json:"b"`
}

// Build validates the level and constructs its graph.
func (l Level) Build() (*Graph, error) {
	vertices := make([]Vertex, len(l.Vertices))
	for i, v := range l.Vertices {
		vertices[i] = Vertex{ID: VertexID(v.ID), Label: v.Label}
	}
	edges := make([]Edge, len(l.Edges))
	for i, e := range l.Edges {
		edges[i] = Edge{A: VertexID(e.A), B: VertexID(e.B)}
	}
	g, err := New(vertices, edges)
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", l.Name, err)
	}
	return g, nil
}

// DefaultLevel returns the built-in level: six vertices joined by nine
// edges, forming several overlapping polygons.
func DefaultLevel() Level {
	l := Level{Name: "hexagon"}
	for _, id := range []string{"1", "2", "3", "4", "5", "6"} {
		l.Vertices = append(l.Vertices, LevelVertex{ID: id})
	}
	for _, e := range [][2]string{
		{"1", "2"}, {"1", "6"}, {"2", "3"},
		{"2", "4"}, {"2", "6"}, {"3", "4"},
		{"4", "5"}, {"4", "6"}, {"5", "6"},
	} {
		l.Edges = append(l.Edges, LevelEdge{A: e[0], B: e[1]})
	}
	return l
}

// ReadLevelFile reads a level from path. The format is chosen by the file
// extension (.toml or .json).
func ReadLevelFile(path string) (Level, error) {
	format, err := formatFromPath(path)
	if err != nil {
		return Level{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return Level{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	l, err := ReadLevel(f, format)
	if err != nil {
		return Level{}, fmt.Errorf("read %s: %w", path, err)
	}
	if l.Name == "" {
		l.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return l, nil
}

// ReadLevel decodes a level in the given format from r.
func ReadLevel(r io.Reader, format string) (Level, error) {
	var l Level
	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&l); err != nil {
			return Level{}, fmt.Errorf("decode toml: %w", err)
		}
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&l); err != nil {
			return Level{}, fmt.Errorf("decode json: %w", err)
		}
	default:
		return Level{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return l, nil
}

func formatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}
