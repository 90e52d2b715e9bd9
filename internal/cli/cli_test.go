package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/AbheetChaudhary/PolyGone/pkg/errors"
)

// runCLI executes the root command with an isolated config directory and
// returns what it wrote to stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

const triangleLevel = `name = "triangle"

[[vertices]]
id = "a"
label = "Alpha"

[[vertices]]
id = "b"

[[vertices]]
id = "c"

[[edges]]
a = "a"
b = "b"

[[edges]]
a = "b"
b = "c"

[[edges]]
a = "c"
b = "a"
`

func TestCheckClearsTriangle(t *testing.T) {
	out, err := runCLI(t, "check", "1-2", "2-6", "1-6", "--remove")
	if err != nil {
		t.Fatalf("check error = %v", err)
	}

	for _, want := range []string{
		"added 1-2",
		"added 1-6, chain formed",
		"removed 1-2 1-6 2-6",
		"pruned vertices 1",
		"5 vertices",
		"6 edges",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("check output missing %q:\n%s", want, out)
		}
	}
}

func TestCheckReportsRejections(t *testing.T) {
	out, err := runCLI(t, "check", "1-2,4-5", "1-7")
	if err != nil {
		t.Fatalf("check error = %v", err)
	}
	for _, want := range []string{"NOT_CONNECTED", "UNKNOWN_EDGE", "selection 1-2 (open)"} {
		if !strings.Contains(out, want) {
			t.Errorf("check output missing %q:\n%s", want, out)
		}
	}

	if _, err := runCLI(t, "check", "1-2,4-5", "--strict"); err == nil {
		t.Error("check --strict error = nil, want error")
	}
}

func TestCheckRemoveRejected(t *testing.T) {
	out, err := runCLI(t, "check", "1-2", "--remove")
	if err != nil {
		t.Fatalf("check error = %v", err)
	}
	if !strings.Contains(out, "CHAIN_NOT_FORMED") {
		t.Errorf("check output missing CHAIN_NOT_FORMED:\n%s", out)
	}
}

func TestCheckInvalidEdge(t *testing.T) {
	_, err := runCLI(t, "check", "12")
	if !errors.Is(err, errors.ErrCodeInvalidEdge) {
		t.Errorf("check 12 error = %v, want INVALID_EDGE", err)
	}
}

func TestLevelsBuiltIn(t *testing.T) {
	out, err := runCLI(t, "levels")
	if err != nil {
		t.Fatalf("levels error = %v", err)
	}
	for _, want := range []string{"hexagon", "built-in", "6 vertices", "9 edges", "Neighbors"} {
		if !strings.Contains(out, want) {
			t.Errorf("levels output missing %q:\n%s", want, out)
		}
	}
}

func TestLevelsFromFile(t *testing.T) {
	path := writeFile(t, "tri.toml", triangleLevel)

	out, err := runCLI(t, "levels", "--level", path)
	if err != nil {
		t.Fatalf("levels error = %v", err)
	}
	for _, want := range []string{"triangle", "Alpha", "3 vertices", "3 edges"} {
		if !strings.Contains(out, want) {
			t.Errorf("levels output missing %q:\n%s", want, out)
		}
	}
}

func TestLevelErrors(t *testing.T) {
	bad := writeFile(t, "bad.toml", "[[edges]]\na = \"1\"\nb = \"2\"\n")
	dashed := writeFile(t, "dashed.json",
		`{"vertices":[{"id":"n-1"},{"id":"n-2"}],"edges":[{"a":"n-1","b":"n-2"}]}`)

	tests := []struct {
		name string
		path string
	}{
		{"wrong extension", "level.txt"},
		{"missing file", filepath.Join(t.TempDir(), "missing.toml")},
		{"unknown vertex", bad},
		{"dashed vertex id", dashed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, "levels", "--level", tt.path)
			if !errors.Is(err, errors.ErrCodeInvalidLevel) {
				t.Errorf("levels --level %s error = %v, want INVALID_LEVEL", tt.path, err)
			}
		})
	}
}

func TestRenderDOT(t *testing.T) {
	out, err := runCLI(t, "render", "--dot", "--select", "1-2")
	if err != nil {
		t.Fatalf("render error = %v", err)
	}
	if !strings.Contains(out, `"1" -- "2" [color="#ffa500", penwidth=5];`) {
		t.Errorf("render output does not highlight 1-2:\n%s", out)
	}
	if !strings.Contains(out, `"5" -- "6" [color="#999999"];`) {
		t.Errorf("render output missing idle edge 5-6:\n%s", out)
	}
}

func TestRenderToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.dot")

	out, err := runCLI(t, "render", "-o", path)
	if err != nil {
		t.Fatalf("render error = %v", err)
	}
	if !strings.Contains(out, path) {
		t.Errorf("render output does not name %s:\n%s", path, out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "graph G {") {
		t.Errorf("level.dot = %q, want DOT source", data)
	}
}

func TestRenderRejectedSelection(t *testing.T) {
	_, err := runCLI(t, "render", "--dot", "--select", "1-2,4-5")
	if !errors.Is(err, errors.ErrCodeNotConnected) {
		t.Errorf("render error = %v, want NOT_CONNECTED", err)
	}
}

func TestConfigColors(t *testing.T) {
	cfg := writeFile(t, "config.toml", "[colors]\nselected = \"#112233\"\n")

	out, err := runCLI(t, "--config", cfg, "render", "--dot", "--select", "2-3")
	if err != nil {
		t.Fatalf("render error = %v", err)
	}
	if !strings.Contains(out, `"2" -- "3" [color="#112233", penwidth=5];`) {
		t.Errorf("render output ignores configured color:\n%s", out)
	}
}

func TestConfigFromXDG(t *testing.T) {
	level := writeFile(t, "tri.toml", triangleLevel)

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, appName), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, appName, configFile), []byte("level = \""+filepath.ToSlash(level)+"\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"levels"})
	t.Setenv("XDG_CONFIG_HOME", dir)

	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("levels error = %v", err)
	}
	if !strings.Contains(out.String(), "triangle") {
		t.Errorf("levels did not use the configured level:\n%s", out.String())
	}
}

func TestVersionFlag(t *testing.T) {
	out, err := runCLI(t, "--version")
	if err != nil {
		t.Fatalf("--version error = %v", err)
	}
	if !strings.Contains(out, "polygone version") {
		t.Errorf("--version output = %q", out)
	}
}

func TestCompletion(t *testing.T) {
	for _, shell := range completionShells {
		t.Run(shell, func(t *testing.T) {
			out, err := runCLI(t, "completion", shell)
			if err != nil {
				t.Fatalf("completion %s error = %v", shell, err)
			}
			if !strings.Contains(out, "polygone") {
				t.Errorf("%s completion does not mention polygone", shell)
			}
		})
	}
}

func TestCompletionUnknownShell(t *testing.T) {
	if _, err := runCLI(t, "completion", "tcsh"); err == nil {
		t.Error("completion tcsh error = nil, want error")
	}
}

func TestCompleteLevelFlag(t *testing.T) {
	out, err := runCLI(t, cobra.ShellCompRequestCmd, "play", "--level", "")
	if err != nil {
		t.Fatalf("complete --level error = %v", err)
	}
	lines := strings.Fields(out)
	want := []string{"toml", "json", fmt.Sprintf(":%d", cobra.ShellCompDirectiveFilterFileExt)}
	if !slices.Equal(lines, want) {
		t.Errorf("complete --level = %v, want %v", lines, want)
	}
}
