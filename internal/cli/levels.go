package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/AbheetChaudhary/PolyGone/pkg/errors"
	"github.com/AbheetChaudhary/PolyGone/pkg/graph"
)

// levelsCommand creates the command that describes the active level.
func (c *CLI) levelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "Describe the active level",
		Long: `Describe the active level: its source, its vertices with their degree,
and its edges. Use --level to inspect a level file before playing it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := c.level()
			if err != nil {
				return err
			}
			g, err := l.Build()
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidLevel, err, "build level")
			}
			source := c.levelPath
			if source == "" {
				source = c.Config.Level
			}
			if source == "" {
				source = "built-in"
			}
			describeLevel(cmd.OutOrStdout(), l.Name, source, g)
			return nil
		},
	}
}

func describeLevel(w io.Writer, name, source string, g *graph.Graph) {
	fmt.Fprintln(w, StyleTitle.Render(name))
	printKeyValue(w, "Source", source)
	printStats(w, g.VertexCount(), g.EdgeCount())
	fmt.Fprintln(w)

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := [][]string{}
	for _, v := range g.Vertices() {
		neighbors := []string{}
		for _, e := range g.Incident(v.ID) {
			if e.A == v.ID {
				neighbors = append(neighbors, string(e.B))
			} else {
				neighbors = append(neighbors, string(e.A))
			}
		}
		rows = append(rows, []string{string(v.ID), v.DisplayLabel(), strconv.Itoa(len(neighbors)), strings.Join(neighbors, " ")})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Vertex", "Label", "Degree", "Neighbors").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return StyleHighlight
			}
			return StyleValue
		})

	fmt.Fprintln(w, t.Render())

	if g.EdgeCount() == 0 {
		printWarning(w, "Level has no edges")
	}
}
