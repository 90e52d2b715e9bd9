package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/AbheetChaudhary/PolyGone/pkg/errors"
	"github.com/AbheetChaudhary/PolyGone/pkg/graph"
	"github.com/AbheetChaudhary/PolyGone/pkg/play"
)

// playCommand creates the interactive terminal game.
func (c *CLI) playCommand() *cobra.Command {
	var logFile string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play the active level in the terminal",
		Long: `Play the active level in the terminal.

Move through the edge list with the arrow keys (or j/k) and toggle edges with
space or enter. Once the selected edges close a polygon, press d to remove it.
Press r to clear the selection and q to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPlay(cmd, logFile)
		},
	}

	cmd.Flags().StringVar(&logFile, "log-file", "", "write game logs to this file while the UI is running")

	return cmd
}

func (c *CLI) runPlay(cmd *cobra.Command, logFile string) error {
	// The UI owns the terminal, so game logs go to a file or nowhere.
	var w io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		w = f
	}
	logger := newLogger(w, c.Logger.GetLevel())

	board := newBoardState()
	ctrl, err := c.newGame(play.Listeners{board, play.LogListener{Logger: logger}}, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(newGameModel(ctrl, board, c.Config.Colors), tea.WithContext(cmd.Context()))
	final, err := p.Run()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if fm, ok := final.(gameModel); ok && fm.ctrl.Cleared() {
		printSuccess(out, "Level %s cleared", StyleHighlight.Render(ctrl.Name()))
	} else {
		printInfo(out, "%d edges left in %s", len(ctrl.Edges()), ctrl.Name())
	}
	return nil
}

// =============================================================================
// boardState - Listener-fed view state
// =============================================================================

// boardState mirrors what the controller reports. It is shared by pointer
// between copies of gameModel.
type boardState struct {
	selected     map[graph.Edge]bool
	chainFormed  bool
	edgesRemoved int
	vertsRemoved int
}

func newBoardState() *boardState {
	return &boardState{selected: make(map[graph.Edge]bool)}
}

func (b *boardState) EdgeSelectionChanged(e graph.Edge, selected bool) {
	if selected {
		b.selected[e] = true
	} else {
		delete(b.selected, e)
	}
}

func (b *boardState) ChainStateChanged(formed bool) { b.chainFormed = formed }

func (b *boardState) EdgesRemoved(edges []graph.Edge) {
	b.edgesRemoved += len(edges)
	for _, e := range edges {
		delete(b.selected, e)
	}
}

func (b *boardState) VerticesRemoved(ids []graph.VertexID) { b.vertsRemoved += len(ids) }

// =============================================================================
// gameModel - Interactive edge selection
// =============================================================================

// gameModel is the bubbletea model for the play command.
type gameModel struct {
	ctrl   *play.Controller
	board  *boardState
	edges  []graph.Edge
	colors ColorsConfig

	cursor int
	offset int
	height int

	status    string
	statusErr bool
}

func newGameModel(ctrl *play.Controller, board *boardState, colors ColorsConfig) gameModel {
	return gameModel{
		ctrl:   ctrl,
		board:  board,
		edges:  ctrl.Edges(),
		colors: colors,
		height: 15,
		status: "Select connected edges to close a polygon",
	}
}

func (m gameModel) Init() tea.Cmd {
	return nil
}

func (m gameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				m.offset = scrollOffset(m.offset, m.cursor, m.height)
			}
		case "down", "j":
			if m.cursor < len(m.edges)-1 {
				m.cursor++
				m.offset = scrollOffset(m.offset, m.cursor, m.height)
			}
		case " ", "enter":
			m = m.toggle()
		case "d":
			m = m.remove()
		case "r":
			m.ctrl.OnResetCommand()
			m.setStatus("Selection cleared", false)
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 10
		if m.height < 5 {
			m.height = 5
		}
		m.offset = scrollOffset(m.offset, m.cursor, m.height)
	}
	return m, nil
}

func (m gameModel) toggle() gameModel {
	if len(m.edges) == 0 {
		return m
	}
	e := m.edges[m.cursor]
	out, err := m.ctrl.OnEdgeClicked(e)
	if err != nil {
		m.setStatus(errors.UserMessage(err), true)
		return m
	}
	switch {
	case out.ChainFormed && out.StateChanged:
		m.setStatus("Polygon closed! Press d to remove it", false)
	case out.StateChanged:
		m.setStatus(fmt.Sprintf("Deselected %s, the polygon is open again", e), false)
	default:
		m.setStatus(fmt.Sprintf("%s %s", capitalize(out.Action.String()), e), false)
	}
	return m
}

// scrollOffset returns the first visible row so that cursor stays inside a
// window of height rows.
func scrollOffset(offset, cursor, height int) int {
	if cursor < offset {
		return cursor
	}
	if cursor >= offset+height {
		return cursor - height + 1
	}
	return offset
}

func (m gameModel) remove() gameModel {
	r, err := m.ctrl.OnRemoveCommand()
	if err != nil {
		m.setStatus(errors.UserMessage(err), true)
		return m
	}
	m.edges = m.ctrl.Edges()
	if m.cursor >= len(m.edges) {
		m.cursor = max(len(m.edges)-1, 0)
	}
	m.offset = scrollOffset(m.offset, m.cursor, m.height)
	if r.Cleared {
		m.setStatus("Level cleared! Press q to quit", false)
	} else {
		m.setStatus(fmt.Sprintf("Removed %d edges and %d vertices", len(r.Chain), len(r.Vertices)), false)
	}
	return m
}

func (m *gameModel) setStatus(msg string, isErr bool) {
	m.status = msg
	m.statusErr = isErr
}

// List styles
var (
	listDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	listHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	listErrorStyle  = lipgloss.NewStyle().Foreground(colorRed)
)

func (m gameModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("PolyGone · " + m.ctrl.Name()))
	b.WriteString("\n")
	removeHelp := listDimStyle.Render("d remove")
	if m.board.chainFormed {
		removeHelp = StyleSuccess.Render("d remove")
	}
	b.WriteString(listDimStyle.Render("↑/↓ move  space toggle  ") + removeHelp + listDimStyle.Render("  r reset  q quit"))
	b.WriteString("\n\n")

	if len(m.edges) == 0 {
		b.WriteString(StyleSuccess.Render("No edges left."))
		b.WriteString("\n\n")
	} else {
		b.WriteString(m.edgeTable())
		b.WriteString("\n\n")
	}

	if m.statusErr {
		b.WriteString(listErrorStyle.Render(iconError + " " + m.status))
	} else {
		b.WriteString(m.status)
	}
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  %d edges left · %d removed · %d vertices gone",
		len(m.edges), m.board.edgesRemoved, m.board.vertsRemoved)))

	return b.String()
}

func (m gameModel) edgeTable() string {
	selectedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.colors.Selected))
	idleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.colors.Idle))

	end := min(m.offset+m.height, len(m.edges))
	rows := [][]string{}
	for i := m.offset; i < end; i++ {
		e := m.edges[i]
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		state := "idle"
		if m.board.selected[e] {
			state = "selected"
		}
		rows = append(rows, []string{cursor, e.String(), state})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Edge", "State").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return listHeaderStyle
			}
			idx := m.offset + row
			if idx >= len(m.edges) {
				return lipgloss.NewStyle()
			}
			style := idleStyle
			if m.board.selected[m.edges[idx]] {
				style = selectedStyle
			}
			if idx == m.cursor {
				style = style.Bold(true)
			}
			return style
		})

	return t.Render()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

var _ play.Listener = (*boardState)(nil)
