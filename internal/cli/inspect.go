package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/puzzlecut/puzzlecut/pkg/geometry"
	"github.com/puzzlecut/puzzlecut/pkg/neighbors"
	"github.com/puzzlecut/puzzlecut/pkg/puzzle"
)

// inspectCommand creates the inspect command for browsing pieces interactively.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [puzzle.json]",
		Short: "Browse a puzzle's pieces in an interactive TUI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := puzzle.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("load puzzle %s: %w", args[0], err)
			}

			model := newInspectModel(p)
			prog := tea.NewProgram(model, tea.WithContext(cmd.Context()))
			_, err = prog.Run()
			return err
		},
	}
}

// =============================================================================
// inspectModel - Interactive piece browser
// =============================================================================

var (
	cellBorderStyle   = lipgloss.NewStyle().Foreground(colorDim)
	cellSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	cellNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	panelStyle        = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim).
				Padding(0, 1)
)

// inspectModel is the bubbletea model for grid navigation.
type inspectModel struct {
	puzzle *puzzle.Puzzle
	row    int
	col    int
}

func newInspectModel(p *puzzle.Puzzle) inspectModel {
	return inspectModel{puzzle: p}
}

func (m inspectModel) Init() tea.Cmd {
	return nil
}

func (m inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.row > 0 {
				m.row--
			}
		case "down", "j":
			if m.row < m.puzzle.Rows-1 {
				m.row++
			}
		case "left", "h":
			if m.col > 0 {
				m.col--
			}
		case "right", "l":
			if m.col < m.puzzle.Cols-1 {
				m.col++
			}
		}
	}
	return m, nil
}

func (m inspectModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Puzzle %s", m.puzzle.ID)))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓/←/→ navigate  q quit"))
	b.WriteString("\n\n")

	grid := m.renderGrid()
	panel := panelStyle.Render(m.renderPiecePanel())
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, grid, "  ", panel))

	return b.String()
}

// renderGrid draws the cell matrix with the cursor highlighted.
func (m inspectModel) renderGrid() string {
	var b strings.Builder
	for r := 0; r < m.puzzle.Rows; r++ {
		for c := 0; c < m.puzzle.Cols; c++ {
			id := puzzle.PieceID(r, c)
			cell := fmt.Sprintf(" %-6s", id)
			if r == m.row && c == m.col {
				b.WriteString(cellSelectedStyle.Render("▸" + cell[1:]))
			} else {
				b.WriteString(cellNormalStyle.Render(cell))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderPiecePanel shows the selected piece's neighbors and geometry.
func (m inspectModel) renderPiecePanel() string {
	pc := m.puzzle.PieceAt(m.row, m.col)
	if pc == nil {
		return "no piece"
	}

	var b strings.Builder
	b.WriteString(StyleHighlight.Render(pc.ID()))
	b.WriteString("\n\n")

	for _, s := range neighbors.Sides {
		name := s.String()
		n, ok := pc.Neighbors[name]
		var desc string
		switch {
		case !ok:
			desc = StyleDim.Render("border")
		case n.IsTab:
			desc = StyleSuccess.Render("tab") + StyleDim.Render(" → "+n.ID)
		default:
			desc = StyleWarning.Render("indent") + StyleDim.Render(" → "+n.ID)
		}
		b.WriteString(fmt.Sprintf("%-7s %s\n", name, desc))
	}

	b.WriteString("\n")
	b.WriteString(StyleDim.Render("bounds  ") + formatRect(pc.Bounds) + "\n")
	b.WriteString(StyleDim.Render("cmds    ") + fmt.Sprintf("%d", len(pc.Path.Commands)) + "\n")
	b.WriteString(StyleDim.Render("closed  ") + fmt.Sprintf("%v", pc.Path.IsClosed(1e-6)))

	return b.String()
}

func formatRect(r geometry.Rect) string {
	return fmt.Sprintf("[%s, %s] x [%s, %s]",
		geometry.FormatCoord(r.MinX), geometry.FormatCoord(r.MaxX),
		geometry.FormatCoord(r.MinY), geometry.FormatCoord(r.MaxY))
}
