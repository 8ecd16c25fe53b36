package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_solver"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive cube session",
	Long: `Start an interactive TUI session with a virtual cube.

Type moves in standard notation and press Enter to apply them.
Commands start with a colon:
  :scramble [n]  - Apply a random scramble (default 20 moves)
  :solve         - Search for a solution and apply nothing
  :reset         - Return to the solved state
  :quit          - Exit (Esc and Ctrl+C also work)`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// solvedMsg delivers the result of a background solve.
type solvedMsg struct {
	solution string
	count    int
}

type playModel struct {
	cube     *gocube.Cube
	solver   *gocube.Solver
	input    string
	status   string
	solution string
	solving  bool
	quitting bool
}

func newPlayModel() *playModel {
	return &playModel{
		cube:   gocube.NewCube(),
		solver: gocube.NewSolver(),
		status: "Type moves (R U R' U') and press Enter.",
	}
}

func (m *playModel) Init() tea.Cmd {
	return nil
}

// solveCmd runs the blocking search off the update loop so the UI keeps
// rendering its "solving" status.
func (m *playModel) solveCmd() tea.Cmd {
	cube := m.cube.Clone()
	return func() tea.Msg {
		result := m.solver.SolveWithSteps(cube)
		return solvedMsg{solution: result.Moves, count: result.MoveCount}
	}
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			if m.solving {
				return m, nil
			}
			return m.submit()

		case "backspace":
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}

		default:
			if len(msg.String()) == 1 || msg.String() == " " {
				m.input += msg.String()
			}
		}

	case solvedMsg:
		m.solving = false
		if msg.solution == "" {
			m.solution = ""
			m.status = "Already solved - nothing to do."
		} else {
			m.solution = msg.solution
			m.status = fmt.Sprintf("Solution found (%d moves).", msg.count)
		}
	}

	return m, nil
}

// submit interprets the input line as either a colon command or notation.
func (m *playModel) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input)
	m.input = ""
	m.solution = ""

	if line == "" {
		return m, nil
	}

	if strings.HasPrefix(line, ":") {
		return m.command(line)
	}

	moves := gocube.ParseMoves(line)
	if len(moves) == 0 {
		m.status = errorStyle.Render("No valid moves in " + fmt.Sprintf("%q", line))
		return m, nil
	}

	m.cube.ApplyMoves(moves)
	m.status = "Applied " + moveStyle.Render(gocube.FormatMoves(moves))
	if m.cube.IsSolved() {
		m.status += " - solved!"
	}
	return m, nil
}

func (m *playModel) command(line string) (tea.Model, tea.Cmd) {
	fields := strings.Fields(line)
	switch fields[0] {
	case ":quit", ":q":
		m.quitting = true
		return m, tea.Quit

	case ":reset":
		m.cube.Reset()
		m.status = "Cube reset to solved."

	case ":scramble":
		length := 20
		if len(fields) > 1 {
			fmt.Sscanf(fields[1], "%d", &length)
		}
		scramble := gocube.GenerateScramble(length)
		m.cube.ApplyNotation(scramble)
		m.status = "Scrambled: " + moveStyle.Render(scramble)

	case ":solve":
		m.solving = true
		m.status = "Searching..."
		return m, m.solveCmd()

	default:
		m.status = errorStyle.Render("Unknown command " + fields[0])
	}
	return m, nil
}

func (m *playModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("gocube-solver"))
	sb.WriteString("\n\n")
	sb.WriteString(renderCube(m.cube))
	sb.WriteString("\n")
	sb.WriteString(statusStyle.Render(fmt.Sprintf("Moves applied: %d", len(m.cube.History))))
	sb.WriteString("\n")
	sb.WriteString(m.status)
	sb.WriteString("\n")
	if m.solution != "" {
		sb.WriteString("Solution: " + moveStyle.Render(m.solution))
		sb.WriteString("\n")
	}
	sb.WriteString("\n> " + m.input)
	if !m.solving {
		sb.WriteString("_")
	}
	sb.WriteString("\n\n")
	sb.WriteString(helpStyle.Render(":scramble [n]  :solve  :reset  :quit"))
	sb.WriteString("\n")

	return sb.String()
}

func runPlay(cmd *cobra.Command, args []string) error {
	p := tea.NewProgram(newPlayModel())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
