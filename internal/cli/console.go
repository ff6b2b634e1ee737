package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/danieljhkim/orgcount/internal/engine"
	"github.com/danieljhkim/orgcount/internal/hierarchy"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Start a full-screen command console",
	Long: `Start a full-screen console with a command line and scrollback.

Enter runs the command line. Esc, Ctrl+C, exit, or quit leaves the console.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, eng, cfg, err := newEngine(cmd)
		if err != nil {
			return err
		}

		m := newConsoleModel(ctx, eng, cfg.Prompt)
		p := tea.NewProgram(m,
			tea.WithContext(ctx),
			tea.WithInput(cmd.InOrStdin()),
			tea.WithOutput(cmd.OutOrStdout()),
			tea.WithAltScreen(),
		)
		_, err = p.Run()
		return err
	},
}

var (
	consoleTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	consoleEchoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	consoleErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	consoleWarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	consoleHelpStyle    = lipgloss.NewStyle().Faint(true)
)

type lineKind int

const (
	lineEcho lineKind = iota
	lineAnswer
	lineWarning
	lineError
)

type consoleLine struct {
	kind lineKind
	text string
}

// consoleModel is the bubbletea model behind `orgcount console`.
type consoleModel struct {
	ctx      context.Context
	eng      *engine.Engine
	input    textinput.Model
	history  []consoleLine
	height   int
	quitting bool
}

func newConsoleModel(ctx context.Context, eng *engine.Engine, prompt string) consoleModel {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Placeholder = "DEV, 10  |  DEV>BACKEND  |  *>DEV  |  DEV@12  |  DEV"
	ti.CharLimit = 256
	ti.Focus()

	return consoleModel{
		ctx:   ctx,
		eng:   eng,
		input: ti,
	}
}

func (m consoleModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m consoleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.input.Width = msg.Width - len(m.input.Prompt) - 1
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if line == "" {
				return m, nil
			}
			if isExit(line) {
				m.quitting = true
				return m, tea.Quit
			}
			m.run(line)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// run executes one line and appends the echo and the answer to the history.
func (m *consoleModel) run(line string) {
	m.history = append(m.history, consoleLine{kind: lineEcho, text: m.input.Prompt + line})

	outcome, err := m.eng.ExecuteLine(m.ctx, line)
	if err != nil {
		m.history = append(m.history, consoleLine{kind: lineError, text: engine.UserMessage(err)})
		return
	}

	if outcome.Relation != nil && outcome.Relation.Kind == hierarchy.RelationDangling {
		caveat, answer, _ := strings.Cut(engine.FormatOutcome(outcome), "\n")
		m.history = append(m.history,
			consoleLine{kind: lineWarning, text: caveat},
			consoleLine{kind: lineAnswer, text: answer},
		)
		return
	}
	m.history = append(m.history, consoleLine{kind: lineAnswer, text: engine.FormatOutcome(outcome)})
}

func (m consoleModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(consoleTitleStyle.Render("orgcount console"))
	b.WriteString("\n\n")

	for _, l := range m.visibleHistory() {
		switch l.kind {
		case lineEcho:
			b.WriteString(consoleEchoStyle.Render(l.text))
		case lineWarning:
			b.WriteString(consoleWarningStyle.Render(l.text))
		case lineError:
			b.WriteString(consoleErrorStyle.Render(l.text))
		default:
			b.WriteString(l.text)
		}
		b.WriteString("\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(consoleHelpStyle.Render("enter run • esc quit"))
	return b.String()
}

// visibleHistory returns the tail of the history that fits the window. The
// title, input and help lines take five rows.
func (m consoleModel) visibleHistory() []consoleLine {
	if m.height <= 0 {
		return m.history
	}
	rows := m.height - 5
	if rows < 1 {
		rows = 1
	}
	if len(m.history) <= rows {
		return m.history
	}
	return m.history[len(m.history)-rows:]
}
