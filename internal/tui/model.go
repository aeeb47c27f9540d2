package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/pascal/foundation/calc"
	mdwlog "github.com/msto63/pascal/foundation/core/log"
	"github.com/msto63/pascal/pkg/core/version"
)

// entryKind classifies a history line
type entryKind int

const (
	entryResult entryKind = iota
	entryError
	entryInfo
)

// entry is one evaluated input with its outcome
type entry struct {
	input  string
	output string
	kind   entryKind
}

// Config holds TUI configuration
type Config struct {
	Session     *calc.Session
	Logger      *mdwlog.Logger
	Prompt      string
	ExitCommand string
}

// Model is the Bubbletea model of the calculator
type Model struct {
	width    int
	height   int
	ready    bool
	quitting bool

	// Components
	input    textinput.Model
	viewport viewport.Model

	// Calculator state
	session     *calc.Session
	exitCommand string
	history     []entry

	// Input recall, recall == len(inputs) means a fresh line
	inputs []string
	recall int
}

// New creates a new calculator model
func New(cfg Config) Model {
	if cfg.Session == nil {
		cfg.Session = calc.NewSession(calc.Options{Logger: cfg.Logger})
	}
	if cfg.Prompt == "" {
		cfg.Prompt = "› "
	}
	if cfg.ExitCommand == "" {
		cfg.ExitCommand = "exit()"
	}

	ti := textinput.New()
	ti.Prompt = cfg.Prompt
	ti.Placeholder = "var x = 1 + 2 * 3"
	ti.CharLimit = calc.DefaultMaxInputLength
	ti.Focus()

	return Model{
		input:       ti,
		viewport:    viewport.New(80, 20),
		session:     cfg.Session,
		exitCommand: cfg.ExitCommand,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit

		case tea.KeyEnter:
			line := m.input.Value()
			m.input.Reset()
			if m.submit(line) {
				return m, tea.Quit
			}
			return m, nil

		case tea.KeyUp:
			m.recallPrevious()
			return m, nil

		case tea.KeyDown:
			m.recallNext()
			return m, nil

		case tea.KeyCtrlL:
			m.history = nil
			m.updateContent()
			return m, nil

		case tea.KeyPgUp, tea.KeyPgDown:
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 2 // Title + blank line
		footerHeight := 4 // Input box + status bar
		m.viewport.Width = max(10, msg.Width-4)
		m.viewport.Height = max(3, msg.Height-headerHeight-footerHeight-2)
		m.input.Width = max(10, msg.Width-8)
		m.ready = true
		m.updateContent()
	}

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submit evaluates line and reports whether the program should end
func (m *Model) submit(line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return false
	}
	if input == m.exitCommand {
		m.quitting = true
		return true
	}

	m.inputs = append(m.inputs, line)
	m.recall = len(m.inputs)

	switch input {
	case "reset":
		m.session.Reset()
		m.history = append(m.history, entry{input: input, output: "variables cleared", kind: entryInfo})
	case "vars":
		m.history = append(m.history, entry{input: input, output: m.variables(), kind: entryInfo})
	default:
		value, err := m.session.Eval(line)
		if err != nil {
			m.history = append(m.history, entry{input: input, output: err.Error(), kind: entryError})
			break
		}
		m.history = append(m.history, entry{input: input, output: value.String(), kind: entryResult})
	}

	m.updateContent()
	return false
}

func (m *Model) variables() string {
	table := m.session.Symbols()
	names := table.Names()
	if len(names) == 0 {
		return "no variables"
	}
	lines := make([]string, len(names))
	for i, name := range names {
		v, _ := table.Lookup(name)
		lines[i] = fmt.Sprintf("%s = %s", name, v)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) recallPrevious() {
	if m.recall == 0 {
		return
	}
	m.recall--
	m.input.SetValue(m.inputs[m.recall])
	m.input.CursorEnd()
}

func (m *Model) recallNext() {
	if m.recall >= len(m.inputs)-1 {
		m.recall = len(m.inputs)
		m.input.SetValue("")
		return
	}
	m.recall++
	m.input.SetValue(m.inputs[m.recall])
	m.input.CursorEnd()
}

func (m *Model) updateContent() {
	var content strings.Builder

	for _, e := range m.history {
		content.WriteString(InputLineStyle.Render(m.input.Prompt + e.input))
		content.WriteString("\n")
		switch e.kind {
		case entryError:
			content.WriteString(RenderError(e.output))
		case entryInfo:
			content.WriteString(InfoLineStyle.Render(e.output))
		default:
			if e.output != "" {
				content.WriteString(ResultLineStyle.Render("= " + e.output))
			}
		}
		content.WriteString("\n")
	}

	m.viewport.SetContent(content.String())
	m.viewport.GotoBottom()
}

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Starte Rechner..."
	}

	var b strings.Builder
	b.WriteString(RenderTitle("pascal " + version.Version))
	b.WriteString("  ")
	b.WriteString(SubtitleStyle.Render("exakte Dezimalarithmetik"))
	b.WriteString("\n")
	b.WriteString(BoxStyle.Render(m.viewport.View()))
	b.WriteString("\n")
	b.WriteString(FocusedInputStyle.Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderFooter() string {
	help := "Enter: Auswerten • ↑/↓: Verlauf • Ctrl+L: Leeren • Esc: Beenden"
	stats := m.session.Stats()
	info := fmt.Sprintf("Variablen: %d", stats.Variables)

	return StatusBarStyle.Width(m.width).Render(
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			help,
			strings.Repeat(" ", max(0, m.width-lipgloss.Width(help)-len(info)-4)),
			info,
		),
	)
}

// Run starts the calculator TUI
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
