package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mythonlang/mython/mython"
)

var (
	accentColor  = lipgloss.Color("#3B82F6")
	successColor = lipgloss.Color("#10B981")
	errorColor   = lipgloss.Color("#EF4444")
	mutedColor   = lipgloss.Color("#6B7280")

	promptStyle = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	resultStyle = lipgloss.NewStyle().Foreground(successColor)
	errorStyle  = lipgloss.NewStyle().Foreground(errorColor)
	mutedStyle  = lipgloss.NewStyle().Foreground(mutedColor)
	headerStyle = lipgloss.NewStyle().Foreground(accentColor).Bold(true).Padding(0, 1)
)

// historyEntry is one submitted block plus the output (or error) it
// produced.
type historyEntry struct {
	input string
	lines []string
	isErr bool
}

// replModel buffers lines until a blank line is submitted, then
// compiles and runs the accumulated block against a scope that
// persists across blocks — the closest a line-oriented REPL can get to
// Mython's block-structured syntax, since a single statement can span
// several indented lines.
type replModel struct {
	textInput textinput.Model
	scope     *mython.Scope
	pending   []string
	history   []historyEntry
	width     int
	height    int
	quitting  bool
}

var keys = struct {
	CtrlC key.Binding
	CtrlD key.Binding
	CtrlL key.Binding
}{
	CtrlC: key.NewBinding(key.WithKeys("ctrl+c")),
	CtrlD: key.NewBinding(key.WithKeys("ctrl+d")),
	CtrlL: key.NewBinding(key.WithKeys("ctrl+l")),
}

func newREPLModel() replModel {
	ti := textinput.New()
	ti.Placeholder = "type a line, blank line to run..."
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60
	ti.PromptStyle = promptStyle
	ti.Prompt = "mython> "

	return replModel{
		textInput: ti,
		scope:     mython.NewScope(),
	}
}

func (m replModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.EnterAltScreen)
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textInput.Width = msg.Width - 10
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.CtrlC), key.Matches(msg, keys.CtrlD):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.CtrlL):
			m.history = nil
			return m, nil

		case msg.Type == tea.KeyEnter:
			line := m.textInput.Value()
			m.textInput.SetValue("")

			if strings.TrimSpace(line) == "" && len(m.pending) > 0 {
				m.history = append(m.history, m.evaluate())
				m.pending = nil
				m.textInput.Prompt = "mython> "
				return m, nil
			}
			if strings.TrimSpace(line) == "" {
				return m, nil
			}

			m.pending = append(m.pending, line)
			m.textInput.Prompt = "     ...> "
			return m, nil
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// evaluate compiles and runs the buffered block in m.pending against
// the REPL's persistent scope and captures the produced output.
func (m *replModel) evaluate() historyEntry {
	source := strings.Join(m.pending, "\n") + "\n"
	entry := historyEntry{input: source}

	engine, err := mython.Compile(source)
	if err != nil {
		entry.isErr = true
		entry.lines = []string{err.Error()}
		return entry
	}

	var sb strings.Builder
	if err := engine.RunIn(m.scope, &sb); err != nil {
		entry.isErr = true
		entry.lines = []string{err.Error()}
		return entry
	}

	out := strings.TrimSuffix(sb.String(), "\n")
	if out != "" {
		entry.lines = strings.Split(out, "\n")
	}
	return entry
}

func (m replModel) View() string {
	if m.quitting {
		return mutedStyle.Render("Goodbye!\n")
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("Mython REPL") + "\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("-", 40)) + "\n\n")

	for _, entry := range m.history {
		for _, line := range strings.Split(strings.TrimRight(entry.input, "\n"), "\n") {
			b.WriteString(mutedStyle.Render("  > ") + line + "\n")
		}
		for _, line := range entry.lines {
			if entry.isErr {
				b.WriteString("  " + errorStyle.Render(line) + "\n")
			} else {
				b.WriteString("  " + resultStyle.Render(line) + "\n")
			}
		}
		b.WriteString("\n")
	}

	for _, line := range m.pending {
		b.WriteString(mutedStyle.Render("  > ") + line + "\n")
	}

	b.WriteString(m.textInput.View() + "\n\n")
	b.WriteString(mutedStyle.Render("ctrl+l clear  ctrl+c quit"))
	return b.String()
}

func replCommand() error {
	p := tea.NewProgram(newREPLModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
