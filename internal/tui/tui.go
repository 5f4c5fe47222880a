package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/schynno0/studio/internal/forms"
)

// builds the lab app; mode is shown on the welcome screen
func NewApp(mode string, set *forms.Set) *Model {
	r := newRenderer(80)
	tools := newToolViews(set, r)

	return &Model{
		state:    StateWelcome,
		mode:     mode,
		welcome:  NewWelcome(mode, tools),
		tools:    tools,
		renderer: r,
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// only quit from welcome screen, not from a tool
		if msg.String() == "ctrl+c" && m.state == StateWelcome {
			return m, tea.Quit
		}

		if m.err != nil {
			m.err = nil
			return m, nil
		}

		// in a tool, ctrl+c and esc go back to welcome
		if (msg.String() == "ctrl+c" || msg.String() == "esc") && m.state == StateTool {
			m.state = StateWelcome
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		m.renderer.Resize(msg.Width)

		for _, t := range m.tools {
			t.SetSize(msg.Width, msg.Height)
		}

		return m, nil

	case ErrorMsg:
		m.err = msg.err
		return m, nil

	case OpenToolMsg:
		if msg.Index < 0 || msg.Index >= len(m.tools) {
			return m, nil
		}
		m.active = msg.Index
		m.state = StateTool
		return m, m.tools[m.active].Init()

	case BackMsg:
		m.state = StateWelcome
		return m, nil

	case submissionDoneMsg, dismissMsg:
		// results land on their own tool even after the user navigated away
		return m, m.broadcast(msg)
	}

	switch m.state {
	case StateWelcome:
		return m.updateWelcome(msg)

	case StateTool:
		return m.updateTool(msg)

	default:
		return m, nil
	}
}

func (m *Model) View() string {
	if m.err != nil {
		return errorView(m.err)
	}

	switch m.state {
	case StateWelcome:
		return m.welcome.View()

	case StateTool:
		return m.tools[m.active].View()

	default:
		return "Unknown state"
	}
}

func (m *Model) broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.tools))
	for i, t := range m.tools {
		var cmd tea.Cmd
		m.tools[i], cmd = t.Update(msg)
		cmds = append(cmds, cmd)
	}

	return tea.Batch(cmds...)
}

func (m *Model) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.welcome, cmd = m.welcome.Update(msg)

	return m, cmd
}

func (m *Model) updateTool(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.tools[m.active], cmd = m.tools[m.active].Update(msg)

	return m, cmd
}

func errorView(err error) string {
	return fmt.Sprintf("\n  Error: %v\n\n  Press any key to continue\n", err)
}
