package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// returns a new welcome screen listing one command per tool
func NewWelcome(mode string, tools []toolView) *Welcome {
	commands := make([]Command, 0, len(tools)+1)
	for _, t := range tools {
		commands = append(commands, Command{Name: t.Name(), Description: t.Title()})
	}

	commands = append(commands, Command{Name: "quit", Description: "exit studio"})

	return &Welcome{
		mode:     mode,
		commands: commands,
	}
}

func (m *Welcome) Update(msg tea.Msg) (*Welcome, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter":
			return m, m.executeCommand()
		case "up":
			m.selected = (m.selected - 1 + len(m.commands)) % len(m.commands)
			m.input = ""
		case "down":
			m.selected = (m.selected + 1) % len(m.commands)
			m.input = ""
		case "backspace":
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
		default:
			if msg.Type == tea.KeyRunes {
				m.input += string(msg.Runes)
			}
		}
	}

	return m, nil
}

func (m *Welcome) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(logo))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("ai lab: explain, generate, summarize, grade, suggest"))
	b.WriteString("\n\n")

	modeText := fmt.Sprintf("mode: %s", strings.ToUpper(m.mode))
	b.WriteString(infoStyle.Render(modeText))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(colorWhite).Render("tools:"))
	b.WriteString("\n\n")

	for i, cmd := range m.commands {
		style := menuItemStyle
		marker := " "
		if i == m.selected && m.input == "" {
			style = menuItemSelectedStyle
			marker = ">"
		}

		line := fmt.Sprintf("%s %d. %s %s",
			marker,
			i+1,
			commandStyle.Render(cmd.Name),
			commandDescStyle.Render("- "+cmd.Description),
		)
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")

	prompt := promptStyle.Render("> ")
	input := inputStyle.Render(m.input + "_")
	b.WriteString(prompt + input)
	b.WriteString("\n\n")

	b.WriteString(helpStyle.Render("pick a tool with the arrows, its number or its name and press enter. press ctrl+c to quit."))

	return b.String()
}

func (m *Welcome) executeCommand() tea.Cmd {
	cmd := strings.TrimSpace(m.input)
	m.input = ""

	index := m.selected
	if cmd != "" {
		index = m.lookup(cmd)
	}

	if index < 0 {
		return func() tea.Msg {
			return ErrorMsg{err: fmt.Errorf("unknown command: %s", cmd)}
		}
	}

	m.selected = index

	if m.commands[index].Name == "quit" {
		return tea.Quit
	}

	return func() tea.Msg {
		return OpenToolMsg{Index: index}
	}
}

// resolves a typed number or name to a command index, -1 when unknown
func (m *Welcome) lookup(cmd string) int {
	if n, err := strconv.Atoi(cmd); err == nil {
		if n >= 1 && n <= len(m.commands) {
			return n - 1
		}
		return -1
	}

	for i, c := range m.commands {
		if strings.EqualFold(c.Name, cmd) {
			return i
		}
	}

	return -1
}
