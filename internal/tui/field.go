package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// a field with the bubbles model that edits it
type control struct {
	field
	input textinput.Model
	area  textarea.Model
}

func newControl(f field, value string) *control {
	c := &control{field: f}

	switch f.kind {
	case fieldTextArea:
		ta := textarea.New()
		ta.Placeholder = f.placeholder
		ta.ShowLineNumbers = false
		ta.CharLimit = 0
		ta.SetHeight(5)
		ta.SetValue(value)
		c.area = ta
	case fieldInput:
		ti := textinput.New()
		ti.Placeholder = f.placeholder
		ti.CharLimit = 0
		ti.Prompt = "> "
		ti.PromptStyle = lipgloss.NewStyle().Foreground(colorLightGray)
		ti.TextStyle = lipgloss.NewStyle().Foreground(colorWhite)
		ti.SetValue(value)
		c.input = ti
	case fieldSelect:
		for i, opt := range f.options {
			if opt == value {
				c.option = i
			}
		}
	}

	return c
}

func (c *control) Value() string {
	switch c.kind {
	case fieldTextArea:
		return c.area.Value()
	case fieldSelect:
		if len(c.options) == 0 {
			return ""
		}
		return c.options[c.option]
	default:
		return c.input.Value()
	}
}

func (c *control) Focus() tea.Cmd {
	switch c.kind {
	case fieldTextArea:
		return c.area.Focus()
	case fieldInput:
		return c.input.Focus()
	}

	return nil
}

func (c *control) Blur() {
	switch c.kind {
	case fieldTextArea:
		c.area.Blur()
	case fieldInput:
		c.input.Blur()
	}
}

func (c *control) SetWidth(width int) {
	c.area.SetWidth(width)
	c.input.Width = width - 4
}

func (c *control) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	switch c.kind {
	case fieldTextArea:
		c.area, cmd = c.area.Update(msg)
	case fieldInput:
		c.input, cmd = c.input.Update(msg)
	case fieldSelect:
		if key, ok := msg.(tea.KeyMsg); ok && len(c.options) > 0 {
			switch key.String() {
			case "left", "h":
				c.option = (c.option - 1 + len(c.options)) % len(c.options)
			case "right", "l", " ":
				c.option = (c.option + 1) % len(c.options)
			}
		}
	}

	return cmd
}

func (c *control) View(focused bool) string {
	switch c.kind {
	case fieldTextArea:
		return c.area.View()
	case fieldInput:
		return c.input.View()
	}

	parts := make([]string, 0, len(c.options))
	for i, opt := range c.options {
		if i == c.option {
			parts = append(parts, inputStyle.Render("["+opt+"]"))
		} else {
			parts = append(parts, promptStyle.Render(" "+opt+" "))
		}
	}

	hint := ""
	if focused {
		hint = infoStyle.Render("  ←/→ to change")
	}

	return strings.Join(parts, " ") + hint
}
