package tui

import (
	"context"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/schynno0/studio/internal/forms"
)

const notificationTTL = 5 * time.Second

// writes text to the system clipboard
var copyToClipboard = clipboard.WriteAll

// a form screen bound to one forms.Tool
type toolScreen[In, Out any] struct {
	toolSpec[In, Out]
	controls []*control
	focus    int
	spinner  spinner.Model
	renderer *renderer
	width    int
	height   int
}

func newToolScreen[In, Out any](spec toolSpec[In, Out], defaults map[string]string, r *renderer) *toolScreen[In, Out] {
	controls := make([]*control, 0, len(spec.fields))
	for _, f := range spec.fields {
		controls = append(controls, newControl(f, defaults[f.name]))
	}

	return &toolScreen[In, Out]{
		toolSpec: spec,
		controls: controls,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(infoStyle)),
		renderer: r,
	}
}

func (s *toolScreen[In, Out]) Name() string {
	return s.tool.Name()
}

func (s *toolScreen[In, Out]) Title() string {
	return s.title
}

func (s *toolScreen[In, Out]) Init() tea.Cmd {
	s.focus = 0
	for _, c := range s.controls {
		c.Blur()
	}

	if len(s.controls) == 0 {
		return nil
	}

	return s.controls[0].Focus()
}

func (s *toolScreen[In, Out]) SetSize(width, height int) {
	s.width = width
	s.height = height

	for _, c := range s.controls {
		c.SetWidth(max(20, width-6))
	}
}

func (s *toolScreen[In, Out]) Update(msg tea.Msg) (toolView, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+s":
			return s, s.submit()
		case "tab":
			return s, s.moveFocus(1)
		case "shift+tab":
			return s, s.moveFocus(-1)
		case "ctrl+y":
			return s, s.copyResult()
		}

	case spinner.TickMsg:
		if !s.tool.Snapshot().Loading() {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case submissionDoneMsg:
		if msg.tool != s.Name() {
			return s, nil
		}
		return s, s.scheduleDismiss()

	case dismissMsg:
		if msg.tool == s.Name() {
			s.tool.Dismiss(msg.seq)
		}
		return s, nil
	}

	if len(s.controls) == 0 {
		return s, nil
	}

	return s, s.controls[s.focus].Update(msg)
}

// validates the form and starts the call off the event loop
func (s *toolScreen[In, Out]) submit() tea.Cmd {
	in := s.build(s.values())

	if err := s.tool.Begin(in); err != nil {
		// field errors are read back from the snapshot; a busy tool ignores the key
		return nil
	}

	tool := s.tool
	name := s.Name()

	run := func() tea.Msg {
		out, err := tool.Invoke(context.Background(), in)
		tool.Complete(out, err)
		return submissionDoneMsg{tool: name}
	}

	return tea.Batch(s.spinner.Tick, run)
}

func (s *toolScreen[In, Out]) scheduleDismiss() tea.Cmd {
	n := s.tool.Snapshot().Notification
	if n == nil {
		return nil
	}

	name, seq := s.Name(), n.Seq

	return tea.Tick(notificationTTL, func(time.Time) tea.Msg {
		return dismissMsg{tool: name, seq: seq}
	})
}

func (s *toolScreen[In, Out]) copyResult() tea.Cmd {
	if s.copyText == nil {
		return nil
	}

	snap := s.tool.Snapshot()
	if snap.Result == nil {
		return nil
	}

	s.tool.Notify(forms.CopyNotification(copyToClipboard(s.copyText(snap.Result))))

	return s.scheduleDismiss()
}

func (s *toolScreen[In, Out]) moveFocus(delta int) tea.Cmd {
	if len(s.controls) == 0 {
		return nil
	}

	s.controls[s.focus].Blur()
	s.focus = (s.focus + delta + len(s.controls)) % len(s.controls)

	return s.controls[s.focus].Focus()
}

func (s *toolScreen[In, Out]) values() map[string]string {
	values := make(map[string]string, len(s.controls))
	for _, c := range s.controls {
		values[c.name] = c.Value()
	}

	return values
}

func (s *toolScreen[In, Out]) View() string {
	snap := s.tool.Snapshot()

	var b strings.Builder

	header := lipgloss.NewStyle().Bold(true).Foreground(colorWhite).Render(strings.ToUpper(s.title))
	b.WriteString(header)
	b.WriteString("\n\n")

	for i, c := range s.controls {
		label := labelStyle
		if i == s.focus {
			label = focusedLabelStyle
		}

		b.WriteString(label.Render(c.label))
		b.WriteString("\n")
		b.WriteString(boxStyle.Render(c.View(i == s.focus)))
		b.WriteString("\n")

		if msg := snap.FieldError(c.name); msg != "" {
			b.WriteString(fieldErrorStyle.Render(msg))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")

	switch {
	case snap.Loading():
		b.WriteString(s.spinner.View() + infoStyle.Render(" generating..."))
	case snap.Result != nil:
		b.WriteString(s.render(s.renderer, snap.Result))
	}

	b.WriteString("\n")

	if snap.Notification != nil {
		b.WriteString(notificationBox(snap.Notification, s.width))
		b.WriteString("\n")
	}

	help := "[Tab: Next field] [Ctrl+S: Submit] [Esc: Back]"
	if s.copyText != nil {
		help = "[Tab: Next field] [Ctrl+S: Submit] [Ctrl+Y: Copy] [Esc: Back]"
	}
	if snap.Loading() {
		help = "[submitting, please wait] [Esc: Back]"
	}

	b.WriteString(helpStyle.Render(help))

	return b.String()
}

