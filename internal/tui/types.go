package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/schynno0/studio/internal/forms"
)

// represents the current state of the TUI
type AppState int

const (
	StateWelcome AppState = iota
	StateTool
)

// main TUI application model
type Model struct {
	state    AppState
	mode     string
	width    int
	height   int
	err      error
	welcome  *Welcome
	tools    []toolView
	active   int
	renderer *renderer
}

// one lab tool screen
type toolView interface {
	Name() string
	Title() string
	Init() tea.Cmd
	Update(msg tea.Msg) (toolView, tea.Cmd)
	View() string
	SetSize(width, height int)
}

// sent when an error occurs
type ErrorMsg struct {
	err error
}

// sent to open the tool at Index
type OpenToolMsg struct {
	Index int
}

// sent to go back to the welcome screen
type BackMsg struct{}

// sent when a tool's submission has finished
type submissionDoneMsg struct {
	tool string
}

// sent when a notification has been on screen long enough
type dismissMsg struct {
	tool string
	seq  uint64
}

// a tool the welcome screen lists
type Command struct {
	Name        string
	Description string
}

// welcome screen model
type Welcome struct {
	mode     string
	input    string
	selected int
	commands []Command
}

type fieldKind int

const (
	fieldInput fieldKind = iota
	fieldTextArea
	fieldSelect
)

// one form control
type field struct {
	name        string
	label       string
	placeholder string
	kind        fieldKind
	options     []string
	option      int
}

// the pieces of a form tool that differ per tool
type toolSpec[In, Out any] struct {
	tool   *forms.Tool[In, Out]
	title  string
	fields []field
	// builds the request from the current field values
	build func(values map[string]string) In
	// renders a successful result
	render func(r *renderer, out *Out) string
	// text copied by ctrl+y, empty when the tool has nothing to copy
	copyText func(out *Out) string
}
