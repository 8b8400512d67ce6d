package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"selectlist/internal/domain"
)

// Editor is the focused row's richer form: the underlying task plus a text
// input for editing its title in place. Unfocused rows stay plain
// domain.Task values; only the selected row carries this state.
type Editor struct {
	Task  domain.Task
	Input textinput.Model
}

// NewEditor wraps a task for in-place editing. The input starts blurred, so
// keystrokes keep going to navigation until editing begins.
func NewEditor(t domain.Task) Editor {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 120
	ti.SetValue(t.Title)
	ti.CursorEnd()
	return Editor{Task: t, Input: ti}
}

// Editing reports whether keystrokes are currently routed to the input
func (e Editor) Editing() bool {
	return e.Input.Focused()
}

// Commit returns the task with the edited title applied. A blank input
// keeps the previous title.
func (e Editor) Commit() domain.Task {
	t := e.Task
	if title := strings.TrimSpace(e.Input.Value()); title != "" {
		t.Title = title
	}
	return t
}

// Abandon returns the task as it was before editing began
func (e Editor) Abandon() domain.Task {
	return e.Task
}
