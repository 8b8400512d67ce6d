package views

import (
	"fmt"
	"strings"
)

// Row is one renderable line of the task list. Focused marks the row that is
// currently promoted to the in-place editor; when Editing is set, Input holds
// the rendered text input shown instead of the plain title.
type Row struct {
	Index   int
	Title   string
	Done    bool
	Focused bool
	Editing bool
	Input   string
}

// Renderer builds the visible screen from rows
type Renderer struct {
	styles   *Styles
	showDone bool
}

// NewRenderer creates a new renderer
func NewRenderer(showDone bool) *Renderer {
	return &Renderer{
		styles:   NewStyles(),
		showDone: showDone,
	}
}

// Styles returns the style set used by the renderer
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render builds the full screen: title, task rows, status line and help hint
func (r *Renderer) Render(rows []Row, status string, width int) string {
	var b strings.Builder

	b.WriteString(r.styles.Title.Render("tasklist"))
	b.WriteString("\n")

	visible := 0
	for _, row := range rows {
		if row.Done && !r.showDone && !row.Focused {
			continue
		}
		b.WriteString(r.renderRow(row))
		b.WriteString("\n")
		visible++
	}
	if visible == 0 {
		b.WriteString(r.styles.Row.Render("  no tasks — press a to add one"))
		b.WriteString("\n")
	}

	if status != "" {
		b.WriteString(r.styles.Status.Render(status))
		b.WriteString("\n")
	}
	b.WriteString(r.styles.Help.Render("j/k move · enter edit · space done · a add · d delete · esc clear · ? help · q quit"))

	return r.styles.Main.MaxWidth(width).Render(b.String())
}

func (r *Renderer) renderRow(row Row) string {
	mark := r.styles.PendingMark.Render("[ ]")
	if row.Done {
		mark = r.styles.DoneMark.Render("[x]")
	}

	if row.Editing {
		return fmt.Sprintf("%s %s", mark, r.styles.EditBox.Render(row.Input))
	}

	title := row.Title
	if row.Done {
		title = r.styles.DoneTitle.Render(title)
	}

	if row.Focused {
		return r.styles.FocusedRow.Render(fmt.Sprintf("> %s %s", mark, title))
	}
	return r.styles.Row.Render(fmt.Sprintf("  %s %s", mark, title))
}
