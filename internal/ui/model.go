package ui

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"selectlist"
	"selectlist/internal/config"
	"selectlist/internal/domain"
	"selectlist/internal/eventbus"
	"selectlist/internal/ui/views"
)

// Conversions between the two row types. Moving or clearing focus abandons
// any uncommitted edit; committing is an explicit action (enter).
func promoteTask(t domain.Task) Editor   { return NewEditor(t) }
func demoteEditor(e Editor) domain.Task  { return e.Abandon() }
func sameTask(t domain.Task) domain.Task { return t }

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config

	// tasks is the whole list state: plain tasks around at most one row
	// promoted to an Editor.
	tasks  selectlist.List[domain.Task, Editor]
	cursor int // flattened index of the focused row, -1 when none

	width    int
	height   int
	status   string
	renderer *views.Renderer

	// Program reference for terminal management around the help pager
	program *tea.Program
}

// NewModel creates a new UI model from the loaded configuration
func NewModel(bus eventbus.EventBus, cfg *config.Config) *Model {
	m := &Model{
		bus:      bus,
		config:   cfg,
		cursor:   -1,
		renderer: views.NewRenderer(cfg.UISettings.ShowDone),
	}
	m.tasks = selectlist.FromSlice[domain.Task, Editor](config.TasksFromConfig(cfg))
	if m.tasks.Len() > 0 {
		m.focus(0)
	}
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// Tasks returns the current task list in logical order
func (m *Model) Tasks() []domain.Task {
	return selectlist.ToSlice(sameTask, demoteEditor, m.tasks)
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if m.editing() {
			return m, m.handleEditKey(msg)
		}
		return m, m.handleBrowseKey(msg)

	case helpPagerMsg:
		if msg.err != nil {
			m.status = "help: " + msg.err.Error()
		}
	}
	return m, nil
}

func (m *Model) View() string {
	indexed := selectlist.IndexedMap(
		func(i int, t domain.Task) views.Row {
			return views.Row{Index: i, Title: t.Title, Done: t.Done}
		},
		func(i int, e Editor) views.Row {
			return views.Row{
				Index:   i,
				Title:   e.Task.Title,
				Done:    e.Task.Done,
				Focused: true,
				Editing: e.Editing(),
				Input:   e.Input.View(),
			}
		},
		m.tasks,
	)
	return m.renderer.Render(selectlist.Flatten(indexed), m.status, m.width)
}

// handleBrowseKey handles keys while no editor input is focused
func (m *Model) handleBrowseKey(msg tea.KeyMsg) tea.Cmd {
	m.status = ""

	switch msg.String() {
	case "ctrl+c", "q":
		return tea.Quit
	case "j", "down":
		m.moveFocus(1)
	case "k", "up":
		m.moveFocus(-1)
	case "g", "home":
		m.focus(0)
	case "G", "end":
		m.focus(m.tasks.Len() - 1)
	case "esc":
		m.clearFocus()
	case " ":
		m.toggleDone()
	case "enter", "e":
		return m.beginEdit(false)
	case "a":
		return m.addTask()
	case "d":
		m.deleteTask()
	case "?":
		return m.showHelpPager()
	}
	return nil
}

// handleEditKey handles keys while the focused row's input is active
func (m *Model) handleEditKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		m.cancelEdit()
		return nil
	case "enter":
		m.commitEdit()
		return nil
	}

	var cmd tea.Cmd
	m.tasks = selectlist.Map(sameTask, func(e Editor) Editor {
		e.Input, cmd = e.Input.Update(msg)
		return e
	}, m.tasks)
	return cmd
}

func (m *Model) editing() bool {
	e, ok := m.tasks.Selected()
	return ok && e.Editing()
}

// focus promotes the row at index to the editor slot, demoting any
// previously focused row back to a plain task.
func (m *Model) focus(index int) {
	next, err := m.tasks.Select(demoteEditor, promoteTask, index)
	if err != nil {
		log.Printf("focus: %v", err)
		return
	}
	old := m.cursor
	m.tasks = next
	m.cursor = index
	m.bus.Publish(domain.FocusChangedEvent{OldIndex: old, NewIndex: index})
}

func (m *Model) moveFocus(delta int) {
	if m.tasks.Len() == 0 {
		return
	}
	if _, ok := m.tasks.Selected(); !ok {
		// Nothing focused: land back where the cursor last was.
		m.focus(clamp(m.cursor, 0, m.tasks.Len()-1))
		return
	}
	target := clamp(m.cursor+delta, 0, m.tasks.Len()-1)
	if target != m.cursor {
		m.focus(target)
	}
}

func (m *Model) clearFocus() {
	if _, ok := m.tasks.Selected(); !ok {
		return
	}
	m.tasks = m.tasks.Unselect(demoteEditor)
	m.bus.Publish(domain.FocusClearedEvent{Index: m.cursor})
}

// beginEdit focuses the selected row's text input. With clear set the input
// starts empty instead of holding the current title.
func (m *Model) beginEdit(clear bool) tea.Cmd {
	if _, ok := m.tasks.Selected(); !ok {
		return nil
	}
	var cmd tea.Cmd
	m.tasks = selectlist.Map(sameTask, func(e Editor) Editor {
		if clear {
			e.Input.SetValue("")
		}
		cmd = e.Input.Focus()
		return e
	}, m.tasks)
	return cmd
}

func (m *Model) commitEdit() {
	e, ok := m.tasks.Selected()
	if !ok {
		return
	}
	before := e.Task
	after := e.Commit()
	m.tasks = selectlist.Map(sameTask, func(Editor) Editor {
		ed := NewEditor(after)
		return ed
	}, m.tasks)

	m.bus.Publish(domain.TaskEditedEvent{Before: before, After: after, Index: m.cursor})
	m.publishSnapshot()
}

func (m *Model) cancelEdit() {
	m.tasks = selectlist.Map(sameTask, func(e Editor) Editor {
		return NewEditor(e.Abandon())
	}, m.tasks)
}

func (m *Model) toggleDone() {
	e, ok := m.tasks.Selected()
	if !ok {
		return
	}
	toggled := e.Task
	toggled.Done = !toggled.Done
	m.tasks = selectlist.Map(sameTask, func(Editor) Editor {
		return NewEditor(toggled)
	}, m.tasks)

	m.bus.Publish(domain.TaskToggledEvent{Task: toggled, Index: m.cursor})
	m.publishSnapshot()
}

// addTask appends a new task, focuses it and opens an empty editor
func (m *Model) addTask() tea.Cmd {
	tasks := append(m.Tasks(), domain.Task{Title: "untitled"})
	m.tasks = selectlist.FromSlice[domain.Task, Editor](tasks)
	m.cursor = -1
	m.focus(len(tasks) - 1)

	m.bus.Publish(domain.TaskAddedEvent{Task: tasks[len(tasks)-1], Index: len(tasks) - 1})
	m.publishSnapshot()
	return m.beginEdit(true)
}

func (m *Model) deleteTask() {
	if _, ok := m.tasks.Selected(); !ok {
		return
	}
	tasks := m.Tasks()
	removed := tasks[m.cursor]
	tasks = append(tasks[:m.cursor], tasks[m.cursor+1:]...)
	index := m.cursor

	m.tasks = selectlist.FromSlice[domain.Task, Editor](tasks)
	m.cursor = -1
	if len(tasks) > 0 {
		m.focus(clamp(index, 0, len(tasks)-1))
	}

	m.bus.Publish(domain.TaskRemovedEvent{Task: removed, Index: index})
	m.publishSnapshot()
}

func (m *Model) publishSnapshot() {
	m.bus.Publish(domain.TasksChangedEvent{Tasks: m.Tasks()})
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
