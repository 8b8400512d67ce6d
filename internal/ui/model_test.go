package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"selectlist/internal/config"
	"selectlist/internal/domain"
	"selectlist/internal/eventbus"
)

func newTestModel(t *testing.T, titles ...string) *Model {
	t.Helper()
	bus := eventbus.New()
	t.Cleanup(bus.Close)

	cfg := config.Default()
	tasks := make([]domain.Task, len(titles))
	for i, title := range titles {
		tasks[i] = domain.Task{Title: title}
	}
	config.TasksToConfig(cfg, tasks)

	return NewModel(bus, cfg)
}

func press(m *Model, msg tea.KeyMsg) {
	_, _ = m.Update(msg)
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func focusedTitle(t *testing.T, m *Model) string {
	t.Helper()
	e, ok := m.tasks.Selected()
	require.True(t, ok, "expected a focused row")
	return e.Task.Title
}

func TestNewModelFocusesFirstTask(t *testing.T) {
	m := newTestModel(t, "alpha", "beta")

	assert.Equal(t, 0, m.cursor)
	assert.Equal(t, "alpha", focusedTitle(t, m))
	assert.Equal(t, []domain.Task{{Title: "alpha"}, {Title: "beta"}}, m.Tasks())
}

func TestMoveFocusKeepsAllTasks(t *testing.T) {
	m := newTestModel(t, "alpha", "beta", "gamma")

	press(m, key("j"))
	assert.Equal(t, 1, m.cursor)
	assert.Equal(t, "beta", focusedTitle(t, m))

	press(m, key("j"))
	assert.Equal(t, "gamma", focusedTitle(t, m))

	// Moving past the end stays on the last row.
	press(m, key("j"))
	assert.Equal(t, 2, m.cursor)

	press(m, key("k"))
	assert.Equal(t, "beta", focusedTitle(t, m))

	assert.Equal(t, 3, len(m.Tasks()))
}

func TestJumpToTopAndBottom(t *testing.T) {
	m := newTestModel(t, "a", "b", "c", "d")

	press(m, key("G"))
	assert.Equal(t, 3, m.cursor)
	assert.Equal(t, "d", focusedTitle(t, m))

	press(m, key("g"))
	assert.Equal(t, 0, m.cursor)
	assert.Equal(t, "a", focusedTitle(t, m))
}

func TestEscClearsFocusAndMoveRestoresIt(t *testing.T) {
	m := newTestModel(t, "alpha", "beta", "gamma")
	press(m, key("j"))

	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	_, ok := m.tasks.Selected()
	assert.False(t, ok)
	assert.Equal(t, []domain.Task{{Title: "alpha"}, {Title: "beta"}, {Title: "gamma"}}, m.Tasks())

	press(m, key("j"))
	assert.Equal(t, "beta", focusedTitle(t, m))
}

func TestEditCommit(t *testing.T) {
	m := newTestModel(t, "alpha", "beta")

	press(m, key("e"))
	assert.True(t, m.editing())

	press(m, key("!"))
	press(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.editing())
	assert.Equal(t, "alpha!", focusedTitle(t, m))
	assert.Equal(t, "beta", m.Tasks()[1].Title)
}

func TestEditCancelRestoresTitle(t *testing.T) {
	m := newTestModel(t, "alpha")

	press(m, key("e"))
	press(m, key("x"))
	press(m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, m.editing())
	assert.Equal(t, "alpha", focusedTitle(t, m))
}

func TestNavigationWhileEditingGoesToInput(t *testing.T) {
	m := newTestModel(t, "alpha", "beta")

	press(m, key("e"))
	press(m, key("j"))

	// "j" was typed into the editor, not treated as a cursor move.
	assert.Equal(t, 0, m.cursor)
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "alphaj", focusedTitle(t, m))
}

func TestToggleDone(t *testing.T) {
	m := newTestModel(t, "alpha")

	press(m, tea.KeyMsg{Type: tea.KeySpace})
	assert.True(t, m.Tasks()[0].Done)

	press(m, tea.KeyMsg{Type: tea.KeySpace})
	assert.False(t, m.Tasks()[0].Done)
}

func TestAddTaskFocusesNewRowInEditMode(t *testing.T) {
	m := newTestModel(t, "alpha")

	press(m, key("a"))
	require.Equal(t, 2, m.tasks.Len())
	assert.Equal(t, 1, m.cursor)
	assert.True(t, m.editing())

	press(m, key("b"))
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "b", focusedTitle(t, m))
}

func TestAddTaskOnEmptyList(t *testing.T) {
	m := newTestModel(t)
	require.Equal(t, 0, m.tasks.Len())

	press(m, key("a"))
	assert.Equal(t, 1, m.tasks.Len())
	assert.Equal(t, 0, m.cursor)
	assert.True(t, m.editing())
}

func TestDeleteTask(t *testing.T) {
	m := newTestModel(t, "alpha", "beta", "gamma")
	press(m, key("j"))

	press(m, key("d"))
	assert.Equal(t, []string{"alpha", "gamma"}, taskTitles(m))
	assert.Equal(t, "gamma", focusedTitle(t, m))

	press(m, key("d"))
	press(m, key("d"))
	assert.Empty(t, m.Tasks())
	_, ok := m.tasks.Selected()
	assert.False(t, ok)
}

func TestViewShowsTasks(t *testing.T) {
	m := newTestModel(t, "water plants", "mow lawn")
	_, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	out := m.View()
	assert.Contains(t, out, "water plants")
	assert.Contains(t, out, "mow lawn")
}

func taskTitles(m *Model) []string {
	tasks := m.Tasks()
	titles := make([]string, len(tasks))
	for i, task := range tasks {
		titles[i] = task.Title
	}
	return titles
}
