package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventTaskAdded    EventType = "TaskAdded"
	EventTaskRemoved  EventType = "TaskRemoved"
	EventTaskEdited   EventType = "TaskEdited"
	EventTaskToggled  EventType = "TaskToggled"
	EventFocusChanged EventType = "FocusChanged"
	EventFocusCleared EventType = "FocusCleared"
	EventTasksChanged EventType = "TasksChanged"
	EventConfigLoaded EventType = "ConfigLoaded"
	EventConfigSaved  EventType = "ConfigSaved"
	EventError        EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// TaskAddedEvent is emitted when a new task is appended to the list
type TaskAddedEvent struct {
	Task  Task
	Index int
}

func (e TaskAddedEvent) Type() EventType { return EventTaskAdded }

// TaskRemovedEvent is emitted when a task is deleted
type TaskRemovedEvent struct {
	Task  Task
	Index int
}

func (e TaskRemovedEvent) Type() EventType { return EventTaskRemoved }

// TaskEditedEvent is emitted when an in-place edit is committed
type TaskEditedEvent struct {
	Before Task
	After  Task
	Index  int
}

func (e TaskEditedEvent) Type() EventType { return EventTaskEdited }

// TaskToggledEvent is emitted when a task's done state flips
type TaskToggledEvent struct {
	Task  Task
	Index int
}

func (e TaskToggledEvent) Type() EventType { return EventTaskToggled }

// FocusChangedEvent is emitted when a different task becomes the focused one
type FocusChangedEvent struct {
	OldIndex int // -1 when nothing was focused before
	NewIndex int
}

func (e FocusChangedEvent) Type() EventType { return EventFocusChanged }

// FocusClearedEvent is emitted when the focused task is demoted back into
// the plain list
type FocusClearedEvent struct {
	Index int
}

func (e FocusClearedEvent) Type() EventType { return EventFocusCleared }

// TasksChangedEvent carries a full snapshot of the list after any mutation,
// for listeners that persist it
type TasksChangedEvent struct {
	Tasks []Task
}

func (e TasksChangedEvent) Type() EventType { return EventTasksChanged }

// ConfigLoadedEvent is emitted after the configuration has been read
type ConfigLoadedEvent struct {
	Path  string
	Tasks []Task
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted after the configuration has been written
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
