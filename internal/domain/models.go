package domain

// Task represents a single entry in the task list
type Task struct {
	Title string
	Done  bool
}
