// Package task defines the task record and its status progression.
package task

// Status is a task's stage on the board. Values are ordered: Todo < Doing < Done.
type Status int

const (
	Todo Status = iota
	Doing
	Done
)

// Statuses returns every status in board order.
func Statuses() []Status {
	return []Status{Todo, Doing, Done}
}

// Valid reports whether s is one of the three board statuses.
func (s Status) Valid() bool {
	switch s {
	case Todo, Doing, Done:
		return true
	default:
		return false
	}
}

// String returns the token used in task lines ("TODO", "DOING", "DONE").
func (s Status) String() string {
	switch s {
	case Todo:
		return "TODO"
	case Doing:
		return "DOING"
	case Done:
		return "DONE"
	default:
		return "UNKNOWN"
	}
}

// Label returns the default human-readable section title for s.
func (s Status) Label() string {
	switch s {
	case Todo:
		return "To Do"
	case Doing:
		return "In Progress"
	case Done:
		return "Done"
	default:
		return "Unknown"
	}
}

// Next returns the status a task moves to when advanced.
// Done is terminal and advances to itself.
func (s Status) Next() Status {
	switch s {
	case Todo:
		return Doing
	case Doing:
		return Done
	default:
		return s
	}
}

// Task is a single unit of work on the board.
type Task struct {
	ID     int64
	Title  string
	Status Status
}

// Column groups the tasks that share a status.
type Column struct {
	Status Status
	Tasks  []Task
}
