// Package storage owns the in-memory task records and the identifier counter.
package storage

import (
	"errors"

	"taskboard/internal/task"
)

// ErrNotFound is returned by Update when no task has the given ID.
var ErrNotFound = errors.New("task not found")

// Storage maps task IDs to tasks. IDs start at 1 and are never reused.
// Storage is not safe for concurrent use.
type Storage struct {
	tasks  map[int64]task.Task
	order  []int64 // insertion order, for stable listing
	nextID int64
}

// New creates an empty Storage.
func New() *Storage {
	return &Storage{
		tasks:  make(map[int64]task.Task),
		order:  make([]int64, 0),
		nextID: 1,
	}
}

// Create stores a new task with the next unused ID and returns it.
func (s *Storage) Create(title string, status task.Status) task.Task {
	t := task.Task{
		ID:     s.nextID,
		Title:  title,
		Status: status,
	}
	s.nextID++

	s.tasks[t.ID] = t
	s.order = append(s.order, t.ID)
	return t
}

// FindByID returns the task with the given ID.
// The boolean is false if no such task exists.
func (s *Storage) FindByID(id int64) (task.Task, bool) {
	t, ok := s.tasks[id]
	return t, ok
}

// ListAll returns every task in insertion order.
func (s *Storage) ListAll() []task.Task {
	result := make([]task.Task, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.tasks[id])
	}
	return result
}

// Update records a new status for an existing task.
// ID and title of the stored task are left as they were.
func (s *Storage) Update(t task.Task) error {
	stored, ok := s.tasks[t.ID]
	if !ok {
		return ErrNotFound
	}
	stored.Status = t.Status
	s.tasks[t.ID] = stored
	return nil
}

// Len returns the number of stored tasks.
func (s *Storage) Len() int {
	return len(s.order)
}
