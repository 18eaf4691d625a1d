// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"io"
	"sync"

	"taskboard/internal/service"
	"taskboard/internal/task"
)

// FakeService is an in-memory implementation of service.Service for testing.
// It records calls and lets tests inject errors.
type FakeService struct {
	mu     sync.Mutex
	tasks  []task.Task
	nextID int64

	// Error injection for testing
	AddTaskErr     error
	AdvanceTaskErr error

	// Recorded calls
	AddedTitles []string
	AdvancedIDs []int64
	BoardShown  int
	BoardOutput string // written by ShowBoard when non-empty
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{nextID: 1}
}

// AddTaskWithStatus seeds a task directly.
func (f *FakeService) AddTaskWithStatus(title string, status task.Status) task.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := task.Task{ID: f.nextID, Title: title, Status: status}
	f.nextID++
	f.tasks = append(f.tasks, t)
	return t
}

// Tasks returns a copy of the stored tasks.
func (f *FakeService) Tasks() []task.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]task.Task, len(f.tasks))
	copy(result, f.tasks)
	return result
}

// AddTask implements service.Service.
func (f *FakeService) AddTask(ctx context.Context, title string) (task.Task, error) {
	f.mu.Lock()
	f.AddedTitles = append(f.AddedTitles, title)
	f.mu.Unlock()

	if f.AddTaskErr != nil {
		return task.Task{}, f.AddTaskErr
	}
	return f.AddTaskWithStatus(title, task.Todo), nil
}

// AdvanceTask implements service.Service.
func (f *FakeService) AdvanceTask(ctx context.Context, id int64) (task.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.AdvancedIDs = append(f.AdvancedIDs, id)

	if f.AdvanceTaskErr != nil {
		return task.Task{}, f.AdvanceTaskErr
	}
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks[i].Status = t.Status.Next()
			return f.tasks[i], nil
		}
	}
	return task.Task{}, &service.NotFoundError{ID: id}
}

// Board implements service.Service.
func (f *FakeService) Board(ctx context.Context) []task.Column {
	f.mu.Lock()
	defer f.mu.Unlock()
	columns := make([]task.Column, 0, 3)
	for _, s := range task.Statuses() {
		col := task.Column{Status: s}
		for _, t := range f.tasks {
			if t.Status == s {
				col.Tasks = append(col.Tasks, t)
			}
		}
		columns = append(columns, col)
	}
	return columns
}

// ShowBoard implements service.Service.
func (f *FakeService) ShowBoard(ctx context.Context, w io.Writer) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.BoardShown++
	if f.BoardOutput != "" {
		io.WriteString(w, f.BoardOutput)
	}
}
