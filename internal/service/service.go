// Package service defines the board operations used by the console commands.
package service

import (
	"context"
	"io"

	"taskboard/internal/task"
)

// Service defines the interface for board operations.
// Commands only talk to the board through this interface.
type Service interface {
	// AddTask creates a task in Todo.
	// Returns a *ValidationError if the title is empty or whitespace-only.
	AddTask(ctx context.Context, title string) (task.Task, error)

	// AdvanceTask moves a task one step along Todo -> Doing -> Done.
	// Advancing a Done task is a no-op and still succeeds.
	// Returns a *NotFoundError if no task has the given ID.
	AdvanceTask(ctx context.Context, id int64) (task.Task, error)

	// Board returns one column per status in board order.
	// Empty columns are included.
	Board(ctx context.Context) []task.Column

	// ShowBoard writes the formatted board to w.
	ShowBoard(ctx context.Context, w io.Writer)
}
