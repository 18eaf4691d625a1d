package service

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"taskboard/internal/output"
	"taskboard/internal/storage"
	"taskboard/internal/task"
)

// BoardService implements Service on top of an in-memory Storage.
type BoardService struct {
	store  *storage.Storage
	layout output.Layout
}

// Option configures a BoardService.
type Option func(*BoardService)

// WithLayout sets the layout used by ShowBoard.
func WithLayout(layout output.Layout) Option {
	return func(s *BoardService) {
		s.layout = layout
	}
}

// New creates a BoardService backed by store.
func New(store *storage.Storage, opts ...Option) *BoardService {
	s := &BoardService{
		store:  store,
		layout: output.DefaultLayout(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddTask implements Service.
func (s *BoardService) AddTask(ctx context.Context, title string) (task.Task, error) {
	logger := log.FromContext(ctx).With("where", "service")

	title = strings.TrimSpace(title)
	if title == "" {
		logger.Debug("rejected task", "reason", "blank title")
		return task.Task{}, &ValidationError{Field: "title", Err: ErrInvalidTitle}
	}

	t := s.store.Create(title, task.Todo)
	logger.Debug("task created", "id", t.ID, "title", t.Title)
	return t, nil
}

// AdvanceTask implements Service.
func (s *BoardService) AdvanceTask(ctx context.Context, id int64) (task.Task, error) {
	logger := log.FromContext(ctx).With("where", "service")

	t, ok := s.store.FindByID(id)
	if !ok {
		logger.Debug("advance failed", "id", id, "reason", "not found")
		return task.Task{}, &NotFoundError{ID: id}
	}

	next := t.Status.Next()
	if next == t.Status {
		logger.Debug("task already in terminal status", "id", id, "status", t.Status)
		return t, nil
	}

	from := t.Status
	t.Status = next
	if err := s.store.Update(t); err != nil {
		logger.Debug("advance failed", "id", id, "error", err)
		return task.Task{}, &NotFoundError{ID: id}
	}

	logger.Debug("task advanced", "id", id, "from", from, "to", next)
	return t, nil
}

// Board implements Service.
func (s *BoardService) Board(ctx context.Context) []task.Column {
	all := s.store.ListAll()

	columns := make([]task.Column, 0, len(task.Statuses()))
	for _, status := range task.Statuses() {
		col := task.Column{Status: status}
		for _, t := range all {
			if t.Status == status {
				col.Tasks = append(col.Tasks, t)
			}
		}
		columns = append(columns, col)
	}

	log.FromContext(ctx).Debug("board built", "where", "service", "tasks", len(all))
	return columns
}

// ShowBoard implements Service.
func (s *BoardService) ShowBoard(ctx context.Context, w io.Writer) {
	output.FormatBoard(w, s.layout, s.Board(ctx))
}
