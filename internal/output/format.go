// Package output provides formatters for console output.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"taskboard/internal/task"
)

const (
	// DefaultTitle is the board title shown in the header rule.
	DefaultTitle = "KANBAN BOARD"

	headerFill = "====="
)

// Layout controls how the board is labelled.
type Layout struct {
	// Title appears between the header rules.
	Title string

	// Labels overrides the section title per status.
	// Missing entries fall back to Status.Label.
	Labels map[task.Status]string
}

// DefaultLayout returns the layout used when nothing is configured.
func DefaultLayout() Layout {
	return Layout{Title: DefaultTitle}
}

// Label returns the section title for s.
func (l Layout) Label(s task.Status) string {
	if label, ok := l.Labels[s]; ok && strings.TrimSpace(label) != "" {
		return label
	}
	return s.Label()
}

// FormatTask formats a single task line.
// Format: "[{STATUS}] ID: {ID} | {TITLE}\n"
func FormatTask(w io.Writer, t task.Task) {
	fmt.Fprintf(w, "[%s] ID: %d | %s\n", t.Status, t.ID, normalizeTitle(t.Title))
}

// FormatColumnHeader formats the section header for a status column.
// A blank line precedes each header.
func FormatColumnHeader(w io.Writer, label string) {
	fmt.Fprintf(w, "\n--- %s ---\n", label)
}

// FormatBoard writes the bordered board: a header rule, one section per
// column in the order given, and a footer rule as wide as the header.
func FormatBoard(w io.Writer, layout Layout, columns []task.Column) {
	title := layout.Title
	if strings.TrimSpace(title) == "" {
		title = DefaultTitle
	}
	header := headerFill + " " + title + " " + headerFill

	fmt.Fprintf(w, "\n%s\n", header)
	for _, col := range columns {
		FormatColumnHeader(w, layout.Label(col.Status))
		for _, t := range col.Tasks {
			FormatTask(w, t)
		}
	}
	fmt.Fprintf(w, "%s\n\n", strings.Repeat("=", runewidth.StringWidth(header)))
}

// normalizeTitle replaces line breaks so each task stays on one line.
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	return strings.ReplaceAll(title, "\n", " ")
}
