package output_test

import (
	"bytes"
	"strings"
	"testing"

	"taskboard/internal/output"
	"taskboard/internal/task"
	"taskboard/internal/testutil"
)

func emptyColumns() []task.Column {
	return []task.Column{
		{Status: task.Todo},
		{Status: task.Doing},
		{Status: task.Done},
	}
}

func TestFormatTask(t *testing.T) {
	var buf bytes.Buffer
	output.FormatTask(&buf, task.Task{ID: 12, Title: "Write spec", Status: task.Doing})

	expected := "[DOING] ID: 12 | Write spec\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestFormatTask_NewlinesInTitle(t *testing.T) {
	var buf bytes.Buffer
	output.FormatTask(&buf, task.Task{ID: 1, Title: "line one\nline two\r\n", Status: task.Todo})

	expected := "[TODO] ID: 1 | line one line two  \n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestFormatBoard_Scenario(t *testing.T) {
	columns := []task.Column{
		{Status: task.Todo, Tasks: []task.Task{{ID: 2, Title: "Review spec", Status: task.Todo}}},
		{Status: task.Doing},
		{Status: task.Done, Tasks: []task.Task{{ID: 1, Title: "Write spec", Status: task.Done}}},
	}

	var buf bytes.Buffer
	output.FormatBoard(&buf, output.DefaultLayout(), columns)

	testutil.Golden(t, "board_scenario", buf.Bytes())
}

func TestFormatBoard_Empty(t *testing.T) {
	var buf bytes.Buffer
	output.FormatBoard(&buf, output.DefaultLayout(), emptyColumns())

	testutil.Golden(t, "board_empty", buf.Bytes())
}

func TestFormatBoard_CustomLabels(t *testing.T) {
	layout := output.Layout{
		Title: "TAREFAS",
		Labels: map[task.Status]string{
			task.Todo:  "A Fazer",
			task.Doing: "Em Progresso",
		},
	}

	var buf bytes.Buffer
	output.FormatBoard(&buf, layout, emptyColumns())

	expected := "\n===== TAREFAS =====\n" +
		"\n--- A Fazer ---\n" +
		"\n--- Em Progresso ---\n" +
		"\n--- Done ---\n" +
		"===================\n\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestFormatBoard_WideTitleRule(t *testing.T) {
	layout := output.Layout{Title: "看板"}

	var buf bytes.Buffer
	output.FormatBoard(&buf, layout, nil)

	lines := strings.Split(buf.String(), "\n")
	// "", header, footer, "", ""
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d: %q", len(lines), buf.String())
	}
	footer := lines[2]
	if footer != strings.Repeat("=", 16) {
		t.Errorf("expected 16-cell footer rule, got %q", footer)
	}
}

func TestLayout_LabelFallback(t *testing.T) {
	layout := output.Layout{Labels: map[task.Status]string{task.Done: "  "}}

	if got := layout.Label(task.Done); got != "Done" {
		t.Errorf("expected blank label to fall back to %q, got %q", "Done", got)
	}
	if got := layout.Label(task.Todo); got != "To Do" {
		t.Errorf("expected %q, got %q", "To Do", got)
	}
}

func TestFormatBoard_BlankTitleUsesDefault(t *testing.T) {
	var buf bytes.Buffer
	output.FormatBoard(&buf, output.Layout{Title: " "}, nil)

	if !strings.HasPrefix(buf.String(), "\n===== KANBAN BOARD =====\n") {
		t.Errorf("expected default title header, got %q", buf.String())
	}
}
