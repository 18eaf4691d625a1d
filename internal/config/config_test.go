package config_test

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"taskboard/internal/config"
	"taskboard/internal/task"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "taskboard.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestNew_Defaults(t *testing.T) {
	cfg := config.New()

	if cfg.Quiet {
		t.Error("expected quiet off by default")
	}
	if cfg.Board.Title != "KANBAN BOARD" {
		t.Errorf("expected default title, got %q", cfg.Board.Title)
	}
	if cfg.Labels.Todo != "To Do" || cfg.Labels.Doing != "In Progress" || cfg.Labels.Done != "Done" {
		t.Errorf("unexpected default labels: %+v", cfg.Labels)
	}
	if cfg.Log.Level != "warn" || cfg.Log.Format != "text" {
		t.Errorf("unexpected default log config: %+v", cfg.Log)
	}
}

func TestLoad_NoArgs(t *testing.T) {
	cfg, err := config.Load(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Path != "" {
		t.Errorf("expected no config file, got %q", cfg.Path)
	}
	if cfg.ShowVersion {
		t.Error("expected ShowVersion false")
	}
}

func TestLoad_Flags(t *testing.T) {
	cfg, err := config.Load(newFlagSet(), []string{"--quiet", "--debug", "--log-format", "json", "--version"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Quiet {
		t.Error("expected quiet")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected debug level, got %q", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("expected json format, got %q", cfg.Log.Format)
	}
	if !cfg.ShowVersion {
		t.Error("expected ShowVersion")
	}
}

func TestLoad_UnknownFlag(t *testing.T) {
	_, err := config.Load(newFlagSet(), []string{"--nope"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "flag provided but not defined") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoad_PositionalArgument(t *testing.T) {
	_, err := config.Load(newFlagSet(), []string{"extra"})
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "unexpected argument: extra" {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoad_FileThenFlags(t *testing.T) {
	path := writeConfig(t, `
quiet = true

[board]
title = "TAREFAS"

[labels]
todo = "A Fazer"
doing = "Em Progresso"

[log]
level = "info"
format = "logfmt"
`)

	cfg, err := config.Load(newFlagSet(), []string{"--config", path, "--quiet=false"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Path != path {
		t.Errorf("expected path %q, got %q", path, cfg.Path)
	}
	if cfg.Quiet {
		t.Error("expected --quiet=false to override file")
	}
	if cfg.Board.Title != "TAREFAS" {
		t.Errorf("expected title from file, got %q", cfg.Board.Title)
	}
	if cfg.Labels.Todo != "A Fazer" || cfg.Labels.Doing != "Em Progresso" {
		t.Errorf("expected labels from file, got %+v", cfg.Labels)
	}
	if cfg.Labels.Done != "Done" {
		t.Errorf("expected default label to survive, got %q", cfg.Labels.Done)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "logfmt" {
		t.Errorf("expected log config from file, got %+v", cfg.Log)
	}
}

func TestLoad_DebugFlagOverridesFileLevel(t *testing.T) {
	path := writeConfig(t, "[log]\nlevel = \"error\"\n")

	cfg, err := config.Load(newFlagSet(), []string{"--config", path, "--debug"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected debug, got %q", cfg.Log.Level)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.toml")

	_, err := config.Load(newFlagSet(), []string{"--config", path})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.HasPrefix(err.Error(), "read config file:") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr bool
	}{
		{"empty", "", false},
		{"full", "quiet = true\n[board]\ntitle = \"X\"\n[labels]\ndone = \"Shipped\"\n[log]\nlevel = \"debug\"\nformat = \"json\"\n", false},
		{"unknown top-level key", "color = true\n", true},
		{"unknown label", "[labels]\nblocked = \"Blocked\"\n", true},
		{"blank label", "[labels]\ntodo = \"\"\n", true},
		{"bad level", "[log]\nlevel = \"loud\"\n", true},
		{"bad format", "[log]\nformat = \"xml\"\n", true},
		{"wrong type", "quiet = \"yes\"\n", true},
		{"malformed toml", "[board\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := config.Validate(tt.doc)
			if tt.wantErr && err == nil {
				t.Error("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadFile_InvalidLeavesConfigUntouched(t *testing.T) {
	path := writeConfig(t, "[board]\ntitle = \"New\"\nextra = 1\n")

	cfg := config.New()
	if err := config.LoadFile(cfg, path); err == nil {
		t.Fatal("expected error")
	}
	if cfg.Board.Title != "KANBAN BOARD" {
		t.Errorf("expected title untouched, got %q", cfg.Board.Title)
	}
}

func TestConfig_Layout(t *testing.T) {
	cfg := config.New()
	cfg.Board.Title = "SPRINT"
	cfg.Labels.Doing = "Working"

	layout := cfg.Layout()
	if layout.Title != "SPRINT" {
		t.Errorf("expected title SPRINT, got %q", layout.Title)
	}
	if layout.Label(task.Doing) != "Working" {
		t.Errorf("expected Working, got %q", layout.Label(task.Doing))
	}
	if layout.Label(task.Todo) != "To Do" {
		t.Errorf("expected To Do, got %q", layout.Label(task.Todo))
	}
}
