// Package config handles board configuration: defaults, an optional TOML
// file, and command-line flags.
package config

import (
	"taskboard/internal/output"
	"taskboard/internal/task"
)

const (
	// AppName is the program name used in usage and version output.
	AppName = "taskboard"

	// DefaultLogLevel keeps logs off the console unless something goes wrong.
	DefaultLogLevel = "warn"

	// DefaultLogFormat is the charmbracelet/log text formatter.
	DefaultLogFormat = "text"
)

// Config holds the full configuration for the board.
type Config struct {
	// Path is the TOML file the config was loaded from, if any.
	Path string `toml:"-"`

	// Quiet suppresses the banner and confirmation lines.
	Quiet bool `toml:"quiet"`

	// ShowVersion prints the version and exits. Flag only.
	ShowVersion bool `toml:"-"`

	Board  BoardConfig  `toml:"board"`
	Labels LabelsConfig `toml:"labels"`
	Log    LogConfig    `toml:"log"`
}

// BoardConfig controls the board header.
type BoardConfig struct {
	Title string `toml:"title"`
}

// LabelsConfig holds the section title for each status.
type LabelsConfig struct {
	Todo  string `toml:"todo"`
	Doing string `toml:"doing"`
	Done  string `toml:"done"`
}

// LogConfig controls the logger.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Board: BoardConfig{
			Title: output.DefaultTitle,
		},
		Labels: LabelsConfig{
			Todo:  task.Todo.Label(),
			Doing: task.Doing.Label(),
			Done:  task.Done.Label(),
		},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Layout returns the board layout described by the config.
func (c *Config) Layout() output.Layout {
	return output.Layout{
		Title: c.Board.Title,
		Labels: map[task.Status]string{
			task.Todo:  c.Labels.Todo,
			task.Doing: c.Labels.Doing,
			task.Done:  c.Labels.Done,
		},
	}
}
