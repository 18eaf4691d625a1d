// Package commands provides the menu command interface and implementations.
package commands

import (
	"context"
	"io"

	"taskboard/internal/config"
	"taskboard/internal/service"
)

// Action tells the console what to do after a command runs.
type Action int

const (
	// Continue shows the menu again.
	Continue Action = iota

	// Quit ends the console loop.
	Quit
)

// Prompter writes a prompt and reads one line of input.
// It returns io.EOF when the input is exhausted and an *InputParseError
// for a line that could not be read as input, after which reading may go on.
type Prompter interface {
	Prompt(label string) (string, error)
}

// Env carries what a command needs to run.
type Env struct {
	Config  *config.Config
	Service service.Service
	Input   Prompter
}

// Command defines the interface for menu commands.
type Command interface {
	// Key returns the menu number that selects the command.
	Key() int

	// Synopsis returns the short label shown in the menu.
	Synopsis() string

	// Run executes the command.
	// Errors are reported on errOut; they never end the loop by themselves.
	Run(ctx context.Context, env *Env, out, errOut io.Writer) Action
}
