// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates the operator chose exit or input ended.
	Success = 0

	// UserError indicates bad flags or an invalid config file.
	UserError = 1

	// RuntimeError indicates the console could not read or was interrupted.
	RuntimeError = 2
)
