// Package main is the entry point for the taskboard console.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"taskboard/internal/commands"
	"taskboard/internal/config"
	"taskboard/internal/console"
	"taskboard/internal/exitcode"
	"taskboard/internal/logging"
	"taskboard/internal/service"
	"taskboard/internal/storage"
)

const usageText = `Usage:
  taskboard [flags]

Flags:
  --config <file>       Load settings from a TOML file
  --quiet               Suppress banner and confirmations
  --debug               Print debug logs to stderr
  --log-format <name>   Log format: text, json or logfmt
  --version             Print version and exit
`

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run parses flags, wires the board and runs the console.
// Returns the exit code.
func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	fs := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	cfg, err := config.Load(fs, args)
	if errors.Is(err, flag.ErrHelp) {
		fmt.Fprint(out, usageText)
		return exitcode.Success
	}
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", flagErrorMessage(err))
		return exitcode.UserError
	}

	if cfg.ShowVersion {
		commands.PrintVersion(out)
		return exitcode.Success
	}

	logger, err := logging.FromStrings(errOut, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}
	ctx = log.WithContext(ctx, logger)
	if cfg.Path != "" {
		logger.Debug("config loaded", "path", cfg.Path)
	}

	store := storage.New()
	svc := service.New(store, service.WithLayout(cfg.Layout()))

	return console.New(commands.DefaultRegistry, svc, cfg).Run(ctx, in, out, errOut)
}

// flagErrorMessage rewrites flag package errors into short messages.
func flagErrorMessage(err error) string {
	errStr := err.Error()

	// Check for unknown flag
	if strings.HasPrefix(errStr, "flag provided but not defined:") {
		flagName := strings.TrimPrefix(errStr, "flag provided but not defined: ")
		return "unknown flag: " + flagName
	}

	return errStr
}
