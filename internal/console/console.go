// Package console runs the interactive menu loop.
package console

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"taskboard/internal/commands"
	"taskboard/internal/config"
	"taskboard/internal/exitcode"
	"taskboard/internal/service"
)

const (
	// Banner is printed once when the console starts.
	Banner = "Welcome to the Task Board!"

	// MenuPrompt follows the menu line.
	MenuPrompt = "Choose: "

	maxLineSize = 1 << 20
)

// Console reads menu selections and dispatches them to commands.
type Console struct {
	registry *commands.Registry
	svc      service.Service
	cfg      *config.Config
}

// New creates a console over the given registry, service and config.
func New(registry *commands.Registry, svc service.Service, cfg *config.Config) *Console {
	return &Console{
		registry: registry,
		svc:      svc,
		cfg:      cfg,
	}
}

// Run loops until the operator selects exit, input ends, or ctx is done.
// Returns the exit code.
func (c *Console) Run(ctx context.Context, in io.Reader, out, errOut io.Writer) int {
	logger := log.FromContext(ctx).With("session", uuid.NewString())
	ctx = log.WithContext(ctx, logger)

	input := newLineReader(in, out)
	env := &commands.Env{
		Config:  c.cfg,
		Service: c.svc,
		Input:   input,
	}

	if !c.cfg.Quiet {
		fmt.Fprintln(out, Banner)
	}
	menu := commands.Menu(c.registry)
	logger.Debug("console started")

	for {
		if err := ctx.Err(); err != nil {
			logger.Warn("console stopped", "error", err)
			return exitcode.RuntimeError
		}

		fmt.Fprintln(out, menu)
		line, err := input.Prompt(MenuPrompt)
		var perr *commands.InputParseError
		if errors.As(err, &perr) {
			logger.Debug("rejected selection", "error", err)
			fmt.Fprintf(errOut, "error: %v\n", err)
			continue
		}
		if err != nil {
			return c.finish(logger, input, out)
		}

		cmd, err := c.selection(line)
		if err != nil {
			logger.Debug("rejected selection", "input", line, "error", err)
			fmt.Fprintf(errOut, "error: %v\n", err)
			continue
		}

		logger.Debug("command selected", "key", cmd.Key(), "command", cmd.Synopsis())
		if cmd.Run(ctx, env, out, errOut) == commands.Quit {
			return c.finish(logger, input, out)
		}
	}
}

// selection resolves a menu line to a registered command.
func (c *Console) selection(line string) (commands.Command, error) {
	key, err := commands.ParseNumber(line)
	if err != nil {
		return nil, err
	}
	// Reject values that do not fit in int rather than letting them wrap.
	if key != int64(int(key)) {
		return nil, fmt.Errorf("invalid option: %d", key)
	}
	cmd, ok := c.registry.Find(int(key))
	if !ok {
		return nil, fmt.Errorf("invalid option: %d", key)
	}
	return cmd, nil
}

// finish maps the reader state at the end of the loop to an exit code.
func (c *Console) finish(logger *log.Logger, input *lineReader, out io.Writer) int {
	if input.err != nil {
		logger.Error("failed to read input", "error", input.err)
		return exitcode.RuntimeError
	}
	if input.eof {
		// Keep the shell prompt off the dangling console prompt.
		fmt.Fprintln(out)
		logger.Debug("input closed")
	}
	return exitcode.Success
}

// lineReader implements commands.Prompter over a buffered reader.
// Lines longer than maxLineSize are discarded up to their line ending.
type lineReader struct {
	reader *bufio.Reader
	out    io.Writer
	eof    bool
	err    error
}

func newLineReader(in io.Reader, out io.Writer) *lineReader {
	return &lineReader{reader: bufio.NewReaderSize(in, 4096), out: out}
}

// Prompt writes label and reads the next line without its line ending.
func (r *lineReader) Prompt(label string) (string, error) {
	fmt.Fprint(r.out, label)
	return r.readLine()
}

func (r *lineReader) readLine() (string, error) {
	var line []byte
	read, tooLong := false, false
	for {
		chunk, err := r.reader.ReadSlice('\n')
		if len(chunk) > 0 {
			read = true
		}
		if !tooLong {
			if len(line)+len(chunk) > maxLineSize {
				tooLong, line = true, nil
			} else {
				line = append(line, chunk...)
			}
		}

		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if errors.Is(err, io.EOF) {
			if !read {
				r.eof = true
				return "", io.EOF
			}
		} else if err != nil {
			r.err = err
			return "", err
		}
		break
	}

	if tooLong {
		return "", &commands.InputParseError{Input: commands.ErrLineTooLong.Error(), Err: commands.ErrLineTooLong}
	}
	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))
	return string(line), nil
}
