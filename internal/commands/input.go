package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	// ErrEmptyInput indicates a blank line where a number was expected.
	ErrEmptyInput = errors.New("empty input")

	// ErrLineTooLong is wrapped by the *InputParseError a Prompter returns
	// for a line it had to discard.
	ErrLineTooLong = errors.New("line too long")
)

// InputParseError reports a line that is not a valid integer.
type InputParseError struct {
	Input string // the trimmed line as typed
	Err   error  // underlying parse error
}

func (e *InputParseError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Input)
}

// Unwrap returns the underlying error.
func (e *InputParseError) Unwrap() error {
	return e.Err
}

// ParseNumber parses a menu selection or task ID from a line of input.
// Surrounding whitespace is ignored; anything else that is not a base-10
// integer is an *InputParseError.
func ParseNumber(line string) (int64, error) {
	s := strings.TrimSpace(line)
	if s == "" {
		return 0, &InputParseError{Input: s, Err: ErrEmptyInput}
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, &InputParseError{Input: s, Err: err}
	}
	return n, nil
}

// promptFailed decides what a command does when Prompt fails.
// Input errors are reported and the menu comes back; anything else ends the session.
func promptFailed(err error, errOut io.Writer) Action {
	var perr *InputParseError
	if errors.As(err, &perr) {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return Continue
	}
	return Quit
}
