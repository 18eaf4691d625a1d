package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"taskboard/internal/service"
)

func init() {
	Register(&AdvanceCmd{})
}

// AdvanceCmd implements menu option 2: move a task one step along the board.
type AdvanceCmd struct{}

func (c *AdvanceCmd) Key() int         { return 2 }
func (c *AdvanceCmd) Synopsis() string { return "Advance task" }

func (c *AdvanceCmd) Run(ctx context.Context, env *Env, out, errOut io.Writer) Action {
	line, err := env.Input.Prompt("Task ID to advance: ")
	if err != nil {
		return promptFailed(err, errOut)
	}

	id, err := ParseNumber(line)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return Continue
	}

	if _, err := env.Service.AdvanceTask(ctx, id); err != nil {
		var nf *service.NotFoundError
		if errors.As(err, &nf) {
			fmt.Fprintf(errOut, "error: task not found: %d\n", nf.ID)
			return Continue
		}
		fmt.Fprintf(errOut, "error: %v\n", err)
		return Continue
	}

	if !env.Config.Quiet {
		fmt.Fprintln(out, "task updated")
	}
	return Continue
}
