package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"taskboard/internal/service"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements menu option 1: create a task in Todo.
type AddCmd struct{}

func (c *AddCmd) Key() int         { return 1 }
func (c *AddCmd) Synopsis() string { return "Add task" }

func (c *AddCmd) Run(ctx context.Context, env *Env, out, errOut io.Writer) Action {
	title, err := env.Input.Prompt("Task title: ")
	if err != nil {
		return promptFailed(err, errOut)
	}

	t, err := env.Service.AddTask(ctx, title)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintf(errOut, "error: %s\n", verr)
			return Continue
		}
		fmt.Fprintf(errOut, "error: %v\n", err)
		return Continue
	}

	if !env.Config.Quiet {
		fmt.Fprintf(out, "created task %d\n", t.ID)
	}
	return Continue
}
