package commands

import (
	"context"
	"fmt"
	"io"
)

func init() {
	Register(&ExitCmd{})
}

// ExitCmd implements menu option 0: leave the board.
type ExitCmd struct{}

func (c *ExitCmd) Key() int         { return 0 }
func (c *ExitCmd) Synopsis() string { return "Exit" }

func (c *ExitCmd) Run(ctx context.Context, env *Env, out, errOut io.Writer) Action {
	fmt.Fprintln(out, "Goodbye!")
	return Quit
}
