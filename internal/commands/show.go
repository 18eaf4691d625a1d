package commands

import (
	"context"
	"io"
)

func init() {
	Register(&ShowCmd{})
}

// ShowCmd implements menu option 3: print the board.
type ShowCmd struct{}

func (c *ShowCmd) Key() int         { return 3 }
func (c *ShowCmd) Synopsis() string { return "Show board" }

func (c *ShowCmd) Run(ctx context.Context, env *Env, out, errOut io.Writer) Action {
	env.Service.ShowBoard(ctx, out)
	return Continue
}
