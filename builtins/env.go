package builtins

import (
	"github.com/stxent/vfsshell/argparse"
	"github.com/stxent/vfsshell/env"
	"github.com/stxent/vfsshell/errkind"
	"github.com/stxent/vfsshell/shell"
	"github.com/stxent/vfsshell/terminal"
)

type envCommand struct{ base }

// NewEnv implements `env` (§6): lists every variable in first-insertion
// order.
func NewEnv() shell.Runner {
	return shell.RunnerFunc(func(ctx *shell.Context, term terminal.Terminal, args []string) shell.Command {
		return &envCommand{base: newBase("env", ctx, term, args)}
	})
}

func (c *envCommand) Run() errkind.Kind {
	if argparse.HasHelp(c.args) {
		argparse.Help(c.term, c.Name(), nil)
		return errkind.Ok
	}
	c.ctx.Env.Iterate(func(name string, v env.Variable) bool {
		c.term.InsertString(name + "=" + v.Value())
		c.term.InsertEOL()
		return true
	})
	return errkind.Ok
}
