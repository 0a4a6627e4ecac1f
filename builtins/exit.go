package builtins

import (
	"github.com/stxent/vfsshell/argparse"
	"github.com/stxent/vfsshell/errkind"
	"github.com/stxent/vfsshell/shell"
	"github.com/stxent/vfsshell/terminal"
)

type exitCommand struct{ base }

// NewExit implements `exit` (§6): raises the shared Terminate signal the
// enclosing REPL (and any REPL nested above it sharing the same context)
// polls after each command.
func NewExit() shell.Runner {
	return shell.RunnerFunc(func(ctx *shell.Context, term terminal.Terminal, args []string) shell.Command {
		return &exitCommand{base: newBase("exit", ctx, term, args)}
	})
}

func (c *exitCommand) Run() errkind.Kind {
	if argparse.HasHelp(c.args) {
		argparse.Help(c.term, c.Name(), nil)
		return errkind.Ok
	}
	c.ctx.Exit.Store(true)
	return errkind.Ok
}
