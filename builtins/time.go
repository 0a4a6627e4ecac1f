package builtins

import (
	"github.com/stxent/vfsshell/argparse"
	"github.com/stxent/vfsshell/errkind"
	"github.com/stxent/vfsshell/shell"
	"github.com/stxent/vfsshell/terminal"
)

type timeCommand struct{ base }

// NewTime implements `time CMD…` (§6): runs CMD through a nested
// evaluator sharing the enclosing shell's runner registry, and prints the
// elapsed microseconds measured by the shared clock.
func NewTime() shell.Runner {
	return shell.RunnerFunc(func(ctx *shell.Context, term terminal.Terminal, args []string) shell.Command {
		return &timeCommand{base: newBase("time", ctx, term, args)}
	})
}

func (c *timeCommand) Run() errkind.Kind {
	if argparse.HasHelp(c.args) {
		argparse.Help(c.term, c.Name(), []argparse.Descriptor{{Metavar: "CMD…", Info: "command to run and time"}})
		return errkind.Ok
	}
	if len(c.args) == 0 {
		return c.fail("", errkind.Invalid)
	}

	start := c.ctx.Clock.Micros()
	eval := shell.NewEvaluator(c.ctx, c.ctx.Registry, c.term)
	kind := eval.Run(c.args)
	elapsed := c.ctx.Clock.Micros() - start

	c.term.InsertInt(elapsed)
	c.term.InsertString(" us")
	c.term.InsertEOL()
	return kind
}
