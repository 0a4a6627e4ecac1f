package builtins

import (
	"github.com/stxent/vfsshell/argparse"
	"github.com/stxent/vfsshell/errkind"
	"github.com/stxent/vfsshell/shell"
	"github.com/stxent/vfsshell/terminal"
)

type setenvCommand struct{ base }

// NewSetenv implements `setenv NAME VALUE` (§6).
func NewSetenv() shell.Runner {
	return shell.RunnerFunc(func(ctx *shell.Context, term terminal.Terminal, args []string) shell.Command {
		return &setenvCommand{base: newBase("setenv", ctx, term, args)}
	})
}

func (c *setenvCommand) Run() errkind.Kind {
	if argparse.HasHelp(c.args) {
		argparse.Help(c.term, c.Name(), []argparse.Descriptor{
			{Metavar: "NAME", Info: "variable to assign"},
			{Metavar: "VALUE", Info: "value to assign"},
		})
		return errkind.Ok
	}

	var operands []string
	argparse.Invoke(c.args, nil, func(tok string) { operands = append(operands, tok) })
	if len(operands) < 2 {
		return c.fail("", errkind.Invalid)
	}

	c.ctx.Env.Set(operands[0], operands[1])
	return errkind.Ok
}
