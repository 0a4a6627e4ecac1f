package builtins

import (
	"strings"

	"github.com/stxent/vfsshell/argparse"
	"github.com/stxent/vfsshell/errkind"
	"github.com/stxent/vfsshell/shell"
	"github.com/stxent/vfsshell/terminal"
)

type echoCommand struct{ base }

// NewEcho implements `echo ARGS…` (§6): prints its arguments joined by a
// single space, followed by the terminal's EOL.
func NewEcho() shell.Runner {
	return shell.RunnerFunc(func(ctx *shell.Context, term terminal.Terminal, args []string) shell.Command {
		return &echoCommand{base: newBase("echo", ctx, term, args)}
	})
}

func (c *echoCommand) Run() errkind.Kind {
	if argparse.HasHelp(c.args) {
		argparse.Help(c.term, c.Name(), []argparse.Descriptor{{Metavar: "ARGS…", Info: "text to print"}})
		return errkind.Ok
	}
	c.term.InsertString(strings.Join(c.args, " "))
	c.term.InsertEOL()
	return errkind.Ok
}
