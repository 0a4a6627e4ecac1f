package builtins

import (
	"github.com/stxent/vfsshell/argparse"
	"github.com/stxent/vfsshell/errkind"
	"github.com/stxent/vfsshell/shell"
	"github.com/stxent/vfsshell/terminal"
)

type getenvCommand struct{ base }

// NewGetenv implements `getenv NAME` (§6): prints the variable's value,
// or a diagnostic (failing Entry) if it was never set.
func NewGetenv() shell.Runner {
	return shell.RunnerFunc(func(ctx *shell.Context, term terminal.Terminal, args []string) shell.Command {
		return &getenvCommand{base: newBase("getenv", ctx, term, args)}
	})
}

func getenvDescriptors(name *string) []argparse.Descriptor {
	return []argparse.Descriptor{
		{Metavar: "NAME", Info: "variable to read", Setter: func(v *string) {
			if v != nil {
				*name = *v
			}
		}},
	}
}

func (c *getenvCommand) Run() errkind.Kind {
	if argparse.HasHelp(c.args) {
		argparse.Help(c.term, c.Name(), getenvDescriptors(new(string)))
		return errkind.Ok
	}

	var name string
	argparse.Parse(c.args, getenvDescriptors(&name))
	if name == "" {
		return c.fail("", errkind.Invalid)
	}

	v, ok := c.ctx.Env.Lookup(name)
	if !ok {
		return c.fail(name, errkind.Entry)
	}

	c.term.InsertString(v.Value())
	c.term.InsertEOL()
	return errkind.Ok
}
