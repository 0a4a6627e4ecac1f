package builtins

import (
	"github.com/stxent/vfsshell/argparse"
	"github.com/stxent/vfsshell/errkind"
	"github.com/stxent/vfsshell/shell"
	"github.com/stxent/vfsshell/terminal"
	"github.com/stxent/vfsshell/vfs"
)

type cdCommand struct{ base }

// NewCd implements `cd ENTRY` (§6): changes PWD after checking the entry
// exists and carries Read access.
func NewCd() shell.Runner {
	return shell.RunnerFunc(func(ctx *shell.Context, term terminal.Terminal, args []string) shell.Command {
		return &cdCommand{base: newBase("cd", ctx, term, args)}
	})
}

func cdDescriptors(entry *string) []argparse.Descriptor {
	return []argparse.Descriptor{
		{Metavar: "ENTRY", Info: "directory to change into", Setter: func(v *string) {
			if v != nil {
				*entry = *v
			}
		}},
	}
}

func (c *cdCommand) Run() errkind.Kind {
	if argparse.HasHelp(c.args) {
		argparse.Help(c.term, c.Name(), cdDescriptors(new(string)))
		return errkind.Ok
	}

	var entry string
	argparse.Parse(c.args, cdDescriptors(&entry))
	if entry == "" {
		return c.fail("", errkind.Invalid)
	}

	node, kind := vfs.OpenNode(c.ctx.FS, c.cwd(), entry)
	if kind != errkind.Ok {
		return c.fail(entry, kind)
	}
	if node.Access()&vfs.Read == 0 {
		return c.fail(entry, errkind.Access)
	}

	c.ctx.Env.Set("PWD", vfs.Resolve(c.cwd(), entry))
	return errkind.Ok
}
