package builtins

import (
	"github.com/stxent/vfsshell/argparse"
	"github.com/stxent/vfsshell/errkind"
	"github.com/stxent/vfsshell/shell"
	"github.com/stxent/vfsshell/terminal"
	"github.com/stxent/vfsshell/vfs"
)

type rmCommand struct{ base }

// NewRm implements `rm [-r] ENTRIES…` (§6): without -r, a directory
// entry is refused with a bespoke diagnostic rather than removed (§8
// test 4).
func NewRm() shell.Runner {
	return shell.RunnerFunc(func(ctx *shell.Context, term terminal.Terminal, args []string) shell.Command {
		return &rmCommand{base: newBase("rm", ctx, term, args)}
	})
}

func (c *rmCommand) Run() errkind.Kind {
	if argparse.HasHelp(c.args) {
		argparse.Help(c.term, c.Name(), []argparse.Descriptor{
			{Name: "-r", Info: "remove directories recursively"},
			{Metavar: "ENTRIES…", Info: "entries to remove"},
		})
		return errkind.Ok
	}

	var recursive bool
	var entries []string
	argparse.Invoke(c.args, []argparse.Descriptor{
		{Name: "-r", Info: "remove directories recursively", Setter: func(*string) { recursive = true }},
	}, func(tok string) {
		entries = append(entries, tok)
	})
	if len(entries) == 0 {
		return c.fail("", errkind.Invalid)
	}

	failed := errkind.Ok
	for _, path := range entries {
		if kind := c.removeOne(path, recursive); kind != errkind.Ok {
			failed = kind
		}
	}
	return failed
}

func (c *rmCommand) removeOne(path string, recursive bool) errkind.Kind {
	node, kind := vfs.OpenNode(c.ctx.FS, c.cwd(), path)
	if kind != errkind.Ok {
		return c.fail(path, kind)
	}
	if _, isDir := node.(*vfs.Directory); isDir && !recursive {
		c.diagnostic(path, "directory node ignored")
		return errkind.Invalid
	}

	parent, _, kind := vfs.OpenBaseNode(c.ctx.FS, c.cwd(), path)
	if kind != errkind.Ok {
		return c.fail(path, kind)
	}
	if kind := parent.Remove(node); kind != errkind.Ok {
		return c.fail(path, kind)
	}
	return errkind.Ok
}
