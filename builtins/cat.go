package builtins

import (
	"github.com/stxent/vfsshell/argparse"
	"github.com/stxent/vfsshell/errkind"
	"github.com/stxent/vfsshell/shell"
	"github.com/stxent/vfsshell/terminal"
	"github.com/stxent/vfsshell/vfs"
)

type catCommand struct{ base }

// NewCat implements `cat FILES…` (§6): streams each file's content to the
// terminal verbatim.
func NewCat() shell.Runner {
	return shell.RunnerFunc(func(ctx *shell.Context, term terminal.Terminal, args []string) shell.Command {
		return &catCommand{base: newBase("cat", ctx, term, args)}
	})
}

func (c *catCommand) Run() errkind.Kind {
	if argparse.HasHelp(c.args) {
		argparse.Help(c.term, c.Name(), []argparse.Descriptor{{Metavar: "FILES…", Info: "files to print"}})
		return errkind.Ok
	}
	if len(c.args) == 0 {
		return c.fail("", errkind.Invalid)
	}

	failed := errkind.Ok
	for _, path := range c.args {
		if kind := c.catOne(path); kind != errkind.Ok {
			failed = kind
		}
	}
	return failed
}

func (c *catCommand) catOne(path string) errkind.Kind {
	node, kind := vfs.OpenSource(c.ctx.FS, c.cwd(), path)
	if kind != errkind.Ok {
		return c.fail(path, kind)
	}

	buf := make([]byte, 256)
	var offset uint64
	for {
		if c.Terminated() {
			return c.fail(path, errkind.Timeout)
		}
		n, kind := node.Read(vfs.FieldData, offset, buf)
		if kind == errkind.Empty {
			return errkind.Ok
		}
		if kind != errkind.Ok {
			return c.fail(path, kind)
		}
		if n == 0 {
			return errkind.Ok
		}
		c.term.Write(buf[:n])
		offset += uint64(n)
	}
}
