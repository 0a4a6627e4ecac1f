package builtins

import (
	"fmt"

	"github.com/stxent/vfsshell/argparse"
	"github.com/stxent/vfsshell/errkind"
	"github.com/stxent/vfsshell/shell"
	"github.com/stxent/vfsshell/terminal"
	"github.com/stxent/vfsshell/vfs"
)

type cksumCommand struct{ base }

// NewCksum implements `cksum FILES…` (§6): prints an 8-hex-digit
// uppercase CRC-32, two spaces, then the name, per file.
func NewCksum() shell.Runner {
	return shell.RunnerFunc(func(ctx *shell.Context, term terminal.Terminal, args []string) shell.Command {
		return &cksumCommand{base: newBase("cksum", ctx, term, args)}
	})
}

func (c *cksumCommand) Run() errkind.Kind {
	if argparse.HasHelp(c.args) {
		argparse.Help(c.term, c.Name(), []argparse.Descriptor{{Metavar: "FILES…", Info: "files to checksum"}})
		return errkind.Ok
	}
	if len(c.args) == 0 {
		return c.fail("", errkind.Invalid)
	}

	failed := errkind.Ok
	for _, path := range c.args {
		if kind := c.cksumOne(path); kind != errkind.Ok {
			failed = kind
		}
	}
	return failed
}

func (c *cksumCommand) cksumOne(path string) errkind.Kind {
	node, kind := vfs.OpenSource(c.ctx.FS, c.cwd(), path)
	if kind != errkind.Ok {
		return c.fail(path, kind)
	}

	data, kind := readAll(node)
	if kind != errkind.Ok {
		return c.fail(path, kind)
	}

	c.term.InsertString(fmt.Sprintf("%08X  %s", crc32Checksum(data), path))
	c.term.InsertEOL()
	return errkind.Ok
}
