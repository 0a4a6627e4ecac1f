package builtins

import (
	"fmt"
	"strings"

	"github.com/stxent/vfsshell/argparse"
	"github.com/stxent/vfsshell/errkind"
	"github.com/stxent/vfsshell/shell"
	"github.com/stxent/vfsshell/terminal"
	"github.com/stxent/vfsshell/vfs"
)

const hexdumpRowLen = 16

type hexdumpCommand struct{ base }

// NewHexdump implements `hexdump FILES…` (§6): streams each file's
// content as 16-byte hex rows.
func NewHexdump() shell.Runner {
	return shell.RunnerFunc(func(ctx *shell.Context, term terminal.Terminal, args []string) shell.Command {
		return &hexdumpCommand{base: newBase("hexdump", ctx, term, args)}
	})
}

func (c *hexdumpCommand) Run() errkind.Kind {
	if argparse.HasHelp(c.args) {
		argparse.Help(c.term, c.Name(), []argparse.Descriptor{{Metavar: "FILES…", Info: "files to dump"}})
		return errkind.Ok
	}
	if len(c.args) == 0 {
		return c.fail("", errkind.Invalid)
	}

	failed := errkind.Ok
	for _, path := range c.args {
		if kind := c.dumpOne(path); kind != errkind.Ok {
			failed = kind
		}
	}
	return failed
}

func (c *hexdumpCommand) dumpOne(path string) errkind.Kind {
	node, kind := vfs.OpenSource(c.ctx.FS, c.cwd(), path)
	if kind != errkind.Ok {
		return c.fail(path, kind)
	}

	buf := make([]byte, hexdumpRowLen)
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
		c.term.InsertString(formatHexRow(buf[:n]))
		c.term.InsertEOL()
		offset += uint64(n)
	}
}

func formatHexRow(row []byte) string {
	parts := make([]string, len(row))
	for i, b := range row {
		parts[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(parts, " ")
}
