package builtins

import (
	"github.com/stxent/vfsshell/argparse"
	"github.com/stxent/vfsshell/errkind"
	"github.com/stxent/vfsshell/shell"
	"github.com/stxent/vfsshell/terminal"
	"github.com/stxent/vfsshell/vfs"
)

type cpCommand struct{ base }

// NewCp implements `cp SRC DST` (§6). A pre-existing destination of any
// kind is refused with Exist, matching ShellHelpers::openSink's
// unconditional E_EXIST-on-overwrite=false behaviour in the original.
func NewCp() shell.Runner {
	return shell.RunnerFunc(func(ctx *shell.Context, term terminal.Terminal, args []string) shell.Command {
		return &cpCommand{base: newBase("cp", ctx, term, args)}
	})
}

func (c *cpCommand) Run() errkind.Kind {
	if argparse.HasHelp(c.args) {
		argparse.Help(c.term, c.Name(), []argparse.Descriptor{
			{Metavar: "SRC", Info: "source file"},
			{Metavar: "DST", Info: "destination path, must not already exist"},
		})
		return errkind.Ok
	}

	var operands []string
	argparse.Invoke(c.args, nil, func(tok string) { operands = append(operands, tok) })
	if len(operands) < 2 {
		return c.fail("", errkind.Invalid)
	}
	src, dst := operands[0], operands[1]

	srcNode, kind := vfs.OpenSource(c.ctx.FS, c.cwd(), src)
	if kind != errkind.Ok {
		return c.fail(src, kind)
	}

	if _, kind := vfs.OpenNode(c.ctx.FS, c.cwd(), dst); kind == errkind.Ok {
		return c.fail(dst, errkind.Exist)
	}

	dstNode, kind := vfs.OpenSink(c.ctx.FS, c.cwd(), dst)
	if kind != errkind.Ok {
		return c.fail(dst, kind)
	}

	if _, kind := streamCopy(srcNode, 0, dstNode, 0, blockSize, 0, c.Terminated); kind != errkind.Ok {
		return c.fail(dst, kind)
	}
	return errkind.Ok
}
