package builtins

import (
	"github.com/stxent/vfsshell/argparse"
	"github.com/stxent/vfsshell/errkind"
	"github.com/stxent/vfsshell/shell"
	"github.com/stxent/vfsshell/terminal"
	"github.com/stxent/vfsshell/vfs"
)

type shCommand struct{ base }

// NewSh implements `sh [SCRIPT]` (§6): with no argument it runs a nested,
// prompting REPL on its own (possibly redirected) terminal; given a file
// it reads the file's whole content and feeds it byte by byte through a
// scripted REPL, reusing the same tokenizer/evaluator pipeline the
// interactive session uses (§9 Open Questions).
func NewSh() shell.Runner {
	return shell.RunnerFunc(func(ctx *shell.Context, term terminal.Terminal, args []string) shell.Command {
		return &shCommand{base: newBase("sh", ctx, term, args)}
	})
}

// Interactive implements shell.Interactive: only the no-argument, nested
// prompting session drives its terminal's Read loop directly; the scripted
// form reads its content from a VFS node up front and is safe to run
// alongside the evaluator's own input pump.
func (c *shCommand) Interactive() bool {
	return len(c.args) == 0
}

func (c *shCommand) Run() errkind.Kind {
	if argparse.HasHelp(c.args) {
		argparse.Help(c.term, c.Name(), []argparse.Descriptor{{Metavar: "SCRIPT", Info: "script file to run, or omit for a nested shell"}})
		return errkind.Ok
	}

	if len(c.args) == 0 {
		repl := shell.NewREPL(c.ctx, c.ctx.Registry, c.term, false)
		defer repl.Close()
		repl.Run()
		return errkind.Ok
	}

	path := c.args[0]
	node, kind := vfs.OpenSource(c.ctx.FS, c.cwd(), path)
	if kind != errkind.Ok {
		return c.fail(path, kind)
	}

	content, kind := readAll(node)
	if kind != errkind.Ok {
		return c.fail(path, kind)
	}

	repl := shell.NewREPL(c.ctx, c.ctx.Registry, c.term, true)
	defer repl.Close()
	for _, b := range content {
		repl.Feed(b)
	}
	repl.Feed('\r')
	return errkind.Ok
}
