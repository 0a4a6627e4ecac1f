package builtins

import (
	"github.com/stxent/vfsshell/argparse"
	"github.com/stxent/vfsshell/errkind"
	"github.com/stxent/vfsshell/shell"
	"github.com/stxent/vfsshell/terminal"
	"github.com/stxent/vfsshell/vfs"
)

type chmodCommand struct{ base }

// NewChmod implements `chmod MODE ENTRIES…` (§6): MODE is a string of
// alternating `+`/`-` sections each followed by one or more of `r`/`w`.
// Set and clear bits accumulate over the whole string and a `+` for a
// bit always wins over a `-` for that same bit, regardless of position
// (SPEC_FULL.md §3 ChangeModeScript, Arguments::modeSetter).
func NewChmod() shell.Runner {
	return shell.RunnerFunc(func(ctx *shell.Context, term terminal.Terminal, args []string) shell.Command {
		return &chmodCommand{base: newBase("chmod", ctx, term, args)}
	})
}

func (c *chmodCommand) Run() errkind.Kind {
	if argparse.HasHelp(c.args) {
		argparse.Help(c.term, c.Name(), []argparse.Descriptor{
			{Metavar: "MODE", Info: "symbolic mode, e.g. -w or +r-w+r"},
			{Metavar: "ENTRIES…", Info: "entries to modify"},
		})
		return errkind.Ok
	}

	var mode string
	var entries []string
	first := true
	argparse.Invoke(c.args, nil, func(tok string) {
		if first {
			mode = tok
			first = false
			return
		}
		entries = append(entries, tok)
	})
	if mode == "" || len(entries) == 0 {
		return c.fail("", errkind.Invalid)
	}

	failed := errkind.Ok
	for _, path := range entries {
		if kind := c.chmodOne(path, mode); kind != errkind.Ok {
			failed = kind
		}
	}
	return failed
}

func (c *chmodCommand) chmodOne(path, mode string) errkind.Kind {
	node, kind := vfs.OpenNode(c.ctx.FS, c.cwd(), path)
	if kind != errkind.Ok {
		return c.fail(path, kind)
	}

	access, kind := applyMode(node.Access(), mode)
	if kind != errkind.Ok {
		return c.fail(path, kind)
	}

	node.SetAccess(access)
	return errkind.Ok
}

func applyMode(current vfs.Access, mode string) (vfs.Access, errkind.Kind) {
	var modeSet, modeClear vfs.Access
	var sign byte
	for i := 0; i < len(mode); i++ {
		switch c := mode[i]; c {
		case '+', '-':
			sign = c
		case 'r':
			if sign == 0 {
				return current, errkind.Value
			}
			modeSet, modeClear = accumulateBit(modeSet, modeClear, vfs.Read, sign == '+')
		case 'w':
			if sign == 0 {
				return current, errkind.Value
			}
			modeSet, modeClear = accumulateBit(modeSet, modeClear, vfs.Write, sign == '+')
		default:
			return current, errkind.Value
		}
	}
	// modeSet applied after modeClear, so a `+` for a bit always wins
	// over a `-` for that same bit, regardless of which came first.
	return (current &^ modeClear) | modeSet, errkind.Ok
}

func accumulateBit(modeSet, modeClear, bit vfs.Access, on bool) (vfs.Access, vfs.Access) {
	if on {
		return modeSet | bit, modeClear
	}
	return modeSet, modeClear | bit
}
