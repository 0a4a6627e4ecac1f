package builtins

import (
	"github.com/stxent/vfsshell/argparse"
	"github.com/stxent/vfsshell/errkind"
	"github.com/stxent/vfsshell/shell"
	"github.com/stxent/vfsshell/terminal"
	"github.com/stxent/vfsshell/vfs"
	"github.com/stxent/vfsshell/vfs/backend/zipfs"
)

type mountCommand struct{ base }

// NewMount implements `mount DEVICE DIR` (§6): reads DEVICE's raw bytes
// as a zip archive (the concrete ForeignFS standing in for the FAT32
// target, §1), and attaches its root as a freshly created mount-point
// node at DIR, which must not already exist (directories never check
// for duplicate children on Create, so mount enforces it the same way
// mkdir does). An empty device is treated as a freshly formatted
// archive. A failed attach is undone: the foreign handle is closed
// before returning (§7 "partial attachments are undone before
// returning").
func NewMount() shell.Runner {
	return shell.RunnerFunc(func(ctx *shell.Context, term terminal.Terminal, args []string) shell.Command {
		return &mountCommand{base: newBase("mount", ctx, term, args)}
	})
}

func (c *mountCommand) Run() errkind.Kind {
	if argparse.HasHelp(c.args) {
		argparse.Help(c.term, c.Name(), []argparse.Descriptor{
			{Metavar: "DEVICE", Info: "device node holding the archive image"},
			{Metavar: "DIR", Info: "mount point to create"},
		})
		return errkind.Ok
	}

	var operands []string
	argparse.Invoke(c.args, nil, func(tok string) { operands = append(operands, tok) })
	if len(operands) < 2 {
		return c.fail("", errkind.Invalid)
	}
	device, dir := operands[0], operands[1]

	devNode, kind := vfs.OpenSource(c.ctx.FS, c.cwd(), device)
	if kind != errkind.Ok {
		return c.fail(device, kind)
	}
	data, kind := readAll(devNode)
	if kind != errkind.Ok {
		return c.fail(device, kind)
	}

	var foreign *zipfs.FS
	if len(data) == 0 {
		foreign = zipfs.New()
	} else {
		var err error
		foreign, err = zipfs.Open(data)
		if err != nil {
			return c.fail(device, errkind.Value)
		}
	}

	if _, kind := vfs.OpenNode(c.ctx.FS, c.cwd(), dir); kind == errkind.Ok {
		foreign.Close()
		return c.fail(dir, errkind.Exist)
	}

	parent, name, kind := vfs.OpenBaseNode(c.ctx.FS, c.cwd(), dir)
	if kind != errkind.Ok {
		foreign.Close()
		return c.fail(dir, kind)
	}
	if parent.Access()&vfs.Write == 0 {
		foreign.Close()
		return c.fail(dir, errkind.Access)
	}

	mp := vfs.NewMountPoint(name, c.ctx.Clock.Micros(), vfs.Read|vfs.Write, foreign)
	if _, kind := parent.Create([]vfs.Descriptor{{Field: vfs.FieldObject, Object: mp}}); kind != errkind.Ok {
		foreign.Close()
		return c.fail(dir, kind)
	}
	return errkind.Ok
}
