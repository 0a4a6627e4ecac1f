package builtins

import (
	"github.com/stxent/vfsshell/argparse"
	"github.com/stxent/vfsshell/errkind"
	"github.com/stxent/vfsshell/shell"
	"github.com/stxent/vfsshell/terminal"
	"github.com/stxent/vfsshell/vfs"
)

type mkdirCommand struct{ base }

// NewMkdir implements `mkdir ENTRY` (§6). Every failure to create ENTRY
// prints the same literal diagnostic regardless of the underlying kind
// (§8 test 3: "mkdir: /a/b: directory creation failed"), unlike most
// built-ins which surface the kind's symbolic name; a missing ENTRY
// operand fails Invalid with that usual symbolic form.
func NewMkdir() shell.Runner {
	return shell.RunnerFunc(func(ctx *shell.Context, term terminal.Terminal, args []string) shell.Command {
		return &mkdirCommand{base: newBase("mkdir", ctx, term, args)}
	})
}

func mkdirDescriptors(entry *string) []argparse.Descriptor {
	return []argparse.Descriptor{
		{Metavar: "ENTRY", Info: "directory to create", Setter: func(v *string) {
			if v != nil {
				*entry = *v
			}
		}},
	}
}

func (c *mkdirCommand) Run() errkind.Kind {
	if argparse.HasHelp(c.args) {
		argparse.Help(c.term, c.Name(), mkdirDescriptors(new(string)))
		return errkind.Ok
	}

	var entry string
	argparse.Parse(c.args, mkdirDescriptors(&entry))
	if entry == "" {
		return c.fail("", errkind.Invalid)
	}

	if _, kind := vfs.OpenNode(c.ctx.FS, c.cwd(), entry); kind == errkind.Ok {
		c.diagnostic(entry, "directory creation failed")
		return errkind.Exist
	}

	parent, name, kind := vfs.OpenBaseNode(c.ctx.FS, c.cwd(), entry)
	if kind != errkind.Ok {
		c.diagnostic(entry, "directory creation failed")
		return kind
	}
	if parent.Access()&vfs.Write == 0 {
		c.diagnostic(entry, "directory creation failed")
		return errkind.Access
	}

	if _, kind := parent.Create([]vfs.Descriptor{{Field: vfs.FieldName, Bytes: []byte(name)}}); kind != errkind.Ok {
		c.diagnostic(entry, "directory creation failed")
		return kind
	}
	return errkind.Ok
}
