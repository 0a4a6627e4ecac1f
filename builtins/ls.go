package builtins

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/stxent/vfsshell/argparse"
	"github.com/stxent/vfsshell/errkind"
	"github.com/stxent/vfsshell/shell"
	"github.com/stxent/vfsshell/terminal"
	"github.com/stxent/vfsshell/vfs"
)

type lsCommand struct{ base }

// NewLs implements `ls [-l] [-i] [-h] [PATHS…]` (§6).
func NewLs() shell.Runner {
	return shell.RunnerFunc(func(ctx *shell.Context, term terminal.Terminal, args []string) shell.Command {
		return &lsCommand{base: newBase("ls", ctx, term, args)}
	})
}

func lsDescriptors(long, ident, human *bool) []argparse.Descriptor {
	return []argparse.Descriptor{
		{Name: "-l", Info: "long listing", Setter: func(*string) { *long = true }},
		{Name: "-i", Info: "show identifier in hex", Setter: func(*string) { *ident = true }},
		{Name: "-h", Info: "human-readable sizes", Setter: func(*string) { *human = true }},
	}
}

func (c *lsCommand) Run() errkind.Kind {
	if argparse.HasHelp(c.args) {
		argparse.Help(c.term, c.Name(), lsDescriptors(new(bool), new(bool), new(bool)))
		return errkind.Ok
	}

	var long, ident, human bool
	var paths []string
	argparse.Invoke(c.args, lsDescriptors(&long, &ident, &human), func(tok string) {
		paths = append(paths, tok)
	})
	if len(paths) == 0 {
		paths = []string{c.cwd()}
	}

	failed := errkind.Ok
	for _, p := range paths {
		node, kind := vfs.OpenSource(c.ctx.FS, c.cwd(), p)
		if kind != errkind.Ok {
			failed = c.fail(p, kind)
			continue
		}
		if kind := c.listOne(node, long, ident, human); kind != errkind.Ok {
			failed = kind
		}
	}
	return failed
}

func (c *lsCommand) listOne(node vfs.Node, long, ident, human bool) errkind.Kind {
	cur, kind := node.Head()
	for kind == errkind.Ok {
		c.printEntry(cur.Node, long, ident, human)
		cur, kind = node.Fetch(cur)
	}
	if kind != errkind.Entry {
		return kind
	}
	return errkind.Ok
}

func (c *lsCommand) printEntry(n vfs.Node, long, ident, human bool) {
	if !long && !ident {
		c.term.InsertString(n.Name())
		c.term.InsertEOL()
		return
	}

	var line strings.Builder
	if long {
		line.WriteString(runewidth.FillRight(formatAccessBits(n.Access()), 3))
		size, kind := n.Length(vfs.FieldData)
		if kind != errkind.Ok {
			size = 0
		}
		line.WriteString(runewidth.FillRight(formatSize(size, human), 10))
	}
	if ident {
		line.WriteString(runewidth.FillRight(formatIdentifier(n.ID()), 34))
	}
	line.WriteString(n.Name())

	c.term.InsertString(line.String())
	c.term.InsertEOL()
}

func formatAccessBits(a vfs.Access) string {
	r := byte('-')
	w := byte('-')
	if a&vfs.Read != 0 {
		r = 'r'
	}
	if a&vfs.Write != 0 {
		w = 'w'
	}
	return string([]byte{r, w})
}

func formatSize(size uint64, human bool) string {
	if human {
		return humanize.Bytes(size)
	}
	return strconv.FormatUint(size, 10)
}

// formatIdentifier renders a node's ID as hex. The identity is already a
// UUID string (hex digits grouped by dashes), so showing it "in hex" is
// just stripping the grouping.
func formatIdentifier(id string) string {
	return strings.ReplaceAll(id, "-", "")
}
