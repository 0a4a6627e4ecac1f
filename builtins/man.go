package builtins

import (
	"github.com/stxent/vfsshell/shell"
	"github.com/stxent/vfsshell/terminal"
)

// NewMan implements `man` (§6): an alias for `ls /bin`, ignoring any
// arguments it was given.
func NewMan() shell.Runner {
	ls := NewLs()
	return shell.RunnerFunc(func(ctx *shell.Context, term terminal.Terminal, args []string) shell.Command {
		return ls.New(ctx, term, []string{"/bin"})
	})
}
