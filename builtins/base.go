// Package builtins implements the built-in command contract (§4.12) and
// every command listed in §6: each is a shell.Runner that constructs a
// Command subscribed to its (possibly redirected) terminal, inheriting
// env/fs/clock from the parent shell.Context.
package builtins

import (
	"sync/atomic"

	"github.com/stxent/vfsshell/errkind"
	"github.com/stxent/vfsshell/shell"
	"github.com/stxent/vfsshell/terminal"
)

// base implements the part of the built-in contract shared by every
// command: identity, and the cooperative-cancellation flag driven by
// OnSerialInput scanning for Ctrl-C (§9). Commands that redirect their
// own input via `<` observe bytes from that file instead of the live
// terminal while redirected — cancellation detection in that case is
// best-effort, matching the proxy's transparent substitution of file I/O
// for terminal I/O.
type base struct {
	name string
	ctx  *shell.Context
	term terminal.Terminal
	args []string

	terminated atomic.Bool
}

func newBase(name string, ctx *shell.Context, term terminal.Terminal, args []string) base {
	return base{name: name, ctx: ctx, term: term, args: args}
}

// Name implements shell.Command.
func (b *base) Name() string { return b.name }

// OnSerialInput implements terminal.Listener: drains the bytes that
// arrived and raises the termination flag on Ctrl-C.
func (b *base) OnSerialInput(evt terminal.SerialInput) {
	buf := make([]byte, evt.Length)
	n, _ := b.term.Read(buf)
	for _, c := range buf[:n] {
		if c == 0x03 {
			b.terminated.Store(true)
		}
	}
}

// Terminated reports whether cooperative cancellation has been
// requested; long-running commands poll this between blocks (§9).
func (b *base) Terminated() bool {
	return b.terminated.Load()
}

// diagnostic prints "<cmd>: <operand>: <reason>" per §7's structural
// error policy.
func (b *base) diagnostic(operand, reason string) {
	b.term.InsertString(b.name + ": " + operand + ": " + reason)
	b.term.InsertEOL()
}

// fail prints a diagnostic using kind's symbolic name as the reason and
// returns kind, the common case for commands with no bespoke message.
func (b *base) fail(operand string, kind errkind.Kind) errkind.Kind {
	b.diagnostic(operand, kind.Symbol())
	return kind
}

func (b *base) cwd() string {
	return b.ctx.Env.Get("PWD").Value()
}
