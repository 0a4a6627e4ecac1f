package shell

import (
	"strings"

	"github.com/stxent/vfsshell/errkind"
	"github.com/stxent/vfsshell/terminal"
)

// State is the shell session's coarse lifecycle (§3).
type State int

const (
	Idle State = iota
	Executing
	Stopped
)

// REPL reads lines from a terminal, tokenises them, and evaluates each as
// a command (§4.10). When Scripted is true, prompting is suppressed.
type REPL struct {
	ctx      *Context
	registry *Registry
	term     terminal.Terminal
	line     *terminal.LineParser
	sem      chan struct{}
	state    State
	scripted bool
}

// NewREPL constructs a REPL reading from term and dispatching through
// registry. scripted suppresses the `${PWD}> ` prompt (used when sh is
// given a script file, §9 Open Questions).
func NewREPL(ctx *Context, registry *Registry, term terminal.Terminal, scripted bool) *REPL {
	echo := ctx.Env.Get("ECHO").Value() == "1"
	r := &REPL{
		ctx:      ctx,
		registry: registry,
		term:     term,
		line:     terminal.NewLineParser(term, echo),
		sem:      make(chan struct{}, 1),
		scripted: scripted,
	}
	term.Subscribe(r)
	return r
}

// Close unsubscribes the REPL from its terminal.
func (r *REPL) Close() {
	r.term.Unsubscribe(r)
}

// State reports the current session state.
func (r *REPL) State() State {
	return r.state
}

// OnSerialInput implements terminal.Listener, signalling the semaphore the
// run loop blocks on (§5: "the main shell thread blocks on that semaphore
// between lines").
func (r *REPL) OnSerialInput(terminal.SerialInput) {
	select {
	case r.sem <- struct{}{}:
	default:
	}
}

// RunOnce prints the prompt (unless scripted), blocks for input, drains
// and processes it, running any completed command line. It returns false
// once Ctrl-C has put the session into Stopped.
func (r *REPL) RunOnce() bool {
	if r.state == Stopped {
		return false
	}
	if !r.scripted {
		r.term.InsertString(r.ctx.cwd() + "> ")
	}

	<-r.sem

	buf := make([]byte, 64)
	for {
		n, _ := r.term.Read(buf)
		if n == 0 {
			break
		}
		for _, b := range buf[:n] {
			r.feed(b)
		}
	}
	return r.state != Stopped
}

// Feed processes a single byte directly, bypassing the semaphore wait —
// used by embedding commands (e.g. `sh` running a nested session, or a
// script feeding lines without a live terminal driver) that already have
// bytes in hand.
func (r *REPL) Feed(b byte) {
	r.feed(b)
}

func (r *REPL) feed(b byte) {
	switch r.line.Feed(b) {
	case terminal.LineCompleted:
		line := r.line.Buffer()
		r.line.Reset()
		r.evalLine(line)
	case terminal.LineTerminated:
		r.line.Reset()
		r.state = Stopped
	}
}

func (r *REPL) evalLine(line string) {
	tokens, kind := Tokenize(line)
	if kind == errkind.Empty {
		return
	}
	if kind != errkind.Ok {
		r.report(kind)
		return
	}
	if strings.HasPrefix(tokens[0], "#") {
		return
	}

	r.state = Executing
	eval := NewEvaluator(r.ctx, r.registry, r.term)
	kind = eval.Run(tokens)
	if r.ctx.Exit != nil && r.ctx.Exit.Load() {
		r.state = Stopped
	} else if r.state != Stopped {
		r.state = Idle
	}
	r.ctx.Env.Set("?", kind.Symbol())
	if kind != errkind.Ok {
		r.report(kind)
	}
}

func (r *REPL) report(kind errkind.Kind) {
	r.term.InsertString("sh: command failed, error code " + kind.Symbol())
	r.term.InsertEOL()
}

// Run loops RunOnce until the session stops.
func (r *REPL) Run() {
	for r.RunOnce() {
	}
}
