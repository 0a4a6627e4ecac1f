package shell

import (
	"github.com/stxent/vfsshell/errkind"
	"github.com/stxent/vfsshell/terminal"
	"github.com/stxent/vfsshell/vfs"
)

// Evaluator resolves a command name to a node, reads its header, and
// dispatches to the bound runner behind a redirected terminal proxy
// (§4.9).
type Evaluator struct {
	ctx      *Context
	registry *Registry
	parent   terminal.Terminal
}

// NewEvaluator constructs an Evaluator that resolves commands via ctx and
// subscribes its redirection proxy to parent for the duration of Run.
func NewEvaluator(ctx *Context, registry *Registry, parent terminal.Terminal) *Evaluator {
	return &Evaluator{ctx: ctx, registry: registry, parent: parent}
}

// Run executes args[0] with args[1:], honouring any `<`, `>` or `>>`
// redirection among them (§4.9).
func (e *Evaluator) Run(args []string) errkind.Kind {
	if len(args) == 0 {
		return errkind.Empty
	}
	name := args[0]

	significant, redirect, kind := splitRedirection(args[1:])
	if kind != errkind.Ok {
		return kind
	}

	node, kind := e.resolve(name)
	if kind != errkind.Ok {
		return errkind.Entry
	}

	runner, kind := e.readRunner(node)
	if kind != errkind.Ok {
		return kind
	}

	proxy := terminal.NewProxy(e.parent)
	if redirect.inPath != "" {
		in, kind := vfs.OpenSource(e.ctx.FS, e.ctx.cwd(), redirect.inPath)
		if kind != errkind.Ok {
			return kind
		}
		proxy.SetInput(in)
	}
	if redirect.outPath != "" {
		out, kind := vfs.OpenSink(e.ctx.FS, e.ctx.cwd(), redirect.outPath)
		if kind != errkind.Ok {
			return kind
		}
		proxy.SetOutput(out, redirect.appendOut)
	}

	e.parent.Subscribe(proxy)
	defer e.parent.Unsubscribe(proxy)

	cmd := runner.New(e.ctx, proxy, significant)
	proxy.Subscribe(cmd)
	defer proxy.Unsubscribe(cmd)

	return e.dispatch(cmd)
}

// dispatch runs cmd to completion (§5: "long-running commands run on
// their own thread and must poll for termination"). cmd.Run() executes on
// its own goroutine so the calling goroutine can keep calling parent.Read
// meanwhile — each successful read notifies subscribers (cmd's proxy among
// them), delivering Ctrl-C to cmd.OnSerialInput while it is still running.
// dispatch itself still blocks until cmd finishes, so callers (the REPL,
// tests) see the same synchronous result they always have.
//
// A Command that implements Interactive and reports true drives its own
// terminal's Read loop (the nested `sh` session) and must not be raced
// against this pump, so it runs inline instead.
func (e *Evaluator) dispatch(cmd Command) errkind.Kind {
	if interactive, ok := cmd.(Interactive); ok && interactive.Interactive() {
		return cmd.Run()
	}

	done := make(chan errkind.Kind, 1)
	go func() {
		done <- cmd.Run()
	}()

	buf := make([]byte, 64)
	for {
		select {
		case kind := <-done:
			return kind
		default:
		}
		_, _ = e.parent.Read(buf)
	}
}

// resolve opens the command name first under PATH, then under PWD,
// failing Entry on a miss (§4.9 step 2).
func (e *Evaluator) resolve(name string) (vfs.Node, errkind.Kind) {
	pathDir := e.ctx.Env.Get("PATH").Value()
	if node, kind := vfs.OpenSource(e.ctx.FS, e.ctx.cwd(), vfs.Join(pathDir, name)); kind == errkind.Ok {
		return node, errkind.Ok
	}
	return vfs.OpenSource(e.ctx.FS, e.ctx.cwd(), vfs.Join(e.ctx.cwd(), name))
}

// readRunner reads the node's header and resolves it to a Runner,
// failing Entry when the data does not start with the executable magic or
// names no registered runner, and Value when the magic is followed by a
// truncated handle; a read error is returned unchanged (§4.9 step 3, §6).
func (e *Evaluator) readRunner(node vfs.Node) (Runner, errkind.Kind) {
	buf := make([]byte, HeaderLen)
	n, kind := node.Read(vfs.FieldData, 0, buf)
	if kind != errkind.Ok && kind != errkind.Empty {
		return nil, kind
	}
	header := buf[:n]
	if !IsBinaryHeader(header) {
		return nil, errkind.Entry
	}
	if len(header) < HeaderLen {
		return nil, errkind.Value
	}
	runner, ok := e.registry.Lookup(DecodeRunnerID(header))
	if !ok {
		return nil, errkind.Entry
	}
	return runner, errkind.Ok
}

type redirection struct {
	inPath    string
	outPath   string
	appendOut bool
}

// splitRedirection scans args once for redirection operators, cutting the
// "significant" slice fed to the command at the first one found (§4.9 step
// 1); later operators (e.g. an output redirection after an input one) are
// still honoured, matching a shell's "both an input and an output
// redirection on one line" usage, but never extend the significant slice
// past the first cut.
func splitRedirection(args []string) ([]string, redirection, errkind.Kind) {
	var redirect redirection
	cut := len(args)

	for i := 0; i < len(args); {
		tok := args[i]
		if tok != "<" && tok != ">" && tok != ">>" {
			i++
			continue
		}
		if i+1 >= len(args) {
			return nil, redirect, errkind.Value
		}
		if i < cut {
			cut = i
		}
		path := args[i+1]
		switch tok {
		case "<":
			redirect.inPath = path
		case ">":
			redirect.outPath = path
			redirect.appendOut = false
		case ">>":
			redirect.outPath = path
			redirect.appendOut = true
		}
		i += 2
	}

	return args[:cut], redirect, errkind.Ok
}
