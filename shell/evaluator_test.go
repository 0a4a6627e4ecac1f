package shell

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stxent/vfsshell/clock"
	"github.com/stxent/vfsshell/env"
	"github.com/stxent/vfsshell/errkind"
	"github.com/stxent/vfsshell/terminal"
	"github.com/stxent/vfsshell/vfs"
)

type fakeCmd struct {
	name string
	term terminal.Terminal
	args []string
}

func (f *fakeCmd) Name() string { return f.name }

func (f *fakeCmd) Run() errkind.Kind {
	f.term.InsertString(strings.Join(f.args, " "))
	f.term.InsertEOL()
	return errkind.Ok
}

func (f *fakeCmd) OnSerialInput(terminal.SerialInput) {}

func newTestContext(t *testing.T) (*Context, *Initializer) {
	t.Helper()
	ctx := &Context{Env: env.New(), FS: vfs.NewHandle(), Clock: clock.NewMock(time.Unix(0, 0))}
	ini, kind := NewInitializer(ctx, false)
	require.Equal(t, errkind.Ok, kind)
	return ctx, ini
}

func TestEvaluatorRunsAttachedCommand(t *testing.T) {
	ctx, ini := newTestContext(t)
	ini.Attach("echoish", RunnerFunc(func(ctx *Context, term terminal.Terminal, args []string) Command {
		return &fakeCmd{name: "echoish", term: term, args: args}
	}))

	parent := terminal.NewMock()
	eval := NewEvaluator(ctx, ini.Registry(), parent)
	kind := eval.Run([]string{"echoish", "a", "b"})

	require.Equal(t, errkind.Ok, kind)
	assert.Equal(t, "a b\r\n", string(parent.Output))
}

func TestEvaluatorMissingCommandIsEntry(t *testing.T) {
	ctx, ini := newTestContext(t)
	parent := terminal.NewMock()
	eval := NewEvaluator(ctx, ini.Registry(), parent)

	kind := eval.Run([]string{"nope"})
	assert.Equal(t, errkind.Entry, kind)
}

func TestEvaluatorOutputRedirection(t *testing.T) {
	ctx, ini := newTestContext(t)
	ini.Attach("echoish", RunnerFunc(func(ctx *Context, term terminal.Terminal, args []string) Command {
		return &fakeCmd{name: "echoish", term: term, args: args}
	}))

	parent := terminal.NewMock()
	eval := NewEvaluator(ctx, ini.Registry(), parent)
	kind := eval.Run([]string{"echoish", "a", ">", "/out"})
	require.Equal(t, errkind.Ok, kind)
	assert.Empty(t, parent.Output)

	node, kind := vfs.OpenNode(ctx.FS, "/", "/out")
	require.Equal(t, errkind.Ok, kind)
	buf := make([]byte, 32)
	n, kind := node.Read(vfs.FieldData, 0, buf)
	require.Equal(t, errkind.Ok, kind)
	assert.Equal(t, "a\r\n", string(buf[:n]))
}

func TestSplitRedirectionCutsAtFirstOperator(t *testing.T) {
	significant, redirect, kind := splitRedirection([]string{"a", "b", ">", "/out"})
	require.Equal(t, errkind.Ok, kind)
	assert.Equal(t, []string{"a", "b"}, significant)
	assert.Equal(t, "/out", redirect.outPath)
	assert.False(t, redirect.appendOut)
}

func TestSplitRedirectionAppend(t *testing.T) {
	_, redirect, kind := splitRedirection([]string{">>", "/x"})
	require.Equal(t, errkind.Ok, kind)
	assert.Equal(t, "/x", redirect.outPath)
	assert.True(t, redirect.appendOut)
}

func TestSplitRedirectionMissingPathIsValue(t *testing.T) {
	_, _, kind := splitRedirection([]string{"a", ">"})
	assert.Equal(t, errkind.Value, kind)
}
