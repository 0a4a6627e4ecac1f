package builtins

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/stxent/vfsshell/clock"
	"github.com/stxent/vfsshell/env"
	"github.com/stxent/vfsshell/errkind"
	"github.com/stxent/vfsshell/shell"
	"github.com/stxent/vfsshell/terminal"
	"github.com/stxent/vfsshell/vfs"
)

func newTestContext(t *testing.T) (*shell.Context, *shell.Initializer) {
	t.Helper()
	ctx := &shell.Context{Env: env.New(), FS: vfs.NewHandle(), Clock: clock.NewMock(time.Unix(0, 0))}
	ini, kind := shell.NewInitializer(ctx, false)
	require.Equal(t, errkind.Ok, kind)
	return ctx, ini
}

func run(ctx *shell.Context, runner shell.Runner, term terminal.Terminal, args []string) errkind.Kind {
	cmd := runner.New(ctx, term, args)
	return cmd.Run()
}

func mustCreateFile(t *testing.T, ctx *shell.Context, path string, data []byte) vfs.Node {
	t.Helper()
	parent, name, kind := vfs.OpenBaseNode(ctx.FS, "/", path)
	require.Equal(t, errkind.Ok, kind)
	node, kind := parent.Create([]vfs.Descriptor{
		{Field: vfs.FieldName, Bytes: []byte(name)},
		{Field: vfs.FieldData, Bytes: data},
	})
	require.Equal(t, errkind.Ok, kind)
	return node
}

func mustCreateDir(t *testing.T, ctx *shell.Context, path string) vfs.Node {
	t.Helper()
	parent, name, kind := vfs.OpenBaseNode(ctx.FS, "/", path)
	require.Equal(t, errkind.Ok, kind)
	node, kind := parent.Create([]vfs.Descriptor{{Field: vfs.FieldName, Bytes: []byte(name)}})
	require.Equal(t, errkind.Ok, kind)
	return node
}
