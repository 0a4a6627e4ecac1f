package builtins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stxent/vfsshell/errkind"
	"github.com/stxent/vfsshell/terminal"
	"github.com/stxent/vfsshell/vfs"
)

func TestCpCopiesContent(t *testing.T) {
	ctx, _ := newTestContext(t)
	mustCreateFile(t, ctx, "/src", []byte("hello"))

	kind := run(ctx, NewCp(), terminal.NewMock(), []string{"/src", "/dst"})
	require.Equal(t, errkind.Ok, kind)

	node, kind := vfs.OpenNode(ctx.FS, "/", "/dst")
	require.Equal(t, errkind.Ok, kind)
	buf := make([]byte, 16)
	n, kind := node.Read(vfs.FieldData, 0, buf)
	require.Equal(t, errkind.Ok, kind)
	assert.Equal(t, "hello", string(buf[:n]))
}

func TestCpRefusesExistingDataDestination(t *testing.T) {
	ctx, _ := newTestContext(t)
	mustCreateFile(t, ctx, "/src", []byte("hello"))
	mustCreateFile(t, ctx, "/dst", []byte("other"))

	kind := run(ctx, NewCp(), terminal.NewMock(), []string{"/src", "/dst"})
	assert.Equal(t, errkind.Exist, kind)
}

func TestCpRefusesExistingDirectoryDestination(t *testing.T) {
	ctx, _ := newTestContext(t)
	mustCreateFile(t, ctx, "/src", []byte("hello"))
	mustCreateDir(t, ctx, "/dir")

	kind := run(ctx, NewCp(), terminal.NewMock(), []string{"/src", "/dir"})
	assert.Equal(t, errkind.Exist, kind)
}
