package builtins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stxent/vfsshell/errkind"
	"github.com/stxent/vfsshell/terminal"
	"github.com/stxent/vfsshell/vfs"
)

func TestMkdirCreatesDirectory(t *testing.T) {
	ctx, _ := newTestContext(t)
	kind := run(ctx, NewMkdir(), terminal.NewMock(), []string{"/a"})
	require.Equal(t, errkind.Ok, kind)

	_, kind = vfs.OpenNode(ctx.FS, "/", "/a")
	assert.Equal(t, errkind.Ok, kind)
}

func TestMkdirExistingEntryFails(t *testing.T) {
	ctx, _ := newTestContext(t)
	mustCreateDir(t, ctx, "/a")

	kind := run(ctx, NewMkdir(), terminal.NewMock(), []string{"/a"})
	assert.Equal(t, errkind.Exist, kind)
}

func TestMkdirUnderReadOnlyParentReportsLiteralDiagnostic(t *testing.T) {
	ctx, _ := newTestContext(t)
	a := mustCreateDir(t, ctx, "/a")
	a.SetAccess(vfs.Read)

	term := terminal.NewMock()
	kind := run(ctx, NewMkdir(), term, []string{"/a/b"})
	assert.Equal(t, errkind.Access, kind)
	assert.Equal(t, "mkdir: /a/b: directory creation failed\r\n", string(term.Output))
}
