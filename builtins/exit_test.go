package builtins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stxent/vfsshell/errkind"
	"github.com/stxent/vfsshell/terminal"
)

func TestExitRaisesSharedFlag(t *testing.T) {
	ctx, _ := newTestContext(t)
	kind := run(ctx, NewExit(), terminal.NewMock(), nil)
	require.Equal(t, errkind.Ok, kind)
	assert.True(t, ctx.Exit.Load())
}
