package builtins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stxent/vfsshell/errkind"
	"github.com/stxent/vfsshell/terminal"
)

func TestEchoJoinsArgsWithSpace(t *testing.T) {
	ctx, _ := newTestContext(t)
	term := terminal.NewMock()
	kind := run(ctx, NewEcho(), term, []string{"foo", "bar"})
	require.Equal(t, errkind.Ok, kind)
	assert.Equal(t, "foo bar\r\n", string(term.Output))
}

func TestEchoNoArgsPrintsJustEOL(t *testing.T) {
	ctx, _ := newTestContext(t)
	term := terminal.NewMock()
	kind := run(ctx, NewEcho(), term, nil)
	require.Equal(t, errkind.Ok, kind)
	assert.Equal(t, "\r\n", string(term.Output))
}
