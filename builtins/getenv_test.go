package builtins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stxent/vfsshell/errkind"
	"github.com/stxent/vfsshell/terminal"
)

func TestGetenvPrintsValue(t *testing.T) {
	ctx, _ := newTestContext(t)
	term := terminal.NewMock()
	kind := run(ctx, NewGetenv(), term, []string{"PWD"})
	require.Equal(t, errkind.Ok, kind)
	assert.Equal(t, "/\r\n", string(term.Output))
}

func TestGetenvUnknownVariableFails(t *testing.T) {
	ctx, _ := newTestContext(t)
	kind := run(ctx, NewGetenv(), terminal.NewMock(), []string{"NOPE"})
	assert.Equal(t, errkind.Entry, kind)
}
