package builtins

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stxent/vfsshell/errkind"
	"github.com/stxent/vfsshell/terminal"
)

func TestLsListsChildrenInOrder(t *testing.T) {
	ctx, _ := newTestContext(t)
	mustCreateFile(t, ctx, "/a", nil)
	mustCreateFile(t, ctx, "/b", nil)
	mustCreateFile(t, ctx, "/c", nil)

	term := terminal.NewMock()
	kind := run(ctx, NewLs(), term, nil)
	require.Equal(t, errkind.Ok, kind)
	assert.Equal(t, []string{"bin", "dev", "a", "b", "c"}, strings.Fields(string(term.Output)))
}

func TestLsLongShowsAccessAndSize(t *testing.T) {
	ctx, _ := newTestContext(t)
	mustCreateFile(t, ctx, "/f", []byte("hello"))

	term := terminal.NewMock()
	kind := run(ctx, NewLs(), term, []string{"-l"})
	require.Equal(t, errkind.Ok, kind)
	out := string(term.Output)
	assert.Contains(t, out, "rw")
	assert.Contains(t, out, "5")
	assert.Contains(t, out, "f")
}

func TestLsIdentifierIsHex(t *testing.T) {
	ctx, _ := newTestContext(t)
	node := mustCreateFile(t, ctx, "/f", nil)

	term := terminal.NewMock()
	kind := run(ctx, NewLs(), term, []string{"-i"})
	require.Equal(t, errkind.Ok, kind)
	assert.Contains(t, string(term.Output), formatIdentifier(node.ID()))
}

func TestLsMissingPathFails(t *testing.T) {
	ctx, _ := newTestContext(t)
	term := terminal.NewMock()
	kind := run(ctx, NewLs(), term, []string{"/nope"})
	assert.Equal(t, errkind.Entry, kind)
}
