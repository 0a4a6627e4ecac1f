package vfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stxent/vfsshell/errkind"
)

type fakeForeign struct {
	root   *Directory
	closed bool
}

func newFakeForeign() *fakeForeign {
	return &fakeForeign{root: NewDirectory("/", 0, Read|Write)}
}

func (f *fakeForeign) Root() (Node, errkind.Kind) { return f.root, errkind.Ok }
func (f *fakeForeign) Close() errkind.Kind {
	f.closed = true
	return errkind.Ok
}

func TestMountPointCreateDelegatesToForeignRoot(t *testing.T) {
	foreign := newFakeForeign()
	mp := NewMountPoint("mnt", 0, Read|Write, foreign)

	child, kind := mp.Create(nameDescriptor("f"))
	require.Equal(t, errkind.Ok, kind)
	assert.Equal(t, "f", child.Name())
	assert.Len(t, foreign.root.Children(), 1)
}

func TestMountPointHeadAndRemoveRoundTrip(t *testing.T) {
	foreign := newFakeForeign()
	mp := NewMountPoint("mnt", 0, Read|Write, foreign)
	child, _ := mp.Create(nameDescriptor("f"))

	cur, kind := mp.Head()
	require.Equal(t, errkind.Ok, kind)
	assert.Equal(t, "f", cur.Node.Name())
	assert.Same(t, Node(mp), cur.parent)

	require.Equal(t, errkind.Ok, mp.Remove(child))
	_, kind = mp.Head()
	assert.Equal(t, errkind.Entry, kind)
}

func TestMountPointUnmountClosesTransport(t *testing.T) {
	foreign := newFakeForeign()
	mp := NewMountPoint("mnt", 0, Read|Write, foreign)
	require.Equal(t, errkind.Ok, mp.Unmount())
	assert.True(t, foreign.closed)
}
