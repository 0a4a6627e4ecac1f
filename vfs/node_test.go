package vfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stxent/vfsshell/errkind"
)

func TestBaseIdentityIsUniqueAndReadOnly(t *testing.T) {
	a := NewDirectory("a", 0, Read|Write)
	b := NewDirectory("b", 0, Read|Write)
	assert.NotEqual(t, a.ID(), b.ID())

	_, kind := a.Write(FieldId, 0, []byte("whatever"))
	assert.Equal(t, errkind.Access, kind)
}

func TestBaseNameReadWrite(t *testing.T) {
	d := NewDirectory("old", 0, Read|Write)
	n, kind := d.Write(FieldName, 0, []byte("new"))
	require.Equal(t, errkind.Ok, kind)
	assert.Equal(t, 3, n)
	assert.Equal(t, "new", d.Name())

	buf := make([]byte, 16)
	n, kind = d.Read(FieldName, 0, buf)
	require.Equal(t, errkind.Ok, kind)
	assert.Equal(t, "new", string(buf[:n]))
}

func TestBaseAccessReadWrite(t *testing.T) {
	d := NewDirectory("d", 0, Read|Write)
	_, kind := d.Write(FieldAccess, 0, []byte{byte(Read)})
	require.Equal(t, errkind.Ok, kind)
	assert.Equal(t, Read, d.Access())

	buf := make([]byte, 1)
	_, kind = d.Read(FieldAccess, 0, buf)
	require.Equal(t, errkind.Ok, kind)
	assert.Equal(t, byte(Read), buf[0])
}

func TestBaseTimeReadWrite(t *testing.T) {
	d := NewDirectory("d", 0, Read|Write)
	_, kind := d.Write(FieldTime, 0, encodeInt64(12345))
	require.Equal(t, errkind.Ok, kind)
	assert.Equal(t, int64(12345), d.Timestamp())

	buf := make([]byte, 8)
	_, kind = d.Read(FieldTime, 0, buf)
	require.Equal(t, errkind.Ok, kind)
	v, ok := decodeInt64(buf)
	require.True(t, ok)
	assert.Equal(t, int64(12345), v)
}

func TestHandleRootIsEmptyDirectory(t *testing.T) {
	h := NewHandle()
	cur, kind := h.Root()
	require.Equal(t, errkind.Ok, kind)
	_, isDir := cur.Node.(*Directory)
	assert.True(t, isDir)
}

func TestHandleNextEnumeratesAndExhausts(t *testing.T) {
	h := NewHandle()
	root := h.RootNode().(*Directory)
	root.Create(nameDescriptor("a"))
	root.Create(nameDescriptor("b"))

	cur, kind := root.Head()
	require.Equal(t, errkind.Ok, kind)
	assert.Equal(t, "a", cur.Node.Name())

	kind = h.Next(cur)
	require.Equal(t, errkind.Ok, kind)
	assert.Equal(t, "b", cur.Node.Name())

	kind = h.Next(cur)
	assert.Equal(t, errkind.Entry, kind)
}

func TestFormatAccess(t *testing.T) {
	assert.Equal(t, "rw", formatAccess(Read|Write))
	assert.Equal(t, "r-", formatAccess(Read))
	assert.Equal(t, "-w", formatAccess(Write))
	assert.Equal(t, "--", formatAccess(0))
}
