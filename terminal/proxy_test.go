package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stxent/vfsshell/vfs"
)

func TestProxyForwardsWhenNoRedirection(t *testing.T) {
	m := NewMock()
	p := NewProxy(m)

	_, err := p.Write([]byte("hi"))
	require.NoError(t, err)
	assert.Equal(t, "hi", string(m.Output))
}

func TestProxyWriteRedirectsToNode(t *testing.T) {
	m := NewMock()
	p := NewProxy(m)
	node := vfs.NewDataBuffer("out", 0, vfs.Read|vfs.Write, nil)
	p.SetOutput(node, false)

	_, err := p.Write([]byte("test"))
	require.NoError(t, err)
	assert.Equal(t, "test", string(node.Bytes()))
	assert.Empty(t, m.Output, "nothing should reach the underlying terminal")
}

func TestProxyWriteAppendStartsAtCurrentLength(t *testing.T) {
	m := NewMock()
	p := NewProxy(m)
	node := vfs.NewDataBuffer("out", 0, vfs.Read|vfs.Write, []byte("a\r\n"))
	p.SetOutput(node, true)

	_, err := p.Write([]byte("b\r\n"))
	require.NoError(t, err)
	assert.Equal(t, "a\r\nb\r\n", string(node.Bytes()))
}

func TestProxyReadRedirectsFromNodeAndAdvances(t *testing.T) {
	m := NewMock()
	p := NewProxy(m)
	node := vfs.NewDataBuffer("in", 0, vfs.Read|vfs.Write, []byte("hello"))
	p.SetInput(node)

	buf := make([]byte, 3)
	n, err := p.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "hel", string(buf[:n]))

	n, err = p.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "lo", string(buf[:n]))

	n, err = p.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 0, n, "end of stream reads as 0, not an error")
}

func TestProxySubscribeRelaysFromParent(t *testing.T) {
	m := NewMock()
	p := NewProxy(m)
	m.Subscribe(p)

	var got []SerialInput
	p.Subscribe(listenerFunc(func(evt SerialInput) { got = append(got, evt) }))

	m.Feed([]byte("ab"))
	assert.Equal(t, []SerialInput{{Length: 2}}, got)
}

func TestProxyUnsubscribeOnlyClearsMatchingListener(t *testing.T) {
	p := NewProxy(NewMock())
	a := listenerFunc(func(evt SerialInput) {})
	b := listenerFunc(func(evt SerialInput) {})

	p.Subscribe(a)
	p.Unsubscribe(b)
	assert.NotNil(t, p.listener)

	p.Unsubscribe(a)
	assert.Nil(t, p.listener)
}
