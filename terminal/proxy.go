package terminal

import (
	"github.com/stxent/vfsshell/errkind"
	"github.com/stxent/vfsshell/vfs"
)

// Proxy wraps another Terminal, redirecting reads and/or writes to VFS
// nodes for `<`, `>` and `>>` (§4.8).
type Proxy struct {
	formatState

	parent Terminal

	input  vfs.Node
	inOff  uint64
	output vfs.Node
	outOff uint64

	listener Listener
}

// NewProxy constructs a Proxy over parent with no redirection configured.
func NewProxy(parent Terminal) *Proxy {
	return &Proxy{formatState: newFormatState(), parent: parent}
}

// SetInput redirects Read to node, starting at offset 0.
func (p *Proxy) SetInput(node vfs.Node) {
	p.input = node
	p.inOff = 0
}

// SetOutput redirects Write to node. If append is true the initial offset
// is the node's current length (`>>`); otherwise it starts at 0 (`>`).
func (p *Proxy) SetOutput(node vfs.Node, append bool) {
	p.output = node
	p.outOff = 0
	if append {
		if length, kind := node.Length(vfs.FieldData); kind == errkind.Ok {
			p.outOff = length
		}
	}
}

// Read implements Terminal: if an input override is set it reads from that
// node at a sticky offset, advancing on every successful read; otherwise
// it forwards to the parent terminal.
func (p *Proxy) Read(buf []byte) (int, error) {
	if p.input == nil {
		return p.parent.Read(buf)
	}
	n, kind := p.input.Read(vfs.FieldData, p.inOff, buf)
	if kind == errkind.Empty {
		return 0, nil
	}
	if kind != errkind.Ok {
		return 0, kind
	}
	p.inOff += uint64(n)
	return n, nil
}

// Write implements Terminal: if an output override is set it writes to
// that node, advancing the sticky offset; otherwise it forwards to the
// parent terminal.
func (p *Proxy) Write(buf []byte) (int, error) {
	if p.output == nil {
		return p.parent.Write(buf)
	}
	n, kind := p.output.Write(vfs.FieldData, p.outOff, buf)
	if kind != errkind.Ok {
		return 0, kind
	}
	p.outOff += uint64(n)
	return n, nil
}

// Subscribe installs a single listener, replacing any previous one.
func (p *Proxy) Subscribe(l Listener) {
	p.listener = l
}

// Unsubscribe clears the listener only if it equals l.
func (p *Proxy) Unsubscribe(l Listener) {
	if p.listener == l {
		p.listener = nil
	}
}

// OnSerialInput implements Listener: the proxy itself is subscribed to the
// parent terminal (§4.9 step 4) and relays events to whatever it owns as
// its own listener, if any.
func (p *Proxy) OnSerialInput(evt SerialInput) {
	if p.listener != nil {
		p.listener.OnSerialInput(evt)
	}
}

// InsertInt implements Terminal.
func (p *Proxy) InsertInt(v int64) {
	_, _ = p.Write([]byte(p.render(v)))
}

// InsertEOL implements Terminal.
func (p *Proxy) InsertEOL() {
	_, _ = p.Write([]byte("\r\n"))
}

// InsertString implements Terminal.
func (p *Proxy) InsertString(s string) {
	_, _ = p.Write([]byte(s))
}
