// Package vfs implements the in-memory virtual file system: the uniform
// node protocol (§3, §4.6), the handle that multiplexes concurrent access
// (§4.7), and the path utilities every caller resolves names through
// (§4.9).
package vfs

import (
	"sync"

	"github.com/google/uuid"
	"github.com/stxent/vfsshell/errkind"
)

// Field identifies one facet of a node's state that Length/Read/Write
// operate on.
type Field int

const (
	// FieldName is the node's name.
	FieldName Field = iota
	// FieldAccess is the node's Read|Write bitmask, one byte.
	FieldAccess
	// FieldId is the node's read-only identity.
	FieldId
	// FieldTime is the node's microsecond timestamp, eight bytes.
	FieldTime
	// FieldData is the node's payload; only defined for data buffers,
	// parameter children and mount-point roots.
	FieldData
	// FieldObject is construction-only: it carries an already-built Node
	// to attach as a child. It never appears in a read.
	FieldObject
)

// Access is a Read|Write bitmask.
type Access uint8

const (
	Read Access = 1 << iota
	Write
)

// Descriptor is a (field, bytes) tuple used to construct children of a
// directory, or an Object descriptor carrying a pre-built Node to attach.
type Descriptor struct {
	Field  Field
	Bytes  []byte
	Object Node
}

// Cursor is a short-lived handle naming one node for enumeration, carrying
// a back-pointer to its host Handle. Cursors own no node memory; freeing a
// cursor only releases the cursor, per §3.
type Cursor struct {
	Node   Node
	parent Node
	index  int
	handle *Handle
}

// Node is the uniform contract every VFS entry implements, regardless of
// concrete variant (directory, data buffer, device parameter, mount point).
type Node interface {
	Name() string
	SetName(name string)
	Timestamp() int64
	SetTimestamp(us int64)
	Access() Access
	SetAccess(a Access)
	// ID returns the node's read-only identity.
	ID() string

	// Parent is a weak (non-owning) lookup of the enclosing directory, or
	// nil for an unattached or root node.
	Parent() Node
	// Handle is a weak (non-owning) lookup of the owning Handle, or nil if
	// the node is unattached.
	Handle() *Handle

	Create(descriptors []Descriptor) (Node, errkind.Kind)
	Head() (*Cursor, errkind.Kind)
	Fetch(current *Cursor) (*Cursor, errkind.Kind)
	Length(field Field) (uint64, errkind.Kind)
	Read(field Field, offset uint64, buf []byte) (int, errkind.Kind)
	Write(field Field, offset uint64, buf []byte) (int, errkind.Kind)
	Remove(child Node) errkind.Kind

	Enter(handle *Handle, parent Node) errkind.Kind
	Leave() errkind.Kind
}

// Base implements the common attributes and the default, structural-field
// behaviour every concrete node variant embeds: Create/Remove fail Invalid,
// Length/Read/Write answer for Name/Access/Id/Time and fail Invalid for
// Data, exactly as §3 specifies for the default implementation.
type Base struct {
	name      string
	timestamp int64
	access    Access
	id        string

	parent Node
	handle *Handle
}

// NewBase constructs a Base with the given name, timestamp and access. A
// fresh, process-unique identity is minted via uuid, standing in for "the
// address of the underlying object" in a garbage-collected runtime.
func NewBase(name string, timestamp int64, access Access) Base {
	return Base{
		name:      name,
		timestamp: timestamp,
		access:    access,
		id:        uuid.NewString(),
	}
}

func (b *Base) Name() string          { return b.name }
func (b *Base) SetName(name string)   { b.name = name }
func (b *Base) Timestamp() int64      { return b.timestamp }
func (b *Base) SetTimestamp(us int64) { b.timestamp = us }
func (b *Base) Access() Access        { return b.access }
func (b *Base) SetAccess(a Access)    { b.access = a }
func (b *Base) ID() string            { return b.id }
func (b *Base) Parent() Node          { return b.parent }
func (b *Base) Handle() *Handle       { return b.handle }

// Enter attaches the node to handle/parent. It is exported so variants can
// call it from their own Enter override when they need to react to
// attachment (device nodes).
func (b *Base) Enter(handle *Handle, parent Node) errkind.Kind {
	b.handle = handle
	b.parent = parent
	return errkind.Ok
}

// Leave detaches the node.
func (b *Base) Leave() errkind.Kind {
	b.handle = nil
	b.parent = nil
	return errkind.Ok
}

// Create's default fails Invalid; directories override it.
func (b *Base) Create([]Descriptor) (Node, errkind.Kind) {
	return nil, errkind.Invalid
}

// Head's default fails Entry (no children to enumerate).
func (b *Base) Head() (*Cursor, errkind.Kind) {
	return nil, errkind.Entry
}

// Fetch's default fails Entry.
func (b *Base) Fetch(*Cursor) (*Cursor, errkind.Kind) {
	return nil, errkind.Entry
}

// Remove's default fails Invalid; directories and mount-points override it.
func (b *Base) Remove(Node) errkind.Kind {
	return errkind.Invalid
}

// Length answers the structural fields and fails Invalid for Data; data
// buffers, parameter children and mount-point roots override this for
// FieldData.
func (b *Base) Length(field Field) (uint64, errkind.Kind) {
	switch field {
	case FieldName:
		return uint64(len(b.name)), errkind.Ok
	case FieldAccess:
		return 1, errkind.Ok
	case FieldId:
		return uint64(len(b.id)), errkind.Ok
	case FieldTime:
		return 8, errkind.Ok
	default:
		return 0, errkind.Invalid
	}
}

// Read answers the structural fields and fails Invalid for Data.
func (b *Base) Read(field Field, offset uint64, buf []byte) (int, errkind.Kind) {
	var src []byte
	switch field {
	case FieldName:
		src = []byte(b.name)
	case FieldAccess:
		src = []byte{byte(b.access)}
	case FieldId:
		src = []byte(b.id)
	case FieldTime:
		src = encodeInt64(b.timestamp)
	default:
		return 0, errkind.Invalid
	}
	if offset > uint64(len(src)) {
		return 0, errkind.Value
	}
	n := copy(buf, src[offset:])
	return n, errkind.Ok
}

// Write accepts renames, chmod and touch through the field protocol; Id is
// read-only and Data fails Invalid at this layer.
func (b *Base) Write(field Field, offset uint64, buf []byte) (int, errkind.Kind) {
	switch field {
	case FieldName:
		b.name = string(buf)
		return len(buf), errkind.Ok
	case FieldAccess:
		if len(buf) < 1 {
			return 0, errkind.Value
		}
		b.access = Access(buf[0])
		return 1, errkind.Ok
	case FieldTime:
		v, ok := decodeInt64(buf)
		if !ok {
			return 0, errkind.Value
		}
		b.timestamp = v
		return len(buf), errkind.Ok
	case FieldId:
		return 0, errkind.Access
	default:
		return 0, errkind.Invalid
	}
}

func encodeInt64(v int64) []byte {
	u := uint64(v)
	out := make([]byte, 8)
	for i := 0; i < 8; i++ {
		out[i] = byte(u >> (8 * i))
	}
	return out
}

func decodeInt64(buf []byte) (int64, bool) {
	if len(buf) < 8 {
		return 0, false
	}
	var u uint64
	for i := 0; i < 8; i++ {
		u |= uint64(buf[i]) << (8 * i)
	}
	return int64(u), true
}

// Handle owns one root directory and a coarse mutex (§4.7). Only Root and
// WithLock take the mutex; the nodes' own Head, Fetch, Create and Remove
// do not, so enumeration and mutation through nodes are not serialised.
type Handle struct {
	mu   sync.Mutex
	root Node
}

// NewHandle constructs a Handle whose root is an empty directory.
func NewHandle() *Handle {
	h := &Handle{}
	root := NewDirectory("/", 0, Read|Write)
	_ = root.Enter(h, nil)
	h.root = root
	return h
}

// Root returns a cursor naming the root directory.
func (h *Handle) Root() (*Cursor, errkind.Kind) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.MakeCursor(h.root), errkind.Ok
}

// RootNode exposes the root node directly, used by path resolution. It
// does not take the handle's mutex.
func (h *Handle) RootNode() Node {
	return h.root
}

// Sync is a no-op for the in-memory core. ForeignFS has no sync operation,
// so mounted foreign handles are not flushed either.
func (h *Handle) Sync() errkind.Kind {
	return errkind.Ok
}

// MakeCursor constructs a cursor naming node with no enumeration state.
func (h *Handle) MakeCursor(node Node) *Cursor {
	return &Cursor{Node: node, handle: h}
}

// FreeCursor releases cursor resources. Cursors in this implementation own
// no external memory, so it only clears the cursor's node and parent
// references; it is retained for symmetry with the original API and to
// give callers one place to stop using a cursor.
func (h *Handle) FreeCursor(c *Cursor) {
	if c != nil {
		c.Node = nil
		c.parent = nil
	}
}

// Next mutates cursor to point at the parent's next child, returning Entry
// when enumeration is exhausted.
func (h *Handle) Next(c *Cursor) errkind.Kind {
	if c == nil || c.parent == nil {
		return errkind.Entry
	}
	next, kind := c.parent.Fetch(c)
	if kind != errkind.Ok {
		return kind
	}
	*c = *next
	return errkind.Ok
}

// WithLock runs fn while holding the handle's coarse mutex.
func (h *Handle) WithLock(fn func() errkind.Kind) errkind.Kind {
	h.mu.Lock()
	defer h.mu.Unlock()
	return fn()
}

// formatAccess renders an Access bitmask the way `ls -l` does: "rw", "r-",
// "-w" or "--".
func formatAccess(a Access) string {
	r := byte('-')
	w := byte('-')
	if a&Read != 0 {
		r = 'r'
	}
	if a&Write != 0 {
		w = 'w'
	}
	return string([]byte{r, w})
}
