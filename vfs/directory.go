package vfs

import "github.com/stxent/vfsshell/errkind"

// Directory owns an ordered list of child nodes in insertion order (§4.6).
type Directory struct {
	Base
	children []Node
}

// NewDirectory constructs an empty, unattached directory.
func NewDirectory(name string, timestamp int64, access Access) *Directory {
	return &Directory{Base: NewBase(name, timestamp, access)}
}

// Create interprets a descriptor vector per §4.6: at most one of each
// field kind, an Object descriptor is exclusive of any creation field, and
// the presence of Data decides directory vs. data buffer.
func (d *Directory) Create(descriptors []Descriptor) (Node, errkind.Kind) {
	var (
		name       *string
		nameSet    bool
		timestamp  int64
		access     = Read | Write
		data       []byte
		dataSet    bool
		object     Node
		objectSet  bool
		creationFd bool
	)

	for _, desc := range descriptors {
		switch desc.Field {
		case FieldName:
			s := string(desc.Bytes)
			name = &s
			nameSet = true
			creationFd = true
		case FieldTime:
			v, ok := decodeInt64(desc.Bytes)
			if !ok {
				return nil, errkind.Value
			}
			timestamp = v
			creationFd = true
		case FieldAccess:
			if len(desc.Bytes) < 1 {
				return nil, errkind.Value
			}
			access = Access(desc.Bytes[0])
			creationFd = true
		case FieldData:
			data = desc.Bytes
			dataSet = true
			creationFd = true
		case FieldObject:
			object = desc.Object
			objectSet = true
		default:
			return nil, errkind.Invalid
		}
	}

	if objectSet {
		if creationFd || object == nil {
			return nil, errkind.Invalid
		}
		if err := object.Enter(d.Handle(), d); err != errkind.Ok {
			return nil, err
		}
		d.children = append(d.children, object)
		return object, errkind.Ok
	}

	if !nameSet {
		return nil, errkind.Invalid
	}

	var child Node
	if dataSet {
		child = NewDataBuffer(*name, timestamp, access, data)
	} else {
		child = NewDirectory(*name, timestamp, access)
	}
	if err := child.Enter(d.Handle(), d); err != errkind.Ok {
		return nil, err
	}
	d.children = append(d.children, child)
	return child, errkind.Ok
}

// Head returns a cursor to the first child, or Entry if empty.
func (d *Directory) Head() (*Cursor, errkind.Kind) {
	if len(d.children) == 0 {
		return nil, errkind.Entry
	}
	return &Cursor{Node: d.children[0], parent: d, index: 0, handle: d.Handle()}, errkind.Ok
}

// Fetch returns a cursor to the child after current, or Entry when
// exhausted.
func (d *Directory) Fetch(current *Cursor) (*Cursor, errkind.Kind) {
	next := current.index + 1
	if next >= len(d.children) {
		return nil, errkind.Entry
	}
	return &Cursor{Node: d.children[next], parent: d, index: next, handle: d.Handle()}, errkind.Ok
}

// Remove detaches and destroys child, recursively tearing down its
// descendants first.
func (d *Directory) Remove(child Node) errkind.Kind {
	idx := -1
	for i, c := range d.children {
		if c == child {
			idx = i
			break
		}
	}
	if idx < 0 {
		return errkind.Entry
	}
	if sub, ok := child.(*Directory); ok {
		for len(sub.children) > 0 {
			if err := sub.Remove(sub.children[0]); err != errkind.Ok {
				return err
			}
		}
	}
	_ = child.Leave()
	d.children = append(d.children[:idx], d.children[idx+1:]...)
	return errkind.Ok
}

// Children exposes the child list for direct iteration without cursor
// churn; path resolution and ls enumerate through Head/Fetch instead.
func (d *Directory) Children() []Node {
	return d.children
}

// Length fails Invalid for Data; directories carry no payload.
func (d *Directory) Length(field Field) (uint64, errkind.Kind) {
	if field == FieldData {
		return 0, errkind.Invalid
	}
	return d.Base.Length(field)
}

// Read fails Invalid for Data.
func (d *Directory) Read(field Field, offset uint64, buf []byte) (int, errkind.Kind) {
	if field == FieldData {
		return 0, errkind.Invalid
	}
	return d.Base.Read(field, offset, buf)
}

// Write fails Invalid for Data.
func (d *Directory) Write(field Field, offset uint64, buf []byte) (int, errkind.Kind) {
	if field == FieldData {
		return 0, errkind.Invalid
	}
	return d.Base.Write(field, offset, buf)
}
