package vfs

import "github.com/stxent/vfsshell/errkind"

// ForeignFS is the contract a mount-point delegates to: a foreign
// filesystem handle exposing one root Node. Concrete implementations live
// under vfs/backend; the concrete FAT32 handle and its transport named in
// the original sources are explicitly out of scope (§1) — any Node-shaped
// adapter can sit behind a mount-point.
type ForeignFS interface {
	// Root returns the foreign handle's root node.
	Root() (Node, errkind.Kind)
	// Close releases the transport the handle was opened on.
	Close() errkind.Kind
}

// MountPoint owns a foreign filesystem handle and the transport it was
// opened on (§4.6). Create, Head, Fetch and Remove are forwarded to the
// foreign root; every other operation behaves like a plain Base node.
type MountPoint struct {
	Base
	foreign ForeignFS
}

// NewMountPoint constructs a mount-point delegating to foreign.
func NewMountPoint(name string, timestamp int64, access Access, foreign ForeignFS) *MountPoint {
	return &MountPoint{
		Base:    NewBase(name, timestamp, access),
		foreign: foreign,
	}
}

// Foreign exposes the underlying handle.
func (m *MountPoint) Foreign() ForeignFS {
	return m.foreign
}

func (m *MountPoint) Create(descriptors []Descriptor) (Node, errkind.Kind) {
	root, kind := m.foreign.Root()
	if kind != errkind.Ok {
		return nil, kind
	}
	return root.Create(descriptors)
}

func (m *MountPoint) Head() (*Cursor, errkind.Kind) {
	root, kind := m.foreign.Root()
	if kind != errkind.Ok {
		return nil, kind
	}
	cur, kind := root.Head()
	if kind != errkind.Ok {
		return nil, kind
	}
	cur.parent = m
	return cur, errkind.Ok
}

func (m *MountPoint) Fetch(current *Cursor) (*Cursor, errkind.Kind) {
	root, kind := m.foreign.Root()
	if kind != errkind.Ok {
		return nil, kind
	}
	next, kind := root.Fetch(current)
	if kind != errkind.Ok {
		return nil, kind
	}
	next.parent = m
	return next, errkind.Ok
}

func (m *MountPoint) Remove(child Node) errkind.Kind {
	root, kind := m.foreign.Root()
	if kind != errkind.Ok {
		return kind
	}
	return root.Remove(child)
}

// Unmount closes the transport. The caller is responsible for detaching
// the node from its parent directory first; no built-in calls Unmount.
func (m *MountPoint) Unmount() errkind.Kind {
	return m.foreign.Close()
}
