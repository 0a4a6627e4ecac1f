package vfs

import (
	"path"
	"strings"

	"github.com/stxent/vfsshell/errkind"
)

// Join combines base and rel the way the shell's path resolution does: an
// absolute rel replaces base entirely, otherwise rel is appended and the
// result is cleaned (so ".." navigates up), per §8's testable properties.
func Join(base, rel string) string {
	if strings.HasPrefix(rel, "/") {
		return path.Clean(rel)
	}
	return path.Clean(base + "/" + rel)
}

// ExtractName returns the last path segment.
func ExtractName(p string) string {
	return path.Base(p)
}

// Resolve turns a possibly-relative path into an absolute one given the
// current working directory.
func Resolve(cwd, p string) string {
	if strings.HasPrefix(p, "/") {
		return path.Clean(p)
	}
	return Join(cwd, p)
}

// OpenNode walks the tree from the handle's root, resolving p relative to
// cwd, matching each path segment against a directory's children by name
// (first match, per §3's "lookup is first-match in insertion order").
func OpenNode(h *Handle, cwd, p string) (Node, errkind.Kind) {
	resolved := Resolve(cwd, p)
	if resolved == "/" {
		return h.RootNode(), errkind.Ok
	}

	node := h.RootNode()
	for _, segment := range strings.Split(strings.Trim(resolved, "/"), "/") {
		child, kind := lookupChild(node, segment)
		if kind != errkind.Ok {
			return nil, kind
		}
		node = child
	}
	return node, errkind.Ok
}

func lookupChild(parent Node, name string) (Node, errkind.Kind) {
	cur, kind := parent.Head()
	for kind == errkind.Ok {
		if cur.Node.Name() == name {
			return cur.Node, errkind.Ok
		}
		cur, kind = parent.Fetch(cur)
	}
	return nil, errkind.Entry
}

// OpenBaseNode resolves p to its parent directory and leaf name, for
// callers that need to create or remove an entry rather than open it
// (mkdir, rm, cp's destination).
func OpenBaseNode(h *Handle, cwd, p string) (parent Node, name string, kind errkind.Kind) {
	resolved := Resolve(cwd, p)
	name = ExtractName(resolved)
	parentPath := path.Dir(resolved)
	parent, kind = OpenNode(h, cwd, parentPath)
	return parent, name, kind
}

// OpenSource resolves p to a node open for reading, checking the Read
// access bit.
func OpenSource(h *Handle, cwd, p string) (Node, errkind.Kind) {
	node, kind := OpenNode(h, cwd, p)
	if kind != errkind.Ok {
		return nil, kind
	}
	if node.Access()&Read == 0 {
		return nil, errkind.Access
	}
	return node, errkind.Ok
}

// OpenSink resolves p to a node open for writing. If the entry does not
// exist it is created as a data buffer in its parent directory; if it
// exists its Write access bit is checked.
func OpenSink(h *Handle, cwd, p string) (Node, errkind.Kind) {
	node, kind := OpenNode(h, cwd, p)
	if kind == errkind.Ok {
		if node.Access()&Write == 0 {
			return nil, errkind.Access
		}
		return node, errkind.Ok
	}
	if kind != errkind.Entry {
		return nil, kind
	}

	parent, name, kind := OpenBaseNode(h, cwd, p)
	if kind != errkind.Ok {
		return nil, kind
	}
	if parent.Access()&Write == 0 {
		return nil, errkind.Access
	}
	return parent.Create([]Descriptor{
		{Field: FieldName, Bytes: []byte(name)},
		{Field: FieldData, Bytes: nil},
	})
}
