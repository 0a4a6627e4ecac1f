// Package zipfs implements a vfs.ForeignFS backed by an in-memory zip
// archive, the concrete mount target standing in for the FAT32 handle
// the original sources use (§1 explicitly scopes that concrete transport
// out; any Node-shaped adapter may sit behind a mount-point).
package zipfs

import (
	"archive/zip"
	"bytes"
	"io"

	"github.com/klauspost/compress/flate"

	"github.com/stxent/vfsshell/errkind"
	"github.com/stxent/vfsshell/vfs"
)

func init() {
	zip.RegisterDecompressor(zip.Deflate, flate.NewReader)
	zip.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.DefaultCompression)
	})
}

// FS adapts an archive's contents (already unpacked into an in-memory
// directory tree) to vfs.ForeignFS. Changes made through the mount-point
// during a session live in this tree; Close releases it without writing
// the archive back out, matching §1's "persistence is the concern of
// mounted foreign handles" — this handle simply doesn't choose to persist.
type FS struct {
	root   *vfs.Directory
	closed bool
}

// New constructs an empty, freshly "formatted" archive with nothing in
// it, for `mount` onto a blank device node.
func New() *FS {
	return &FS{root: vfs.NewDirectory("/", 0, vfs.Read|vfs.Write)}
}

// Open unpacks a zip archive's bytes into an in-memory directory tree.
func Open(data []byte) (*FS, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	root := vfs.NewDirectory("/", 0, vfs.Read|vfs.Write)
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		content, err := readZipFile(f)
		if err != nil {
			return nil, err
		}
		if _, kind := root.Create([]vfs.Descriptor{
			{Field: vfs.FieldName, Bytes: []byte(f.Name)},
			{Field: vfs.FieldData, Bytes: content},
		}); kind != errkind.Ok {
			return nil, kind
		}
	}
	return &FS{root: root}, nil
}

func readZipFile(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// Root implements vfs.ForeignFS.
func (f *FS) Root() (vfs.Node, errkind.Kind) {
	if f.closed {
		return nil, errkind.Device
	}
	return f.root, errkind.Ok
}

// Close implements vfs.ForeignFS.
func (f *FS) Close() errkind.Kind {
	f.closed = true
	return errkind.Ok
}

// BuildArchive deflates files into a zip archive's bytes, exercising the
// klauspost/compress compressor registered in init(). Used by tests (and
// available to any caller wanting to stage a device image) rather than
// shelling out to the archive/zip default compressor.
func BuildArchive(files map[string][]byte) ([]byte, error) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range files {
		fw, err := w.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate})
		if err != nil {
			return nil, err
		}
		if _, err := fw.Write(content); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
