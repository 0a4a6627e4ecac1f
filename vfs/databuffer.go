package vfs

import "github.com/stxent/vfsshell/errkind"

const initialCapacity = 16

// DataBuffer owns a byte vector with capacity >= logical length (§4.6).
// Capacity grows by doubling from an initial 16 bytes, matching the
// original firmware's allocator-friendly growth policy.
type DataBuffer struct {
	Base
	data   []byte // len(data) == capacity
	length int
}

// NewDataBuffer constructs a data buffer whose initial content is initial.
func NewDataBuffer(name string, timestamp int64, access Access, initial []byte) *DataBuffer {
	capacity := growCapacity(len(initial))
	data := make([]byte, capacity)
	copy(data, initial)
	return &DataBuffer{
		Base:   NewBase(name, timestamp, access),
		data:   data,
		length: len(initial),
	}
}

// growCapacity returns the smallest capacity of the form 16*2^k >= need.
func growCapacity(need int) int {
	capacity := initialCapacity
	for capacity < need {
		capacity *= 2
	}
	return capacity
}

// Length answers FieldData with the current logical length.
func (f *DataBuffer) Length(field Field) (uint64, errkind.Kind) {
	if field == FieldData {
		return uint64(f.length), errkind.Ok
	}
	return f.Base.Length(field)
}

// Read supports random access at any offset <= current length.
func (f *DataBuffer) Read(field Field, offset uint64, buf []byte) (int, errkind.Kind) {
	if field != FieldData {
		return f.Base.Read(field, offset, buf)
	}
	if offset >= uint64(f.length) {
		// Reading at or past the end of the buffer is end-of-stream, not a
		// structural error (§7): the caller (dd/cp/cat) treats Empty as Ok.
		return 0, errkind.Empty
	}
	n := copy(buf, f.data[offset:f.length])
	return n, errkind.Ok
}

// Write supports random access at any offset, extending length (and
// doubling capacity as needed) when it writes past the current end.
func (f *DataBuffer) Write(field Field, offset uint64, buf []byte) (int, errkind.Kind) {
	if field != FieldData {
		return f.Base.Write(field, offset, buf)
	}
	end := offset + uint64(len(buf))
	if end > uint64(len(f.data)) {
		newCap := growCapacity(int(end))
		grown := make([]byte, newCap)
		copy(grown, f.data[:f.length])
		f.data = grown
	}
	copy(f.data[offset:end], buf)
	if end > uint64(f.length) {
		f.length = int(end)
	}
	return len(buf), errkind.Ok
}

// Bytes returns the current logical content, for callers that need the
// whole payload at once; cp and cksum read through Read instead.
func (f *DataBuffer) Bytes() []byte {
	return f.data[:f.length]
}

// Capacity exposes the backing allocation size, used by tests asserting
// the doubling policy.
func (f *DataBuffer) Capacity() int {
	return len(f.data)
}

// Truncate sets the logical length. Neither cp nor dd calls it.
func (f *DataBuffer) Truncate(length int) {
	if length < 0 {
		length = 0
	}
	if length > len(f.data) {
		newCap := growCapacity(length)
		grown := make([]byte, newCap)
		copy(grown, f.data[:f.length])
		f.data = grown
	}
	f.length = length
}
