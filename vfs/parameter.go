package vfs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/stxent/vfsshell/errkind"
)

// ExternalInterface is the contract a device-parameter node binds to: a
// live hardware/peripheral endpoint exposing named parameters, grounded on
// the original firmware's InterfaceNode/InterfaceParameters pair (§4.6,
// and the supplemented Core/Shell/Interfaces/* sources).
type ExternalInterface interface {
	// GetParameter reads the current value of a named parameter.
	GetParameter(kind string) (int64, errkind.Kind)
	// SetParameter writes a new value to a named parameter.
	SetParameter(kind string, value int64) errkind.Kind
}

// ParameterChild exposes the value of one named parameter as an ASCII
// line terminated by CR-LF (§4.6). Reads are one-shot: any offset beyond
// zero reports Empty, matching the original's "re-read from the top"
// contract for a live, possibly-changing value.
type ParameterChild struct {
	Base
	iface ExternalInterface
	kind  string
}

// NewParameterChild constructs a child bound to kind on iface.
func NewParameterChild(name string, iface ExternalInterface, kind string) *ParameterChild {
	return &ParameterChild{
		Base:  NewBase(name, 0, Read|Write),
		iface: iface,
		kind:  kind,
	}
}

// Length reports the serialised line's length for FieldData.
func (p *ParameterChild) Length(field Field) (uint64, errkind.Kind) {
	if field != FieldData {
		return p.Base.Length(field)
	}
	value, kind := p.iface.GetParameter(p.kind)
	if kind != errkind.Ok {
		return 0, kind
	}
	return uint64(len(formatParameterLine(value))), errkind.Ok
}

// Read serialises the current value as decimal followed by CR-LF. Reads at
// offset > 0 return Empty (one-shot semantics).
func (p *ParameterChild) Read(field Field, offset uint64, buf []byte) (int, errkind.Kind) {
	if field != FieldData {
		return p.Base.Read(field, offset, buf)
	}
	if offset != 0 {
		return 0, errkind.Empty
	}
	value, kind := p.iface.GetParameter(p.kind)
	if kind != errkind.Ok {
		return 0, kind
	}
	line := formatParameterLine(value)
	if len(line) > len(buf) {
		return 0, errkind.Full
	}
	return copy(buf, line), errkind.Ok
}

// Write parses a leading signed integer (base 10, or base 16 via a "0x"
// prefix) and calls SetParameter. Writes with no numeric prefix are
// silently accepted (so `echo` pipelines do not break), reporting
// bytes_written = buffer_length.
func (p *ParameterChild) Write(field Field, offset uint64, buf []byte) (int, errkind.Kind) {
	if field != FieldData {
		return p.Base.Write(field, offset, buf)
	}
	value, ok := parseLeadingInt(buf)
	if !ok {
		return len(buf), errkind.Ok
	}
	if kind := p.iface.SetParameter(p.kind, value); kind != errkind.Ok {
		return 0, kind
	}
	return len(buf), errkind.Ok
}

func formatParameterLine(value int64) string {
	return strconv.FormatInt(value, 10) + "\r\n"
}

// parseLeadingInt parses a signed integer at the start of buf, auto-
// detecting base 16 via a "0x"/"0X" prefix (after an optional sign).
func parseLeadingInt(buf []byte) (int64, bool) {
	s := strings.TrimSpace(string(buf))
	if s == "" {
		return 0, false
	}
	neg := false
	if s[0] == '+' || s[0] == '-' {
		neg = s[0] == '-'
		s = s[1:]
	}
	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		base = 16
		s = s[2:]
	}
	end := 0
	for end < len(s) && isDigitForBase(s[end], base) {
		end++
	}
	if end == 0 {
		return 0, false
	}
	v, err := strconv.ParseInt(s[:end], base, 64)
	if err != nil {
		return 0, false
	}
	if neg {
		v = -v
	}
	return v, true
}

func isDigitForBase(c byte, base int) bool {
	switch base {
	case 16:
		return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
	default:
		return c >= '0' && c <= '9'
	}
}

// Device is a device-parameter node: a fixed tuple of ParameterChild
// children bound to one ExternalInterface, enumerable like a directory but
// never dynamically extensible (Create always fails Invalid).
type Device struct {
	Base
	children []*ParameterChild
}

// NewDevice constructs a device node exposing one ParameterChild per kind.
func NewDevice(name string, iface ExternalInterface, kinds []string) *Device {
	d := &Device{Base: NewBase(name, 0, Read|Write)}
	for _, k := range kinds {
		d.children = append(d.children, NewParameterChild(k, iface, k))
	}
	return d
}

func (d *Device) Head() (*Cursor, errkind.Kind) {
	if len(d.children) == 0 {
		return nil, errkind.Entry
	}
	return &Cursor{Node: d.children[0], parent: d, index: 0, handle: d.Handle()}, errkind.Ok
}

func (d *Device) Fetch(current *Cursor) (*Cursor, errkind.Kind) {
	next := current.index + 1
	if next >= len(d.children) {
		return nil, errkind.Entry
	}
	return &Cursor{Node: d.children[next], parent: d, index: next, handle: d.Handle()}, errkind.Ok
}

// Enter attaches the device and every one of its fixed children, so
// lookups through the handle's ownership tree work uniformly.
func (d *Device) Enter(handle *Handle, parent Node) errkind.Kind {
	if err := d.Base.Enter(handle, parent); err != errkind.Ok {
		return err
	}
	for _, c := range d.children {
		if err := c.Enter(handle, d); err != errkind.Ok {
			return err
		}
	}
	return errkind.Ok
}

func (d *Device) String() string {
	return fmt.Sprintf("device(%s)", d.Name())
}
