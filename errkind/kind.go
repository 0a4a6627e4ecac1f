// Package errkind defines the closed set of result codes shared by the VFS
// and the shell built on top of it. Every fallible operation in this module
// returns a Kind instead of an arbitrary error, so that the shell can print
// a stable, symbolic diagnostic regardless of which layer produced it.
package errkind

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind is a closed enumeration of result codes. The zero value is Ok.
type Kind int

// The full set of result codes. No other values are ever produced by this
// module; Kind exists so callers can switch on it exhaustively.
const (
	Ok Kind = iota
	Error
	Memory
	Access
	Address
	Busy
	Device
	Idle
	Interface
	Invalid
	Timeout
	Value
	Entry
	Exist
	Empty
	Full
)

var names = map[Kind]string{
	Ok:        "Ok",
	Error:     "Error",
	Memory:    "Memory",
	Access:    "Access",
	Address:   "Address",
	Busy:      "Busy",
	Device:    "Device",
	Idle:      "Idle",
	Interface: "Interface",
	Invalid:   "Invalid",
	Timeout:   "Timeout",
	Value:     "Value",
	Entry:     "Entry",
	Exist:     "Exist",
	Empty:     "Empty",
	Full:      "Full",
}

var fromName = func() map[string]Kind {
	m := make(map[string]Kind, len(names))
	for k, v := range names {
		m[v] = k
	}
	return m
}()

// String renders the symbolic name, falling back to "Unknown(N)" for a value
// outside the closed set.
func (k Kind) String() string {
	if name, ok := names[k]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", int(k))
}

// Error satisfies the error interface so a Kind can be returned anywhere a
// plain error is expected (e.g. from a ForeignFS adapter).
func (k Kind) Error() string {
	return k.String()
}

// Symbol renders the diagnostic form the shell prints after a failed
// command: the symbolic name if known, otherwise the bare numeric value
// (§4.10 of the design: "<kind> is the symbolic name if known else its
// numeric value").
func (k Kind) Symbol() string {
	if name, ok := names[k]; ok {
		return name
	}
	return strconv.Itoa(int(k))
}

// Set implements pflag.Value so a Kind can be used as a command-line flag
// (e.g. --expect-error in test harnesses).
func (k *Kind) Set(s string) error {
	if v, ok := fromName[s]; ok {
		*k = v
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("unknown error kind %q", s)
	}
	*k = Kind(n)
	return nil
}

// Type implements pflag.Value.
func (k Kind) Type() string {
	return "Kind"
}

// UnmarshalJSON implements json.Unmarshaler, accepting either the symbolic
// name or the numeric value.
func (k *Kind) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		return k.Set(s)
	}
	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*k = Kind(n)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// IsStructural reports whether k belongs to the "structural" error class
// (§7): never retried, surfaced verbatim to the invoking command.
func (k Kind) IsStructural() bool {
	switch k {
	case Invalid, Value, Entry, Exist:
		return true
	default:
		return false
	}
}

// IsResource reports whether k belongs to the "resource exhaustion" class
// (§7): aborts the current operation without touching already-committed
// state.
func (k Kind) IsResource() bool {
	switch k {
	case Memory, Full, Busy:
		return true
	default:
		return false
	}
}
