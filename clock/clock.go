// Package clock provides the wall-clock abstraction consumed by the shell
// and its built-ins. The original firmware keeps the real-time
// clock as a process-wide singleton with explicit init/teardown; here it is
// an explicitly constructed value handed to the initializer at program
// start, never a package-level global.
package clock

import "time"

// Provider is the wall-clock contract. Micros returns microseconds since
// the Unix epoch, matching the node timestamp field's unit (§3).
type Provider interface {
	Micros() int64
	Now() time.Time
	SetNow(t time.Time)
}

// Real is the system clock. SetNow is a best-effort adjustment used by the
// `date -s` built-in; it does not reach back into the OS clock, only this
// process's notion of an offset from it.
type Real struct {
	offset time.Duration
}

// NewReal constructs a Provider backed by time.Now.
func NewReal() *Real {
	return &Real{}
}

// Micros implements Provider.
func (c *Real) Micros() int64 {
	return c.Now().UnixMicro()
}

// Now implements Provider.
func (c *Real) Now() time.Time {
	return time.Now().Add(c.offset)
}

// SetNow implements Provider by recording the delta between the requested
// time and the system clock.
func (c *Real) SetNow(t time.Time) {
	c.offset = t.Sub(time.Now())
}

// Mock is a deterministic clock for tests, grounded on the original
// MockTimeProvider: time advances only when explicitly told to.
type Mock struct {
	now time.Time
}

// NewMock constructs a Mock fixed at t.
func NewMock(t time.Time) *Mock {
	return &Mock{now: t}
}

// Micros implements Provider.
func (c *Mock) Micros() int64 {
	return c.now.UnixMicro()
}

// Now implements Provider.
func (c *Mock) Now() time.Time {
	return c.now
}

// SetNow implements Provider.
func (c *Mock) SetNow(t time.Time) {
	c.now = t
}

// Advance moves the mock clock forward by d, useful for `time` built-in
// tests that assert on elapsed microseconds.
func (c *Mock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
