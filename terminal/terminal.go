// Package terminal implements the byte-oriented terminal abstraction the
// shell reads lines from and writes output to (§4.1), the CSI escape
// sequence parser (§4.2), the bounded line editor (§4.3), and the proxy
// terminal used for redirection (§4.8).
package terminal

// Format selects how Insert renders an integer.
type Format int

const (
	// Decimal renders base-10.
	Decimal Format = iota
	// Hex renders lower-case base-16, no "0x" prefix.
	Hex
)

// SerialInput is delivered to subscribers whenever new bytes arrive.
type SerialInput struct {
	Length int
}

// Listener receives serial-input notifications. Implementations must do
// bounded work (typically: post to a semaphore) since dispatch happens
// synchronously on the input driver's goroutine (§5).
type Listener interface {
	OnSerialInput(evt SerialInput)
}

// Terminal is the byte-level I/O and formatted-insertion contract every
// shell surface (console, proxy, mock) implements.
type Terminal interface {
	// Read is non-blocking; it returns 0, nil when no bytes are available.
	Read(buf []byte) (int, error)
	// Write writes all of buf, looping internally over a partial
	// underlying sink.
	Write(buf []byte) (int, error)

	Subscribe(l Listener)
	Unsubscribe(l Listener)

	SetWidth(w int)
	SetFill(c byte)
	SetFormat(f Format)

	InsertInt(v int64)
	InsertEOL()
	InsertString(s string)
}

// formatState is the embeddable formatting state shared by every concrete
// Terminal: current width, fill character and number format.
type formatState struct {
	width  int
	fill   byte
	format Format
}

func newFormatState() formatState {
	return formatState{fill: ' '}
}

func (f *formatState) SetWidth(w int)      { f.width = w }
func (f *formatState) SetFill(c byte)      { f.fill = c }
func (f *formatState) SetFormat(fm Format) { f.format = fm }

// render pads v to the configured width using the configured fill and
// format, matching the C++ original's stream-manipulator style insertion.
func (f *formatState) render(v int64) string {
	var digits string
	neg := v < 0
	u := uint64(v)
	if neg {
		u = uint64(-v)
	}
	switch f.format {
	case Hex:
		digits = formatUint(u, 16)
	default:
		digits = formatUint(u, 10)
	}
	if neg {
		digits = "-" + digits
	}
	for len(digits) < f.width {
		digits = string(f.fill) + digits
	}
	return digits
}

const hexDigits = "0123456789abcdef"

func formatUint(u uint64, base uint64) string {
	if u == 0 {
		return "0"
	}
	var buf [64]byte
	i := len(buf)
	for u > 0 {
		i--
		buf[i] = hexDigits[u%base]
		u /= base
	}
	return string(buf[i:])
}

// subscribers is an embeddable ordered, duplicate-free listener registry.
// Mutation (Subscribe/Unsubscribe) must only happen off the dispatch path,
// per §5's "no explicit lock" ordering rule; this type enforces none and
// relies on that discipline.
type subscribers struct {
	listeners []Listener
}

func (s *subscribers) Subscribe(l Listener) {
	for _, existing := range s.listeners {
		if existing == l {
			return
		}
	}
	s.listeners = append(s.listeners, l)
}

func (s *subscribers) Unsubscribe(l Listener) {
	for i, existing := range s.listeners {
		if existing == l {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return
		}
	}
}

func (s *subscribers) notify(evt SerialInput) {
	for _, l := range s.listeners {
		l.OnSerialInput(evt)
	}
}
