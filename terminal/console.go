package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Console is the concrete terminal the process entrypoint drives stdin and
// stdout through. The spec scopes concrete transports out of the core; this
// is the one illustrative implementation needed to make the shell runnable
// from a real process, grounded on the teacher's use of golang.org/x/term
// for raw-mode console I/O.
type Console struct {
	formatState
	subscribers

	in       io.Reader
	out      io.Writer
	fd       int
	oldState *term.State
}

// NewConsole wraps the process's stdin/stdout. If stdin is a terminal it is
// put into raw mode so the line editor receives bytes one at a time instead
// of line-buffered input; Restore must be called on shutdown.
func NewConsole() (*Console, error) {
	c := &Console{
		formatState: newFormatState(),
		in:          os.Stdin,
		out:         os.Stdout,
		fd:          int(os.Stdin.Fd()),
	}
	if term.IsTerminal(c.fd) {
		state, err := term.MakeRaw(c.fd)
		if err != nil {
			return nil, err
		}
		c.oldState = state
	}
	return c, nil
}

// Restore reverts the terminal to its original mode.
func (c *Console) Restore() error {
	if c.oldState == nil {
		return nil
	}
	return term.Restore(c.fd, c.oldState)
}

// Read implements Terminal. A real console is blocking at the OS level;
// the shell only ever calls Read after its input-ready semaphore has been
// signalled (§5), so blocking here is safe and matches the non-blocking
// contract from the caller's point of view.
func (c *Console) Read(buf []byte) (int, error) {
	n, err := c.in.Read(buf)
	if err == io.EOF {
		return n, nil
	}
	if n > 0 {
		c.notify(SerialInput{Length: n})
	}
	return n, err
}

// Write implements Terminal, looping over any partial write from the
// underlying sink.
func (c *Console) Write(buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := c.out.Write(buf[total:])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// InsertInt implements Terminal.
func (c *Console) InsertInt(v int64) {
	_, _ = c.Write([]byte(c.render(v)))
}

// InsertEOL implements Terminal.
func (c *Console) InsertEOL() {
	_, _ = c.Write([]byte("\r\n"))
}

// InsertString implements Terminal.
func (c *Console) InsertString(s string) {
	_, _ = c.Write([]byte(s))
}
