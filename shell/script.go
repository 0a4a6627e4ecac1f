package shell

import (
	"bytes"
	"encoding/binary"
	"sync"

	"github.com/stxent/vfsshell/errkind"
	"github.com/stxent/vfsshell/terminal"
)

const (
	headerMagicLen = 4
	runnerIDLen    = 8
	// HeaderLen is the full executable-node header: 4-byte magic followed
	// by an 8-byte (pointer-width on a 64-bit host) opaque runner handle
	// (§6).
	HeaderLen = headerMagicLen + runnerIDLen
)

var binaryMagic = []byte{0x7F, 'B', 'I', 'N'}
var textMagic = []byte{'#', '!'}

// IsBinaryHeader reports whether b starts with the executable-node magic.
func IsBinaryHeader(b []byte) bool {
	return len(b) >= headerMagicLen && bytes.Equal(b[:headerMagicLen], binaryMagic)
}

// IsTextHeader reports whether b starts with the text-script marker `#!`.
// Interpreted scripts dispatched this way are out of scope (§9 Open
// Questions): only `sh` given an explicit file argument reads a script,
// line by line, itself.
func IsTextHeader(b []byte) bool {
	return len(b) >= len(textMagic) && bytes.Equal(b[:len(textMagic)], textMagic)
}

// EncodeHeader builds the content of an executable node bound to runner id.
func EncodeHeader(id uint64) []byte {
	buf := make([]byte, HeaderLen)
	copy(buf, binaryMagic)
	binary.LittleEndian.PutUint64(buf[headerMagicLen:], id)
	return buf
}

// DecodeRunnerID extracts the runner handle from a full-length header.
func DecodeRunnerID(b []byte) uint64 {
	return binary.LittleEndian.Uint64(b[headerMagicLen : headerMagicLen+runnerIDLen])
}

// Command is the instantiated built-in (§4.12): it names itself, runs to
// completion, and implements Listener so it can observe Ctrl-C relayed
// through its proxy terminal for cooperative cancellation (§9).
type Command interface {
	Name() string
	Run() errkind.Kind
	terminal.Listener
}

// Interactive is implemented by a Command that drives its own terminal's
// Read loop directly, such as `sh` run with no argument to start a nested
// prompting session. The evaluator must run such a command synchronously
// rather than alongside its own input pump (§5): both would otherwise
// race to read the same underlying terminal.
type Interactive interface {
	Interactive() bool
}

// Runner is the closure-like object the initializer registers under /bin:
// given the calling context, a (possibly redirected) terminal, and the
// significant argument slice, it builds a Command (§4.9, §4.12).
type Runner interface {
	New(ctx *Context, term terminal.Terminal, args []string) Command
}

// RunnerFunc adapts a plain function to Runner.
type RunnerFunc func(ctx *Context, term terminal.Terminal, args []string) Command

// New implements Runner.
func (f RunnerFunc) New(ctx *Context, term terminal.Terminal, args []string) Command {
	return f(ctx, term, args)
}

// Registry maps the opaque handle stored in an executable node's header
// back to the Runner it names — standing in for the original firmware's
// pointer arithmetic in a garbage-collected runtime (§6, §4.11).
type Registry struct {
	mu      sync.Mutex
	runners map[uint64]Runner
	next    uint64
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	return &Registry{runners: make(map[uint64]Runner)}
}

// Register allocates a fresh handle for runner and returns it.
func (r *Registry) Register(runner Runner) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	id := r.next
	r.runners[id] = runner
	return id
}

// Lookup resolves a handle previously returned by Register.
func (r *Registry) Lookup(id uint64) (Runner, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	runner, ok := r.runners[id]
	return runner, ok
}
