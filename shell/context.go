// Package shell implements the command pipeline that drives the VFS: the
// evaluator that resolves and dispatches a command line (§4.9), the REPL
// that reads and tokenises terminal input (§4.10), the initializer that
// populates /bin and /dev (§4.11), and the executable-node header format
// built-ins are registered under (§6).
package shell

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/stxent/vfsshell/clock"
	"github.com/stxent/vfsshell/env"
	"github.com/stxent/vfsshell/vfs"
)

// Context bundles the resources every built-in and the evaluator inherit
// from their parent shell (§4.12): the shared environment, the VFS handle,
// the wall clock, the runner registry (so nested evaluators — `time`,
// `sh` — can resolve commands the same way the top-level REPL does), and
// a shared exit flag the `exit` built-in raises to terminate its
// enclosing REPL(s), standing in for "raise a Terminate signal to
// parent" (§6) without a parent object reference to call back through.
type Context struct {
	Env      *env.Environment
	FS       *vfs.Handle
	Clock    clock.Provider
	Log      *logrus.Logger
	Registry *Registry
	Exit     *atomic.Bool
}

// Debugf logs at Debug level when the DEBUG environment variable is "1",
// gating shell-internal tracing behind the same switch scripts use (§4.11),
// the way the teacher's fs/log wraps logrus rather than calling it bare.
func (c *Context) Debugf(format string, args ...interface{}) {
	if c.Env.Get("DEBUG").Value() != "1" {
		return
	}
	if c.Log != nil {
		c.Log.Debugf(format, args...)
	}
}

func (c *Context) cwd() string {
	return c.Env.Get("PWD").Value()
}
