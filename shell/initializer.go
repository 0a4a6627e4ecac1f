package shell

import (
	"sync/atomic"

	"github.com/stxent/vfsshell/errkind"
	"github.com/stxent/vfsshell/vfs"
)

// Initializer populates the environment with its defaults, creates /bin
// and /dev, and owns the registry of runners attached under /bin (§4.11).
type Initializer struct {
	ctx      *Context
	registry *Registry
	bin      *vfs.Directory
	attached []string
}

// NewInitializer sets PATH=/bin, PWD=/, DEBUG=0, ECHO={0|1}, SHELL=sh on
// ctx.Env, creates /bin and /dev under the VFS root, and returns an
// Initializer ready to attach built-ins.
func NewInitializer(ctx *Context, echo bool) (*Initializer, errkind.Kind) {
	ctx.Env.Set("PATH", "/bin")
	ctx.Env.Set("PWD", "/")
	ctx.Env.Set("DEBUG", "0")
	if echo {
		ctx.Env.Set("ECHO", "1")
	} else {
		ctx.Env.Set("ECHO", "0")
	}
	ctx.Env.Set("SHELL", "sh")

	if ctx.Exit == nil {
		ctx.Exit = &atomic.Bool{}
	}

	root := ctx.FS.RootNode()
	binNode, kind := root.Create([]vfs.Descriptor{{Field: vfs.FieldName, Bytes: []byte("bin")}})
	if kind != errkind.Ok {
		return nil, kind
	}
	if _, kind := root.Create([]vfs.Descriptor{{Field: vfs.FieldName, Bytes: []byte("dev")}}); kind != errkind.Ok {
		return nil, kind
	}

	registry := NewRegistry()
	ctx.Registry = registry
	return &Initializer{ctx: ctx, registry: registry, bin: binNode.(*vfs.Directory)}, errkind.Ok
}

// Registry exposes the runner registry the evaluator resolves executable
// headers against.
func (ini *Initializer) Registry() *Registry {
	return ini.registry
}

// Attach registers runner under /bin as name: an executable data node
// whose content is the 4-byte magic followed by the runner's registry
// handle (§4.11's attach<Cmd>).
func (ini *Initializer) Attach(name string, runner Runner) errkind.Kind {
	id := ini.registry.Register(runner)
	_, kind := ini.bin.Create([]vfs.Descriptor{
		{Field: vfs.FieldName, Bytes: []byte(name)},
		{Field: vfs.FieldData, Bytes: EncodeHeader(id)},
	})
	if kind != errkind.Ok {
		return kind
	}
	ini.attached = append(ini.attached, name)
	return errkind.Ok
}

// Close unlinks every registered command node from /bin (§4.11: "on drop
// it unlinks every registered command node ... and destroys the
// runners").
func (ini *Initializer) Close() {
	for _, name := range ini.attached {
		ini.unlink(name)
	}
	ini.attached = nil

	ini.registry.mu.Lock()
	ini.registry.runners = make(map[uint64]Runner)
	ini.registry.mu.Unlock()
}

func (ini *Initializer) unlink(name string) {
	cur, kind := ini.bin.Head()
	for kind == errkind.Ok {
		if cur.Node.Name() == name {
			_ = ini.bin.Remove(cur.Node)
			return
		}
		cur, kind = ini.bin.Fetch(cur)
	}
}
