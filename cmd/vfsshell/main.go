// Command vfsshell runs the interactive VFS shell against an in-memory
// filesystem, attaching every built-in command under /bin and a sample
// thermostat device under /dev before handing the terminal to the REPL.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/stxent/vfsshell/builtins"
	"github.com/stxent/vfsshell/clock"
	"github.com/stxent/vfsshell/device"
	"github.com/stxent/vfsshell/env"
	"github.com/stxent/vfsshell/errkind"
	"github.com/stxent/vfsshell/shell"
	"github.com/stxent/vfsshell/terminal"
	"github.com/stxent/vfsshell/vfs"
)

var (
	scriptPath string
	debug      bool
	echo       bool
)

func main() {
	root := &cobra.Command{
		Use:   "vfsshell",
		Short: "Interactive shell over an in-memory virtual filesystem",
		RunE:  run,
	}
	root.PersistentFlags().StringVar(&scriptPath, "script", "", "run commands from a host file instead of the console")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable shell debug logging (sets DEBUG=1)")
	root.PersistentFlags().BoolVar(&echo, "echo", false, "echo typed input back to the terminal (sets ECHO=1)")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "vfsshell:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	log := logrus.New()
	if debug {
		log.SetLevel(logrus.DebugLevel)
	}

	ctx := &shell.Context{
		Env:   env.New(),
		FS:    vfs.NewHandle(),
		Clock: clock.NewReal(),
		Log:   log,
	}

	ini, kind := shell.NewInitializer(ctx, echo)
	if kind != errkind.Ok {
		return fmt.Errorf("initializer: %s", kind)
	}
	defer ini.Close()
	if debug {
		ctx.Env.Set("DEBUG", "1")
	}

	if err := attachBuiltins(ini); err != nil {
		return err
	}
	if err := attachDevices(ctx); err != nil {
		return err
	}

	term, teardown, err := newTerminal()
	if err != nil {
		return err
	}
	defer teardown()

	repl := shell.NewREPL(ctx, ini.Registry(), term, scriptPath != "")
	defer repl.Close()

	if scriptPath != "" {
		data, err := os.ReadFile(scriptPath)
		if err != nil {
			return fmt.Errorf("reading script: %w", err)
		}
		for _, b := range data {
			repl.Feed(b)
		}
		repl.Feed('\r')
		return nil
	}

	repl.Run()
	return nil
}

// attachBuiltins registers every command in the built-in table under /bin.
func attachBuiltins(ini *shell.Initializer) error {
	commands := map[string]shell.Runner{
		"cd":      builtins.NewCd(),
		"ls":      builtins.NewLs(),
		"cat":     builtins.NewCat(),
		"hexdump": builtins.NewHexdump(),
		"cp":      builtins.NewCp(),
		"dd":      builtins.NewDd(),
		"rm":      builtins.NewRm(),
		"mkdir":   builtins.NewMkdir(),
		"chmod":   builtins.NewChmod(),
		"cksum":   builtins.NewCksum(),
		"echo":    builtins.NewEcho(),
		"env":     builtins.NewEnv(),
		"getenv":  builtins.NewGetenv(),
		"setenv":  builtins.NewSetenv(),
		"date":    builtins.NewDate(),
		"time":    builtins.NewTime(),
		"exit":    builtins.NewExit(),
		"sh":      builtins.NewSh(),
		"mount":   builtins.NewMount(),
		"man":     builtins.NewMan(),
	}
	for name, runner := range commands {
		if kind := ini.Attach(name, runner); kind != errkind.Ok {
			return fmt.Errorf("attaching %s: %s", name, kind)
		}
	}
	return nil
}

// attachDevices populates /dev with the sample external interface this
// distribution ships: a thermostat exposing temperature/setpoint.
func attachDevices(ctx *shell.Context) error {
	dev, kind := vfs.OpenNode(ctx.FS, "/", "/dev")
	if kind != errkind.Ok {
		return fmt.Errorf("resolving /dev: %s", kind)
	}
	thermostat := device.NewThermostat().Node("thermostat")
	if _, kind := dev.(*vfs.Directory).Create([]vfs.Descriptor{
		{Field: vfs.FieldObject, Object: thermostat},
	}); kind != errkind.Ok {
		return fmt.Errorf("attaching thermostat: %s", kind)
	}
	return nil
}

// newTerminal wires the console transport, returning a teardown that
// restores the original terminal mode.
func newTerminal() (terminal.Terminal, func(), error) {
	console, err := terminal.NewConsole()
	if err != nil {
		return nil, nil, fmt.Errorf("opening console: %w", err)
	}
	return console, func() { _ = console.Restore() }, nil
}
