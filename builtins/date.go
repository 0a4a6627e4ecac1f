package builtins

import (
	"time"

	"github.com/stxent/vfsshell/argparse"
	"github.com/stxent/vfsshell/errkind"
	"github.com/stxent/vfsshell/shell"
	"github.com/stxent/vfsshell/terminal"
)

const dateLayout = "15:04:05 02.01.2006"

type dateCommand struct{ base }

// NewDate implements `date [-s "HH:MM:SS DD.MM.YYYY"] [-a …]` (§6). `-a`
// (the alarm sub-mode) is parsed but left a no-op: the original arms a
// hardware alarm interrupt this core has no peripheral for
// (SPEC_FULL.md §3).
func NewDate() shell.Runner {
	return shell.RunnerFunc(func(ctx *shell.Context, term terminal.Terminal, args []string) shell.Command {
		return &dateCommand{base: newBase("date", ctx, term, args)}
	})
}

func dateDescriptors(setTo, alarm *string) []argparse.Descriptor {
	return []argparse.Descriptor{
		{Name: "-s", Metavar: "TIME", Count: 1, Info: `set the current time, e.g. "15:04:05 02.01.2006"`, Setter: func(v *string) {
			if v != nil {
				*setTo = *v
			}
		}},
		{Name: "-a", Metavar: "SPEC", Count: 1, Info: "alarm (accepted, no hardware alarm in this core)", Setter: func(v *string) {
			if v != nil {
				*alarm = *v
			}
		}},
	}
}

func (c *dateCommand) Run() errkind.Kind {
	if argparse.HasHelp(c.args) {
		argparse.Help(c.term, c.Name(), dateDescriptors(new(string), new(string)))
		return errkind.Ok
	}

	var setTo, alarm string
	argparse.Parse(c.args, dateDescriptors(&setTo, &alarm))
	_ = alarm

	if setTo != "" {
		t, err := time.Parse(dateLayout, setTo)
		if err != nil {
			return c.fail(setTo, errkind.Value)
		}
		c.ctx.Clock.SetNow(t)
		return errkind.Ok
	}

	c.term.InsertString(c.ctx.Clock.Now().Format(dateLayout))
	c.term.InsertEOL()
	return errkind.Ok
}
