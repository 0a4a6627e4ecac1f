// Package argparse implements the declarative option/positional dispatch
// every built-in command parses its arguments through, plus its help
// formatter (§4.4).
package argparse

import (
	"github.com/stxent/vfsshell/errkind"
	"github.com/stxent/vfsshell/terminal"
)

// Descriptor declares one option (Name != "") or the single positional
// descriptor (Name == ""). Count is 0 (a flag) or 1 (an option taking the
// next token as its value). Setter receives that value, or nil for a
// Count-0 option.
type Descriptor struct {
	Name    string
	Metavar string
	Info    string
	Count   int
	Setter  func(value *string)
}

// Parse walks tokens left to right. Each token matching an option
// descriptor by exact name invokes that option's setter with the next
// Count tokens (0 or 1) and skips ahead; any other token invokes the
// positional descriptor, if one is declared. A Count-1 option missing its
// trailing value is silently skipped (never invoked).
func Parse(tokens []string, descriptors []Descriptor) errkind.Kind {
	positional := findPositional(descriptors)

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if d, ok := findNamed(tok, descriptors); ok {
			if d.Count >= 1 {
				if i+1 >= len(tokens) {
					continue
				}
				i++
				val := tokens[i]
				d.Setter(&val)
			} else {
				d.Setter(nil)
			}
			continue
		}
		if positional != nil {
			val := tok
			positional.Setter(&val)
		}
	}
	return errkind.Ok
}

// Invoke performs the same left-to-right traversal as Parse, but calls
// callback for every token that is not an option name or an option's
// value, instead of routing through a positional descriptor. This is what
// multi-target commands (rm, ls, chmod, cp) use to collect their operand
// list.
func Invoke(tokens []string, descriptors []Descriptor, callback func(token string)) errkind.Kind {
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if d, ok := findNamed(tok, descriptors); ok {
			if d.Count >= 1 {
				if i+1 >= len(tokens) {
					continue
				}
				i++
				val := tokens[i]
				d.Setter(&val)
			} else {
				d.Setter(nil)
			}
			continue
		}
		callback(tok)
	}
	return errkind.Ok
}

// HasHelp reports whether tokens contains "--help", the flag every
// built-in must recognise.
func HasHelp(tokens []string) bool {
	for _, tok := range tokens {
		if tok == "--help" {
			return true
		}
	}
	return false
}

// Help prints "Usage: <name> [OPTION]... [ARGS]" followed by one line per
// descriptor with its metavar and info.
func Help(term terminal.Terminal, name string, descriptors []Descriptor) {
	term.InsertString("Usage: " + name + " [OPTION]... [ARGS]")
	term.InsertEOL()
	for _, d := range descriptors {
		term.InsertString("  " + describeOne(d))
		term.InsertEOL()
	}
}

func describeOne(d Descriptor) string {
	if d.Name == "" {
		if d.Metavar == "" {
			return d.Info
		}
		return d.Metavar + "\t" + d.Info
	}
	label := d.Name
	if d.Metavar != "" {
		label += " " + d.Metavar
	}
	return label + "\t" + d.Info
}

func findNamed(tok string, descriptors []Descriptor) (Descriptor, bool) {
	for _, d := range descriptors {
		if d.Name != "" && d.Name == tok {
			return d, true
		}
	}
	return Descriptor{}, false
}

func findPositional(descriptors []Descriptor) *Descriptor {
	for i := range descriptors {
		if descriptors[i].Name == "" {
			return &descriptors[i]
		}
	}
	return nil
}
