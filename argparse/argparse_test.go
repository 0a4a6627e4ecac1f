package argparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFlagAndOption(t *testing.T) {
	var recursive bool
	var bs *string

	descriptors := []Descriptor{
		{Name: "-r", Info: "recurse", Count: 0, Setter: func(v *string) { recursive = true }},
		{Name: "--bs", Metavar: "N", Info: "block size", Count: 1, Setter: func(v *string) { bs = v }},
	}

	kind := Parse([]string{"-r", "--bs", "512"}, descriptors)
	assert.Equal(t, 0, int(kind))
	assert.True(t, recursive)
	assert.Equal(t, "512", *bs)
}

func TestParseOptionMissingValueIsSkipped(t *testing.T) {
	called := false
	descriptors := []Descriptor{
		{Name: "--bs", Count: 1, Setter: func(v *string) { called = true }},
	}
	Parse([]string{"--bs"}, descriptors)
	assert.False(t, called)
}

func TestParsePositionalCollectsNonOptionTokens(t *testing.T) {
	var got []string
	descriptors := []Descriptor{
		{Name: "-l", Count: 0, Setter: func(v *string) {}},
		{Name: "", Setter: func(v *string) { got = append(got, *v) }},
	}
	Parse([]string{"-l", "a", "b"}, descriptors)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestInvokeCallsBackForOperands(t *testing.T) {
	var seen []bool
	var operands []string
	descriptors := []Descriptor{
		{Name: "-r", Count: 0, Setter: func(v *string) { seen = append(seen, true) }},
	}
	Invoke([]string{"-r", "a", "b"}, descriptors, func(tok string) {
		operands = append(operands, tok)
	})
	assert.Equal(t, []string{"a", "b"}, operands)
	assert.Len(t, seen, 1)
}

func TestHasHelp(t *testing.T) {
	assert.True(t, HasHelp([]string{"cat", "--help"}))
	assert.False(t, HasHelp([]string{"cat", "file"}))
}
