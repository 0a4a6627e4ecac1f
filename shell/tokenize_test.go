package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stxent/vfsshell/errkind"
)

func TestTokenizeQuotedSpan(t *testing.T) {
	tokens, kind := Tokenize(`echo "hello world" foo`)
	assert.Equal(t, errkind.Ok, kind)
	assert.Equal(t, []string{"echo", "hello world", "foo"}, tokens)
}

func TestTokenizeEmptyLine(t *testing.T) {
	_, kind := Tokenize("   ")
	assert.Equal(t, errkind.Empty, kind)
}

func TestTokenizeTrimsTrailingControl(t *testing.T) {
	tokens, kind := Tokenize("ls\r\n")
	assert.Equal(t, errkind.Ok, kind)
	assert.Equal(t, []string{"ls"}, tokens)
}

func TestTokenizeOverflow(t *testing.T) {
	line := ""
	for i := 0; i < 17; i++ {
		line += "a "
	}
	_, kind := Tokenize(line)
	assert.Equal(t, errkind.Full, kind)
}
