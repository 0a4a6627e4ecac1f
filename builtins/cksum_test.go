package builtins

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stxent/vfsshell/errkind"
	"github.com/stxent/vfsshell/terminal"
)

func TestCrc32ChecksumOfSixtyFourKilobytesOfA(t *testing.T) {
	data := bytes.Repeat([]byte{'A'}, 65536)
	assert.Equal(t, uint32(0xA09B0680), crc32Checksum(data))
}

func TestCksumPrintsHexDigitsAndName(t *testing.T) {
	ctx, _ := newTestContext(t)
	mustCreateFile(t, ctx, "/file", bytes.Repeat([]byte{'A'}, 16))

	term := terminal.NewMock()
	kind := run(ctx, NewCksum(), term, []string{"/file"})
	require.Equal(t, errkind.Ok, kind)
	assert.Equal(t, "3D4A83EE  /file\r\n", string(term.Output))
}
