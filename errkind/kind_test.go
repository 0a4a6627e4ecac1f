package errkind

import (
	"encoding/json"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Check Kind satisfies the pflag interface.
var _ pflag.Value = (*Kind)(nil)

// Check Kind satisfies the json.Unmarshaler interface.
var _ json.Unmarshaler = (*Kind)(nil)

func TestKindString(t *testing.T) {
	assert.Equal(t, "Ok", Ok.String())
	assert.Equal(t, "Entry", Entry.String())
	assert.Equal(t, "Unknown(99)", Kind(99).String())
}

func TestKindSymbol(t *testing.T) {
	assert.Equal(t, "Access", Access.Symbol())
	assert.Equal(t, "99", Kind(99).Symbol())
}

func TestKindSet(t *testing.T) {
	var k Kind

	require.NoError(t, k.Set("Busy"))
	assert.Equal(t, Busy, k)

	require.NoError(t, k.Set("7"))
	assert.Equal(t, Idle, k)

	assert.Error(t, k.Set("not-a-kind"))
}

func TestKindType(t *testing.T) {
	var k Kind
	assert.Equal(t, "Kind", k.Type())
}

func TestKindJSONRoundTrip(t *testing.T) {
	b, err := json.Marshal(Timeout)
	require.NoError(t, err)
	assert.Equal(t, `"Timeout"`, string(b))

	var k Kind
	require.NoError(t, json.Unmarshal(b, &k))
	assert.Equal(t, Timeout, k)

	require.NoError(t, json.Unmarshal([]byte(`14`), &k))
	assert.Equal(t, Empty, k)

	assert.Error(t, json.Unmarshal([]byte(`"bogus"`), &k))
}

func TestKindClasses(t *testing.T) {
	assert.True(t, Invalid.IsStructural())
	assert.False(t, Memory.IsStructural())

	assert.True(t, Full.IsResource())
	assert.False(t, Entry.IsResource())
}
