package builtins

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stxent/vfsshell/clock"
	"github.com/stxent/vfsshell/errkind"
	"github.com/stxent/vfsshell/terminal"
)

func TestDatePrintsCurrentTime(t *testing.T) {
	ctx, _ := newTestContext(t)
	ctx.Clock.(*clock.Mock).SetNow(time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC))

	term := terminal.NewMock()
	kind := run(ctx, NewDate(), term, nil)
	require.Equal(t, errkind.Ok, kind)
	assert.Equal(t, "00:00:00 01.01.1970\r\n", string(term.Output))
}

func TestDateSetsClock(t *testing.T) {
	ctx, _ := newTestContext(t)
	kind := run(ctx, NewDate(), terminal.NewMock(), []string{"-s", "12:30:00 05.03.2024"})
	require.Equal(t, errkind.Ok, kind)
	assert.Equal(t, time.Date(2024, 3, 5, 12, 30, 0, 0, time.UTC), ctx.Clock.Now().UTC())
}

func TestDateInvalidSetValueFails(t *testing.T) {
	ctx, _ := newTestContext(t)
	kind := run(ctx, NewDate(), terminal.NewMock(), []string{"-s", "garbage"})
	assert.Equal(t, errkind.Value, kind)
}
