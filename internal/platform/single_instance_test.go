package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingleInstanceGuard(t *testing.T) {
	guard, err := AcquireSingleInstance("pomodoro-guard-test")
	require.NoError(t, err)

	_, err = AcquireSingleInstance("pomodoro-guard-test")
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	require.NoError(t, guard.Release())

	reacquired, err := AcquireSingleInstance("pomodoro-guard-test")
	require.NoError(t, err)
	require.NoError(t, reacquired.Release())
}

func TestPortFromNameIsStable(t *testing.T) {
	t.Parallel()

	first := portFromName("Pomodoro")
	second := portFromName("Pomodoro")
	assert.Equal(t, first, second)
	assert.GreaterOrEqual(t, first, 20000)
	assert.LessOrEqual(t, first, 39999)
}
