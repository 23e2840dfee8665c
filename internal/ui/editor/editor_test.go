package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoro/internal/core/model"
)

func TestParseMinutes(t *testing.T) {
	t.Parallel()

	value, err := parseMinutes("work time", "25")
	require.NoError(t, err)
	assert.Equal(t, 25, value)

	for _, input := range []string{"", "zero", "0", "-1", "1.5"} {
		_, err := parseMinutes("work time", input)

		var validationErr *model.ValidationError
		require.ErrorAsf(t, err, &validationErr, "input %q", input)
		assert.Equal(t, "work time", validationErr.Field)
	}
}
