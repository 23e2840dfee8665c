package mainwindow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSeconds(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "25:00", FormatSeconds(25*60))
	assert.Equal(t, "05:00", FormatSeconds(300))
	assert.Equal(t, "00:59", FormatSeconds(59))
	assert.Equal(t, "00:00", FormatSeconds(0))
	assert.Equal(t, "00:00", FormatSeconds(-7))
	assert.Equal(t, "100:30", FormatSeconds(100*60+30))
}

func TestParsePositiveInt(t *testing.T) {
	t.Parallel()

	value, ok := parsePositiveInt("25")
	assert.True(t, ok)
	assert.Equal(t, 25, value)

	for _, input := range []string{"", "abc", "0", "-5", "2.5"} {
		_, ok := parsePositiveInt(input)
		assert.Falsef(t, ok, "input %q", input)
	}
}
