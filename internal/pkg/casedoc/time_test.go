package casedoc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEventTime(t *testing.T) {
	t.Run("Millisecond Format", func(t *testing.T) {
		ts, err := ParseEventTime("2026-05-01T10:00:00.000Z")

		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC), ts)
	})

	t.Run("RFC3339 With Offset", func(t *testing.T) {
		ts, err := ParseEventTime("2026-05-01T12:00:00+02:00")

		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC), ts, "offsets are normalized to UTC")
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := ParseEventTime("yesterday")

		assert.Error(t, err)
	})
}

func TestParseEventDate(t *testing.T) {
	ts, err := ParseEventDate("2026-06-01")

	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), ts)

	_, err = ParseEventDate("01.06.2026")
	assert.Error(t, err)
}
