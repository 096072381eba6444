package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashStrings(t *testing.T) {
	t.Run("Deterministic", func(t *testing.T) {
		assert.Equal(t, HashStrings("2026-06-01"), HashStrings("2026-06-01"), "same input must hash identically")
	})

	t.Run("Part Boundaries Matter", func(t *testing.T) {
		assert.NotEqual(t, HashStrings("ab", "c"), HashStrings("a", "bc"), "parts must not collapse into one string")
	})

	t.Run("Hex Encoded", func(t *testing.T) {
		assert.Len(t, HashStrings("x"), 64)
	})
}
