package chunker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectBoundary(t *testing.T) {
	t.Run("Should return the first boundary at or past the target under soft limit", func(t *testing.T) {
		assert.Equal(t, 12, SelectBoundary([]int{5, 12, 20}, 0, 10, SoftLimit))
		assert.Equal(t, 12, SelectBoundary([]int{5, 12, 20}, 0, 12, SoftLimit))
	})

	t.Run("Should settle for the last boundary when none lies past the target", func(t *testing.T) {
		assert.Equal(t, 20, SelectBoundary([]int{5, 12, 20}, 15, 25, SoftLimit))
	})

	t.Run("Should force the target when the last boundary does not advance", func(t *testing.T) {
		assert.Equal(t, 25, SelectBoundary([]int{5, 12, 20}, 20, 25, SoftLimit))
	})

	t.Run("Should return the largest boundary within the target under hard limit", func(t *testing.T) {
		assert.Equal(t, 12, SelectBoundary([]int{5, 12, 20}, 0, 15, HardLimit))
		assert.Equal(t, 20, SelectBoundary([]int{5, 12, 20}, 0, 20, HardLimit))
	})

	t.Run("Should force the target when no boundary fits under hard limit", func(t *testing.T) {
		assert.Equal(t, 4, SelectBoundary([]int{5, 12, 20}, 0, 4, HardLimit))
	})

	t.Run("Should force the target when the hard-limit candidate does not advance", func(t *testing.T) {
		assert.Equal(t, 15, SelectBoundary([]int{5, 12}, 12, 15, HardLimit))
	})

	t.Run("Should return the target unchanged for an empty boundary list", func(t *testing.T) {
		assert.Equal(t, 10, SelectBoundary(nil, 0, 10, SoftLimit))
		assert.Equal(t, 10, SelectBoundary(nil, 0, 10, HardLimit))
	})
}

func TestParseStrategy(t *testing.T) {
	t.Run("Should map user-facing names onto strategies", func(t *testing.T) {
		assert.Equal(t, HardLimit, ParseStrategy("hard"))
		assert.Equal(t, HardLimit, ParseStrategy(string(HardLimit)))
		assert.Equal(t, SoftLimit, ParseStrategy("soft"))
		assert.Equal(t, SoftLimit, ParseStrategy(""))
		assert.Equal(t, SoftLimit, ParseStrategy("anything"))
	})
}
