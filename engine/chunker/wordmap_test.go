package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapWordBoundaries(t *testing.T) {
	t.Run("Should map boundaries at word ends to word indices", func(t *testing.T) {
		// "Hello world. Next one." boundaries fall after "world." (12)
		// and at end of input (22).
		words := strings.Fields("Hello world. Next one.")
		bounds := MapWordBoundaries(words, []int{12, 22})
		assert.Equal(t, []int{2, 4}, bounds)
	})

	t.Run("Should capture boundaries inside the separating space", func(t *testing.T) {
		// Boundary 13 sits one past the end of "world." at 12.
		words := strings.Fields("Hello world. Next")
		assert.Equal(t, []int{2}, MapWordBoundaries(words, []int{13}))
	})

	t.Run("Should deduplicate boundaries mapping to the same word", func(t *testing.T) {
		words := []string{"apple", "pear"}
		assert.Equal(t, []int{1}, MapWordBoundaries(words, []int{5, 6}))
	})

	t.Run("Should return nil for empty inputs", func(t *testing.T) {
		assert.Nil(t, MapWordBoundaries(nil, []int{1}))
		assert.Nil(t, MapWordBoundaries([]string{"a"}, nil))
	})

	t.Run("Should drop boundaries past the final word span", func(t *testing.T) {
		words := []string{"one", "two"}
		assert.Equal(t, []int{1}, MapWordBoundaries(words, []int{3, 40}))
	})
}
