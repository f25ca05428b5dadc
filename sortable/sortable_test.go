package sortable

import (
	"testing"

	"github.com/amp-labs/amp-bounds/compare"
	"github.com/stretchr/testify/assert"
)

// checkTotal asserts that exactly one of a<b, b<a, a==b holds.
func checkTotal[T Sortable[T]](t *testing.T, a, b T) {
	t.Helper()

	held := 0

	if a.LessThan(b) {
		held++
	}

	if b.LessThan(a) {
		held++
	}

	if a.Equals(b) {
		held++
	}

	assert.Equal(t, 1, held, "ordering of %v and %v is not total", a, b)
}

func TestPrimitives(t *testing.T) {
	t.Parallel()

	t.Run("Int", func(t *testing.T) {
		t.Parallel()

		assert.True(t, Int(-1).LessThan(Int(0)))
		assert.False(t, Int(3).LessThan(Int(3)))
		assert.True(t, Int(3).Equals(Int(3)))
		checkTotal(t, Int(1), Int(2))
		checkTotal(t, Int(2), Int(2))
	})

	t.Run("Int64", func(t *testing.T) {
		t.Parallel()

		assert.True(t, Int64(-1<<40).LessThan(Int64(1<<40)))
		checkTotal(t, Int64(5), Int64(-5))
	})

	t.Run("Uint64", func(t *testing.T) {
		t.Parallel()

		assert.True(t, Uint64(0).LessThan(Uint64(1<<63)))
		checkTotal(t, Uint64(7), Uint64(7))
	})

	t.Run("Byte", func(t *testing.T) {
		t.Parallel()

		assert.True(t, Byte('a').LessThan(Byte('b')))
		assert.False(t, Byte('z').Equals(Byte('Z')))
		checkTotal(t, Byte('a'), Byte('A'))
	})

	t.Run("String", func(t *testing.T) {
		t.Parallel()

		assert.True(t, String("apple").LessThan(String("banana")))
		assert.True(t, String("").LessThan(String("a")))
		assert.True(t, String("x").Equals(String("x")))
		checkTotal(t, String("abc"), String("abd"))
	})
}

func TestWorksWithCompareHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, String("a"), compare.Min(String("b"), String("a")))
	assert.Equal(t, Int(10), compare.Max(Int(10), Int(-10)))
}
