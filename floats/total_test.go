package floats

import (
	"math"
	"slices"
	"testing"

	"github.com/amp-labs/amp-bounds/bounds"
	"github.com/stretchr/testify/assert"
)

func TestTotal_Order(t *testing.T) {
	t.Parallel()

	negZero := math.Copysign(0, -1)

	// Ascending under the total order.
	ordered := []float64{math.NaN(), math.Inf(-1), -1.5, negZero, 1e-300, 2, math.Inf(1)}

	for i := range ordered {
		for j := range ordered {
			a, b := Wrap(ordered[i]), Wrap(ordered[j])

			assert.Equal(t, i < j, a.LessThan(b), "%v < %v", a, b)
			assert.Equal(t, i == j, a.Equals(b), "%v == %v", a, b)
			assert.Equal(t, cmpInts(i, j), a.Compare(b), "compare(%v, %v)", a, b)
		}
	}
}

func cmpInts(i, j int) int {
	switch {
	case i < j:
		return -1
	case i > j:
		return 1
	default:
		return 0
	}
}

func TestTotal_SpecialEqualities(t *testing.T) {
	t.Parallel()

	nan := Wrap(math.NaN())
	assert.True(t, nan.Equals(nan))
	assert.False(t, nan.LessThan(nan))

	negZero := Wrap(float32(math.Copysign(0, -1)))
	posZero := Wrap(float32(0))
	assert.True(t, negZero.Equals(posZero))
	assert.False(t, negZero.LessThan(posZero))
	assert.False(t, posZero.LessThan(negZero))
}

func TestTotal_FloatAndString(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 2.5, Wrap(2.5).Float(), 0)
	assert.Equal(t, float32(-1), Wrap(float32(-1)).Float())
	assert.Equal(t, "2.5", Wrap(2.5).String())
	assert.Equal(t, "NaN", Wrap(math.NaN()).String())
}

func TestTotal_WithBoundsDirectly(t *testing.T) {
	t.Parallel()

	r, ok := bounds.FromSlice([]Total[float64]{Wrap(3.0), Wrap(-7.25), Wrap(1.0)}).Get()
	assert.True(t, ok)
	assert.InDelta(t, -7.25, r.Start.Float(), 0)
	assert.InDelta(t, 3.0, r.End.Float(), 0)

	assert.True(t, bounds.Contains(r, Wrap(0.0)))
	assert.False(t, bounds.Contains(r, Wrap(math.NaN())))

	sorted := []Total[float64]{Wrap(1.0), Wrap(math.NaN()), Wrap(-1.0)}
	slices.SortFunc(sorted, Total[float64].Compare)
	assert.True(t, math.IsNaN(sorted[0].Float()))
	assert.InDelta(t, -1.0, sorted[1].Float(), 0)
}
