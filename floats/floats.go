package floats

import (
	"iter"

	"github.com/amp-labs/amp-bounds/bounds"
	"github.com/amp-labs/amp-bounds/optional"
	"golang.org/x/exp/constraints"
)

// FromValues converts each value to F and returns the smallest range containing all of
// them, or None for an empty sequence. NaN inputs are placed per [Total].
func FromValues[F constraints.Float, N Number](values iter.Seq[N]) optional.Value[bounds.Range[F]] {
	wrapped := mapSeq(values, func(v N) Total[F] {
		return Wrap(F(v))
	})

	return optional.Map(bounds.FromValues(wrapped), unwrapRange[F])
}

// Combine returns the smallest range enclosing every input range, or None for an empty
// sequence. Like [bounds.Combine], inverted inputs are not validated.
func Combine[F constraints.Float](ranges iter.Seq[bounds.Range[F]]) optional.Value[bounds.Range[F]] {
	return optional.Map(bounds.Combine(mapSeq(ranges, wrapRange[F])), unwrapRange[F])
}

// FromValues32 is FromValues at 32-bit precision.
func FromValues32[N Number](values iter.Seq[N]) optional.Value[bounds.Range[float32]] {
	return FromValues[float32](values)
}

// FromValues64 is FromValues at 64-bit precision.
func FromValues64[N Number](values iter.Seq[N]) optional.Value[bounds.Range[float64]] {
	return FromValues[float64](values)
}

// Combine32 is Combine at 32-bit precision.
func Combine32(ranges iter.Seq[bounds.Range[float32]]) optional.Value[bounds.Range[float32]] {
	return Combine(ranges)
}

// Combine64 is Combine at 64-bit precision.
func Combine64(ranges iter.Seq[bounds.Range[float64]]) optional.Value[bounds.Range[float64]] {
	return Combine(ranges)
}

func wrapRange[F constraints.Float](r bounds.Range[F]) bounds.Range[Total[F]] {
	return bounds.Map(r, Wrap[F])
}

func unwrapRange[F constraints.Float](r bounds.Range[Total[F]]) bounds.Range[F] {
	return bounds.Map(r, Total[F].Float)
}

func mapSeq[T, U any](seq iter.Seq[T], f func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range seq {
			if !yield(f(v)) {
				return
			}
		}
	}
}
