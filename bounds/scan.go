package bounds

import (
	"iter"
	"slices"

	"github.com/amp-labs/amp-bounds/compare"
	"github.com/amp-labs/amp-bounds/optional"
	"github.com/amp-labs/amp-bounds/sortable"
)

// FromValues returns the smallest Range containing every value, or None if values is empty.
// The sequence is consumed exactly once.
func FromValues[T sortable.Sortable[T]](values iter.Seq[T]) optional.Value[Range[T]] {
	return FromValuesFunc(values, lessThan[T])
}

// FromSlice is FromValues over a slice.
func FromSlice[T sortable.Sortable[T]](values []T) optional.Value[Range[T]] {
	return FromValues(slices.Values(values))
}

// FromValuesFunc is FromValues with an explicit strict ordering.
// The first value seeds both endpoints; afterwards Start only moves when a value is
// strictly less than it, and End only when a value is strictly greater.
func FromValuesFunc[T any](values iter.Seq[T], less func(a, b T) bool) optional.Value[Range[T]] {
	var (
		acc  Range[T]
		seen bool
	)

	for v := range values {
		switch {
		case !seen:
			acc = Range[T]{Start: v, End: v}
			seen = true
		case less(v, acc.Start):
			acc.Start = v
		case less(acc.End, v):
			acc.End = v
		}
	}

	if !seen {
		return optional.None[Range[T]]()
	}

	return optional.Some(acc)
}

// Combine returns the smallest Range enclosing every input range, or None if ranges is empty.
// Inputs are not validated; see the package documentation for inverted ranges.
func Combine[T sortable.Sortable[T]](ranges iter.Seq[Range[T]]) optional.Value[Range[T]] {
	// Same fold as CombineFunc, but ties resolve through compare.Min/Max.
	var (
		merged Range[T]
		seen   bool
	)

	for r := range ranges {
		if !seen {
			merged = r
			seen = true

			continue
		}

		merged.Start = compare.Min(merged.Start, r.Start)
		merged.End = compare.Max(merged.End, r.End)
	}

	if !seen {
		return optional.None[Range[T]]()
	}

	return optional.Some(merged)
}

// CombineSlice is Combine over a slice.
func CombineSlice[T sortable.Sortable[T]](ranges []Range[T]) optional.Value[Range[T]] {
	return Combine(slices.Values(ranges))
}

// CombineFunc is Combine with an explicit strict ordering.
func CombineFunc[T any](ranges iter.Seq[Range[T]], less func(a, b T) bool) optional.Value[Range[T]] {
	var (
		merged Range[T]
		seen   bool
	)

	for r := range ranges {
		if !seen {
			merged = r
			seen = true

			continue
		}

		if less(r.Start, merged.Start) {
			merged.Start = r.Start
		}

		if less(merged.End, r.End) {
			merged.End = r.End
		}
	}

	if !seen {
		return optional.None[Range[T]]()
	}

	return optional.Some(merged)
}

func lessThan[T sortable.Sortable[T]](a, b T) bool {
	return a.LessThan(b)
}
