package bounds

import (
	"fmt"
	"log/slog"

	"github.com/amp-labs/amp-bounds/sortable"
)

// Range is an inclusive interval [Start, End].
type Range[T any] struct {
	Start T `json:"start" yaml:"start"`
	End   T `json:"end"   yaml:"end"`
}

// New returns the Range [start, end]. It does not check that start <= end.
func New[T any](start, end T) Range[T] {
	return Range[T]{Start: start, End: end}
}

// String renders the range as "start..end".
func (r Range[T]) String() string {
	return fmt.Sprintf("%v..%v", r.Start, r.End)
}

// LogValue implements slog.LogValuer, logging the range as a group with start and end.
func (r Range[T]) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("start", r.Start),
		slog.Any("end", r.End),
	)
}

// Map applies f to both endpoints.
func Map[T any, U any](r Range[T], f func(T) U) Range[U] {
	return Range[U]{Start: f(r.Start), End: f(r.End)}
}

// Equal reports whether both endpoints of a and b are equal.
func Equal[T sortable.Sortable[T]](a, b Range[T]) bool {
	return a.Start.Equals(b.Start) && a.End.Equals(b.End)
}

// Contains reports whether Start <= v <= End.
func Contains[T sortable.Sortable[T]](r Range[T], v T) bool {
	return !v.LessThan(r.Start) && !r.End.LessThan(v)
}

// IsInverted reports whether End sorts strictly before Start.
func IsInverted[T sortable.Sortable[T]](r Range[T]) bool {
	return r.End.LessThan(r.Start)
}

// Normalize returns r with its endpoints swapped if it is inverted.
func Normalize[T sortable.Sortable[T]](r Range[T]) Range[T] {
	if IsInverted(r) {
		return Range[T]{Start: r.End, End: r.Start}
	}

	return r
}
