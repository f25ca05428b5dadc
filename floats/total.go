// Package floats lets the bounds scanners run over floating-point values.
//
// Native float comparison is only a partial order: every comparison involving NaN is false,
// which breaks min/max scans. [Total] wraps a float in a total order, and the helpers in
// this package wrap their inputs, delegate to [github.com/amp-labs/amp-bounds/bounds], and
// unwrap the result.
//
// The order is the one used by [cmp.Compare]: NaN sorts before every other value and all
// NaNs are equal to each other, -0.0 equals +0.0, and everything else compares numerically.
//
// Wrappers that order NaN above +Inf (the convention of Rust's ordered-float, for example)
// give different bounds for NaN-bearing input. There, FromValues32 over [1, NaN] yields
// 1..NaN; here it yields NaN..1.
package floats

import (
	"cmp"
	"fmt"

	"github.com/amp-labs/amp-bounds/sortable"
	"golang.org/x/exp/constraints"
)

// Number is the set of types the float entry points accept and convert from.
type Number interface {
	constraints.Integer | constraints.Float
}

// Total is a float with a total order.
type Total[F constraints.Float] struct {
	f F
}

var (
	_ sortable.Sortable[Total[float32]] = Total[float32]{}
	_ sortable.Sortable[Total[float64]] = Total[float64]{}
)

// Wrap returns f with a total order attached.
func Wrap[F constraints.Float](f F) Total[F] {
	return Total[F]{f: f}
}

// Float returns the wrapped value.
func (t Total[F]) Float() F {
	return t.f
}

// Compare returns -1, 0 or +1 as t sorts before, equal to, or after other.
func (t Total[F]) Compare(other Total[F]) int {
	return cmp.Compare(t.f, other.f)
}

func (t Total[F]) Equals(other Total[F]) bool {
	return t.Compare(other) == 0
}

func (t Total[F]) LessThan(other Total[F]) bool {
	return cmp.Less(t.f, other.f)
}

func (t Total[F]) String() string {
	return fmt.Sprint(t.f)
}
