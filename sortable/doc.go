// Package sortable defines the [Sortable] capability and wrapper types that give
// primitive values that capability.
//
// # Overview
//
// A Sortable type can report equality ([github.com/amp-labs/amp-bounds/compare.Comparable])
// and a strict total order ([github.com/amp-labs/amp-bounds/compare.Lesser]). The range
// scanners in [github.com/amp-labs/amp-bounds/bounds] accept any Sortable element type.
//
// The wrappers [Int], [Int64], [Uint64], [Byte] and [String] are plain named types, so
// converting in and out is a type conversion:
//
//	r := bounds.FromSlice([]sortable.Int{4, 1, 9})
//	// r is Some(1..9)
//
// Floating-point values are deliberately absent: their native comparison is not total
// because of NaN. Use [github.com/amp-labs/amp-bounds/floats.Total] instead.
//
// # Custom Sortable Types
//
// Implement both methods. LessThan must agree with Equals: for any a and b exactly
// one of a.LessThan(b), b.LessThan(a) or a.Equals(b) should hold.
//
//	type Version struct {
//	    Major, Minor int
//	}
//
//	func (v Version) Equals(o Version) bool { return v == o }
//
//	func (v Version) LessThan(o Version) bool {
//	    if v.Major != o.Major {
//	        return v.Major < o.Major
//	    }
//	    return v.Minor < o.Minor
//	}
package sortable
