// Package bounds computes minimal enclosing ranges.
//
// [FromValues] scans a sequence of values and returns the tightest [Range] holding all of
// them. [Combine] scans a sequence of ranges and returns the tightest Range holding every
// input. Both return [optional.Value]: an empty input produces None rather than an error.
//
// Element types must implement [sortable.Sortable]. Floating-point types do not, because
// NaN breaks the ordering; the [github.com/amp-labs/amp-bounds/floats] package adapts them.
//
// # Inverted ranges
//
// A Range whose Start sorts after its End is never produced by a scan, but callers can
// build one by hand. Combine does not validate its inputs: an inverted range contributes
// its Start to the minimum and its End to the maximum exactly like any other range, so the
// malformed bound can propagate into the result. Use [Validate], [ValidateAll] or
// [Normalize] beforehand when inputs are untrusted.
package bounds
