// Package compare provides capability interfaces for equality and ordering,
// plus small helpers built on top of them.
package compare

// Comparable is a generic interface for types that can compare themselves for equality.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Lesser is implemented by types that define a strict ordering over themselves.
// LessThan must be irreflexive and transitive; for the helpers in this module to
// produce meaningful results it should also be total (exactly one of a < b, b < a,
// or a == b holds).
type Lesser[T any] interface {
	LessThan(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// Min returns the smaller of a and b. When neither is less than the other, a is returned.
func Min[T Lesser[T]](a, b T) T {
	if b.LessThan(a) {
		return b
	}

	return a
}

// Max returns the larger of a and b. When neither is less than the other, a is returned.
func Max[T Lesser[T]](a, b T) T {
	if a.LessThan(b) {
		return b
	}

	return a
}
