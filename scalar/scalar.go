// Package scalar defines the numeric abstraction shared by every geometric
// type in quill.
//
// The collision core must produce results in two numeric domains: IEEE-754
// single-precision floats for general use, and a deterministic fixed-point
// representation for simulations that need bit-exact reproducibility across
// platforms. Instead of duplicating every geometric type per domain, the
// whole core is written once against the Real constraint and instantiated
// with either Float or Fixed.
package scalar

// Real is the constraint satisfied by quill's scalar types.
//
// A Real is an immutable value with ordinary arithmetic, a square root, and
// the two trigonometric functions needed to build rotation matrices. The
// comparable embedding gives exact equality and map-key usability; the zero
// value of any Real is numeric zero.
type Real[T any] interface {
	comparable

	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	Neg() T
	Abs() T
	Sqrt() T
	Sin() T
	Cos() T
	Less(T) bool

	// FromInt and FromFloat construct values of the receiver's type.
	// The receiver itself is ignored; they exist because Go has no static
	// methods on type parameters.
	FromInt(int) T
	FromFloat(float64) T

	// Float converts to float64 for display and interop. Not for use in
	// determinism-critical paths.
	Float() float64
}

// Zero returns the additive identity of T.
func Zero[T Real[T]]() T {
	var zero T
	return zero
}

// One returns the multiplicative identity of T.
func One[T Real[T]]() T {
	return FromInt[T](1)
}

// FromInt converts an int to T.
func FromInt[T Real[T]](n int) T {
	var zero T
	return zero.FromInt(n)
}

// FromFloat converts a float64 to T.
func FromFloat[T Real[T]](f float64) T {
	var zero T
	return zero.FromFloat(f)
}

// LessEq reports a <= b.
func LessEq[T Real[T]](a, b T) bool {
	return !b.Less(a)
}

// Min returns the smaller of a and b.
func Min[T Real[T]](a, b T) T {
	if b.Less(a) {
		return b
	}
	return a
}

// Max returns the larger of a and b.
func Max[T Real[T]](a, b T) T {
	if a.Less(b) {
		return b
	}
	return a
}

// Clamp limits v to the closed range [lo, hi].
func Clamp[T Real[T]](v, lo, hi T) T {
	if v.Less(lo) {
		return lo
	}
	if hi.Less(v) {
		return hi
	}
	return v
}

// Near reports whether a and b differ by less than tolerance.
func Near[T Real[T]](a, b, tolerance T) bool {
	return a.Sub(b).Abs().Less(tolerance)
}
