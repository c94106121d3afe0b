package scalar

import (
	"math"
	"strconv"
)

// Fixed is a deterministic Q47.16 fixed-point scalar stored in an int64.
//
// All arithmetic is integer arithmetic, so results are bit-identical on
// every platform, which floating point cannot guarantee. Resolution is
// 1/65536 (~1.5e-5); the usable magnitude for multiplication operands is
// about +/-46000 units, ample for world coordinates. Overflow wraps like
// any integer arithmetic - the caller owns keeping values in range.
type Fixed int64

const (
	fixedFracBits = 16
	fixedOneRaw   = 1 << fixedFracBits

	// Rounded independently to the nearest representable value.
	fixedPiRaw     = 205887 // pi * 2^16
	fixedHalfPiRaw = 102944 // pi/2 * 2^16
	fixedTwoPiRaw  = 411775 // 2*pi * 2^16
)

// Circle constants in the fixed scale.
const (
	FixedPi     Fixed = fixedPiRaw
	FixedHalfPi Fixed = fixedHalfPiRaw
	FixedTwoPi  Fixed = fixedTwoPiRaw
)

// FixedFromRaw reinterprets a raw Q47.16 integer as a Fixed.
func FixedFromRaw(raw int64) Fixed { return Fixed(raw) }

// Raw returns the underlying Q47.16 integer.
func (f Fixed) Raw() int64 { return int64(f) }

func (f Fixed) Add(other Fixed) Fixed { return f + other }
func (f Fixed) Sub(other Fixed) Fixed { return f - other }
func (f Fixed) Neg() Fixed            { return -f }

func (f Fixed) Mul(other Fixed) Fixed {
	return Fixed((int64(f) * int64(other)) >> fixedFracBits)
}

func (f Fixed) Div(other Fixed) Fixed {
	return Fixed((int64(f) << fixedFracBits) / int64(other))
}

func (f Fixed) Abs() Fixed {
	if f < 0 {
		return -f
	}
	return f
}

// Sqrt computes the square root with a bit-by-bit integer method.
// Panics on negative input.
func (f Fixed) Sqrt() Fixed {
	if f < 0 {
		panic("scalar: Sqrt of negative Fixed")
	}
	// sqrt(raw/2^16) * 2^16 == isqrt(raw << 16)
	return Fixed(isqrt(uint64(f) << fixedFracBits))
}

func isqrt(n uint64) uint64 {
	var x uint64
	b := uint64(1) << 62
	for b > n {
		b >>= 2
	}
	for b != 0 {
		if n >= x+b {
			n -= x + b
			x = x>>1 + b
		} else {
			x >>= 1
		}
		b >>= 2
	}
	return x
}

// Sin computes sine with a 9th-order Taylor polynomial after range
// reduction to [-pi/2, pi/2]. Pure integer arithmetic, so deterministic;
// accuracy is bounded by the Q47.16 resolution.
func (f Fixed) Sin() Fixed {
	// Wrap into (-pi, pi].
	r := int64(f) % fixedTwoPiRaw
	if r > fixedPiRaw {
		r -= fixedTwoPiRaw
	} else if r < -fixedPiRaw {
		r += fixedTwoPiRaw
	}
	// Fold into [-pi/2, pi/2] using sin(pi - x) == sin(x).
	if r > fixedHalfPiRaw {
		r = fixedPiRaw - r
	} else if r < -fixedHalfPiRaw {
		r = -fixedPiRaw - r
	}

	x := Fixed(r)
	x2 := x.Mul(x)
	p := x.Mul(x2)
	sum := x.Sub(p.divInt(6))
	p = p.Mul(x2)
	sum = sum.Add(p.divInt(120))
	p = p.Mul(x2)
	sum = sum.Sub(p.divInt(5040))
	p = p.Mul(x2)
	return sum.Add(p.divInt(362880))
}

func (f Fixed) Cos() Fixed {
	return (f + fixedHalfPiRaw).Sin()
}

func (f Fixed) divInt(n int64) Fixed {
	return Fixed(int64(f) / n)
}

func (f Fixed) Less(other Fixed) bool { return f < other }

func (Fixed) FromInt(n int) Fixed {
	return Fixed(int64(n) << fixedFracBits)
}

func (Fixed) FromFloat(v float64) Fixed {
	return Fixed(int64(math.Round(v * fixedOneRaw)))
}

func (f Fixed) Float() float64 {
	return float64(f) / fixedOneRaw
}

func (f Fixed) String() string {
	return strconv.FormatFloat(f.Float(), 'g', -1, 64)
}
