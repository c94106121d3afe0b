package scalar

import "math"

// Float is the single-precision floating-point scalar.
type Float float32

func (f Float) Add(other Float) Float { return f + other }
func (f Float) Sub(other Float) Float { return f - other }
func (f Float) Mul(other Float) Float { return f * other }
func (f Float) Div(other Float) Float { return f / other }
func (f Float) Neg() Float            { return -f }

func (f Float) Abs() Float {
	if f < 0 {
		return -f
	}
	return f
}

func (f Float) Sqrt() Float {
	return Float(math.Sqrt(float64(f)))
}

func (f Float) Sin() Float { return Float(math.Sin(float64(f))) }
func (f Float) Cos() Float { return Float(math.Cos(float64(f))) }

func (f Float) Less(other Float) bool { return f < other }

func (Float) FromInt(n int) Float       { return Float(n) }
func (Float) FromFloat(v float64) Float { return Float(v) }

func (f Float) Float() float64 { return float64(f) }
