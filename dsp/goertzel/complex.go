package goertzel

import "math"

// Float is the set of sample precisions the engine operates on.
type Float interface {
	~float32 | ~float64
}

// Complex is a complex value carried in the caller's precision.
//
// It is a plain two-field value so results stay in F end to end; use
// [Complex.Complex128] when interop with the builtin type is needed.
type Complex[F Float] struct {
	Re F
	Im F
}

// Complex128 is the float64 specialization.
type Complex128 = Complex[float64]

// Complex64 is the float32 specialization.
type Complex64 = Complex[float32]

// Add returns z + w.
func (z Complex[F]) Add(w Complex[F]) Complex[F] {
	return Complex[F]{Re: z.Re + w.Re, Im: z.Im + w.Im}
}

// Sub returns z - w.
func (z Complex[F]) Sub(w Complex[F]) Complex[F] {
	return Complex[F]{Re: z.Re - w.Re, Im: z.Im - w.Im}
}

// Scale returns z multiplied by the real factor s.
func (z Complex[F]) Scale(s F) Complex[F] {
	return Complex[F]{Re: z.Re * s, Im: z.Im * s}
}

// Power returns |z|^2.
func (z Complex[F]) Power() F {
	return z.Re*z.Re + z.Im*z.Im
}

// Abs returns |z|.
func (z Complex[F]) Abs() F {
	return F(math.Hypot(float64(z.Re), float64(z.Im)))
}

// Phase returns arg(z) in radians, in the range [-pi, pi].
func (z Complex[F]) Phase() F {
	return F(math.Atan2(float64(z.Im), float64(z.Re)))
}

// Normalize divides z by n/2 so a bin-centered sinusoid of amplitude A
// reads back as magnitude A.
func (z Complex[F]) Normalize(n int) Complex[F] {
	return z.Scale(2 / F(n))
}

// IsZero reports whether both parts are exactly zero.
func (z Complex[F]) IsZero() bool {
	return z.Re == 0 && z.Im == 0
}

// Complex128 converts z to the builtin complex128.
func (z Complex[F]) Complex128() complex128 {
	return complex(float64(z.Re), float64(z.Im))
}
