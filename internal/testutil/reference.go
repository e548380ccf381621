package testutil

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
)

// FourierCoefficients returns bins 0..N/2 of the real DFT of x computed by
// gonum. It is independent of the packages under test.
func FourierCoefficients(x []float64) []complex128 {
	return fourier.NewFFT(len(x)).Coefficients(nil, x)
}

// DirectDFT evaluates sum(x[n]*exp(-j*2*pi*k*n/N)) by brute force for any
// real k.
func DirectDFT(x []float64, k float64) complex128 {
	n := float64(len(x))
	var re, im float64
	for i, v := range x {
		angle := 2 * math.Pi * k * float64(i) / n
		re += v * math.Cos(angle)
		im -= v * math.Sin(angle)
	}
	return complex(re, im)
}
