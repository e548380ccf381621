package spectrum_test

import (
	"fmt"
	"math/cmplx"

	"github.com/cwbudde/algo-goertzel/dsp/spectrum"
)

func ExampleMagnitude() {
	bins := []complex128{1 + 0i, 0 + 1i, -1 + 0i}
	mag := spectrum.Magnitude(bins)
	fmt.Printf("%.1f %.1f %.1f\n", mag[0], mag[1], mag[2])
	// Output:
	// 1.0 1.0 1.0
}

func ExampleUnwrapPhase() {
	wrapped := []float64{2.8, -2.7, -2.6}
	unwrapped := spectrum.UnwrapPhase(wrapped)
	fmt.Printf("%.3f %.3f %.3f\n", unwrapped[0], unwrapped[1], unwrapped[2])
	// Output:
	// 2.800 3.583 3.683
}

func ExampleFFT() {
	x := []float64{1, 1, 1, 1}
	bins, err := spectrum.FFT(x)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%.1f %.1f\n", real(bins[0]), cmplx.Abs(bins[1]))
	// Output:
	// 4.0 0.0
}
