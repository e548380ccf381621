package spectrum

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// ErrEmptyInput is returned when a transform is requested for no samples.
var ErrEmptyInput = errors.New("spectrum: empty input")

// FFT returns all n bins of the forward transform of the real block x,
// unnormalized. Bin k equals sum(x[n]*exp(-j*2*pi*k*n/N)).
func FFT(x []float64) ([]complex128, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}

	plan, err := algofft.NewPlan64(len(x))
	if err != nil {
		return nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, len(x))
	for i, v := range x {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, len(x))
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("spectrum: forward FFT: %w", err)
	}

	return out, nil
}

// FFT32 is the float32 counterpart of [FFT].
func FFT32(x []float32) ([]complex64, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}

	plan, err := algofft.NewPlan32(len(x))
	if err != nil {
		return nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	in := make([]complex64, len(x))
	for i, v := range x {
		in[i] = complex(v, 0)
	}

	out := make([]complex64, len(x))
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("spectrum: forward FFT: %w", err)
	}

	return out, nil
}
