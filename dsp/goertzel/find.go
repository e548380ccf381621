package goertzel

import (
	"errors"
	"fmt"
	"math"
)

// NearestBin maps the target frequency ft (Hz) to the nearest integer bin of
// an n-point transform sampled at fs.
//
// Rounding is half-up: int(0.5 + n*ft/fs), truncating toward zero. Negative
// frequencies are not validated. A target above fs/2 yields
// [ErrAboveNyquist].
func NearestBin[F Float](n int, fs, ft F) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	if !validSampleRate(fs) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidSampleRate, fs)
	}

	if ft > fs/2 {
		return 0, fmt.Errorf("%w: %v > %v", ErrAboveNyquist, ft, fs/2)
	}

	return int(0.5 + F(n)*ft/fs), nil
}

// Find evaluates the bin nearest to the target frequency ft.
//
// A target above fs/2 is not representable and returns the zero value with
// a nil error. Use [NearestBin] to detect that case explicitly.
func Find[F Float](x []F, n int, fs, ft F) (Complex[F], error) {
	if err := checkBlock(len(x), n); err != nil {
		return Complex[F]{}, err
	}

	k, err := NearestBin(n, fs, ft)
	if errors.Is(err, ErrAboveNyquist) {
		return Complex[F]{}, nil
	}

	if err != nil {
		return Complex[F]{}, err
	}

	return Evaluate(x, n, F(k))
}

// BinFrequency returns the frequency in Hz described by bin k of an n-point
// transform sampled at fs.
func BinFrequency[F Float](k F, n int, fs F) F {
	return k * fs / F(n)
}

func validSampleRate[F Float](fs F) bool {
	v := float64(fs)
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}
