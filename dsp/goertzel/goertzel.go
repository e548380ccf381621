package goertzel

import (
	"errors"
	"fmt"
	"math"
)

// Errors reported by the engine. All of them are precondition violations.
var (
	ErrInvalidLength     = errors.New("goertzel: length must be > 0")
	ErrShortBuffer       = errors.New("goertzel: buffer shorter than length")
	ErrInvalidSampleRate = errors.New("goertzel: sample rate must be > 0")
	ErrAboveNyquist      = errors.New("goertzel: target frequency above Nyquist")
)

// Evaluate computes the unnormalized transform value X[k] of x[0..n-1] at
// bin index k, i.e. at angular frequency w = 2*pi*k/n.
//
// k may be fractional (DTFT evaluation) and is not range checked: bins
// beyond n/2 return the aliased value of the same formula. Only the first n
// samples of x are read; x is never modified or retained.
func Evaluate[F Float](x []F, n int, k F) (Complex[F], error) {
	if err := checkBlock(len(x), n); err != nil {
		return Complex[F]{}, err
	}

	c := newCoefficients(n, k)
	s1, s2 := c.run(x[:n], 0, 0)

	return c.result(s1, s2), nil
}

// EvaluateBin is the classic DFT form of [Evaluate] for an integer bin.
func EvaluateBin[F Float](x []F, n, k int) (Complex[F], error) {
	return Evaluate(x, n, F(k))
}

func checkBlock(size, n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	if size < n {
		return fmt.Errorf("%w: %d < %d", ErrShortBuffer, size, n)
	}

	return nil
}

// coefficients holds the per-bin constants of the recursion.
type coefficients[F Float] struct {
	sinW, cosW, twoCosW F
}

func newCoefficients[F Float](n int, k F) coefficients[F] {
	w := 2 * F(math.Pi) * k / F(n)
	cosW := F(math.Cos(float64(w)))

	return coefficients[F]{
		sinW:    F(math.Sin(float64(w))),
		cosW:    cosW,
		twoCosW: 2 * cosW,
	}
}

// run advances the recursion s[n] = x[n] + 2cos(w)*s[n-1] - s[n-2] over
// block, starting from s[n-1] = s1 and s[n-2] = s2.
func (c coefficients[F]) run(block []F, s1, s2 F) (F, F) {
	twoCosW := c.twoCosW
	for _, v := range block {
		// Explicit conversion rounds the product and blocks FMA fusion.
		s0 := v + F(twoCosW*s1) - s2
		s2 = s1
		s1 = s0
	}

	return s1, s2
}

// result applies the closed-form last step:
// y[N] = (cos(w) + j*sin(w))*s[N-1] - s[N-2].
func (c coefficients[F]) result(s1, s2 F) Complex[F] {
	return Complex[F]{
		Re: F(c.cosW*s1) - s2,
		Im: c.sinW * s1,
	}
}
