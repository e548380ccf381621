package goertzel

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-goertzel/dsp/spectrum"
)

// Bank evaluates a fixed set of bins over the same n-point block.
type Bank[F Float] struct {
	n      int
	bins   []F
	coeffs []coefficients[F]
}

// NewBank creates a bank for the given bin indices.
func NewBank[F Float](n int, bins ...F) (*Bank[F], error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	b := &Bank[F]{
		n:      n,
		bins:   append([]F(nil), bins...),
		coeffs: make([]coefficients[F], len(bins)),
	}
	for i, k := range bins {
		b.coeffs[i] = newCoefficients(n, k)
	}

	return b, nil
}

// NewBankFor creates a bank for the bins nearest to each frequency in Hz.
// Every frequency must be at or below fs/2.
func NewBankFor[F Float](n int, fs F, freqs ...F) (*Bank[F], error) {
	bins := make([]F, len(freqs))
	for i, ft := range freqs {
		k, err := NearestBin(n, fs, ft)
		if err != nil {
			return nil, fmt.Errorf("goertzel: bank frequency %d: %w", i, err)
		}

		bins[i] = F(k)
	}

	return NewBank(n, bins...)
}

// Len returns the block length.
func (b *Bank[F]) Len() int { return b.n }

// Bins returns a copy of the bin indices.
func (b *Bank[F]) Bins() []F { return append([]F(nil), b.bins...) }

// Evaluate returns X[k] for every bin of the bank, in bin order.
func (b *Bank[F]) Evaluate(x []F) ([]Complex[F], error) {
	if err := checkBlock(len(x), b.n); err != nil {
		return nil, err
	}

	block := x[:b.n]
	out := make([]Complex[F], len(b.coeffs))
	for i, c := range b.coeffs {
		s1, s2 := c.run(block, 0, 0)
		out[i] = c.result(s1, s2)
	}

	return out, nil
}

// maxSweepPoints bounds the number of points a single [Sweep] may return.
const maxSweepPoints = 1 << 20

// Point is one sample of a [Sweep].
type Point[F Float] struct {
	Bin   F
	Value Complex[F]
}

// Sweep evaluates the DTFT of x[0..n-1] at bins from, from+step, ... up to
// and including to (within rounding of the step accumulation). from, to and
// step must be finite and the range may hold at most 1<<20 points.
func Sweep[F Float](x []F, n int, from, to, step F) ([]Point[F], error) {
	if err := checkBlock(len(x), n); err != nil {
		return nil, err
	}

	if !finite(from) || !finite(to) || !finite(step) {
		return nil, fmt.Errorf("goertzel: sweep bounds must be finite: from=%v to=%v step=%v", from, to, step)
	}

	if !(step > 0) {
		return nil, fmt.Errorf("goertzel: sweep step must be > 0: %v", step)
	}

	if to < from {
		return nil, fmt.Errorf("goertzel: sweep range is empty: %v > %v", from, to)
	}

	span := (float64(to)-float64(from))/float64(step) + 1e-6
	if span >= maxSweepPoints {
		return nil, fmt.Errorf("goertzel: sweep would produce more than %d points", maxSweepPoints)
	}

	count := int(span) + 1
	block := x[:n]

	out := make([]Point[F], count)
	for i := range out {
		k := from + F(i)*step
		c := newCoefficients(n, k)
		s1, s2 := c.run(block, 0, 0)
		out[i] = Point[F]{Bin: k, Value: c.result(s1, s2)}
	}

	return out, nil
}

// Magnitudes returns |X| for each value.
func Magnitudes(values []Complex128) []float64 {
	if len(values) == 0 {
		return nil
	}

	return spectrum.Magnitude(toBuiltin(values))
}

// Powers returns |X|^2 for each value.
func Powers(values []Complex128) []float64 {
	if len(values) == 0 {
		return nil
	}

	return spectrum.Power(toBuiltin(values))
}

func finite[F Float](v F) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func toBuiltin(values []Complex128) []complex128 {
	out := make([]complex128, len(values))
	for i, v := range values {
		out[i] = v.Complex128()
	}

	return out
}
