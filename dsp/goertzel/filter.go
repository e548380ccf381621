package goertzel

import "fmt"

// Filter is the streaming form of [Evaluate].
//
// It accumulates the Goertzel recursion one sample or block at a time for a
// fixed bin k of an n-point block. After exactly n samples, Result equals
// Evaluate over the same samples. Result and Power may be read at any time
// and evaluate the state reached so far; Reset starts a new block.
//
// A Filter is not safe for concurrent use.
type Filter[F Float] struct {
	n      int
	k      F
	coeffs coefficients[F]
	s1, s2 F
	count  int
}

// Filter64 is the float64 specialization.
type Filter64 = Filter[float64]

// Filter32 is the float32 specialization.
type Filter32 = Filter[float32]

// NewFilter creates a filter for bin k of an n-point block.
func NewFilter[F Float](n int, k F) (*Filter[F], error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	return &Filter[F]{
		n:      n,
		k:      k,
		coeffs: newCoefficients(n, k),
	}, nil
}

// NewFilterFor creates a filter for the bin nearest to ft (Hz).
//
// Unlike [Find], a target above fs/2 is rejected with [ErrAboveNyquist].
func NewFilterFor[F Float](n int, fs, ft F) (*Filter[F], error) {
	k, err := NearestBin(n, fs, ft)
	if err != nil {
		return nil, err
	}

	return NewFilter(n, F(k))
}

// Len returns the block length n the filter was tuned for.
func (f *Filter[F]) Len() int { return f.n }

// Bin returns the bin index k.
func (f *Filter[F]) Bin() F { return f.k }

// Count returns the number of samples processed since the last Reset.
func (f *Filter[F]) Count() int { return f.count }

// Reset clears the recursion state.
func (f *Filter[F]) Reset() {
	f.s1 = 0
	f.s2 = 0
	f.count = 0
}

// ProcessSample advances the recursion by one sample.
func (f *Filter[F]) ProcessSample(input F) {
	s0 := input + F(f.coeffs.twoCosW*f.s1) - f.s2
	f.s2 = f.s1
	f.s1 = s0
	f.count++
}

// ProcessBlock advances the recursion over a block of samples.
func (f *Filter[F]) ProcessBlock(input []F) {
	f.s1, f.s2 = f.coeffs.run(input, f.s1, f.s2)
	f.count += len(input)
}

// Result returns the complex value reconstructed from the current state.
func (f *Filter[F]) Result() Complex[F] {
	return f.coeffs.result(f.s1, f.s2)
}

// Power returns |Result()|^2 using the real-only form
// s1^2 + s2^2 - 2cos(w)*s1*s2.
func (f *Filter[F]) Power() F {
	return f.s1*f.s1 + f.s2*f.s2 - f.coeffs.twoCosW*f.s1*f.s2
}
