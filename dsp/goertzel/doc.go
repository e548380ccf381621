// Package goertzel evaluates single DFT/DTFT bins of a real-valued block
// with the Goertzel recursion.
//
// The engine has two layers:
//
//   - Bin evaluation: [Evaluate] runs the second-order recursion over N samples
//     for a (possibly fractional) bin index k and reconstructs X[k] with the
//     closed-form final step. [EvaluateBin] is the classic integer-bin form.
//   - Frequency location: [NearestBin] maps a target frequency in Hz to the
//     nearest integer bin and [Find] evaluates that bin in one call.
//
// Both layers are generic over [Float], so float32 and float64 buffers use
// separate code paths with no conversion between them.
//
// # Normalization
//
// Results are unnormalized, matching the usual FFT convention. Divide by N/2
// (see [Complex.Normalize]) to read the amplitude of a sinusoid directly.
//
// # Above-Nyquist requests
//
// [Find] returns the zero value with a nil error when the target frequency is
// above fs/2. Callers that must tell this apart from a silent bin should call
// [NearestBin] first, which reports [ErrAboveNyquist].
//
// # Streaming and batch use
//
// [Filter] is the sample-by-sample form of the same recursion, [Bank] runs a
// set of bins over one block and [Sweep] scans the DTFT at sub-bin
// resolution.
package goertzel
