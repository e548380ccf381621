// Package spectrum provides full-spectrum references and batch helpers for
// complex bins.
//
// [FFT] and [FFT32] compute every bin of a real block through algo-fft plans
// and serve as the reference the single-bin Goertzel results are checked
// against. The magnitude and power helpers use SIMD kernels from
// algo-vecmath when available.
package spectrum
