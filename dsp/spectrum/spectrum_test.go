package spectrum

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-goertzel/dsp/signal"
	"github.com/cwbudde/algo-goertzel/internal/testutil"
)

func TestMagnitudePhasePower(t *testing.T) {
	bins := []complex128{3 + 4i, -1 - 1i, 0}

	mag := Magnitude(bins)
	if len(mag) != len(bins) {
		t.Fatalf("Magnitude length mismatch: got=%d want=%d", len(mag), len(bins))
	}

	if math.Abs(mag[0]-5) > 1e-12 {
		t.Fatalf("Magnitude[0]=%f want=5", mag[0])
	}

	pow := Power(bins)
	if math.Abs(pow[0]-25) > 1e-12 {
		t.Fatalf("Power[0]=%f want=25", pow[0])
	}

	phase := Phase(bins)
	if math.Abs(phase[0]-math.Atan2(4, 3)) > 1e-12 {
		t.Fatalf("Phase[0]=%f mismatch", phase[0])
	}

	if math.Abs(phase[1]+3*math.Pi/4) > 1e-12 {
		t.Fatalf("Phase[1]=%f want=%f", phase[1], -3*math.Pi/4)
	}
}

func TestEmptyInputs(t *testing.T) {
	if Magnitude(nil) != nil || Power(nil) != nil || Phase(nil) != nil || UnwrapPhase(nil) != nil {
		t.Fatal("expected nil results for empty input")
	}
}

func TestUnwrapPhase(t *testing.T) {
	in := []float64{2.8, -2.7, -2.6}

	out := UnwrapPhase(in)
	if len(out) != len(in) {
		t.Fatalf("unwrap length mismatch")
	}

	if out[1] <= out[0] {
		t.Fatalf("expected increasing unwrapped phase: %v", out)
	}

	if math.Abs((out[1]-out[0])-(2*math.Pi-5.5)) > 1e-12 {
		t.Fatalf("unexpected unwrap delta: %f", out[1]-out[0])
	}
}

func TestMagnitudeFromParts(t *testing.T) {
	re := []float64{3, -1, 0}
	im := []float64{4, -1, 0}
	dst := make([]float64, 3)
	MagnitudeFromParts(dst, re, im)

	if math.Abs(dst[0]-5) > 1e-12 {
		t.Fatalf("MagnitudeFromParts[0]=%f want=5", dst[0])
	}

	if math.Abs(dst[1]-math.Sqrt(2)) > 1e-12 {
		t.Fatalf("MagnitudeFromParts[1]=%f want=%f", dst[1], math.Sqrt(2))
	}

	if math.Abs(dst[2]-0) > 1e-12 {
		t.Fatalf("MagnitudeFromParts[2]=%f want=0", dst[2])
	}
}

func TestPowerFromParts(t *testing.T) {
	re := []float64{3, -1, 0}
	im := []float64{4, -1, 0}
	dst := make([]float64, 3)
	PowerFromParts(dst, re, im)

	if math.Abs(dst[0]-25) > 1e-12 {
		t.Fatalf("PowerFromParts[0]=%f want=25", dst[0])
	}

	if math.Abs(dst[1]-2) > 1e-12 {
		t.Fatalf("PowerFromParts[1]=%f want=2", dst[1])
	}
}

func TestFFTMatchesReference(t *testing.T) {
	x := testutil.DeterministicNoise(7, 1, 256)

	got, err := FFT(x)
	if err != nil {
		t.Fatalf("FFT: %v", err)
	}

	want := testutil.FourierCoefficients(x)
	for k := range want {
		if d := cmplxDiff(got[k], want[k]); d > 1e-9 {
			t.Fatalf("bin %d: got %v, want %v (diff %g)", k, got[k], want[k], d)
		}
	}
}

func TestFFT32MatchesFFT(t *testing.T) {
	x := testutil.DeterministicSine(64, 1024, 3, 256)

	ref, err := FFT(x)
	if err != nil {
		t.Fatalf("FFT: %v", err)
	}

	got, err := FFT32(signal.To32(x))
	if err != nil {
		t.Fatalf("FFT32: %v", err)
	}

	for k := range ref {
		if d := cmplxDiff(complex128(got[k]), ref[k]); d > 1e-2 {
			t.Fatalf("bin %d: got %v, want %v (diff %g)", k, got[k], ref[k], d)
		}
	}
}

func TestFFTEmpty(t *testing.T) {
	if _, err := FFT(nil); err != ErrEmptyInput {
		t.Fatalf("FFT(nil) err = %v, want ErrEmptyInput", err)
	}

	if _, err := FFT32(nil); err != ErrEmptyInput {
		t.Fatalf("FFT32(nil) err = %v, want ErrEmptyInput", err)
	}
}

func cmplxDiff(a, b complex128) float64 {
	return math.Hypot(real(a)-real(b), imag(a)-imag(b))
}
