package cli

import (
	"errors"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-goertzel/dsp/core"
	"github.com/cwbudde/algo-goertzel/dsp/goertzel"
	"github.com/cwbudde/algo-goertzel/dsp/spectrum"
)

// TargetResult is the report for one requested frequency.
type TargetResult struct {
	Target        float64 `json:"target_hz" yaml:"target_hz"`
	Representable bool    `json:"representable" yaml:"representable"`
	Bin           int     `json:"bin" yaml:"bin"`
	BinFrequency  float64 `json:"bin_hz" yaml:"bin_hz"`
	Real          float64 `json:"real" yaml:"real"`
	Imag          float64 `json:"imag" yaml:"imag"`
	Magnitude     float64 `json:"magnitude" yaml:"magnitude"`
	MagnitudeDB   float64 `json:"magnitude_db" yaml:"magnitude_db"`
	PhaseDeg      float64 `json:"phase_deg" yaml:"phase_deg"`

	// Set when the result was cross-checked against a full FFT.
	Reference *Reference `json:"reference,omitempty" yaml:"reference,omitempty"`
}

// Reference holds the FFT value of the same bin, normalized like the
// Goertzel result, and the distance between the two.
type Reference struct {
	Magnitude float64 `json:"magnitude" yaml:"magnitude"`
	PhaseDeg  float64 `json:"phase_deg" yaml:"phase_deg"`
	Deviation float64 `json:"deviation" yaml:"deviation"`
}

// SweepPoint is one fractional-bin sample of a sweep.
type SweepPoint struct {
	Bin       float64 `json:"bin" yaml:"bin"`
	Frequency float64 `json:"frequency_hz" yaml:"frequency_hz"`
	Magnitude float64 `json:"magnitude" yaml:"magnitude"`
	PhaseDeg  float64 `json:"phase_deg" yaml:"phase_deg"`
}

// findTargets locates each target in x. ref, when non-nil, holds the full
// FFT of x and is used to cross-check every representable bin.
func findTargets[F goertzel.Float](x []F, n int, fs F, targets []float64, ref []complex128) ([]TargetResult, error) {
	results := make([]TargetResult, 0, len(targets))
	half := float64(n) / 2

	for _, ft := range targets {
		z, err := goertzel.Find(x, n, fs, F(ft))
		if err != nil {
			return nil, err
		}

		res := TargetResult{Target: ft}

		k, err := goertzel.NearestBin(n, fs, F(ft))
		if errors.Is(err, goertzel.ErrAboveNyquist) {
			results = append(results, res)
			continue
		}
		if err != nil {
			return nil, err
		}

		norm := z.Normalize(n)
		res.Representable = true
		res.Bin = k
		res.BinFrequency = float64(goertzel.BinFrequency(F(k), n, fs))
		res.Real = float64(z.Re)
		res.Imag = float64(z.Im)
		res.Magnitude = float64(norm.Abs())
		res.MagnitudeDB = levelDB(res.Magnitude)
		res.PhaseDeg = core.RadToDeg(float64(norm.Phase()))

		if m := len(ref); m > 0 {
			// Integer bins are periodic in N; negative targets map to their alias.
			r := ref[(k%m+m)%m] / complex(half, 0)
			res.Reference = &Reference{
				Magnitude: cmplx.Abs(r),
				PhaseDeg:  core.RadToDeg(cmplx.Phase(r)),
				Deviation: cmplx.Abs(complex(float64(norm.Re), float64(norm.Im)) - r),
			}
		}

		results = append(results, res)
	}

	return results, nil
}

// levelDB converts a normalized magnitude to dB with a -300 dB floor.
func levelDB(mag float64) float64 {
	if db := core.LinearToDB(mag); !math.IsInf(db, -1) && !math.IsNaN(db) {
		return db
	}
	return -300
}

// sweepBins evaluates x between from and to (Hz) in steps of step (Hz).
func sweepBins[F goertzel.Float](x []F, n int, fs F, from, to, step float64) ([]SweepPoint, error) {
	perHz := float64(n) / float64(fs)

	points, err := goertzel.Sweep(x, n, F(from*perHz), F(to*perHz), F(step*perHz))
	if err != nil {
		return nil, err
	}

	values := make([]goertzel.Complex128, len(points))
	bins := make([]complex128, len(points))
	for i, p := range points {
		values[i] = goertzel.Complex128{Re: float64(p.Value.Re), Im: float64(p.Value.Im)}
		bins[i] = values[i].Complex128()
	}

	mags := goertzel.Magnitudes(values)
	phases := spectrum.UnwrapPhase(spectrum.Phase(bins))
	scale := 2 / float64(n)

	out := make([]SweepPoint, len(points))
	for i, p := range points {
		out[i] = SweepPoint{
			Bin:       float64(p.Bin),
			Frequency: float64(goertzel.BinFrequency(p.Bin, n, fs)),
			Magnitude: mags[i] * scale,
			PhaseDeg:  core.RadToDeg(phases[i]),
		}
	}
	return out, nil
}

// referenceFFT64 and referenceFFT32 return the full spectrum used for
// cross-checks, widened to complex128.
func referenceFFT64(x []float64) ([]complex128, error) {
	return spectrum.FFT(x)
}

func referenceFFT32(x []float32) ([]complex128, error) {
	bins, err := spectrum.FFT32(x)
	if err != nil {
		return nil, err
	}

	out := make([]complex128, len(bins))
	for i, b := range bins {
		out[i] = complex128(b)
	}
	return out, nil
}
