package signal

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/cwbudde/algo-goertzel/dsp/core"
)

// Waveform selects the basis function of a [Tone].
type Waveform int

const (
	// Sine starts at zero phase: a*sin(2*pi*f*t + phase).
	Sine Waveform = iota
	// Cosine starts at its peak: a*cos(2*pi*f*t + phase).
	Cosine
)

// String returns the short waveform name used in tone specifications.
func (w Waveform) String() string {
	switch w {
	case Sine:
		return "sin"
	case Cosine:
		return "cos"
	default:
		return "unknown"
	}
}

// ParseWaveform converts "sin"/"sine" or "cos"/"cosine" to a Waveform.
func ParseWaveform(s string) (Waveform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sin", "sine", "":
		return Sine, nil
	case "cos", "cosine":
		return Cosine, nil
	default:
		return Sine, fmt.Errorf("signal: unknown waveform %q", s)
	}
}

// Tone is one sinusoidal component of a synthesized signal.
type Tone struct {
	Frequency float64 // Hz
	Amplitude float64
	Phase     float64 // radians
	Waveform  Waveform
}

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return NewGeneratorWithOptions(opts)
}

// NewGeneratorWithOptions creates a configured signal generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyProcessorOptions(coreOpts...),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Sine generates one block of a*sin(2*pi*f*n/fs).
func (g *Generator) Sine(freqHz, amplitude float64) ([]float64, error) {
	return g.Tones(Tone{Frequency: freqHz, Amplitude: amplitude, Waveform: Sine})
}

// Cosine generates one block of a*cos(2*pi*f*n/fs).
func (g *Generator) Cosine(freqHz, amplitude float64) ([]float64, error) {
	return g.Tones(Tone{Frequency: freqHz, Amplitude: amplitude, Waveform: Cosine})
}

// Tones generates one block holding the sum of the given tones.
func (g *Generator) Tones(tones ...Tone) ([]float64, error) {
	if err := g.cfg.Validate(); err != nil {
		return nil, err
	}

	out := make([]float64, g.cfg.BlockSize)
	dt := 1 / g.cfg.SampleRate

	for _, tone := range tones {
		step := 2 * math.Pi * tone.Frequency * dt
		for i := range out {
			arg := step*float64(i) + tone.Phase
			switch tone.Waveform {
			case Cosine:
				out[i] += tone.Amplitude * math.Cos(arg)
			default:
				out[i] += tone.Amplitude * math.Sin(arg)
			}
		}
	}
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64) ([]float64, error) {
	if err := g.cfg.Validate(); err != nil {
		return nil, err
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("signal: noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, g.cfg.BlockSize)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// To32 converts a block to single precision.
func To32(data []float64) []float32 {
	out := make([]float32, len(data))
	for i, v := range data {
		out[i] = float32(v)
	}
	return out
}
