package core

import "fmt"

// ProcessorConfig defines the block geometry shared by analyzers and
// generators: the sampling rate in Hz and the block length N in samples.
type ProcessorConfig struct {
	SampleRate float64
	BlockSize  int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns a 256-sample block at 1024 Hz, giving 4 Hz
// bins and a 512 Hz Nyquist limit.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 1024,
		BlockSize:  256,
	}
}

// WithSampleRate sets the sampling rate. Non-positive values are ignored.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithBlockSize sets the block length. Non-positive values are ignored.
func WithBlockSize(blockSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if blockSize > 0 {
			cfg.BlockSize = blockSize
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// BinWidth returns the spacing between adjacent bins in Hz.
func (c ProcessorConfig) BinWidth() float64 {
	return c.SampleRate / float64(c.BlockSize)
}

// Nyquist returns half the sampling rate.
func (c ProcessorConfig) Nyquist() float64 {
	return c.SampleRate / 2
}

// Validate reports a configuration that cannot describe a block.
func (c ProcessorConfig) Validate() error {
	if !(c.SampleRate > 0) {
		return fmt.Errorf("core: sample rate must be > 0: %v", c.SampleRate)
	}
	if c.BlockSize <= 0 {
		return fmt.Errorf("core: block size must be > 0: %d", c.BlockSize)
	}

	return nil
}
