package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-goertzel/dsp/core"
	"github.com/cwbudde/algo-goertzel/dsp/signal"
)

const envPrefix = "GOERTZEL"

// Config is the resolved command configuration. Values come from flags,
// GOERTZEL_* environment variables, an optional YAML file and defaults, in
// that order of precedence.
type Config struct {
	SampleRate float64  `mapstructure:"sample_rate"`
	Length     int      `mapstructure:"length"`
	Precision  int      `mapstructure:"precision"`
	Output     string   `mapstructure:"output"`
	LogLevel   string   `mapstructure:"log_level"`
	Tones      []string `mapstructure:"tones"`
	Targets    []string `mapstructure:"targets"`
	Verify     bool     `mapstructure:"verify"`
	From       float64  `mapstructure:"from"`
	To         float64  `mapstructure:"to"`
	Step       float64  `mapstructure:"step"`
}

// setDefaults reproduces the classic two-tone demo: 7*sin(32 Hz) plus
// 2*cos(76 Hz), 256 samples at 1024 Hz.
func setDefaults(v *viper.Viper) {
	def := core.DefaultProcessorConfig()

	v.SetDefault("sample_rate", def.SampleRate)
	v.SetDefault("length", def.BlockSize)
	v.SetDefault("precision", 64)
	v.SetDefault("output", "table")
	v.SetDefault("log_level", "info")
	v.SetDefault("tones", []string{"32:7:sin", "76:2:cos"})
	v.SetDefault("targets", []string{"32", "76"})
	v.SetDefault("verify", false)
	v.SetDefault("from", 28.0)
	v.SetDefault("to", 36.0)
	v.SetDefault("step", 0.5)
}

// readConfigFile loads the explicit file, or searches the working directory
// and $HOME/.config/goertzel for goertzel.yaml. A missing search result is
// not an error; a missing explicit file is.
func readConfigFile(v *viper.Viper, file string) error {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "goertzel"))
		}
		v.SetConfigName("goertzel")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && file == "" {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

// bindFlags binds every flag of cmd, inherited ones included, to the viper
// key derived from its name and to the matching environment variable.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var lastErr error

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" || f.Name == "help" {
			return
		}

		key := strings.ReplaceAll(f.Name, "-", "_")
		if err := v.BindPFlag(key, f); err != nil {
			lastErr = err
		}
		if err := v.BindEnv(key, envPrefix+"_"+strings.ToUpper(key)); err != nil {
			lastErr = err
		}
	})

	return lastErr
}

func loadConfig(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	block := core.ProcessorConfig{SampleRate: c.SampleRate, BlockSize: c.Length}
	if err := block.Validate(); err != nil {
		return err
	}

	if c.Precision != 32 && c.Precision != 64 {
		return fmt.Errorf("precision must be 32 or 64: %d", c.Precision)
	}

	switch c.Output {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("unsupported output format %q (table, json, yaml)", c.Output)
	}

	return nil
}

func (c Config) processorOptions() []core.ProcessorOption {
	return []core.ProcessorOption{core.WithSampleRate(c.SampleRate), core.WithBlockSize(c.Length)}
}

// parseTones converts "freq:amplitude[:sin|cos[:phaseDeg]]" specifications.
func parseTones(specs []string) ([]signal.Tone, error) {
	tones := make([]signal.Tone, 0, len(specs))
	for _, spec := range specs {
		parts := strings.Split(strings.TrimSpace(spec), ":")
		if len(parts) < 2 || len(parts) > 4 {
			return nil, fmt.Errorf("tone %q: want freq:amplitude[:sin|cos[:phase]]", spec)
		}

		freq, err := cast.ToFloat64E(parts[0])
		if err != nil {
			return nil, fmt.Errorf("tone %q: frequency: %w", spec, err)
		}
		amp, err := cast.ToFloat64E(parts[1])
		if err != nil {
			return nil, fmt.Errorf("tone %q: amplitude: %w", spec, err)
		}

		tone := signal.Tone{Frequency: freq, Amplitude: amp}
		if len(parts) > 2 {
			if tone.Waveform, err = signal.ParseWaveform(parts[2]); err != nil {
				return nil, fmt.Errorf("tone %q: %w", spec, err)
			}
		}
		if len(parts) > 3 {
			deg, err := cast.ToFloat64E(parts[3])
			if err != nil {
				return nil, fmt.Errorf("tone %q: phase: %w", spec, err)
			}
			tone.Phase = deg / core.RadToDeg(1)
		}

		tones = append(tones, tone)
	}
	return tones, nil
}

func parseTargets(specs []string) ([]float64, error) {
	targets := make([]float64, len(specs))
	for i, spec := range specs {
		f, err := cast.ToFloat64E(strings.TrimSpace(spec))
		if err != nil {
			return nil, fmt.Errorf("target %q: %w", spec, err)
		}
		targets[i] = f
	}
	return targets, nil
}
