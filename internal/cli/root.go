// Package cli implements the goertzel command: it synthesizes test signals
// and reports single-bin Goertzel results for them.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// app carries per-invocation state shared by the subcommands.
type app struct {
	v          *viper.Viper
	configFile string
	cfg        Config
	log        *zap.Logger
}

// NewRootCommand returns the goertzel command tree.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New(), log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "goertzel",
		Short: "Single-bin spectral analysis with the Goertzel algorithm",
		Long: `goertzel synthesizes a test signal from a list of tones and evaluates
individual DFT bins of it with the Goertzel recursion.

Tones are given as freq:amplitude[:sin|cos[:phaseDeg]]. Results are
normalized by N/2 so a bin-centered tone reads back as its amplitude.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initialize(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (default is ./goertzel.yaml or $HOME/.config/goertzel/goertzel.yaml)")
	pf.Float64P("sample-rate", "r", 1024, "sampling rate in Hz")
	pf.IntP("length", "n", 256, "block length N in samples")
	pf.Int("precision", 64, "sample precision in bits (32 or 64)")
	pf.StringP("output", "o", "table", "output format (table, json, yaml)")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.StringSlice("tones", []string{"32:7:sin", "76:2:cos"}, "tones to synthesize, freq:amplitude[:sin|cos[:phaseDeg]]")

	root.AddCommand(newFindCommand(a), newSweepCommand(a))

	return root
}

func (a *app) initialize(cmd *cobra.Command) error {
	setDefaults(a.v)
	a.v.SetEnvPrefix(envPrefix)
	a.v.AutomaticEnv()

	if err := readConfigFile(a.v, a.configFile); err != nil {
		return err
	}
	if err := bindFlags(cmd, a.v); err != nil {
		return err
	}

	cfg, err := loadConfig(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.log = log

	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.Debug("loaded config file", zap.String("path", used))
	}
	a.log.Debug("configuration resolved",
		zap.Float64("sample_rate", cfg.SampleRate),
		zap.Int("length", cfg.Length),
		zap.Int("precision", cfg.Precision),
		zap.Strings("tones", cfg.Tones),
	)

	return nil
}

// Execute runs the command tree with the given arguments and streams.
func Execute(args []string, stdout, stderr io.Writer) error {
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		return fmt.Errorf("goertzel: %w", err)
	}
	return nil
}
