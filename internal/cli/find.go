package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-goertzel/dsp/signal"
)

func newFindCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find",
		Short: "Report the content of the synthesized signal at target frequencies",
		Long: `find evaluates the DFT bin nearest to each target frequency.

Targets above the Nyquist frequency are reported as not representable.
With --verify every bin is cross-checked against a full FFT of the block.`,
		Example: `  goertzel find
  goertzel find --targets 32,76,600 --precision 32
  goertzel find -r 8000 -n 205 --tones 697:1,1209:1 --targets 697,770,1209,1336 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runFind(cmd)
		},
	}

	cmd.Flags().StringSlice("targets", []string{"32", "76"}, "target frequencies in Hz")
	cmd.Flags().Bool("verify", false, "cross-check each bin against a full FFT")

	return cmd
}

func (a *app) runFind(cmd *cobra.Command) error {
	targets, err := parseTargets(a.cfg.Targets)
	if err != nil {
		return err
	}

	x, err := a.synthesize()
	if err != nil {
		return err
	}

	n := a.cfg.Length
	var results []TargetResult

	switch a.cfg.Precision {
	case 32:
		x32 := signal.To32(x)
		var ref []complex128
		if a.cfg.Verify {
			if ref, err = referenceFFT32(x32); err != nil {
				return err
			}
		}
		results, err = findTargets(x32, n, float32(a.cfg.SampleRate), targets, ref)
	default:
		var ref []complex128
		if a.cfg.Verify {
			if ref, err = referenceFFT64(x); err != nil {
				return err
			}
		}
		results, err = findTargets(x, n, a.cfg.SampleRate, targets, ref)
	}
	if err != nil {
		return err
	}

	for _, r := range results {
		if !r.Representable {
			a.log.Warn("target above Nyquist", zap.Float64("target_hz", r.Target), zap.Float64("nyquist_hz", a.cfg.SampleRate/2))
			continue
		}
		a.log.Debug("target evaluated",
			zap.Float64("target_hz", r.Target),
			zap.Int("bin", r.Bin),
			zap.Float64("magnitude", r.Magnitude),
		)
	}

	return render(cmd.OutOrStdout(), a.cfg.Output, results, targetTable(results, a.cfg.Verify))
}

// synthesize builds one block from the configured tones.
func (a *app) synthesize() ([]float64, error) {
	tones, err := parseTones(a.cfg.Tones)
	if err != nil {
		return nil, err
	}

	gen := signal.NewGenerator(a.cfg.processorOptions()...)
	x, err := gen.Tones(tones...)
	if err != nil {
		return nil, err
	}

	a.log.Debug("signal synthesized",
		zap.Int("tones", len(tones)),
		zap.Int("samples", len(x)),
		zap.Float64("bin_width_hz", gen.Config().BinWidth()),
	)
	return x, nil
}
