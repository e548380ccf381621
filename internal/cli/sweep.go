package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-goertzel/dsp/signal"
)

func newSweepCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Scan the spectrum of the synthesized signal at sub-bin resolution",
		Long: `sweep evaluates the transform at fractional bins between --from and
--to (both in Hz) in increments of --step Hz. Phase is unwrapped across the
sweep.`,
		Example: `  goertzel sweep --from 28 --to 36 --step 0.25
  goertzel sweep --tones 33:1 --from 24 --to 44 --step 1 -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runSweep(cmd)
		},
	}

	cmd.Flags().Float64("from", 28, "first frequency in Hz")
	cmd.Flags().Float64("to", 36, "last frequency in Hz")
	cmd.Flags().Float64("step", 0.5, "frequency increment in Hz")

	return cmd
}

func (a *app) runSweep(cmd *cobra.Command) error {
	x, err := a.synthesize()
	if err != nil {
		return err
	}

	n, c := a.cfg.Length, a.cfg
	var points []SweepPoint

	switch c.Precision {
	case 32:
		points, err = sweepBins(signal.To32(x), n, float32(c.SampleRate), c.From, c.To, c.Step)
	default:
		points, err = sweepBins(x, n, c.SampleRate, c.From, c.To, c.Step)
	}
	if err != nil {
		return err
	}

	a.log.Debug("sweep completed", zap.Int("points", len(points)))

	return render(cmd.OutOrStdout(), c.Output, points, sweepTable(points))
}
