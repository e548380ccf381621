package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// render writes v as JSON or YAML, or calls table for the text layout.
func render(w io.Writer, format string, v any, table func(*tabwriter.Writer) error) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "table":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		if err := table(tw); err != nil {
			return err
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func targetTable(results []TargetResult, verify bool) func(*tabwriter.Writer) error {
	return func(tw *tabwriter.Writer) error {
		header := "Target [Hz]\tBin\tBin [Hz]\tMagnitude\tLevel [dB]\tPhase [deg]"
		if verify {
			header += "\tFFT Magnitude\tDeviation"
		}
		if _, err := fmt.Fprintln(tw, header); err != nil {
			return err
		}

		for _, r := range results {
			if !r.Representable {
				if _, err := fmt.Fprintf(tw, "%.2f\t-\t-\tnot representable (above Nyquist)\n", r.Target); err != nil {
					return err
				}
				continue
			}

			line := fmt.Sprintf("%.2f\t%d\t%.2f\t%.6f\t%.2f\t%.2f",
				r.Target, r.Bin, r.BinFrequency, r.Magnitude, r.MagnitudeDB, r.PhaseDeg)
			if verify && r.Reference != nil {
				line += fmt.Sprintf("\t%.6f\t%.3g", r.Reference.Magnitude, r.Reference.Deviation)
			}
			if _, err := fmt.Fprintln(tw, line); err != nil {
				return err
			}
		}
		return nil
	}
}

func sweepTable(points []SweepPoint) func(*tabwriter.Writer) error {
	return func(tw *tabwriter.Writer) error {
		if _, err := fmt.Fprintln(tw, "Bin\tFrequency [Hz]\tMagnitude\tPhase [deg]"); err != nil {
			return err
		}
		for _, p := range points {
			if _, err := fmt.Fprintf(tw, "%.3f\t%.3f\t%.6f\t%.2f\n", p.Bin, p.Frequency, p.Magnitude, p.PhaseDeg); err != nil {
				return err
			}
		}
		return nil
	}
}
