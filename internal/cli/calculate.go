package cli

import (
	"fmt"

	"github.com/inboxsavings/savings-calculator/internal/config"
	"github.com/inboxsavings/savings-calculator/internal/domain"
	"github.com/inboxsavings/savings-calculator/internal/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func calculateCmd(a *app) *cobra.Command {
	var input, format, out, reportDir string

	c := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate savings for every comparison in a YAML or JSON file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := output.LookupFormatter(format)
			if err != nil {
				return err
			}
			cfg, err := config.NewInputParser().LoadFromFile(input)
			if err != nil {
				return err
			}
			a.log.Debug("loaded comparisons", zap.String("file", input), zap.Int("count", len(cfg.Comparisons)))

			report, err := a.engine.RunComparisons(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return writeReport(cmd, a, report, f, out, reportDir)
		},
	}

	c.Flags().StringVarP(&input, "input", "i", "", "Comparisons file (required)")
	c.Flags().StringVarP(&format, "format", "f", "console", "Output format")
	c.Flags().StringVarP(&out, "output", "o", "", "Write the report to this file instead of stdout")
	c.Flags().StringVar(&reportDir, "report-dir", "", "Write a timestamped report into this directory")
	_ = c.MarkFlagRequired("input")
	return c
}

// writeReport sends a report to stdout, a named file, or a timestamped file.
func writeReport(cmd *cobra.Command, a *app, report *domain.SavingsReport, f output.Formatter, out, reportDir string) error {
	report.Assumptions = output.GenerateAssumptions(report)
	switch {
	case out != "":
		if err := output.WriteFormattedTo(f, report, out); err != nil {
			return err
		}
		a.log.Info("report written", zap.String("file", out), zap.String("format", f.Name()))
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", out)
	case reportDir != "":
		name, err := output.GenerateReport(report, f.Name(), reportDir)
		if err != nil {
			return err
		}
		a.log.Info("report written", zap.String("file", name), zap.String("format", f.Name()))
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", name)
	default:
		data, err := f.Format(report)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	return nil
}
