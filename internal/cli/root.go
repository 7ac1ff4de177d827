// Package cli implements the savings-calc command line.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/inboxsavings/savings-calculator/internal/calculation"
	"github.com/inboxsavings/savings-calculator/internal/domain"
	"github.com/inboxsavings/savings-calculator/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries what every subcommand shares once flags are parsed.
type app struct {
	debug  bool
	log    *zap.Logger
	engine *calculation.CalculationEngine
}

func Execute() {
	cmd := newRootCmd(nil)
	if err := cmd.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. A nil logger is built from --debug.
func newRootCmd(log *zap.Logger) *cobra.Command {
	a := &app{log: log, engine: calculation.NewCalculationEngine()}

	cmd := &cobra.Command{
		Use:           "savings-calc",
		Short:         "Compare email sending infrastructure costs against an inbox offer",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if a.log == nil {
				l, err := logging.New(a.debug)
				if err != nil {
					return fmt.Errorf("failed to build logger: %w", err)
				}
				a.log = l
			}
			a.engine.SetLogger(a.log.Sugar())
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging on stderr")
	cmd.AddCommand(
		calculateCmd(a),
		quickCmd(a),
		previewCmd(a),
		exampleCmd(a),
		formatsCmd(),
		serveCmd(a),
	)
	return cmd
}

// reportError prints err, with one line per field for validation errors.
func reportError(w io.Writer, err error) {
	verrs, ok := domain.AsValidationErrors(err)
	if !ok {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	msg := strings.TrimSuffix(strings.TrimSuffix(err.Error(), verrs.Error()), ": ")
	if msg == "" {
		msg = "validation failed"
	}
	fmt.Fprintf(w, "Error: %s\n", msg)
	for _, fe := range verrs {
		fmt.Fprintf(w, "  %s: %s\n", fe.Field, fe.Message)
	}
}
