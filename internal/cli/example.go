package cli

import (
	"fmt"

	"github.com/inboxsavings/savings-calculator/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func exampleCmd(a *app) *cobra.Command {
	var out string

	c := &cobra.Command{
		Use:   "example",
		Short: "Write an example comparisons file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ip := config.NewInputParser()
			if err := ip.SaveConfiguration(ip.CreateExampleConfiguration(), out); err != nil {
				return err
			}
			a.log.Debug("example written", zap.String("file", out))
			fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", out)
			return nil
		},
	}
	c.Flags().StringVarP(&out, "output", "o", "example_comparisons.yaml", "Output file")
	return c
}
