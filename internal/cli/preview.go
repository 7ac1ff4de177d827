package cli

import (
	"fmt"

	"github.com/inboxsavings/savings-calculator/internal/calculation"
	"github.com/inboxsavings/savings-calculator/internal/config"
	"github.com/spf13/cobra"
)

func previewCmd(_ *app) *cobra.Command {
	var volume string

	c := &cobra.Command{
		Use:   "preview",
		Short: "Show how many domains a desired daily volume needs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := config.NewInputParser().ParseDesiredVolume(volume)
			if err != nil {
				return err
			}
			n, _ := calculation.PreviewDomains(v)
			fmt.Fprintf(cmd.OutOrStdout(), "Domains needed: %d\n", n)
			return nil
		},
	}
	c.Flags().StringVar(&volume, "desired-daily-volume", "", "Desired daily email volume (required)")
	_ = c.MarkFlagRequired("desired-daily-volume")
	return c
}
