package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/inboxsavings/savings-calculator/internal/config"
	"github.com/inboxsavings/savings-calculator/internal/logging"
	"github.com/inboxsavings/savings-calculator/internal/server"
	"github.com/spf13/cobra"
)

func serveCmd(a *app) *cobra.Command {
	var configPath string

	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator as a JSON HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadServerConfigFromEnv(configPath)
			if err != nil {
				return err
			}
			log := a.log
			if cfg.Debug && !a.debug {
				if log, err = logging.New(true); err != nil {
					return err
				}
				a.engine.SetLogger(log.Sugar())
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.New(cfg, a.engine, log).Run(ctx)
		},
	}
	c.Flags().StringVarP(&configPath, "config", "c", "", "Server config file (optional)")
	return c
}
