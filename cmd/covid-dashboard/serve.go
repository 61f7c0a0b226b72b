package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/turbot/owid-covid-dashboard/config"
	"github.com/turbot/owid-covid-dashboard/dashboard"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the interactive dashboard over http",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			server := dashboard.New(newPipeline(cfg, true))
			return server.ListenAndServe(ctx, cfg.Listen())
		},
	}

	cmd.Flags().String(flagListen, "", "Address the dashboard listens on (default "+config.DefaultListen+")")
	_ = viper.BindPFlag(flagListen, cmd.Flags().Lookup(flagListen))

	return cmd
}

