package main

import (
	"github.com/spf13/cobra"
	"github.com/turbot/owid-covid-dashboard/report"
)

func locationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locations",
		Short: "Download and validate the dataset, then list the locations it contains",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			s := newPipeline(cfg, false).Run(cmd.Context(), nil)
			if s.Halted() {
				return s.Err
			}
			report.RenderLocations(cmd.OutOrStdout(), s.Locations)
			return nil
		},
	}
}
