package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func fetchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch",
		Short: "Download the dataset to the local artifact path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			info, err := newFetcher(cfg).Fetch(cmd.Context(), cfg.Url(), cfg.ArtifactPath())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Downloaded %d bytes from %s to %s\n", info.Size, info.Name, info.LocalName)
			return nil
		},
	}
}
