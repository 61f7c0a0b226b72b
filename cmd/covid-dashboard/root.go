package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/turbot/owid-covid-dashboard/artifact_source"
	"github.com/turbot/owid-covid-dashboard/config"
	"github.com/turbot/owid-covid-dashboard/constants"
	"github.com/turbot/owid-covid-dashboard/observable"
	"github.com/turbot/owid-covid-dashboard/pipeline"
)

const (
	flagConfig       = "config"
	flagUrl          = "url"
	flagArtifactPath = "artifact-path"
	flagListen       = "listen"
)

// Build the cobra command that handles our command line tool.
func rootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           constants.AppName + " COMMAND [args]",
		Short:         "Statistics and charts of the Our World in Data COVID-19 dataset",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String(flagConfig, "", "Path of an HCL config file")
	rootCmd.PersistentFlags().String(flagUrl, "", fmt.Sprintf("Location of the dataset (default %s)", constants.DefaultSourceUrl))
	rootCmd.PersistentFlags().String(flagArtifactPath, "", fmt.Sprintf("Local path the dataset is written to (default %s)", constants.DefaultArtifactPath))

	// Using Viper to bind flags, with environment overrides, e.g. COVID_DASHBOARD_ARTIFACT_PATH
	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	for _, name := range []string{flagConfig, flagUrl, flagArtifactPath} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}

	rootCmd.AddCommand(
		fetchCmd(),
		locationsCmd(),
		showCmd(),
		serveCmd(),
	)

	return rootCmd
}

func Execute() int {
	if err := rootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 1
	}
	return 0
}

// loadConfig reads the config file and applies flag and environment overrides
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(viper.GetString(flagConfig))
	if err != nil {
		return nil, err
	}
	cfg.SetUrl(viper.GetString(flagUrl))
	cfg.SetArtifactPath(viper.GetString(flagArtifactPath))
	cfg.SetListen(viper.GetString(flagListen))
	return cfg, nil
}

func newFetcher(cfg *config.Config) *artifact_source.Fetcher {
	return artifact_source.NewFetcher(artifact_source.WithSourceOptions(cfg.SourceOptions()))
}

func newPipeline(cfg *config.Config, throttled bool) *pipeline.Pipeline {
	opts := []pipeline.Option{
		pipeline.WithFetcher(newFetcher(cfg)),
		pipeline.WithObserver(observable.NewLoggingObserver(slog.Default())),
	}
	if throttled {
		opts = append(opts, pipeline.WithLimiter(cfg.RefreshLimiter()))
	}
	return pipeline.New(cfg.Url(), cfg.ArtifactPath(), opts...)
}
