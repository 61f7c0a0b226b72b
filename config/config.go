package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/turbot/owid-covid-dashboard/artifact_source"
	"github.com/turbot/owid-covid-dashboard/constants"
	"github.com/turbot/owid-covid-dashboard/rate_limiter"
)

const (
	DefaultListen           = "127.0.0.1:8080"
	DefaultRefreshPerMinute = 1
)

// Config is the dashboard config file
//
//	source {
//	  url           = "https://covid.ourworldindata.org/data/owid-covid-data.csv"
//	  artifact_path = "datos_covid.csv"
//	  timeout       = 0
//	}
//	aws { region = "us-east-1" }
//	gcp { credentials = "~/key.json" }
//	dashboard { listen = "127.0.0.1:8080" }
type Config struct {
	Source    *SourceConfig                  `hcl:"source,block"`
	Aws       *artifact_source.AwsConnection `hcl:"aws,block"`
	Gcp       *artifact_source.GcpConnection `hcl:"gcp,block"`
	Dashboard *DashboardConfig               `hcl:"dashboard,block"`
}

type SourceConfig struct {
	Url          *string `hcl:"url"`
	ArtifactPath *string `hcl:"artifact_path"`
	// http timeout in seconds, 0 means no timeout
	Timeout *int `hcl:"timeout"`
}

type DashboardConfig struct {
	Listen *string `hcl:"listen"`
	// the number of refreshes allowed per minute, 0 only prevents concurrent refreshes
	RefreshPerMinute *int `hcl:"refresh_per_minute"`
}

// Default returns a config with no overrides
func Default() *Config {
	return &Config{
		Source:    &SourceConfig{},
		Dashboard: &DashboardConfig{},
	}
}

// Load reads the HCL config file at path. An empty path returns the default config
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data, path)
}

// Parse decodes config from HCL bytes
func Parse(data []byte, filename string) (*Config, error) {
	c := Default()
	if err := ParseConfig(data, filename, c); err != nil {
		return nil, err
	}
	// blocks omitted from the file decode to nil
	if c.Source == nil {
		c.Source = &SourceConfig{}
	}
	if c.Dashboard == nil {
		c.Dashboard = &DashboardConfig{}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	var validationErrors []error
	if c.Source.Url != nil && *c.Source.Url == "" {
		validationErrors = append(validationErrors, errors.New("source url must not be empty"))
	}
	if c.Source.ArtifactPath != nil && *c.Source.ArtifactPath == "" {
		validationErrors = append(validationErrors, errors.New("source artifact_path must not be empty"))
	}
	if c.Source.Timeout != nil && *c.Source.Timeout < 0 {
		validationErrors = append(validationErrors, errors.New("source timeout must not be negative"))
	}
	for _, msg := range c.RefreshLimiter().Validate() {
		validationErrors = append(validationErrors, fmt.Errorf("dashboard refresh_per_minute: %s", msg))
	}
	if c.Aws != nil {
		if err := c.Aws.Validate(); err != nil {
			validationErrors = append(validationErrors, fmt.Errorf("aws: %w", err))
		}
	}
	return errors.Join(validationErrors...)
}

// SetUrl, SetArtifactPath and SetListen apply command line overrides; empty values are ignored

func (c *Config) SetUrl(url string) {
	if url != "" {
		c.Source.Url = &url
	}
}

func (c *Config) SetArtifactPath(path string) {
	if path != "" {
		c.Source.ArtifactPath = &path
	}
}

func (c *Config) SetListen(listen string) {
	if listen != "" {
		c.Dashboard.Listen = &listen
	}
}

func (c *Config) Url() string {
	if c.Source.Url != nil {
		return *c.Source.Url
	}
	return constants.DefaultSourceUrl
}

func (c *Config) ArtifactPath() string {
	if c.Source.ArtifactPath != nil {
		return *c.Source.ArtifactPath
	}
	return constants.DefaultArtifactPath
}

func (c *Config) Timeout() time.Duration {
	if c.Source.Timeout != nil {
		return time.Duration(*c.Source.Timeout) * time.Second
	}
	return 0
}

func (c *Config) Listen() string {
	if c.Dashboard.Listen != nil {
		return *c.Dashboard.Listen
	}
	return DefaultListen
}

func (c *Config) RefreshPerMinute() int {
	if c.Dashboard.RefreshPerMinute != nil {
		return *c.Dashboard.RefreshPerMinute
	}
	return DefaultRefreshPerMinute
}

// RefreshLimiter returns the limiter definition throttling dashboard refreshes
func (c *Config) RefreshLimiter() *rate_limiter.Definition {
	return rate_limiter.PerMinute("refresh", c.RefreshPerMinute())
}

// SourceOptions returns the connection config used to create artifact sources
func (c *Config) SourceOptions() artifact_source.SourceOptions {
	return artifact_source.SourceOptions{
		Timeout: c.Timeout(),
		Aws:     c.Aws,
		Gcp:     c.Gcp,
	}
}
