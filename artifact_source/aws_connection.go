package artifact_source

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

// AwsConnection holds the credentials and client options used to read s3:// artifacts
type AwsConnection struct {
	Region       *string `hcl:"region"`
	Profile      *string `hcl:"profile"`
	AccessKey    *string `hcl:"access_key"`
	SecretKey    *string `hcl:"secret_key"`
	SessionToken *string `hcl:"session_token"`
	EndpointUrl  *string `hcl:"endpoint_url"`
	// path style addressing is required by most s3 compatible stores
	S3ForcePathStyle *bool `hcl:"s3_force_path_style"`
}

func (c *AwsConnection) Validate() error {
	if c.AccessKey != nil && c.SecretKey == nil {
		return fmt.Errorf("access_key set without secret_key")
	}

	if c.AccessKey == nil && c.SecretKey != nil {
		return fmt.Errorf("secret_key set without access_key")
	}

	return nil
}

func (c *AwsConnection) Identifier() string {
	return "aws"
}

func (c *AwsConnection) GetClientConfiguration(ctx context.Context) (*aws.Config, error) {
	var configOptions []func(*config.LoadOptions) error

	// profile
	if c.Profile != nil {
		configOptions = append(configOptions, config.WithSharedConfigProfile(aws.ToString(c.Profile)))
	}

	// access keys
	if c.AccessKey != nil && c.SecretKey != nil {
		provider := credentials.NewStaticCredentialsProvider(aws.ToString(c.AccessKey), aws.ToString(c.SecretKey), aws.ToString(c.SessionToken))
		configOptions = append(configOptions, config.WithCredentialsProvider(provider))
	}

	// shared http client
	configOptions = append(configOptions, config.WithHTTPClient(awsHTTPClient()))

	if c.Region != nil {
		configOptions = append(configOptions, config.WithRegion(*c.Region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, configOptions...)
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	// if no region from base config, apply default region
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}

	return &cfg, nil
}

// endpointUrl returns the custom endpoint from config or the AWS_ENDPOINT_URL environment variable
func (c *AwsConnection) endpointUrl() string {
	return getConfigOrEnv(c.EndpointUrl, "AWS_ENDPOINT_URL")
}

// Helper function to get value from Config or environment variable
func getConfigOrEnv(configValue *string, env string) string {
	if configValue != nil {
		return *configValue
	}

	return os.Getenv(env)
}

// awsHTTPClient builds an AWS http client which resolves hosts through the shared dns cache
func awsHTTPClient() aws.HTTPClient {
	client := awshttp.NewBuildableClient()

	if dial := cachingDialContext(client.GetDialer(), dnsLookupMaxParallel); dial != nil {
		client = client.WithTransportOptions(func(tr *http.Transport) {
			tr.DialContext = dial
		})
	}
	return client
}
