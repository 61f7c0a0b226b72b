package artifact_source

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/turbot/owid-covid-dashboard/types"
)

// AwsS3BucketSource is a [Source] implementation that downloads an artifact from an S3 bucket
type AwsS3BucketSource struct {
	Connection *AwsConnection
	client     *s3.Client
}

func NewAwsS3BucketSource(ctx context.Context, connection *AwsConnection) (*AwsS3BucketSource, error) {
	if connection == nil {
		connection = &AwsConnection{}
	}
	if err := connection.Validate(); err != nil {
		return nil, fmt.Errorf("invalid aws connection: %w", err)
	}

	client, err := getS3Client(ctx, connection)
	if err != nil {
		return nil, err
	}

	return &AwsS3BucketSource{
		Connection: connection,
		client:     client,
	}, nil
}

func (s *AwsS3BucketSource) Identifier() string {
	return "aws_s3_bucket"
}

func (s *AwsS3BucketSource) DownloadArtifact(ctx context.Context, info *types.ArtifactInfo, localPath string) (*types.DownloadedArtifactInfo, error) {
	if info.Host == "" || info.Key == "" {
		return nil, &FetchError{Url: info.Name, Err: errors.New("s3 location must be of the form s3://bucket/key")}
	}

	getObjectOutput, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(info.Host),
		Key:    aws.String(info.Key),
	})
	if err != nil {
		return nil, &FetchError{Url: info.Name, Err: fmt.Errorf("failed to get object: %w", err)}
	}
	defer getObjectOutput.Body.Close()

	n, err := writeArtifact(localPath, getObjectOutput.Body)
	if err != nil {
		return nil, &FetchError{Url: info.Name, Err: err}
	}

	slog.Debug("AwsS3BucketSource downloaded artifact", "bucket", info.Host, "key", info.Key, "size", n)
	return types.NewDownloadedArtifactInfo(info, localPath, n), nil
}

func (s *AwsS3BucketSource) Close() error {
	return nil
}

func getS3Client(ctx context.Context, connection *AwsConnection) (*s3.Client, error) {
	cfg, err := connection.GetClientConfiguration(ctx)
	if err != nil {
		return nil, err
	}

	var opts []func(*s3.Options)
	if endpoint := connection.endpointUrl(); endpoint != "" {
		opts = append(opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(endpoint)
		})
	}
	if connection.S3ForcePathStyle != nil {
		opts = append(opts, func(o *s3.Options) {
			o.UsePathStyle = *connection.S3ForcePathStyle
		})
	}

	return s3.NewFromConfig(*cfg, opts...), nil
}
