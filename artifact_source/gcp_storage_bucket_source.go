package artifact_source

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"cloud.google.com/go/storage"
	"github.com/turbot/owid-covid-dashboard/types"
)

// GcpStorageBucketSource is a [Source] implementation that downloads an artifact from a GCP Storage bucket
type GcpStorageBucketSource struct {
	Connection *GcpConnection
	client     *storage.Client
}

func NewGcpStorageBucketSource(ctx context.Context, connection *GcpConnection) (*GcpStorageBucketSource, error) {
	if connection == nil {
		connection = &GcpConnection{}
	}
	opts, err := connection.GetClientOptions()
	if err != nil {
		return nil, err
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &GcpStorageBucketSource{
		Connection: connection,
		client:     client,
	}, nil
}

func (s *GcpStorageBucketSource) Identifier() string {
	return "gcp_storage_bucket"
}

func (s *GcpStorageBucketSource) DownloadArtifact(ctx context.Context, info *types.ArtifactInfo, localPath string) (*types.DownloadedArtifactInfo, error) {
	if info.Host == "" || info.Key == "" {
		return nil, &FetchError{Url: info.Name, Err: errors.New("gs location must be of the form gs://bucket/object")}
	}

	reader, err := s.client.Bucket(info.Host).Object(info.Key).NewReader(ctx)
	if err != nil {
		return nil, &FetchError{Url: info.Name, Err: fmt.Errorf("failed to get object reader: %w", err)}
	}
	defer reader.Close()

	n, err := writeArtifact(localPath, reader)
	if err != nil {
		return nil, &FetchError{Url: info.Name, Err: err}
	}

	slog.Debug("GcpStorageBucketSource downloaded artifact", "bucket", info.Host, "object", info.Key, "size", n)
	return types.NewDownloadedArtifactInfo(info, localPath, n), nil
}

func (s *GcpStorageBucketSource) Close() error {
	return s.client.Close()
}
