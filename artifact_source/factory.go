package artifact_source

import (
	"context"
	"fmt"
	"time"

	"github.com/turbot/owid-covid-dashboard/types"
)

// Factory is a global SourceFactory instance
var Factory = newFactory()

// SourceOptions carries the connection config passed to source constructors
type SourceOptions struct {
	// http client timeout, zero means no timeout
	Timeout time.Duration
	Aws     *AwsConnection
	Gcp     *GcpConnection
}

type sourceCtor func(ctx context.Context, opts SourceOptions) (Source, error)

type SourceFactory struct {
	sources map[string]sourceCtor
}

func newFactory() SourceFactory {
	f := SourceFactory{
		sources: make(map[string]sourceCtor),
	}
	httpCtor := func(_ context.Context, opts SourceOptions) (Source, error) {
		return NewHttpSource(opts.Timeout), nil
	}
	f.RegisterSource(httpCtor, "http", "https")
	f.RegisterSource(func(ctx context.Context, opts SourceOptions) (Source, error) {
		return NewAwsS3BucketSource(ctx, opts.Aws)
	}, "s3")
	f.RegisterSource(func(ctx context.Context, opts SourceOptions) (Source, error) {
		return NewGcpStorageBucketSource(ctx, opts.Gcp)
	}, "gs")
	f.RegisterSource(func(context.Context, SourceOptions) (Source, error) {
		return NewFileSystemSource(), nil
	}, "file")
	return f
}

// RegisterSource registers a source constructor for each of the given url schemes
func (f *SourceFactory) RegisterSource(ctor sourceCtor, schemes ...string) {
	for _, scheme := range schemes {
		f.sources[scheme] = ctor
	}
}

// NewSource instantiates the source which handles the scheme of info
// It will fail if no source is registered for the scheme
func (f *SourceFactory) NewSource(ctx context.Context, info *types.ArtifactInfo, opts SourceOptions) (Source, error) {
	ctor, ok := f.sources[info.Scheme]
	if !ok {
		return nil, fmt.Errorf("no source registered for scheme '%s'", info.Scheme)
	}
	source, err := ctor(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to initialise source: %w", err)
	}
	return source, nil
}
