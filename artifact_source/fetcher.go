package artifact_source

import (
	"context"
	"log/slog"

	"github.com/turbot/owid-covid-dashboard/types"
)

// Fetcher downloads the dataset snapshot to the local artifact path. A failed fetch is never retried.
type Fetcher struct {
	Options SourceOptions
}

type FetcherOption func(*Fetcher)

// WithSourceOptions sets the connection config used to create sources
func WithSourceOptions(opts SourceOptions) FetcherOption {
	return func(f *Fetcher) {
		f.Options = opts
	}
}

func NewFetcher(opts ...FetcherOption) *Fetcher {
	f := &Fetcher{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch performs a single retrieval of url and writes the full body to localPath, replacing previous contents.
// Any failure is returned as a *FetchError.
func (f *Fetcher) Fetch(ctx context.Context, url, localPath string) (*types.DownloadedArtifactInfo, error) {
	info, err := types.NewArtifactInfo(url)
	if err != nil {
		return nil, &FetchError{Url: url, Err: err}
	}

	localPath, err = ExpandPath(localPath)
	if err != nil {
		return nil, &FetchError{Url: url, Err: err}
	}

	source, err := Factory.NewSource(ctx, info, f.Options)
	if err != nil {
		return nil, &FetchError{Url: url, Err: err}
	}
	defer source.Close()

	slog.Info("fetching dataset", "url", url, "source", source.Identifier(), "local_path", localPath)
	return source.DownloadArtifact(ctx, info, localPath)
}
