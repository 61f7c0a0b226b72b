package artifact_source

import (
	"context"

	"github.com/turbot/owid-covid-dashboard/types"
)

// Source downloads an artifact from one kind of remote location
type Source interface {
	Identifier() string
	// DownloadArtifact downloads the artifact and writes it to localPath, replacing any previous contents
	DownloadArtifact(ctx context.Context, info *types.ArtifactInfo, localPath string) (*types.DownloadedArtifactInfo, error)
	Close() error
}
