package events

import (
	"github.com/turbot/owid-covid-dashboard/types"
)

type ArtifactDownloaded struct {
	Base
	ExecutionId string
	Info        *types.DownloadedArtifactInfo
}

func NewArtifactDownloadedEvent(executionId string, info *types.DownloadedArtifactInfo) *ArtifactDownloaded {
	return &ArtifactDownloaded{
		ExecutionId: executionId,
		Info:        info,
	}
}
