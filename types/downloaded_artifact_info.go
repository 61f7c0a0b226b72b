package types

import "time"

// DownloadedArtifactInfo contains information about a downloaded artifact
// is the same as ArtifactInfo, but with the local path and size
type DownloadedArtifactInfo struct {
	ArtifactInfo
	// the path of the downloaded artifact
	LocalName string `json:"local_name"`

	Size         int64     `json:"size"`
	DownloadedAt time.Time `json:"downloaded_at"`
}

func NewDownloadedArtifactInfo(artifactInfo *ArtifactInfo, localName string, size int64) *DownloadedArtifactInfo {
	res := &DownloadedArtifactInfo{
		ArtifactInfo: *artifactInfo,
		LocalName:    localName,
		Size:         size,
		DownloadedAt: time.Now(),
	}

	return res
}
