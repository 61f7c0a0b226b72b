package artifact_source

import (
	"context"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/turbot/owid-covid-dashboard/types"
)

// FileSystemSource is a [Source] implementation that copies an artifact from the local file system
type FileSystemSource struct{}

func NewFileSystemSource() *FileSystemSource {
	return &FileSystemSource{}
}

func (s *FileSystemSource) Identifier() string {
	return "file_system"
}

func (s *FileSystemSource) DownloadArtifact(_ context.Context, info *types.ArtifactInfo, localPath string) (*types.DownloadedArtifactInfo, error) {
	sourcePath, err := homedir.Expand(info.Key)
	if err != nil {
		return nil, &FetchError{Url: info.Name, Err: err}
	}

	// the artifact is already in place
	if same, _ := samePath(sourcePath, localPath); same {
		stat, err := os.Stat(sourcePath)
		if err != nil {
			return nil, &FetchError{Url: info.Name, Err: err}
		}
		return types.NewDownloadedArtifactInfo(info, localPath, stat.Size()), nil
	}

	f, err := os.Open(sourcePath)
	if err != nil {
		return nil, &FetchError{Url: info.Name, Err: err}
	}
	defer f.Close()

	n, err := writeArtifact(localPath, f)
	if err != nil {
		return nil, &FetchError{Url: info.Name, Err: err}
	}
	return types.NewDownloadedArtifactInfo(info, localPath, n), nil
}

func samePath(a, b string) (bool, error) {
	absA, err := filepath.Abs(a)
	if err != nil {
		return false, err
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false, err
	}
	return absA == absB, nil
}

func (s *FileSystemSource) Close() error {
	return nil
}
