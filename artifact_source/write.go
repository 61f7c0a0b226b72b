package artifact_source

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

// ExpandPath expands a leading ~ in the local artifact path
func ExpandPath(localPath string) (string, error) {
	return homedir.Expand(localPath)
}

// writeArtifact copies r to localPath, truncating any previous contents, and returns the number of bytes written
func writeArtifact(localPath string, r io.Reader) (int64, error) {
	// ensure the directory exists of the file to write to
	if dir := filepath.Dir(localPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return 0, fmt.Errorf("failed to create directory for file, %w", err)
		}
	}

	outFile, err := os.Create(localPath)
	if err != nil {
		return 0, fmt.Errorf("failed to create file, %w", err)
	}
	defer outFile.Close()

	n, err := io.Copy(outFile, r)
	if err != nil {
		return n, fmt.Errorf("failed to write data to file, %w", err)
	}
	return n, outFile.Close()
}
