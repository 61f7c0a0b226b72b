package artifact_loader

import (
	"compress/gzip"
	"context"
	"os"

	"github.com/turbot/owid-covid-dashboard/schema"
	"github.com/turbot/owid-covid-dashboard/table"
	"github.com/turbot/owid-covid-dashboard/types"
)

const GzipLoaderIdentifier = "gzip_loader"

// GzipLoader is a Loader which decompresses a gzip artifact and parses the content as CSV
type GzipLoader struct {
	csv *CsvLoader
}

func NewGzipLoader(s *schema.RowSchema) Loader {
	return &GzipLoader{csv: &CsvLoader{Schema: s}}
}

func (g *GzipLoader) Identifier() string {
	return GzipLoaderIdentifier
}

// Load implements [Loader]
func (g *GzipLoader) Load(ctx context.Context, info *types.DownloadedArtifactInfo) (*table.Table, error) {
	inputPath := info.LocalName
	gzFile, err := os.Open(inputPath)
	if err != nil {
		return nil, &LoadError{Path: inputPath, Err: err}
	}
	defer gzFile.Close()

	gzReader, err := gzip.NewReader(gzFile)
	if err != nil {
		return nil, &LoadError{Path: inputPath, Err: err}
	}
	defer gzReader.Close()

	return g.csv.LoadReader(ctx, inputPath, gzReader)
}
