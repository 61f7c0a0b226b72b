package artifact_loader

import (
	"context"

	"github.com/turbot/owid-covid-dashboard/table"
	"github.com/turbot/owid-covid-dashboard/types"
)

// Loader is an interface which provides a method for loading a locally saved artifact into a table
// Loaders provided: [CsvLoader], [GzipLoader]
type Loader interface {
	Identifier() string
	// Load the locally saved artifact, performing any necessary decompression, and parse it into a table
	Load(context.Context, *types.DownloadedArtifactInfo) (*table.Table, error)
}
