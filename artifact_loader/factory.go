package artifact_loader

import (
	"github.com/turbot/owid-covid-dashboard/schema"
	"github.com/turbot/owid-covid-dashboard/types"
)

var gzipExtensions = types.NewExtensionLookup(".gz", ".gzip")

// LoaderForArtifact returns the loader for a downloaded artifact, based on the extension of its local name
// or of its source location
func LoaderForArtifact(info *types.DownloadedArtifactInfo, s *schema.RowSchema) Loader {
	if gzipExtensions.Matches(info.LocalName) || gzipExtensions.Matches(info.Key) {
		return NewGzipLoader(s)
	}
	return NewCsvLoader(s)
}
