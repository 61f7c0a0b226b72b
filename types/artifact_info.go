package types

import (
	"net/url"
	"path"
)

// ArtifactInfo identifies a remote dataset snapshot
type ArtifactInfo struct {
	// Name is the full source location, e.g. an https url or s3://bucket/key
	Name string `json:"name"`
	// Scheme is the url scheme of Name ("file" for bare paths)
	Scheme string `json:"scheme"`
	// Host is the host or bucket part of Name
	Host string `json:"host,omitempty"`
	// Key is the path or object key part of Name
	Key string `json:"key,omitempty"`
}

// NewArtifactInfo parses a source location into an ArtifactInfo
func NewArtifactInfo(name string) (*ArtifactInfo, error) {
	u, err := url.Parse(name)
	if err != nil {
		return nil, err
	}
	res := &ArtifactInfo{
		Name:   name,
		Scheme: u.Scheme,
		Host:   u.Host,
		Key:    u.Path,
	}
	switch u.Scheme {
	case "":
		// bare local path
		res.Scheme = "file"
		res.Key = name
	case "s3", "gs":
		// object keys have no leading slash
		if len(res.Key) > 0 && res.Key[0] == '/' {
			res.Key = res.Key[1:]
		}
	}
	return res, nil
}

// Ext returns the file extension of the artifact key
func (i *ArtifactInfo) Ext() string {
	return path.Ext(i.Key)
}
