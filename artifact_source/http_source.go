package artifact_source

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/turbot/owid-covid-dashboard/types"
)

const dnsLookupMaxParallel = 5

// HttpSource is a [Source] implementation that downloads artifacts with a single http GET
type HttpSource struct {
	client *http.Client
}

// NewHttpSource creates an HttpSource; a zero timeout means no timeout
func NewHttpSource(timeout time.Duration) *HttpSource {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	dialer := &net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}
	if dial := cachingDialContext(dialer, dnsLookupMaxParallel); dial != nil {
		transport.DialContext = dial
	}

	return &HttpSource{
		client: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
	}
}

func (s *HttpSource) Identifier() string {
	return "http"
}

func (s *HttpSource) DownloadArtifact(ctx context.Context, info *types.ArtifactInfo, localPath string) (*types.DownloadedArtifactInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, info.Name, nil)
	if err != nil {
		return nil, &FetchError{Url: info.Name, Err: err}
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &FetchError{Url: info.Name, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{
			Url:        info.Name,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%s", http.StatusText(resp.StatusCode)),
		}
	}

	n, err := writeArtifact(localPath, resp.Body)
	if err != nil {
		return nil, &FetchError{Url: info.Name, Err: err}
	}

	slog.Debug("HttpSource downloaded artifact", "url", info.Name, "local_path", localPath, "size", n)
	return types.NewDownloadedArtifactInfo(info, localPath, n), nil
}

func (s *HttpSource) Close() error {
	s.client.CloseIdleConnections()
	return nil
}
