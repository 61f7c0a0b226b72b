package artifact_source

import (
	"fmt"
)

// FetchError is returned for any failure retrieving the dataset: dns, connection, timeout,
// a non 2xx response or a failure writing the local artifact
type FetchError struct {
	Url string
	// StatusCode is the http status of a non 2xx response, 0 otherwise
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("error downloading %s: unexpected status %d: %s", e.Url, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("error downloading %s: %s", e.Url, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
