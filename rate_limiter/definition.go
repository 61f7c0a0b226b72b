package rate_limiter

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Definition describes a limiter applied to dataset fetches
type Definition struct {
	Name string
	// token bucket config - a zero FillRate means no rate limit
	FillRate   rate.Limit
	BucketSize int64
	// the max number of fetches in flight - zero means unlimited
	MaxConcurrency int64
}

// PerMinute returns a definition allowing n fetches a minute, one at a time.
// Zero returns a definition which only bounds concurrency. A negative n fails Validate.
func PerMinute(name string, n int) *Definition {
	d := &Definition{
		Name:           name,
		MaxConcurrency: 1,
	}
	switch {
	case n > 0:
		d.FillRate = rate.Every(time.Minute / time.Duration(n))
		d.BucketSize = 1
	case n < 0:
		d.BucketSize = int64(n)
	}
	return d
}

func (d *Definition) String() string {
	var parts []string
	if d.FillRate > 0 {
		parts = append(parts, fmt.Sprintf("Limit(/s): %v, Burst: %d", d.FillRate, d.BucketSize))
	}
	if d.MaxConcurrency > 0 {
		parts = append(parts, fmt.Sprintf("MaxConcurrency: %d", d.MaxConcurrency))
	}
	return strings.Join(parts, " ")
}

func (d *Definition) Validate() []string {
	var validationErrors []string
	if d.Name == "" {
		validationErrors = append(validationErrors, "rate limiter definition must specify a name")
	}
	if (d.FillRate == 0 || d.BucketSize == 0) && d.MaxConcurrency == 0 {
		validationErrors = append(validationErrors, "rate limiter definition must define either a rate limit or max concurrency")
	}
	if d.FillRate < 0 || d.BucketSize < 0 || d.MaxConcurrency < 0 {
		validationErrors = append(validationErrors, "rate limiter definition values must not be negative")
	}

	return validationErrors
}
