package pipeline

import (
	"github.com/turbot/owid-covid-dashboard/observable"
	"github.com/turbot/owid-covid-dashboard/rate_limiter"
	"github.com/turbot/owid-covid-dashboard/schema"
)

type Option func(*Pipeline)

// WithFetcher overrides the default fetcher
func WithFetcher(f Fetcher) Option {
	return func(p *Pipeline) {
		p.fetcher = f
	}
}

// WithLimiter throttles runs, so repeated refreshes cannot re-fetch the dataset more often than def allows
func WithLimiter(def *rate_limiter.Definition) Option {
	return func(p *Pipeline) {
		p.limiter = rate_limiter.NewAPILimiter(def)
	}
}

// WithLoaderFactory overrides the choice of loader for a downloaded artifact
func WithLoaderFactory(f LoaderFactory) Option {
	return func(p *Pipeline) {
		p.loaderFor = f
	}
}

// WithSchema sets the explicit load schema and the columns which must be present
func WithSchema(s *schema.RowSchema, required []string) Option {
	return func(p *Pipeline) {
		p.schema = s
		p.required = required
	}
}

func WithObserver(o observable.Observer) Option {
	return func(p *Pipeline) {
		_ = p.AddObserver(o)
	}
}
