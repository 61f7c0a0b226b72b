package rate_limiter

import (
	"errors"
	"fmt"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// ErrLimited is returned by TryAcquire when no capacity is available
var ErrLimited = errors.New("rate limit exceeded")

type APILimiter struct {
	Name string

	// underlying rate limiter
	limiter *rate.Limiter
	// semaphore to control concurrency
	sem *semaphore.Weighted
	def *Definition
}

func NewAPILimiter(l *Definition) *APILimiter {
	res := &APILimiter{
		Name: l.Name,
		def:  l,
	}
	if l.FillRate != 0 {
		res.limiter = rate.NewLimiter(l.FillRate, int(l.BucketSize))
	}
	if l.MaxConcurrency != 0 {
		res.sem = semaphore.NewWeighted(l.MaxConcurrency)
	}
	return res
}

func (l *APILimiter) String() string {
	return fmt.Sprintf("%s(%s)", l.Name, l.def)
}

// TryAcquire reserves a call without blocking, returning ErrLimited if the call is not allowed now
// a successful TryAcquire must be paired with Release
func (l *APILimiter) TryAcquire() error {
	if l.sem != nil && !l.sem.TryAcquire(1) {
		return fmt.Errorf("%s: %w: a fetch is already in progress", l.Name, ErrLimited)
	}
	if l.limiter != nil && !l.limiter.Allow() {
		l.Release()
		return fmt.Errorf("%s: %w", l.Name, ErrLimited)
	}
	return nil
}

func (l *APILimiter) Release() {
	if l.sem == nil {
		return
	}
	l.sem.Release(1)
}
