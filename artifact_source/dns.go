package artifact_source

import (
	"context"
	"net"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/rs/dnscache"
	"github.com/turbot/owid-covid-dashboard/constants"
	"golang.org/x/sync/semaphore"
)

type dialContextFunc func(ctx context.Context, network string, addr string) (net.Conn, error)

var (
	resolverOnce   sync.Once
	sharedResolver *dnscache.Resolver
)

// dnsCacheRefreshInterval returns the refresh interval of the shared dns cache
// 0 disables the refresh, a negative value disables the cache
func dnsCacheRefreshInterval() int {
	return readEnvVarToInt(constants.EnvDnsCacheRefreshIntervalSecs, 300)
}

func getResolver() *dnscache.Resolver {
	resolverOnce.Do(func() {
		sharedResolver = &dnscache.Resolver{}
		if secs := dnsCacheRefreshInterval(); secs > 0 {
			go func() {
				t := time.NewTicker(time.Duration(secs) * time.Second)
				defer t.Stop()
				for range t.C {
					sharedResolver.Refresh(true)
				}
			}()
		}
	})
	return sharedResolver
}

// cachingDialContext wraps dialer so host lookups go through the shared dns cache,
// with at most maxParallel lookups in flight.
// Returns nil if the cache is disabled.
func cachingDialContext(dialer *net.Dialer, maxParallel int) dialContextFunc {
	if dnsCacheRefreshInterval() < 0 {
		return nil
	}
	resolver := getResolver()
	sem := semaphore.NewWeighted(int64(maxParallel))

	return func(ctx context.Context, network string, addr string) (conn net.Conn, err error) {
		host, port, err := net.SplitHostPort(addr)
		if err != nil {
			return nil, err
		}

		if err := sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		ips, err := resolver.LookupHost(ctx, host)
		sem.Release(1)
		if err != nil {
			return nil, err
		}

		// try each address in turn until one connects
		for _, ip := range ips {
			conn, err = dialer.DialContext(ctx, network, net.JoinHostPort(ip, port))
			if err == nil {
				break
			}
		}
		return
	}
}

// Helper function for integer based environment variables.
func readEnvVarToInt(name string, defaultVal int) int {
	val := defaultVal
	envValue := os.Getenv(name)
	if envValue != "" {
		i, err := strconv.Atoi(envValue)
		if err == nil {
			val = i
		}
	}
	return val
}
