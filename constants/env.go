package constants

const (
	AppName = "covid-dashboard"

	EnvPrefix   = "COVID_DASHBOARD"
	EnvLogLevel = "COVID_DASHBOARD_LOG_LEVEL"
	// EnvDnsCacheRefreshIntervalSecs controls the refresh of the http source dns cache
	// 0 disables the refresh, -1 disables the cache
	EnvDnsCacheRefreshIntervalSecs = "COVID_DASHBOARD_DNS_CACHE_REFRESH_INTERVAL_SECS"
)
