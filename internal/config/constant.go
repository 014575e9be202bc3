package config

import "time"

const (
	DefaultPort       = 8000
	DefaultConfigName = "config"
	DefaultConfigType = "yaml"

	DefaultFetchTimeout     = 10 * time.Second
	DefaultCacheTTL         = 24 * time.Hour
	DefaultSweepConcurrency = 8
)

const (
	ServerPortKey       = "server.port"
	FetchTimeoutKey     = "checker.fetch_timeout"
	CacheTTLKey         = "checker.cache_ttl"
	SweepConcurrencyKey = "checker.sweep_concurrency"
)
