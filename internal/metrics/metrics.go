package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ChecksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "update_backend",
		Name:      "checks_total",
		Help:      "Update checks performed, by outcome.",
	}, []string{"outcome"})

	FetchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "update_backend",
		Name:      "release_fetches_total",
		Help:      "Release endpoint fetches, by result.",
	}, []string{"result"})

	CacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "update_backend",
		Name:      "cache_hits_total",
		Help:      "Checks answered from the in-process release cache.",
	})

	StaleServedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "update_backend",
		Name:      "stale_served_total",
		Help:      "Checks answered from a last-known snapshot after a failed refresh.",
	})
)

const (
	OutcomeUpdate   = "update_available"
	OutcomeCurrent  = "up_to_date"
	OutcomeError    = "error"
	ResultOK        = "ok"
	ResultNetwork   = "network_error"
	ResultMalformed = "parse_error"
)
