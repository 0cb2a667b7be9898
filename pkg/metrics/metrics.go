package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "isebirbax", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "isebirbax", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)

	// StoreFallbacks counts reads served from built-in defaults instead of stored data.
	StoreFallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "isebirbax", Subsystem: "store", Name: "fallbacks_total", Help: "Reads that fell back to defaults, by collection and reason."},
		[]string{"collection", "reason"},
	)
	StoreSeeds = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "isebirbax", Subsystem: "store", Name: "seeds_total", Help: "Collections seeded with built-in data on first read."},
		[]string{"collection"},
	)
	StoreMigrations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "isebirbax", Subsystem: "store", Name: "migrations_total", Help: "Legacy key migration outcomes by collection and action."},
		[]string{"collection", "action"},
	)
	StoreWrites = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "isebirbax", Subsystem: "store", Name: "writes_total", Help: "Collection writes by collection and result."},
		[]string{"collection", "result"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
	reg.MustRegister(StoreFallbacks)
	reg.MustRegister(StoreSeeds)
	reg.MustRegister(StoreMigrations)
	reg.MustRegister(StoreWrites)
}
