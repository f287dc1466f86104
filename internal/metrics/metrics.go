// Package metrics exposes Prometheus instrumentation for scrypt.Key calls,
// mirroring the shape of sphinx-core-go's rpc.NewMetrics: CounterVec and
// HistogramVec values built with the client_golang promauto helpers so
// they self-register with the default registry.
//
// The core scrypt package has no compile-time dependency on this package
// being used for anything beyond observation; nothing here participates in
// key derivation.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	derivationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scrypt_derivations_total",
			Help: "Number of scrypt.Key calls, labeled by outcome.",
		},
		[]string{"outcome"},
	)

	derivationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "scrypt_derivation_seconds",
			Help:    "Wall-clock duration of successful scrypt.Key calls.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"outcome"},
	)

	peakVBytes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "scrypt_v_array_bytes",
			Help: "Size in bytes of the V array allocated by the most recent scrypt.Key call (N*128*r; when p>1 this is one worker's V array).",
		},
	)
)

// Outcome labels used by scrypt.Key.
const (
	OutcomeOK             = "ok"
	OutcomeParameterError = "parameter_error"
	OutcomeInternalError  = "internal_error"
)

// ObserveDerive records the outcome and duration of one scrypt.Key call.
func ObserveDerive(outcome string, d time.Duration) {
	derivationsTotal.WithLabelValues(outcome).Inc()
	if outcome == OutcomeOK {
		derivationDuration.WithLabelValues(outcome).Observe(d.Seconds())
	}
}

// SetVArrayBytes records the size of the most recently allocated V array.
func SetVArrayBytes(n uint64) {
	peakVBytes.Set(float64(n))
}
