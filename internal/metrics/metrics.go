package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	remoteCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "linhaviva",
		Name:      "remote_calls_total",
		Help:      "Calls made to the spreadsheet endpoint, by operation and result.",
	}, []string{"op", "result"})

	remoteLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "linhaviva",
		Name:      "remote_call_seconds",
		Help:      "Latency of spreadsheet endpoint calls.",
		Buckets:   prometheus.ExponentialBuckets(0.05, 2, 9),
	}, []string{"op"})

	refreshes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "linhaviva",
		Name:      "refresh_total",
		Help:      "Inventory refreshes from the spreadsheet, by outcome.",
	}, []string{"outcome"})

	syncError = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "linhaviva",
		Name:      "sync_error",
		Help:      "1 while the last remote operation failed.",
	})
)

// ObserveRemoteCall records one call to the spreadsheet endpoint.
func ObserveRemoteCall(op string, err error, started time.Time) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	remoteCalls.WithLabelValues(op, result).Inc()
	remoteLatency.WithLabelValues(op).Observe(time.Since(started).Seconds())
}

// ObserveRefresh records a refresh outcome: applied, empty, skipped or failed.
func ObserveRefresh(outcome string) {
	refreshes.WithLabelValues(outcome).Inc()
}

func SetSyncError(failed bool) {
	if failed {
		syncError.Set(1)
		return
	}
	syncError.Set(0)
}
