package uptime_report

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK       = "ok"
	outcomeNetwork  = "network"
	outcomeDecode   = "decode"
	outcomeRejected = "rejected"
	outcomeCanceled = "canceled"
	outcomeError    = "error"
)

var (
	mFetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "uptime_fetch_total", Help: "Summary fetches by outcome",
	}, []string{"outcome"})
	mFetchDur = promauto.NewHistogram(prometheus.HistogramOpts{
		Name: "uptime_fetch_duration_seconds", Help: "Summary request latency",
		Buckets: prometheus.DefBuckets,
	})
	mInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "uptime_fetch_in_flight", Help: "Summary fetches holding a concurrency slot",
	})
	mBatchDur = promauto.NewHistogram(prometheus.HistogramOpts{
		Name: "uptime_batch_duration_seconds", Help: "Duration of a whole fetch batch",
		Buckets: []float64{.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
	})
)
