package metrics

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the Prometheus instruments for the sync pipeline.
type Metrics struct {
	SyncRuns       prometheus.Counter
	EventsMerged   prometheus.Counter
	EventsDropped  prometheus.Counter
	SourceFailures *prometheus.CounterVec
	LedgerRecords  prometheus.Gauge
}

// New registers the sync pipeline metrics on the given registerer. Pass
// prometheus.DefaultRegisterer in production; tests use a fresh registry to
// avoid duplicate registration.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		SyncRuns: factory.NewCounter(prometheus.CounterOpts{
			Name: "attendance_sync_runs_total",
			Help: "Total number of sync orchestration runs",
		}),
		EventsMerged: factory.NewCounter(prometheus.CounterOpts{
			Name: "attendance_events_merged_total",
			Help: "Total number of punch events merged into the ledger",
		}),
		EventsDropped: factory.NewCounter(prometheus.CounterOpts{
			Name: "attendance_events_dropped_total",
			Help: "Total number of malformed punch events dropped before merging",
		}),
		SourceFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "attendance_source_failures_total",
			Help: "Total number of punch source fetch failures",
		}, []string{"source"}),
		LedgerRecords: factory.NewGauge(prometheus.GaugeOpts{
			Name: "attendance_ledger_records",
			Help: "Current number of records in the attendance ledger",
		}),
	}
}

// Handler exposes the Prometheus scrape endpoint as a Fiber handler.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
