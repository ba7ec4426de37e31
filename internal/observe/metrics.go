// Package observe holds the Prometheus instrumentation for the service.
// Storage failures are swallowed by policy, so counters here are the only
// place they remain visible.
package observe

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles every collector behind one registry so tests can create
// isolated instances without hitting duplicate-registration panics.
type Metrics struct {
	Registry *prometheus.Registry

	// CorruptRecords counts reads that found an unparseable value and fell
	// back to the default.
	CorruptRecords prometheus.Counter
	// DroppedWrites counts store writes that failed and were discarded.
	DroppedWrites prometheus.Counter
	// Uploads counts cloud uploads by outcome ("ok", "error").
	Uploads *prometheus.CounterVec
	// Downloads counts cloud downloads by outcome ("restored", "no_data", "error").
	Downloads *prometheus.CounterVec
	// AutoSyncTicks counts scheduler-triggered upload attempts.
	AutoSyncTicks prometheus.Counter
	// DayRollovers counts detected midnight rollovers.
	DayRollovers prometheus.Counter
}

// New creates a Metrics instance backed by a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Registry: reg,
		CorruptRecords: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "namaa_store_corrupt_records_total",
			Help: "Local records that failed to parse and were replaced by defaults.",
		}),
		DroppedWrites: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "namaa_store_dropped_writes_total",
			Help: "Local store writes that failed and were discarded.",
		}),
		Uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "namaa_sync_uploads_total",
			Help: "Cloud snapshot uploads by outcome.",
		}, []string{"outcome"}),
		Downloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "namaa_sync_downloads_total",
			Help: "Cloud snapshot downloads by outcome.",
		}, []string{"outcome"}),
		AutoSyncTicks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "namaa_autosync_ticks_total",
			Help: "Background auto-sync upload attempts.",
		}),
		DayRollovers: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "namaa_day_rollovers_total",
			Help: "Detected local-date changes.",
		}),
	}
	reg.MustRegister(
		m.CorruptRecords, m.DroppedWrites,
		m.Uploads, m.Downloads,
		m.AutoSyncTicks, m.DayRollovers,
	)
	return m
}
