// Copyright 2025 Shadow Atlas Contributors
//
// Metrics: prometheus counters and histograms for the provenance pipeline,
// the freshness auditor, and the Merkle commitment engine. One Registry is
// built once at process start and threaded through every component that
// emits a metric; there is no global default registry.

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry bundles every metric Shadow Atlas emits. Construct one with
// NewRegistry and pass it down; components never reach for
// prometheus.DefaultRegisterer directly.
type Registry struct {
	reg *prometheus.Registry

	ProvenanceAppends   *prometheus.CounterVec
	ProvenanceLockWait  prometheus.Histogram
	FreshnessProbes     *prometheus.CounterVec
	FreshnessRecommend  *prometheus.CounterVec
	MerkleBuildDuration *prometheus.HistogramVec
	MerkleLeavesTotal   *prometheus.CounterVec
	ConflictResolutions *prometheus.CounterVec
}

// NewRegistry constructs a fresh, isolated prometheus.Registry with every
// Shadow Atlas metric registered.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	m := &Registry{
		reg: reg,
		ProvenanceAppends: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "shadowatlas",
			Subsystem: "provenance",
			Name:      "appends_total",
			Help:      "Provenance log append attempts, by mode and outcome.",
		}, []string{"mode", "outcome"}),
		ProvenanceLockWait: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "shadowatlas",
			Subsystem: "provenance",
			Name:      "lock_wait_seconds",
			Help:      "Time spent acquiring the advisory shard lock.",
			Buckets:   prometheus.DefBuckets,
		}),
		FreshnessProbes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "shadowatlas",
			Subsystem: "freshness",
			Name:      "probes_total",
			Help:      "Freshness comparator HEAD probes, by source type and result.",
		}, []string{"source_type", "result"}),
		FreshnessRecommend: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "shadowatlas",
			Subsystem: "freshness",
			Name:      "recommendations_total",
			Help:      "Freshness comparator recommendations issued.",
		}, []string{"recommendation"}),
		MerkleBuildDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "shadowatlas",
			Subsystem: "merkle",
			Name:      "build_duration_seconds",
			Help:      "Wall-clock time to build a committed tree, by depth.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
		}, []string{"depth"}),
		MerkleLeavesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "shadowatlas",
			Subsystem: "merkle",
			Name:      "leaves_committed_total",
			Help:      "Real (non-padding) leaves committed, by boundary kind.",
		}, []string{"boundary_kind"}),
		ConflictResolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "shadowatlas",
			Subsystem: "resolve",
			Name:      "decisions_total",
			Help:      "Conflict/version resolution decisions, by reason.",
		}, []string{"reason"}),
	}

	reg.MustRegister(
		m.ProvenanceAppends,
		m.ProvenanceLockWait,
		m.FreshnessProbes,
		m.FreshnessRecommend,
		m.MerkleBuildDuration,
		m.MerkleLeavesTotal,
		m.ConflictResolutions,
	)
	return m
}

// Gatherer exposes the underlying registry for an HTTP /metrics handler, a
// composition-root concern outside this package.
func (m *Registry) Gatherer() prometheus.Gatherer { return m.reg }

// ObserveLockWait records how long an advisory lock acquisition took.
func (m *Registry) ObserveLockWait(d time.Duration) {
	m.ProvenanceLockWait.Observe(d.Seconds())
}

// ObserveMerkleBuild records a tree build's wall-clock duration.
func (m *Registry) ObserveMerkleBuild(depth int, d time.Duration) {
	m.MerkleBuildDuration.WithLabelValues(depthLabel(depth)).Observe(d.Seconds())
}

func depthLabel(depth int) string {
	switch depth {
	case 18:
		return "18"
	case 20:
		return "20"
	case 22:
		return "22"
	case 24:
		return "24"
	default:
		return "unknown"
	}
}
