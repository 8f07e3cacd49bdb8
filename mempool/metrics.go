package mempool

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	"github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

const MetricsSubsystem = "mempool_settings"

// Metrics publishes the resolved mempool settings as gauges.
type Metrics struct {
	// Maximal size of the mempool in megabytes.
	MaxMempool metrics.Gauge
	// Hours a transaction may stay in the mempool.
	MempoolExpiry metrics.Gauge
	// Free relay rate limit in kB/minute.
	LimitFreeRelay metrics.Gauge
	// Ancestor and descendant package limits, labelled by "kind" (count or
	// size_kb).
	LimitAncestors   metrics.Gauge
	LimitDescendants metrics.Gauge
	// Maximum number of orphan transactions.
	MaxOrphanTx metrics.Gauge
	// Boolean policy switches, labelled by "option"; 1 when enabled.
	Enabled metrics.Gauge
}

// PrometheusMetrics returns Metrics build using Prometheus client library.
// The gauges are registered with the default Prometheus registry, so it must
// be called at most once per process per namespace; a second call panics.
func PrometheusMetrics(namespace string) *Metrics {
	return &Metrics{
		MaxMempool: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "max_mempool_megabytes",
			Help:      "Maximal size of the mempool in megabytes.",
		}, []string{}),
		MempoolExpiry: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "expiry_hours",
			Help:      "Hours a transaction may stay in the mempool.",
		}, []string{}),
		LimitFreeRelay: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "limit_free_relay_kb_per_minute",
			Help:      "Rate limit for free transactions in kB per minute.",
		}, []string{}),
		LimitAncestors: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "limit_ancestors",
			Help:      "In-mempool ancestor limits of a transaction, including itself.",
		}, []string{"kind"}),
		LimitDescendants: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "limit_descendants",
			Help:      "In-mempool descendant limits of any ancestor, including itself.",
		}, []string{"kind"}),
		MaxOrphanTx: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "max_orphan_txs",
			Help:      "Maximum number of orphan transactions kept in memory.",
		}, []string{}),
		Enabled: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "enabled",
			Help:      "Mempool policy switches, 1 when enabled.",
		}, []string{"option"}),
	}
}

// NopMetrics returns no-op Metrics.
func NopMetrics() *Metrics {
	return &Metrics{
		MaxMempool:       discard.NewGauge(),
		MempoolExpiry:    discard.NewGauge(),
		LimitFreeRelay:   discard.NewGauge(),
		LimitAncestors:   discard.NewGauge(),
		LimitDescendants: discard.NewGauge(),
		MaxOrphanTx:      discard.NewGauge(),
		Enabled:          discard.NewGauge(),
	}
}

// Observe sets every gauge from s.
func (m *Metrics) Observe(s *Settings) {
	m.MaxMempool.Set(float64(s.MaxMempool))
	m.MempoolExpiry.Set(float64(s.MempoolExpiry))
	m.LimitFreeRelay.Set(float64(s.LimitFreeRelay))
	m.LimitAncestors.With("kind", "count").Set(float64(s.LimitAncestors))
	m.LimitAncestors.With("kind", "size_kb").Set(float64(s.LimitAncestorSize))
	m.LimitDescendants.With("kind", "count").Set(float64(s.LimitDescendants))
	m.LimitDescendants.With("kind", "size_kb").Set(float64(s.LimitDescendantSize))
	m.MaxOrphanTx.Set(float64(s.MaxOrphanTx))
	m.Enabled.With("option", "relay_priority").Set(flag(s.RelayPriority))
	m.Enabled.With("option", "replacement").Set(flag(s.EnableReplacement))
	m.Enabled.With("option", "relay_txes").Set(flag(s.RelayTxes))
	m.Enabled.With("option", "whitelist_relay").Set(flag(s.WhiteListRelay))
}

func flag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
