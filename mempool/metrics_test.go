package mempool

import (
	"testing"

	stdprometheus "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNopMetrics(t *testing.T) {
	NopMetrics().Observe(DefaultSettings())
}

func TestPrometheusMetrics(t *testing.T) {
	m := PrometheusMetrics("txpoolconfig_test")
	s := DefaultSettings()
	s.MaxMempool = 500
	s.RelayTxes = false
	m.Observe(s)

	families, err := stdprometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	values := make(map[string]float64)
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			name := mf.GetName()
			for _, lp := range metric.GetLabel() {
				name += "/" + lp.GetValue()
			}
			values[name] = metric.GetGauge().GetValue()
		}
	}

	prefix := "txpoolconfig_test_" + MetricsSubsystem + "_"
	assert.Equal(t, 500.0, values[prefix+"max_mempool_megabytes"])
	assert.Equal(t, float64(DefaultAncestorLimit), values[prefix+"limit_ancestors/count"])
	assert.Equal(t, float64(DefaultDescendantSizeLimit), values[prefix+"limit_descendants/size_kb"])
	assert.Equal(t, 0.0, values[prefix+"enabled/relay_txes"])
	assert.Equal(t, 1.0, values[prefix+"enabled/whitelist_relay"])
}

func TestPrometheusMetricsRegisterOnce(t *testing.T) {
	PrometheusMetrics("txpoolconfig_once")
	assert.Panics(t, func() { PrometheusMetrics("txpoolconfig_once") })
}
