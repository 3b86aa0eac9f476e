// Package metric exposes relay counters to Prometheus.
package metric

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "voice_relay"

// RelayMetrics -.
type RelayMetrics struct {
	conversions *prometheus.CounterVec
	upstream    *prometheus.HistogramVec
	providers   *prometheus.CounterVec
}

// NewRelayMetrics registers the collectors on reg.
func NewRelayMetrics(reg prometheus.Registerer) (*RelayMetrics, error) {
	m := &RelayMetrics{
		conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conversions_total",
			Help:      "Conversion requests by outcome.",
		}, []string{"outcome"}),
		upstream: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_duration_seconds",
			Help:      "Eden AI call latency by HTTP status.",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 30, 45, 60},
		}, []string{"status"}),
		providers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_results_total",
			Help:      "Successful conversions by provider.",
		}, []string{"provider"}),
	}

	for _, c := range []prometheus.Collector{m.conversions, m.upstream, m.providers} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *RelayMetrics) ObserveConversion(outcome string) {
	m.conversions.WithLabelValues(outcome).Inc()
}

func (m *RelayMetrics) ObserveUpstream(status int, elapsed time.Duration) {
	m.upstream.WithLabelValues(strconv.Itoa(status)).Observe(elapsed.Seconds())
}

func (m *RelayMetrics) ObserveProvider(provider string) {
	m.providers.WithLabelValues(provider).Inc()
}
