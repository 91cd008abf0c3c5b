package countries

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the catalog's Prometheus collectors. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	FetchTotal    *prometheus.CounterVec
	FetchDuration prometheus.Histogram
	Entries       prometheus.Gauge
}

// NewMetrics creates and registers the catalog collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		FetchTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "regform_country_catalog_fetch_total",
			Help: "Country catalog fetch attempts by outcome (success, failure, discarded)",
		}, []string{"outcome"}),
		FetchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "regform_country_catalog_fetch_duration_seconds",
			Help:    "Duration of the country catalog fetch",
			Buckets: prometheus.DefBuckets,
		}),
		Entries: factory.NewGauge(prometheus.GaugeOpts{
			Name: "regform_country_catalog_entries",
			Help: "Number of countries currently selectable",
		}),
	}
}

func (m *Metrics) observeFetch(outcome string, entries int, d time.Duration) {
	if m == nil {
		return
	}
	m.FetchTotal.WithLabelValues(outcome).Inc()
	m.FetchDuration.Observe(d.Seconds())
	if outcome == outcomeSuccess {
		m.Entries.Set(float64(entries))
	}
}
