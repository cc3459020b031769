package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Geocode outcomes.
const (
	OutcomeResolved = "resolved"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"

	OutcomeCircuitOpen = "circuit_open"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	GeocodeLookups  *prometheus.CounterVec
	GeocodeLatency  prometheus.Histogram
	GeocodeCache    *prometheus.CounterVec
	SearchResults   prometheus.Histogram
	AuditEntries    *prometheus.CounterVec
	AuditFailures   prometheus.Counter
	RequestDuration *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics on the default registry.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer registers on reg; tests pass a fresh prometheus.Registry
// so repeated construction does not panic on duplicate registration.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		GeocodeLookups: f.NewCounterVec(prometheus.CounterOpts{
			Name: "fact_geocode_lookups_total",
			Help: "Postcode lookups against the geocoding provider by outcome",
		}, []string{"kind", "outcome"}),
		GeocodeLatency: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "fact_geocode_lookup_duration_seconds",
			Help:    "Latency of geocoding provider calls",
			Buckets: prometheus.DefBuckets,
		}),
		GeocodeCache: f.NewCounterVec(prometheus.CounterOpts{
			Name: "fact_geocode_cache_total",
			Help: "Geocode cache lookups by result (hit, negative_hit, miss, error)",
		}, []string{"result"}),
		SearchResults: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "fact_search_results",
			Help:    "Number of courts returned by proximity searches",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
		}),
		AuditEntries: f.NewCounterVec(prometheus.CounterOpts{
			Name: "fact_audit_entries_total",
			Help: "Audit entries written by change type",
		}, []string{"type"}),
		AuditFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "fact_audit_failures_total",
			Help: "Audit writes that failed and rolled back their mutation",
		}),
		RequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fact_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
	}
}

func (m *Metrics) ObserveGeocode(kind, outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.GeocodeLookups.WithLabelValues(kind, outcome).Inc()
	m.GeocodeLatency.Observe(seconds)
}

func (m *Metrics) IncGeocodeCache(result string) {
	if m == nil {
		return
	}
	m.GeocodeCache.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveSearchResults(n int) {
	if m == nil {
		return
	}
	m.SearchResults.Observe(float64(n))
}

func (m *Metrics) IncAuditEntry(changeType string) {
	if m == nil {
		return
	}
	m.AuditEntries.WithLabelValues(changeType).Inc()
}

func (m *Metrics) IncAuditFailure() {
	if m == nil {
		return
	}
	m.AuditFailures.Inc()
}

func (m *Metrics) ObserveRequest(route string, seconds float64) {
	if m == nil {
		return
	}
	m.RequestDuration.WithLabelValues(route).Observe(seconds)
}
