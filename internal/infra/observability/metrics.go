package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

// Metrics holds all Prometheus metrics for the client.
type Metrics struct {
	// Registry is the Prometheus registry that owns these metrics.
	// Exposed so callers can gather or push them.
	Registry *prometheus.Registry

	requestDuration *prometheus.HistogramVec
	requestsTotal   *prometheus.CounterVec
	apiErrors       *prometheus.CounterVec
	tokenRefreshes  *prometheus.CounterVec
	cacheHits       *prometheus.CounterVec
	cacheMisses     *prometheus.CounterVec
	notifications   *prometheus.CounterVec
}

// NewMetrics creates a dedicated Prometheus registry and registers all
// client metrics in it. Using a private registry avoids "duplicate
// collector" panics when NewMetrics is called more than once (e.g. in tests).
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stockpilot_request_duration_seconds",
				Help:    "Duration of backend requests by operation.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockpilot_requests_total",
				Help: "Total backend requests by outcome.",
			},
			[]string{"status"},
		),
		apiErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockpilot_api_errors_total",
				Help: "Total error responses by resource.",
			},
			[]string{"resource"},
		),
		tokenRefreshes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockpilot_token_refreshes_total",
				Help: "Total token refresh attempts by result.",
			},
			[]string{"result"},
		),
		cacheHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockpilot_cache_hits_total",
				Help: "Total cache hits.",
			},
			[]string{"cache"},
		),
		cacheMisses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockpilot_cache_misses_total",
				Help: "Total cache misses.",
			},
			[]string{"cache"},
		),
		notifications: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockpilot_notifications_total",
				Help: "Total notifications shown by severity.",
			},
			[]string{"severity"},
		),
	}
}

// RecordRequestDuration records the duration of a backend operation.
func (m *Metrics) RecordRequestDuration(operation string, d time.Duration) {
	m.requestDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// IncrRequest increments the request counter with a status label.
func (m *Metrics) IncrRequest(status string) {
	m.requestsTotal.WithLabelValues(status).Inc()
}

// IncrAPIError increments the error counter for a resource.
func (m *Metrics) IncrAPIError(resource string) {
	m.apiErrors.WithLabelValues(resource).Inc()
}

// IncrTokenRefresh increments the refresh counter ("success" or "failure").
func (m *Metrics) IncrTokenRefresh(result string) {
	m.tokenRefreshes.WithLabelValues(result).Inc()
}

// IncrCacheHit increments the cache hit counter.
func (m *Metrics) IncrCacheHit(cache string) {
	m.cacheHits.WithLabelValues(cache).Inc()
}

// IncrCacheMiss increments the cache miss counter.
func (m *Metrics) IncrCacheMiss(cache string) {
	m.cacheMisses.WithLabelValues(cache).Inc()
}

// IncrNotification counts a shown notification by severity.
func (m *Metrics) IncrNotification(severity string) {
	m.notifications.WithLabelValues(severity).Inc()
}

// Snapshot is a point-in-time view of session counters, rendered by the
// `stats` command.
type Snapshot struct {
	TotalRequests  float64
	ErrorRate      float64
	APIErrors      float64
	TokenRefreshes float64
	CacheHitRate   float64
}

// GetSnapshot reads current counter values from the registry.
// Prometheus counters expose cumulative values.
func (m *Metrics) GetSnapshot() Snapshot {
	success := getCounterValue(m.requestsTotal, "success")
	errored := getCounterValue(m.requestsTotal, "error")
	refreshes := getCounterValue(m.tokenRefreshes, "success") +
		getCounterValue(m.tokenRefreshes, "failure")

	var hits, misses float64
	for _, cache := range []string{"categories", "analytics"} {
		hits += getCounterValue(m.cacheHits, cache)
		misses += getCounterValue(m.cacheMisses, cache)
	}

	total := success + errored
	snap := Snapshot{
		TotalRequests:  total,
		APIErrors:      m.sumCounter("stockpilot_api_errors_total"),
		TokenRefreshes: refreshes,
	}
	if total > 0 {
		snap.ErrorRate = errored / total
	}
	if hits+misses > 0 {
		snap.CacheHitRate = hits / (hits + misses)
	}
	return snap
}

// sumCounter totals a counter family across all of its label values. The
// error counter is labelled by resource, so the set of labels is not known
// up front.
func (m *Metrics) sumCounter(name string) float64 {
	families, err := m.Registry.Gather()
	if err != nil {
		return 0
	}
	var total float64
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, metric := range mf.GetMetric() {
			if c := metric.GetCounter(); c != nil {
				total += c.GetValue()
			}
		}
	}
	return total
}

// getCounterValue extracts the current float64 value from a CounterVec for a given label.
func getCounterValue(cv *prometheus.CounterVec, label string) float64 {
	counter := cv.WithLabelValues(label)
	m := &dto.Metric{}
	if err := counter.(prometheus.Metric).Write(m); err != nil {
		return 0
	}
	if m.Counter != nil && m.Counter.Value != nil {
		return *m.Counter.Value
	}
	return 0
}
