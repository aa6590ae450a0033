package metrics

import "github.com/prometheus/client_golang/prometheus"

// HTTP holds request metrics labelled by method, route pattern and status.
type HTTP struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// NewHTTP returns unregistered HTTP collectors.
func NewHTTP() *HTTP {
	labels := []string{"method", "path", "status"}
	return &HTTP{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, labels),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, labels),
	}
}

// Collectors returns every collector for registration.
func (m *HTTP) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.Requests, m.Duration}
}
