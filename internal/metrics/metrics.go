package metrics

import "github.com/prometheus/client_golang/prometheus"

// Outcome labels of status_events_total.
const (
	OutcomeApplied = "applied"
	OutcomeSkipped = "skipped"
	OutcomeFailed  = "failed"
)

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewStatusEventsTotal returns a counter of carrier status events by outcome
func NewStatusEventsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "status_events_total",
		Help: "Total number of carrier status events consumed, by outcome",
	}, []string{"outcome"})
}
