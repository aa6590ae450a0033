package app

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/dig"

	"direct-transport-es/internal/metrics"
)

type metricsOut struct {
	dig.Out

	Registerer             prometheus.Registerer
	Gatherer               prometheus.Gatherer
	HTTP                   *metrics.HTTP
	RateLimitExceededTotal prometheus.Counter     `name:"rate_limit_exceeded_total"`
	StatusEventsTotal      *prometheus.CounterVec `name:"status_events_total"`
}

// provideMetrics registers every collector on a registry owned by the container.
func provideMetrics() (metricsOut, error) {
	return registerMetrics(prometheus.NewRegistry())
}

type registry interface {
	prometheus.Registerer
	prometheus.Gatherer
}

func registerMetrics(reg registry) (metricsOut, error) {
	var out metricsOut

	for _, c := range []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	} {
		if _, err := metrics.Register(reg, c); err != nil {
			return out, fmt.Errorf("register runtime collector: %w", err)
		}
	}

	var err error
	httpMetrics := metrics.NewHTTP()
	if httpMetrics.Requests, err = metrics.Register(reg, httpMetrics.Requests); err != nil {
		return out, fmt.Errorf("register http_requests_total: %w", err)
	}
	if httpMetrics.Duration, err = metrics.Register(reg, httpMetrics.Duration); err != nil {
		return out, fmt.Errorf("register http_request_duration_seconds: %w", err)
	}

	rl, err := metrics.Register(reg, metrics.NewRateLimitExceededTotal())
	if err != nil {
		return out, fmt.Errorf("register rate_limit_exceeded_total: %w", err)
	}
	events, err := metrics.Register(reg, metrics.NewStatusEventsTotal())
	if err != nil {
		return out, fmt.Errorf("register status_events_total: %w", err)
	}

	out.Registerer = reg
	out.Gatherer = reg
	out.HTTP = httpMetrics
	out.RateLimitExceededTotal = rl
	out.StatusEventsTotal = events
	return out, nil
}
