package statusfeed

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"direct-transport-es/internal/apperr"
	"direct-transport-es/internal/logx"
	"direct-transport-es/internal/metrics"
)

// ErrRejected marks events that can never be applied. Redelivering them is pointless.
var ErrRejected = errors.New("status event rejected")

// Processor applies carrier status events to transport requests.
type Processor struct {
	updater StatusUpdater
	logger  logx.Logger
	events  *prometheus.CounterVec
}

// NewProcessor creates a Processor. events may be nil.
func NewProcessor(updater StatusUpdater, logger logx.Logger, events *prometheus.CounterVec) *Processor {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Processor{updater: updater, logger: logger, events: events}
}

// Handle applies a single event. Errors wrapping ErrRejected are permanent,
// any other error should be retried.
func (p *Processor) Handle(ctx context.Context, e Event) error {
	_, err := p.updater.UpdateRequestStatus(ctx, e.RequestID, e.Update())
	switch {
	case err == nil:
		p.count(metrics.OutcomeApplied)
		p.logger.Debug("status event applied",
			logx.String("request_id", e.RequestID),
			logx.String("status", string(e.Status)),
		)
		return nil
	case isPermanent(err):
		p.count(metrics.OutcomeSkipped)
		return fmt.Errorf("%w: request %q: %w", ErrRejected, e.RequestID, err)
	default:
		p.count(metrics.OutcomeFailed)
		return fmt.Errorf("apply status event for request %q: %w", e.RequestID, err)
	}
}

func isPermanent(err error) bool {
	return errors.Is(err, apperr.ErrInvalid) ||
		errors.Is(err, apperr.ErrInvalidArgument) ||
		errors.Is(err, apperr.ErrNotFound)
}

func (p *Processor) count(outcome string) {
	if p.events != nil {
		p.events.WithLabelValues(outcome).Inc()
	}
}
