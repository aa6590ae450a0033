package app

import (
	"context"
	"errors"

	"direct-transport-es/internal/service/statusfeed"
	"direct-transport-es/internal/transport/kafka"
)

type statusHandler interface {
	Handle(ctx context.Context, e statusfeed.Event) error
}

// makeStatusHandler marks rejected events as permanent so the consumer commits past them.
func makeStatusHandler(p statusHandler) kafka.HandleFunc {
	return func(ctx context.Context, e statusfeed.Event) error {
		err := p.Handle(ctx, e)
		if errors.Is(err, statusfeed.ErrRejected) {
			return kafka.Permanent(err)
		}
		return err
	}
}
