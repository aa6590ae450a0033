//go:generate mockgen -source=contracts.go -destination=statusfeed_mocks_test.go -package=statusfeed_test

package statusfeed

import (
	"context"

	"direct-transport-es/internal/domain"
)

// StatusUpdater applies a status patch to a transport request.
type StatusUpdater interface {
	UpdateRequestStatus(ctx context.Context, id string, upd domain.StatusUpdate) (*domain.TransportRequest, error)
}
