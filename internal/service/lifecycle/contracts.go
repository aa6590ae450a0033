//go:generate mockgen -source=contracts.go -destination=store_mock_test.go -package=lifecycle_test

package lifecycle

import (
	"context"

	"direct-transport-es/internal/domain"
)

// Store is the document store the lifecycle manager delegates to.
type Store interface {
	InsertUser(ctx context.Context, u *domain.User) (string, error)
	FindCarriers(ctx context.Context, f domain.CarrierFilter, limit int) ([]domain.User, error)
	InsertRequest(ctx context.Context, r *domain.TransportRequest) (string, error)
	FindRequests(ctx context.Context, f domain.RequestFilter, limit int) ([]domain.TransportRequest, error)
	// PatchRequestStatus applies the non-nil fields of upd and stamps updated_at
	// with the store clock. It returns nil, nil when no request has that id and
	// apperr.ErrInvalidArgument when the id is malformed.
	PatchRequestStatus(ctx context.Context, id string, upd domain.StatusUpdate) (*domain.TransportRequest, error)
	InsertLead(ctx context.Context, b *domain.BookingIntent) (string, error)
	Info() domain.StoreInfo
	CollectionNames(ctx context.Context) ([]string, error)
}

// EntityValidator validates tagged input structs.
type EntityValidator interface {
	Struct(s any) error
}
