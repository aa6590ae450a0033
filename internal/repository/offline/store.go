// Package offline provides the store used when no database is configured.
// Every data operation fails with apperr.ErrStoreUnavailable.
package offline

import (
	"context"

	"direct-transport-es/internal/apperr"
	"direct-transport-es/internal/domain"
)

// Store rejects every operation.
type Store struct{}

// New returns an offline Store.
func New() Store { return Store{} }

func (Store) InsertUser(context.Context, *domain.User) (string, error) {
	return "", apperr.ErrStoreUnavailable
}

func (Store) FindCarriers(context.Context, domain.CarrierFilter, int) ([]domain.User, error) {
	return nil, apperr.ErrStoreUnavailable
}

func (Store) InsertRequest(context.Context, *domain.TransportRequest) (string, error) {
	return "", apperr.ErrStoreUnavailable
}

func (Store) FindRequests(context.Context, domain.RequestFilter, int) ([]domain.TransportRequest, error) {
	return nil, apperr.ErrStoreUnavailable
}

func (Store) PatchRequestStatus(context.Context, string, domain.StatusUpdate) (*domain.TransportRequest, error) {
	return nil, apperr.ErrStoreUnavailable
}

func (Store) InsertLead(context.Context, *domain.BookingIntent) (string, error) {
	return "", apperr.ErrStoreUnavailable
}

func (Store) Info() domain.StoreInfo {
	return domain.StoreInfo{Driver: "offline"}
}

func (Store) CollectionNames(context.Context) ([]string, error) {
	return nil, apperr.ErrStoreUnavailable
}
