package statusfeed

import (
	"time"

	"direct-transport-es/internal/domain"
)

// Event is a status report published by a carrier app.
type Event struct {
	RequestID    string
	Status       domain.RequestStatus
	LastLocation *string
	UpdatedBy    *string
	Timestamp    *time.Time
}

// Update returns the status patch carried by the event. The status is passed
// through unchanged so it meets the same wire values as the HTTP API.
func (e Event) Update() domain.StatusUpdate {
	return domain.StatusUpdate{
		Status:       e.Status,
		LastLocation: e.LastLocation,
		UpdatedBy:    e.UpdatedBy,
		Timestamp:    e.Timestamp,
	}
}
