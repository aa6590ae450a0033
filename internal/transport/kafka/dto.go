package kafka

import (
	"fmt"
	"strings"

	"direct-transport-es/internal/domain"
	"direct-transport-es/internal/service/statusfeed"
)

// EventDTO is the wire form of a carrier status event
type EventDTO struct {
	RequestID    string  `json:"request_id"`
	Status       string  `json:"status"`
	LastLocation *string `json:"last_location,omitempty"`
	UpdatedBy    *string `json:"updated_by,omitempty"`
	Timestamp    *string `json:"timestamp,omitempty"`
}

// ToDomain converts EventDTO to statusfeed.Event. The timestamp may omit its zone, in which case it is UTC.
func ToDomain(dto EventDTO) (statusfeed.Event, error) {
	ev := statusfeed.Event{
		RequestID:    strings.TrimSpace(dto.RequestID),
		Status:       domain.RequestStatus(dto.Status),
		LastLocation: dto.LastLocation,
		UpdatedBy:    dto.UpdatedBy,
	}
	if dto.Timestamp != nil {
		ts, err := domain.ParseTimestamp(*dto.Timestamp)
		if err != nil {
			return ev, fmt.Errorf("timestamp: %w", err)
		}
		ev.Timestamp = &ts
	}
	return ev, nil
}
