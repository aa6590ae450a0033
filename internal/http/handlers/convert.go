package handlers

import (
	"direct-transport-es/internal/apperr"
	"direct-transport-es/internal/domain"
)

func carrierToResponse(c domain.Carrier) carrierDTO {
	u := c.User()
	return carrierDTO{
		ID:             u.ID,
		Role:           string(u.Role),
		Name:           u.Name,
		Email:          u.Email,
		Phone:          u.Phone,
		Province:       u.Province,
		VehicleTypes:   u.VehicleTypes,
		WhatsAppNumber: u.WhatsAppNumber,
		Rating:         u.Rating,
		IsActive:       u.IsActive,
	}
}

func carriersToResponse(list []domain.Carrier) []carrierDTO {
	out := make([]carrierDTO, 0, len(list))
	for _, c := range list {
		out = append(out, carrierToResponse(c))
	}
	return out
}

func requestToResponse(r domain.TransportRequest) requestDTO {
	return requestDTO{
		ID:             r.ID,
		CustomerID:     r.CustomerID,
		PickupAddress:  r.PickupAddress,
		PickupCity:     r.PickupCity,
		DropoffAddress: r.DropoffAddress,
		DropoffCity:    r.DropoffCity,
		DateISO:        r.DateISO,
		ItemType:       r.ItemType,
		Size:           r.Size,
		Notes:          r.Notes,
		WhatsAppNumber: r.WhatsAppNumber,
		Status:         string(r.Status),
		LastLocation:   r.LastLocation,
		UpdatedBy:      r.UpdatedBy,
		Timestamp:      r.Timestamp,
		UpdatedAt:      r.UpdatedAt,
	}
}

func requestsToResponse(list []domain.TransportRequest) []requestDTO {
	out := make([]requestDTO, 0, len(list))
	for _, r := range list {
		out = append(out, requestToResponse(r))
	}
	return out
}

func diagnosticsToResponse(d domain.Diagnostics) diagnosticsDTO {
	cols := d.Collections
	if cols == nil {
		cols = []string{}
	}
	return diagnosticsDTO{
		Backend:          d.Backend,
		Database:         d.Database,
		DatabaseURL:      d.DatabaseURL,
		DatabaseName:     d.DatabaseName,
		ConnectionStatus: d.ConnectionStatus,
		Collections:      cols,
	}
}

func (req statusUpdateRequest) toDomain() (domain.StatusUpdate, error) {
	upd := domain.StatusUpdate{
		Status:       req.Status,
		LastLocation: req.LastLocation,
		UpdatedBy:    req.UpdatedBy,
	}
	if req.Timestamp != nil {
		ts, err := domain.ParseTimestamp(*req.Timestamp)
		if err != nil {
			return upd, &apperr.ValidationError{Fields: []apperr.FieldViolation{{
				Field:   "timestamp",
				Rule:    "datetime",
				Message: "must be an ISO 8601 date-time",
			}}}
		}
		upd.Timestamp = &ts
	}
	return upd, nil
}
