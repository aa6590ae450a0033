package domain

import "time"

// TransportRequest is a transport job posted by a customer.
type TransportRequest struct {
	ID             string
	CustomerID     *string
	PickupAddress  string
	PickupCity     string
	DropoffAddress string
	DropoffCity    string
	DateISO        string
	ItemType       string
	Size           string
	Notes          *string
	WhatsAppNumber *string
	Status         RequestStatus

	// Written by status updates only.
	LastLocation *string
	UpdatedBy    *string
	Timestamp    *time.Time
	UpdatedAt    *time.Time
}

// RequestInput is the payload for posting a transport request.
type RequestInput struct {
	CustomerID     *string       `json:"customer_id"`
	PickupAddress  string        `json:"pickup_address" validate:"required"`
	PickupCity     string        `json:"pickup_city" validate:"required"`
	DropoffAddress string        `json:"dropoff_address" validate:"required"`
	DropoffCity    string        `json:"dropoff_city" validate:"required"`
	DateISO        string        `json:"date_iso" validate:"required"`
	ItemType       string        `json:"item_type" validate:"required"`
	Size           string        `json:"size" validate:"required"`
	Notes          *string       `json:"notes"`
	WhatsAppNumber *string       `json:"whatsapp_number"`
	Status         RequestStatus `json:"status" validate:"omitempty,oneof=pendiente asignado en_ruta entregado cancelado"`
}

// ToRequest converts the input into a TransportRequest, defaulting the status to pending.
func (in RequestInput) ToRequest() TransportRequest {
	status := in.Status
	if status == "" {
		status = StatusPending
	}
	return TransportRequest{
		CustomerID:     in.CustomerID,
		PickupAddress:  in.PickupAddress,
		PickupCity:     in.PickupCity,
		DropoffAddress: in.DropoffAddress,
		DropoffCity:    in.DropoffCity,
		DateISO:        in.DateISO,
		ItemType:       in.ItemType,
		Size:           in.Size,
		Notes:          in.Notes,
		WhatsAppNumber: in.WhatsAppNumber,
		Status:         status,
	}
}

// StatusUpdate carries a status transition and optional tracking fields.
// A nil field means "do not change" that attribute.
type StatusUpdate struct {
	Status       RequestStatus `json:"status" validate:"required,oneof=pendiente asignado en_ruta entregado cancelado"`
	LastLocation *string       `json:"last_location"`
	UpdatedBy    *string       `json:"updated_by"`
	Timestamp    *time.Time    `json:"timestamp"`
}

// RequestFilter narrows the request listing. Empty fields are ignored.
// City matches either the pickup or the dropoff city.
type RequestFilter struct {
	Status RequestStatus
	City   string
}
