package handlers

import (
	"time"

	"direct-transport-es/internal/domain"
)

type idResponse struct {
	ID string `json:"id"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type urlResponse struct {
	URL string `json:"url"`
}

type carrierDTO struct {
	ID             string   `json:"id"`
	Role           string   `json:"role"`
	Name           string   `json:"name"`
	Email          *string  `json:"email"`
	Phone          string   `json:"phone"`
	Province       *string  `json:"province"`
	VehicleTypes   []string `json:"vehicle_types"`
	WhatsAppNumber *string  `json:"whatsapp_number"`
	Rating         *float64 `json:"rating"`
	IsActive       bool     `json:"is_active"`
}

type requestDTO struct {
	ID             string     `json:"id"`
	CustomerID     *string    `json:"customer_id"`
	PickupAddress  string     `json:"pickup_address"`
	PickupCity     string     `json:"pickup_city"`
	DropoffAddress string     `json:"dropoff_address"`
	DropoffCity    string     `json:"dropoff_city"`
	DateISO        string     `json:"date_iso"`
	ItemType       string     `json:"item_type"`
	Size           string     `json:"size"`
	Notes          *string    `json:"notes"`
	WhatsAppNumber *string    `json:"whatsapp_number"`
	Status         string     `json:"status"`
	LastLocation   *string    `json:"last_location,omitempty"`
	UpdatedBy      *string    `json:"updated_by,omitempty"`
	Timestamp      *time.Time `json:"timestamp,omitempty"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

type diagnosticsDTO struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// statusUpdateRequest is the PATCH body. timestamp is parsed separately so
// zone-less values are accepted.
type statusUpdateRequest struct {
	Status       domain.RequestStatus `json:"status"`
	LastLocation *string              `json:"last_location"`
	UpdatedBy    *string              `json:"updated_by"`
	Timestamp    *string              `json:"timestamp"`
}
