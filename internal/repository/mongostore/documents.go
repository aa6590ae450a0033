package mongostore

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"direct-transport-es/internal/domain"
)

type userDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Role           string             `bson:"role"`
	Name           string             `bson:"name"`
	Email          *string            `bson:"email,omitempty"`
	Phone          string             `bson:"phone"`
	Province       *string            `bson:"province,omitempty"`
	VehicleTypes   []string           `bson:"vehicle_types"`
	WhatsAppNumber *string            `bson:"whatsapp_number,omitempty"`
	Rating         *float64           `bson:"rating,omitempty"`
	IsActive       bool               `bson:"is_active"`
}

func newUserDoc(u *domain.User) userDoc {
	return userDoc{
		Role:           string(u.Role),
		Name:           u.Name,
		Email:          u.Email,
		Phone:          u.Phone,
		Province:       u.Province,
		VehicleTypes:   nonNil(u.VehicleTypes),
		WhatsAppNumber: u.WhatsAppNumber,
		Rating:         u.Rating,
		IsActive:       u.IsActive,
	}
}

func (d userDoc) toDomain() domain.User {
	return domain.User{
		ID:             d.ID.Hex(),
		Role:           domain.Role(d.Role),
		Name:           d.Name,
		Email:          d.Email,
		Phone:          d.Phone,
		Province:       d.Province,
		VehicleTypes:   nonNil(d.VehicleTypes),
		WhatsAppNumber: d.WhatsAppNumber,
		Rating:         d.Rating,
		IsActive:       d.IsActive,
	}
}

// nonNil keeps vehicle_types an array on both sides of the store.
func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

type requestDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	CustomerID     *string            `bson:"customer_id,omitempty"`
	PickupAddress  string             `bson:"pickup_address"`
	PickupCity     string             `bson:"pickup_city"`
	DropoffAddress string             `bson:"dropoff_address"`
	DropoffCity    string             `bson:"dropoff_city"`
	DateISO        string             `bson:"date_iso"`
	ItemType       string             `bson:"item_type"`
	Size           string             `bson:"size"`
	Notes          *string            `bson:"notes,omitempty"`
	WhatsAppNumber *string            `bson:"whatsapp_number,omitempty"`
	Status         string             `bson:"status"`
	LastLocation   *string            `bson:"last_location,omitempty"`
	UpdatedBy      *string            `bson:"updated_by,omitempty"`
	Timestamp      *time.Time         `bson:"timestamp,omitempty"`
	UpdatedAt      *time.Time         `bson:"updated_at,omitempty"`
}

func newRequestDoc(r *domain.TransportRequest) requestDoc {
	return requestDoc{
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
	}
}

func (d requestDoc) toDomain() domain.TransportRequest {
	return domain.TransportRequest{
		ID:             d.ID.Hex(),
		CustomerID:     d.CustomerID,
		PickupAddress:  d.PickupAddress,
		PickupCity:     d.PickupCity,
		DropoffAddress: d.DropoffAddress,
		DropoffCity:    d.DropoffCity,
		DateISO:        d.DateISO,
		ItemType:       d.ItemType,
		Size:           d.Size,
		Notes:          d.Notes,
		WhatsAppNumber: d.WhatsAppNumber,
		Status:         domain.RequestStatus(d.Status),
		LastLocation:   d.LastLocation,
		UpdatedBy:      d.UpdatedBy,
		Timestamp:      d.Timestamp,
		UpdatedAt:      d.UpdatedAt,
	}
}

type leadDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Type           string             `bson:"type"`
	Name           string             `bson:"name"`
	Phone          string             `bson:"phone"`
	WhatsAppNumber *string            `bson:"whatsapp_number,omitempty"`
	PickupCity     string             `bson:"pickup_city"`
	DropoffCity    string             `bson:"dropoff_city"`
	ItemType       string             `bson:"item_type"`
	DateISO        string             `bson:"date_iso"`
}

func newLeadDoc(b *domain.BookingIntent) leadDoc {
	return leadDoc{
		Type:           b.Type,
		Name:           b.Name,
		Phone:          b.Phone,
		WhatsAppNumber: b.WhatsAppNumber,
		PickupCity:     b.PickupCity,
		DropoffCity:    b.DropoffCity,
		ItemType:       b.ItemType,
		DateISO:        b.DateISO,
	}
}
