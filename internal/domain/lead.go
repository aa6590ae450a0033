package domain

// LeadTypeBookingIntent tags booking intents inside the lead collection.
const LeadTypeBookingIntent = "booking_intent"

// BookingIntent is a captured contact intent awaiting manual follow-up.
type BookingIntent struct {
	ID             string
	Type           string
	Name           string
	Phone          string
	WhatsAppNumber *string
	PickupCity     string
	DropoffCity    string
	ItemType       string
	DateISO        string
}

// BookingIntentInput is the lead capture payload.
type BookingIntentInput struct {
	Name           string  `json:"name" validate:"required"`
	Phone          string  `json:"phone" validate:"required"`
	WhatsAppNumber *string `json:"whatsapp_number"`
	PickupCity     string  `json:"pickup_city" validate:"required"`
	DropoffCity    string  `json:"dropoff_city" validate:"required"`
	ItemType       string  `json:"item_type" validate:"required"`
	DateISO        string  `json:"date_iso" validate:"required"`
}

// ToBookingIntent converts the input and attaches the lead type tag.
func (in BookingIntentInput) ToBookingIntent() BookingIntent {
	return BookingIntent{
		Type:           LeadTypeBookingIntent,
		Name:           in.Name,
		Phone:          in.Phone,
		WhatsAppNumber: in.WhatsAppNumber,
		PickupCity:     in.PickupCity,
		DropoffCity:    in.DropoffCity,
		ItemType:       in.ItemType,
		DateISO:        in.DateISO,
	}
}
