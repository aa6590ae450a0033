package domain

// User is a registered customer or carrier.
type User struct {
	ID             string
	Role           Role
	Name           string
	Email          *string
	Phone          string
	Province       *string
	VehicleTypes   []string
	WhatsAppNumber *string
	Rating         *float64
	IsActive       bool
}

// UserInput is the registration payload.
type UserInput struct {
	Role           Role     `json:"role" validate:"required,oneof=cliente transportista"`
	Name           string   `json:"name" validate:"required,min=2,max=120"`
	Email          *string  `json:"email" validate:"omitempty,email"`
	Phone          string   `json:"phone" validate:"required,min=7,max=20"`
	Province       *string  `json:"province"`
	VehicleTypes   []string `json:"vehicle_types"`
	WhatsAppNumber *string  `json:"whatsapp_number"`
	Rating         *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	IsActive       *bool    `json:"is_active"`
}

// ToUser converts the input into a User, applying defaults.
func (in UserInput) ToUser() User {
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	return User{
		Role:           in.Role,
		Name:           in.Name,
		Email:          in.Email,
		Phone:          in.Phone,
		Province:       in.Province,
		VehicleTypes:   in.VehicleTypes,
		WhatsAppNumber: in.WhatsAppNumber,
		Rating:         in.Rating,
		IsActive:       active,
	}
}

// Carrier is a User whose role has been checked to be RoleCarrier.
// The only way to obtain one is User.AsCarrier.
type Carrier struct {
	user User
}

// AsCarrier returns the carrier view of u if its role is RoleCarrier.
func (u User) AsCarrier() (Carrier, bool) {
	if u.Role != RoleCarrier {
		return Carrier{}, false
	}
	return Carrier{user: u}, true
}

// User returns the underlying user record.
func (c Carrier) User() User { return c.user }

// CarrierFilter narrows the carrier listing. Empty fields are ignored.
type CarrierFilter struct {
	Province    string
	VehicleType string
}
