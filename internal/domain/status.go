package domain

type (
	// Role is the discriminator of a registered user.
	Role string
	// RequestStatus is the lifecycle state of a transport request.
	RequestStatus string
)

// List of user roles
const (
	RoleCustomer Role = "cliente"
	RoleCarrier  Role = "transportista"
)

// List of request statuses. Any status may follow any other.
const (
	StatusPending   RequestStatus = "pendiente"
	StatusAssigned  RequestStatus = "asignado"
	StatusEnRoute   RequestStatus = "en_ruta"
	StatusDelivered RequestStatus = "entregado"
	StatusCancelled RequestStatus = "cancelado"
)

var allowedRoles = [...]Role{RoleCustomer, RoleCarrier}

var allowedStatuses = [...]RequestStatus{
	StatusPending, StatusAssigned, StatusEnRoute, StatusDelivered, StatusCancelled,
}

// Valid checks if the Role is valid
func (r Role) Valid() bool {
	for _, v := range allowedRoles {
		if r == v {
			return true
		}
	}
	return false
}

// Valid checks if the RequestStatus is valid
func (s RequestStatus) Valid() bool {
	for _, v := range allowedStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Statuses returns every request status in lifecycle order.
func Statuses() []RequestStatus {
	out := make([]RequestStatus, len(allowedStatuses))
	copy(out, allowedStatuses[:])
	return out
}
