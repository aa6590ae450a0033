package handlers

import (
	"context"

	"direct-transport-es/internal/domain"
	"direct-transport-es/internal/service/lifecycle"
	"direct-transport-es/internal/validation"
)

type userUsecase interface {
	CreateUser(ctx context.Context, in domain.UserInput) (string, error)
	ListCarriers(ctx context.Context, f domain.CarrierFilter) ([]domain.Carrier, error)
}

// NewUserUsecase wires the lifecycle service into a userUsecase.
func NewUserUsecase(svc *lifecycle.Service) userUsecase {
	return svc
}

type requestUsecase interface {
	CreateRequest(ctx context.Context, in domain.RequestInput) (string, error)
	ListRequests(ctx context.Context, f domain.RequestFilter) ([]domain.TransportRequest, error)
	UpdateRequestStatus(ctx context.Context, id string, upd domain.StatusUpdate) (*domain.TransportRequest, error)
}

// NewRequestUsecase wires the lifecycle service into a requestUsecase.
func NewRequestUsecase(svc *lifecycle.Service) requestUsecase {
	return svc
}

type bookingUsecase interface {
	CreateBookingIntent(ctx context.Context, in domain.BookingIntentInput) (string, error)
}

// NewBookingUsecase wires the lifecycle service into a bookingUsecase.
func NewBookingUsecase(svc *lifecycle.Service) bookingUsecase {
	return svc
}

type diagnoser interface {
	Diagnose(ctx context.Context) domain.Diagnostics
}

// NewDiagnoser wires the lifecycle service into a diagnoser.
func NewDiagnoser(svc *lifecycle.Service) diagnoser {
	return svc
}

type structValidator interface {
	Struct(s any) error
}

// NewStructValidator exposes the entity validator to the link handler.
func NewStructValidator(v *validation.Validator) structValidator {
	return v
}
