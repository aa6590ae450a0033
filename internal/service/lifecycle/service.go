package lifecycle

import (
	"context"
	"fmt"
	"strings"
	"time"

	"direct-transport-es/internal/apperr"
	"direct-transport-es/internal/domain"
	"direct-transport-es/internal/logx"
)

// Page sizes of the listing operations.
const (
	CarriersPageSize = 50
	RequestsPageSize = 100
)

// Service orchestrates user, request and lead operations over the store.
type Service struct {
	store            Store
	validator        EntityValidator
	operationTimeout time.Duration
	logger           logx.Logger
}

// NewService creates and configures a lifecycle Service.
func NewService(store Store, v EntityValidator, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		store:            store,
		validator:        v,
		operationTimeout: timeout,
		logger:           logger,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// CreateUser registers a customer or carrier and returns its id.
// Duplicate phones and emails are accepted.
func (s *Service) CreateUser(ctx context.Context, in domain.UserInput) (string, error) {
	if err := s.validator.Struct(in); err != nil {
		return "", err
	}
	u := in.ToUser()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.store.InsertUser(ctx, &u)
}

// ListCarriers returns up to CarriersPageSize carriers matching f.
func (s *Service) ListCarriers(ctx context.Context, f domain.CarrierFilter) ([]domain.Carrier, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	users, err := s.store.FindCarriers(ctx, f, CarriersPageSize)
	if err != nil {
		return nil, err
	}

	// the users collection is shared, so the role is checked here as well
	out := make([]domain.Carrier, 0, len(users))
	for _, u := range users {
		if c, ok := u.AsCarrier(); ok {
			out = append(out, c)
		}
	}
	return out, nil
}

// CreateRequest posts a transport request and returns its id.
func (s *Service) CreateRequest(ctx context.Context, in domain.RequestInput) (string, error) {
	if err := s.validator.Struct(in); err != nil {
		return "", err
	}
	r := in.ToRequest()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.store.InsertRequest(ctx, &r)
}

// ListRequests returns up to RequestsPageSize requests matching f.
func (s *Service) ListRequests(ctx context.Context, f domain.RequestFilter) ([]domain.TransportRequest, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.store.FindRequests(ctx, f, RequestsPageSize)
}

// UpdateRequestStatus moves a request to upd.Status and applies the other
// supplied fields. Transitions between any two statuses are allowed.
func (s *Service) UpdateRequestStatus(ctx context.Context, id string, upd domain.StatusUpdate) (*domain.TransportRequest, error) {
	if err := s.validator.Struct(upd); err != nil {
		return nil, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperr.ErrInvalidArgument
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	r, err := s.store.PatchRequestStatus(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, apperr.ErrNotFound
	}

	s.logger.Info("request status updated",
		logx.String("event", "request_status_updated"),
		logx.String("request_id", r.ID),
		logx.String("status", string(r.Status)),
	)
	return r, nil
}

// CreateBookingIntent stores a lead for manual follow-up and returns its id.
func (s *Service) CreateBookingIntent(ctx context.Context, in domain.BookingIntentInput) (string, error) {
	if err := s.validator.Struct(in); err != nil {
		return "", err
	}
	b := in.ToBookingIntent()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	id, err := s.store.InsertLead(ctx, &b)
	if err != nil {
		return "", err
	}
	s.logger.Info("booking intent created",
		logx.String("event", "booking_intent_created"),
		logx.String("lead_id", id),
	)
	return id, nil
}

// Diagnose reports store reachability. Failures end up in the report, never as errors.
func (s *Service) Diagnose(ctx context.Context) (d domain.Diagnostics) {
	d = domain.Diagnostics{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		DatabaseURL:      "❌ Not Set",
		DatabaseName:     "❌ Not Set",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}
	defer func() {
		if p := recover(); p != nil {
			d.Database = "❌ Error: " + truncate(fmt.Sprint(p), 120)
		}
	}()

	info := s.store.Info()
	if !info.Configured {
		d.Database = "❌ Database not initialized"
		return d
	}

	d.Database = "✅ Available"
	if info.URLSet {
		d.DatabaseURL = "✅ Set"
	}
	if info.DatabaseName != "" {
		d.DatabaseName = info.DatabaseName
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	names, err := s.store.CollectionNames(ctx)
	if err != nil {
		d.Database = "⚠️ Connected but error: " + truncate(err.Error(), 80)
		return d
	}
	if names != nil {
		d.Collections = names
	}
	d.Database = "✅ Connected & Working"
	d.ConnectionStatus = "Connected"
	return d
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
