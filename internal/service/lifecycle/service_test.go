package lifecycle_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"direct-transport-es/internal/apperr"
	"direct-transport-es/internal/domain"
	"direct-transport-es/internal/logx"
	"direct-transport-es/internal/service/lifecycle"
	testlog "direct-transport-es/internal/testutil"
	"direct-transport-es/internal/validation"
)

func newCtrl(t *testing.T) *gomock.Controller {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return ctrl
}

func newTestService(store lifecycle.Store) *lifecycle.Service {
	return lifecycle.NewService(store, validation.New(), time.Second, logx.Nop())
}

func strPtr(s string) *string { return &s }

func validRequestInput() domain.RequestInput {
	return domain.RequestInput{
		PickupAddress:  "Calle Mayor 1",
		PickupCity:     "Madrid",
		DropoffAddress: "Carrer Gran 2",
		DropoffCity:    "Barcelona",
		DateISO:        "2025-03-01",
		ItemType:       "sofa",
		Size:           "L",
	}
}

func TestService_CreateUser_PersistsWithDefaults(t *testing.T) {
	t.Parallel()

	store := NewMockStore(newCtrl(t))
	store.EXPECT().
		InsertUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, u *domain.User) (string, error) {
			_, ok := ctx.Deadline()
			require.True(t, ok)
			require.Equal(t, domain.RoleCustomer, u.Role)
			require.Equal(t, "Ana", u.Name)
			require.True(t, u.IsActive)
			return "u1", nil
		})

	id, err := newTestService(store).CreateUser(context.Background(), domain.UserInput{
		Role:  domain.RoleCustomer,
		Name:  "Ana",
		Phone: "+34600111222",
	})
	require.NoError(t, err)
	require.Equal(t, "u1", id)
}

func TestService_CreateUser_InvalidDoesNotTouchStore(t *testing.T) {
	t.Parallel()

	store := NewMockStore(newCtrl(t))
	rating := 7.0

	_, err := newTestService(store).CreateUser(context.Background(), domain.UserInput{
		Role:   "admin",
		Name:   "A",
		Phone:  "123",
		Rating: &rating,
	})

	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)
	require.ErrorIs(t, err, apperr.ErrInvalid)
	for _, f := range []string{"role", "name", "phone", "rating"} {
		require.True(t, verr.Has(f), f)
	}
}

func TestService_CreateUser_StoreError(t *testing.T) {
	t.Parallel()

	store := NewMockStore(newCtrl(t))
	store.EXPECT().InsertUser(gomock.Any(), gomock.Any()).Return("", apperr.ErrStoreUnavailable)

	_, err := newTestService(store).CreateUser(context.Background(), domain.UserInput{
		Role:  domain.RoleCarrier,
		Name:  "Luis",
		Phone: "600111222",
	})
	require.ErrorIs(t, err, apperr.ErrStoreUnavailable)
}

func TestService_ListCarriers_DropsNonCarriers(t *testing.T) {
	t.Parallel()

	filter := domain.CarrierFilter{Province: "Madrid", VehicleType: "furgoneta"}
	store := NewMockStore(newCtrl(t))
	store.EXPECT().
		FindCarriers(gomock.Any(), filter, lifecycle.CarriersPageSize).
		Return([]domain.User{
			{ID: "1", Role: domain.RoleCarrier, Name: "Luis"},
			{ID: "2", Role: domain.RoleCustomer, Name: "Ana"},
			{ID: "3", Role: domain.RoleCarrier, Name: "Eva"},
		}, nil)

	got, err := newTestService(store).ListCarriers(context.Background(), filter)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, c := range got {
		require.Equal(t, domain.RoleCarrier, c.User().Role)
	}
	require.Equal(t, "1", got[0].User().ID)
	require.Equal(t, "3", got[1].User().ID)
}

func TestService_ListCarriers_EmptyIsNotNil(t *testing.T) {
	t.Parallel()

	store := NewMockStore(newCtrl(t))
	store.EXPECT().FindCarriers(gomock.Any(), domain.CarrierFilter{}, lifecycle.CarriersPageSize).Return(nil, nil)

	got, err := newTestService(store).ListCarriers(context.Background(), domain.CarrierFilter{})
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestService_ListCarriers_StoreError(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("boom")
	store := NewMockStore(newCtrl(t))
	store.EXPECT().FindCarriers(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, wantErr)

	_, err := newTestService(store).ListCarriers(context.Background(), domain.CarrierFilter{})
	require.ErrorIs(t, err, wantErr)
}

func TestService_CreateRequest_DefaultsToPending(t *testing.T) {
	t.Parallel()

	store := NewMockStore(newCtrl(t))
	store.EXPECT().
		InsertRequest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *domain.TransportRequest) (string, error) {
			require.Equal(t, domain.StatusPending, r.Status)
			require.Equal(t, "Madrid", r.PickupCity)
			return "r1", nil
		})

	id, err := newTestService(store).CreateRequest(context.Background(), validRequestInput())
	require.NoError(t, err)
	require.Equal(t, "r1", id)
}

func TestService_CreateRequest_KeepsExplicitStatus(t *testing.T) {
	t.Parallel()

	in := validRequestInput()
	in.Status = domain.StatusAssigned

	store := NewMockStore(newCtrl(t))
	store.EXPECT().
		InsertRequest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *domain.TransportRequest) (string, error) {
			require.Equal(t, domain.StatusAssigned, r.Status)
			return "r2", nil
		})

	_, err := newTestService(store).CreateRequest(context.Background(), in)
	require.NoError(t, err)
}

func TestService_CreateRequest_MissingFields(t *testing.T) {
	t.Parallel()

	in := validRequestInput()
	in.PickupCity = ""
	in.Size = ""

	_, err := newTestService(NewMockStore(newCtrl(t))).CreateRequest(context.Background(), in)

	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)
	require.True(t, verr.Has("pickup_city"))
	require.True(t, verr.Has("size"))
}

func TestService_ListRequests_PassesFilterAndLimit(t *testing.T) {
	t.Parallel()

	filter := domain.RequestFilter{Status: domain.StatusEnRoute, City: "Valencia"}
	want := []domain.TransportRequest{{ID: "r1", Status: domain.StatusEnRoute, DropoffCity: "Valencia"}}

	store := NewMockStore(newCtrl(t))
	store.EXPECT().FindRequests(gomock.Any(), filter, lifecycle.RequestsPageSize).Return(want, nil)

	got, err := newTestService(store).ListRequests(context.Background(), filter)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestService_ListRequests_UnknownStatusPassesThrough(t *testing.T) {
	t.Parallel()

	filter := domain.RequestFilter{Status: "perdido"}
	store := NewMockStore(newCtrl(t))
	store.EXPECT().FindRequests(gomock.Any(), filter, lifecycle.RequestsPageSize).Return([]domain.TransportRequest{}, nil)

	got, err := newTestService(store).ListRequests(context.Background(), filter)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestService_UpdateRequestStatus_Success(t *testing.T) {
	t.Parallel()

	rec := testlog.New()
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	upd := domain.StatusUpdate{Status: domain.StatusEnRoute, LastLocation: strPtr("Zaragoza")}

	store := NewMockStore(newCtrl(t))
	store.EXPECT().
		PatchRequestStatus(gomock.Any(), "abc", upd).
		Return(&domain.TransportRequest{
			ID:           "abc",
			Status:       domain.StatusEnRoute,
			LastLocation: strPtr("Zaragoza"),
			UpdatedAt:    &now,
		}, nil)

	svc := lifecycle.NewService(store, validation.New(), time.Second, rec.Logger())
	got, err := svc.UpdateRequestStatus(context.Background(), "abc", upd)
	require.NoError(t, err)
	require.Equal(t, domain.StatusEnRoute, got.Status)
	require.Equal(t, "Zaragoza", *got.LastLocation)
	require.NotNil(t, got.UpdatedAt)

	entries := rec.Entries()
	require.Len(t, entries, 1)
	require.Equal(t, "info", entries[0].Level)
	require.Equal(t, "request status updated", entries[0].Msg)
	require.Contains(t, entries[0].Fields, logx.String("request_id", "abc"))
}

func TestService_UpdateRequestStatus_AnyTransitionAllowed(t *testing.T) {
	t.Parallel()

	for _, from := range domain.Statuses() {
		for _, to := range domain.Statuses() {
			store := NewMockStore(newCtrl(t))
			upd := domain.StatusUpdate{Status: to}
			store.EXPECT().
				PatchRequestStatus(gomock.Any(), "id", upd).
				Return(&domain.TransportRequest{ID: "id", Status: to}, nil)

			got, err := newTestService(store).UpdateRequestStatus(context.Background(), "id", upd)
			require.NoError(t, err, "%s -> %s", from, to)
			require.Equal(t, to, got.Status)
		}
	}
}

func TestService_UpdateRequestStatus_NotFound(t *testing.T) {
	t.Parallel()

	store := NewMockStore(newCtrl(t))
	store.EXPECT().PatchRequestStatus(gomock.Any(), "missing", gomock.Any()).Return(nil, nil)

	got, err := newTestService(store).UpdateRequestStatus(context.Background(), "missing",
		domain.StatusUpdate{Status: domain.StatusDelivered})
	require.ErrorIs(t, err, apperr.ErrNotFound)
	require.Nil(t, got)
}

func TestService_UpdateRequestStatus_MalformedID(t *testing.T) {
	t.Parallel()

	store := NewMockStore(newCtrl(t))
	store.EXPECT().PatchRequestStatus(gomock.Any(), "not-an-id", gomock.Any()).Return(nil, apperr.ErrInvalidArgument)

	_, err := newTestService(store).UpdateRequestStatus(context.Background(), "not-an-id",
		domain.StatusUpdate{Status: domain.StatusDelivered})
	require.ErrorIs(t, err, apperr.ErrInvalidArgument)
}

func TestService_UpdateRequestStatus_BlankID(t *testing.T) {
	t.Parallel()

	_, err := newTestService(NewMockStore(newCtrl(t))).UpdateRequestStatus(context.Background(), "  ",
		domain.StatusUpdate{Status: domain.StatusDelivered})
	require.ErrorIs(t, err, apperr.ErrInvalidArgument)
}

func TestService_UpdateRequestStatus_ValidatesBeforeID(t *testing.T) {
	t.Parallel()

	_, err := newTestService(NewMockStore(newCtrl(t))).UpdateRequestStatus(context.Background(), "",
		domain.StatusUpdate{Status: "perdido"})
	require.ErrorIs(t, err, apperr.ErrInvalid)
}

func TestService_CreateBookingIntent_TagsLead(t *testing.T) {
	t.Parallel()

	rec := testlog.New()
	store := NewMockStore(newCtrl(t))
	store.EXPECT().
		InsertLead(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *domain.BookingIntent) (string, error) {
			require.Equal(t, domain.LeadTypeBookingIntent, b.Type)
			require.Equal(t, "Ana", b.Name)
			return "l1", nil
		})

	svc := lifecycle.NewService(store, validation.New(), time.Second, rec.Logger())
	id, err := svc.CreateBookingIntent(context.Background(), domain.BookingIntentInput{
		Name:        "Ana",
		Phone:       "+34600111222",
		PickupCity:  "Madrid",
		DropoffCity: "Sevilla",
		ItemType:    "caja",
		DateISO:     "2025-04-01",
	})
	require.NoError(t, err)
	require.Equal(t, "l1", id)
	require.Len(t, rec.Entries(), 1)
	require.Equal(t, "booking intent created", rec.Entries()[0].Msg)
}

func TestService_CreateBookingIntent_MissingPhone(t *testing.T) {
	t.Parallel()

	_, err := newTestService(NewMockStore(newCtrl(t))).CreateBookingIntent(context.Background(), domain.BookingIntentInput{
		Name:        "Ana",
		PickupCity:  "Madrid",
		DropoffCity: "Sevilla",
		ItemType:    "caja",
		DateISO:     "2025-04-01",
	})

	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, []string{"phone"}, fieldNames(verr))
}

func fieldNames(e *apperr.ValidationError) []string {
	out := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		out = append(out, f.Field)
	}
	return out
}

func TestService_Diagnose(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		setup func(s *MockStore)
		want  domain.Diagnostics
	}{
		{
			name: "not configured",
			setup: func(s *MockStore) {
				s.EXPECT().Info().Return(domain.StoreInfo{Driver: "offline"})
			},
			want: domain.Diagnostics{
				Backend:          "✅ Running",
				Database:         "❌ Database not initialized",
				DatabaseURL:      "❌ Not Set",
				DatabaseName:     "❌ Not Set",
				ConnectionStatus: "Not Connected",
				Collections:      []string{},
			},
		},
		{
			name: "connected",
			setup: func(s *MockStore) {
				s.EXPECT().Info().Return(domain.StoreInfo{Driver: "mongo", Configured: true, URLSet: true, DatabaseName: "direct_transport"})
				s.EXPECT().CollectionNames(gomock.Any()).Return([]string{"lead", "transportrequest"}, nil)
			},
			want: domain.Diagnostics{
				Backend:          "✅ Running",
				Database:         "✅ Connected & Working",
				DatabaseURL:      "✅ Set",
				DatabaseName:     "direct_transport",
				ConnectionStatus: "Connected",
				Collections:      []string{"lead", "transportrequest"},
			},
		},
		{
			name: "listing fails",
			setup: func(s *MockStore) {
				s.EXPECT().Info().Return(domain.StoreInfo{Driver: "mongo", Configured: true, URLSet: true, DatabaseName: "db"})
				s.EXPECT().CollectionNames(gomock.Any()).Return(nil, errors.New("server selection timeout"))
			},
			want: domain.Diagnostics{
				Backend:          "✅ Running",
				Database:         "⚠️ Connected but error: server selection timeout",
				DatabaseURL:      "✅ Set",
				DatabaseName:     "db",
				ConnectionStatus: "Not Connected",
				Collections:      []string{},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := NewMockStore(newCtrl(t))
			tt.setup(store)

			got := newTestService(store).Diagnose(context.Background())
			require.Equal(t, tt.want, got)
		})
	}
}

func TestService_Diagnose_TruncatesLongErrors(t *testing.T) {
	t.Parallel()

	long := make([]byte, 200)
	for i := range long {
		long[i] = 'x'
	}

	store := NewMockStore(newCtrl(t))
	store.EXPECT().Info().Return(domain.StoreInfo{Configured: true})
	store.EXPECT().CollectionNames(gomock.Any()).Return(nil, errors.New(string(long)))

	got := newTestService(store).Diagnose(context.Background())
	require.Equal(t, "⚠️ Connected but error: "+string(long[:80]), got.Database)
}

func TestService_Diagnose_RecoversFromPanic(t *testing.T) {
	t.Parallel()

	store := NewMockStore(newCtrl(t))
	store.EXPECT().Info().Return(domain.StoreInfo{Configured: true})
	store.EXPECT().CollectionNames(gomock.Any()).DoAndReturn(func(context.Context) ([]string, error) {
		panic("driver exploded")
	})

	got := newTestService(store).Diagnose(context.Background())
	require.Equal(t, "❌ Error: driver exploded", got.Database)
	require.Equal(t, "✅ Running", got.Backend)
}

func TestNewService_DefaultTimeout(t *testing.T) {
	t.Parallel()

	store := NewMockStore(newCtrl(t))
	store.EXPECT().
		FindRequests(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ domain.RequestFilter, _ int) ([]domain.TransportRequest, error) {
			deadline, ok := ctx.Deadline()
			require.True(t, ok)
			require.InDelta(t, float64(3*time.Second), float64(time.Until(deadline)), float64(time.Second))
			return nil, nil
		})

	svc := lifecycle.NewService(store, validation.New(), 0, nil)
	_, err := svc.ListRequests(context.Background(), domain.RequestFilter{})
	require.NoError(t, err)
}
