package pgstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"direct-transport-es/internal/apperr"
	"direct-transport-es/internal/domain"
)

const requestColumns = `id, customer_id, pickup_address, pickup_city, dropoff_address, dropoff_city,
	date_iso, item_type, size, notes, whatsapp_number, status, last_location, updated_by, ts, updated_at`

// Store is the PostgreSQL implementation of the lifecycle store.
type Store struct {
	db   *pgxpool.Pool
	info domain.StoreInfo
}

// New creates a Store over db.
func New(db *pgxpool.Pool, info domain.StoreInfo) *Store {
	info.Driver = "postgres"
	info.Configured = true
	return &Store{db: db, info: info}
}

// InsertUser stores u and returns its UUID.
func (s *Store) InsertUser(ctx context.Context, u *domain.User) (string, error) {
	id := uuid.New()
	vehicles := u.VehicleTypes
	if vehicles == nil {
		vehicles = []string{}
	}
	_, err := s.db.Exec(ctx, `
		INSERT INTO transportuser(id, role, name, email, phone, province, vehicle_types, whatsapp_number, rating, is_active)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		id, string(u.Role), u.Name, u.Email, u.Phone, u.Province, vehicles, u.WhatsAppNumber, u.Rating, u.IsActive)
	if err != nil {
		return "", wrap("insert user", err)
	}
	return id.String(), nil
}

// FindCarriers returns carriers matching f in insertion order.
func (s *Store) FindCarriers(ctx context.Context, f domain.CarrierFilter, limit int) ([]domain.User, error) {
	q := `SELECT id, role, name, email, phone, province, vehicle_types, whatsapp_number, rating, is_active
		FROM transportuser WHERE role = $1`
	args := []any{string(domain.RoleCarrier)}
	if f.Province != "" {
		args = append(args, f.Province)
		q += fmt.Sprintf(" AND province = $%d", len(args))
	}
	if f.VehicleType != "" {
		args = append(args, f.VehicleType)
		q += fmt.Sprintf(" AND $%d = ANY(vehicle_types)", len(args))
	}
	args = append(args, limit)
	q += fmt.Sprintf(" ORDER BY created_at, id LIMIT $%d", len(args))

	rows, err := s.db.Query(ctx, q, args...)
	if err != nil {
		return nil, wrap("find carriers", err)
	}
	defer rows.Close()

	out := make([]domain.User, 0, limit)
	for rows.Next() {
		var (
			u    domain.User
			id   uuid.UUID
			role string
		)
		if err := rows.Scan(&id, &role, &u.Name, &u.Email, &u.Phone, &u.Province,
			&u.VehicleTypes, &u.WhatsAppNumber, &u.Rating, &u.IsActive); err != nil {
			return nil, wrap("scan carrier", err)
		}
		u.ID = id.String()
		u.Role = domain.Role(role)
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("find carriers", err)
	}
	return out, nil
}

// InsertRequest stores r and returns its UUID.
func (s *Store) InsertRequest(ctx context.Context, r *domain.TransportRequest) (string, error) {
	id := uuid.New()
	_, err := s.db.Exec(ctx, `
		INSERT INTO transportrequest(id, customer_id, pickup_address, pickup_city, dropoff_address, dropoff_city,
			date_iso, item_type, size, notes, whatsapp_number, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		id, r.CustomerID, r.PickupAddress, r.PickupCity, r.DropoffAddress, r.DropoffCity,
		r.DateISO, r.ItemType, r.Size, r.Notes, r.WhatsAppNumber, string(r.Status))
	if err != nil {
		return "", wrap("insert request", err)
	}
	return id.String(), nil
}

// FindRequests returns requests matching f in insertion order.
func (s *Store) FindRequests(ctx context.Context, f domain.RequestFilter, limit int) ([]domain.TransportRequest, error) {
	q := `SELECT ` + requestColumns + ` FROM transportrequest WHERE TRUE`
	args := make([]any, 0, 3)
	if f.Status != "" {
		args = append(args, string(f.Status))
		q += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if f.City != "" {
		args = append(args, f.City)
		q += fmt.Sprintf(" AND (pickup_city = $%d OR dropoff_city = $%d)", len(args), len(args))
	}
	args = append(args, limit)
	q += fmt.Sprintf(" ORDER BY created_at, id LIMIT $%d", len(args))

	rows, err := s.db.Query(ctx, q, args...)
	if err != nil {
		return nil, wrap("find requests", err)
	}
	defer rows.Close()

	out := make([]domain.TransportRequest, 0)
	for rows.Next() {
		r, err := scanRequest(rows)
		if err != nil {
			return nil, wrap("scan request", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("find requests", err)
	}
	return out, nil
}

// PatchRequestStatus sets the supplied fields and stamps updated_at with now().
func (s *Store) PatchRequestStatus(ctx context.Context, id string, upd domain.StatusUpdate) (*domain.TransportRequest, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("request id %q: %w", id, apperr.ErrInvalidArgument)
	}

	row := s.db.QueryRow(ctx, `
		UPDATE transportrequest
		SET
			status        = $2,
			last_location = COALESCE($3, last_location),
			updated_by    = COALESCE($4, updated_by),
			ts            = COALESCE($5, ts),
			updated_at    = now()
		WHERE id = $1
		RETURNING `+requestColumns,
		uid, string(upd.Status), upd.LastLocation, upd.UpdatedBy, upd.Timestamp)

	r, err := scanRequest(row)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, wrap("update request "+id, err)
	}
	return &r, nil
}

// InsertLead stores b and returns its UUID.
func (s *Store) InsertLead(ctx context.Context, b *domain.BookingIntent) (string, error) {
	id := uuid.New()
	_, err := s.db.Exec(ctx, `
		INSERT INTO lead(id, type, name, phone, whatsapp_number, pickup_city, dropoff_city, item_type, date_iso)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		id, b.Type, b.Name, b.Phone, b.WhatsAppNumber, b.PickupCity, b.DropoffCity, b.ItemType, b.DateISO)
	if err != nil {
		return "", wrap("insert lead", err)
	}
	return id.String(), nil
}

// Info describes the store for diagnostics.
func (s *Store) Info() domain.StoreInfo { return s.info }

// CollectionNames lists the tables of the public schema.
func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	rows, err := s.db.Query(ctx,
		`SELECT table_name FROM information_schema.tables WHERE table_schema = 'public' ORDER BY table_name`)
	if err != nil {
		return nil, wrap("list tables", err)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, wrap("list tables", err)
	}
	return names, nil
}

func scanRequest(row pgx.Row) (domain.TransportRequest, error) {
	var (
		r      domain.TransportRequest
		id     uuid.UUID
		status string
	)
	err := row.Scan(&id, &r.CustomerID, &r.PickupAddress, &r.PickupCity, &r.DropoffAddress, &r.DropoffCity,
		&r.DateISO, &r.ItemType, &r.Size, &r.Notes, &r.WhatsAppNumber, &status,
		&r.LastLocation, &r.UpdatedBy, &r.Timestamp, &r.UpdatedAt)
	if err != nil {
		return domain.TransportRequest{}, err
	}
	r.ID = id.String()
	r.Status = domain.RequestStatus(status)
	return r, nil
}
