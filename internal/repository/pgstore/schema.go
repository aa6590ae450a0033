package pgstore

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Table names mirror the document collections.
const (
	UsersTable    = "transportuser"
	RequestsTable = "transportrequest"
	LeadsTable    = "lead"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS transportuser (
		id              UUID PRIMARY KEY,
		role            TEXT NOT NULL,
		name            TEXT NOT NULL,
		email           TEXT,
		phone           TEXT NOT NULL,
		province        TEXT,
		vehicle_types   TEXT[] NOT NULL DEFAULT '{}',
		whatsapp_number TEXT,
		rating          DOUBLE PRECISION,
		is_active       BOOLEAN NOT NULL DEFAULT TRUE,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS transportrequest (
		id              UUID PRIMARY KEY,
		customer_id     TEXT,
		pickup_address  TEXT NOT NULL,
		pickup_city     TEXT NOT NULL,
		dropoff_address TEXT NOT NULL,
		dropoff_city    TEXT NOT NULL,
		date_iso        TEXT NOT NULL,
		item_type       TEXT NOT NULL,
		size            TEXT NOT NULL,
		notes           TEXT,
		whatsapp_number TEXT,
		status          TEXT NOT NULL,
		last_location   TEXT,
		updated_by      TEXT,
		ts              TIMESTAMPTZ,
		updated_at      TIMESTAMPTZ,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS lead (
		id              UUID PRIMARY KEY,
		type            TEXT NOT NULL,
		name            TEXT NOT NULL,
		phone           TEXT NOT NULL,
		whatsapp_number TEXT,
		pickup_city     TEXT NOT NULL,
		dropoff_city    TEXT NOT NULL,
		item_type       TEXT NOT NULL,
		date_iso        TEXT NOT NULL,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// EnsureSchema creates the tables when missing.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
