package pgstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"direct-transport-es/internal/apperr"
)

// IsNotFound - signals that the error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// IsUnavailable reports connection level failures.
func IsUnavailable(err error) bool {
	var connErr *pgconn.ConnectError
	return errors.As(err, &connErr) ||
		pgconn.Timeout(err) ||
		errors.Is(err, context.DeadlineExceeded)
}

func wrap(op string, err error) error {
	if IsUnavailable(err) {
		return fmt.Errorf("%s: %w: %w", op, apperr.ErrStoreUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
