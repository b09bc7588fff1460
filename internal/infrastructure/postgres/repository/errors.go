package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sellora/order-service/internal/domain"
	"gorm.io/gorm"
)

// Postgres SQLSTATEs that signal lock contention rather than a real failure.
const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgLockNotAvailable     = "55P03"
)

// translate maps driver errors onto the domain taxonomy so workflows and
// callers never see gorm or pg internals.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgSerializationFailure, pgDeadlockDetected, pgLockNotAvailable:
			return domain.ErrConflict
		}
	}
	return err
}
