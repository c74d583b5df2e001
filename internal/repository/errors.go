package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uniqueViolation is the Postgres SQLSTATE for a unique-index conflict.
const uniqueViolation = "23505"

// normalizeDuplicate maps a driver-level unique violation to
// gorm.ErrDuplicatedKey so services can match on a single sentinel.
func normalizeDuplicate(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return gorm.ErrDuplicatedKey
	}
	return err
}
