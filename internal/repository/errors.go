package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// pgUniqueViolation is the Postgres error code for unique constraint failures
const pgUniqueViolation = "23505"

// IsUniqueViolation reports whether err is a unique constraint failure.
// Losing racers on unique indexes (slug, email, (tenant_id, name)) see this
// and can treat the row as already existing or retry with a new candidate.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// UniqueViolationConstraint returns the violated constraint name, or "" when
// err is not a unique violation or the driver did not report one.
func UniqueViolationConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return pgErr.ConstraintName
	}
	return ""
}
