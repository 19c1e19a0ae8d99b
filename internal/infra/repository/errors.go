package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// pgUniqueViolation is the SQLSTATE for unique constraint violations.
const pgUniqueViolation = "23505"

func isUniqueViolation(err error, target **pgconn.PgError) bool {
	if errors.As(err, target) {
		return (*target).Code == pgUniqueViolation
	}
	return false
}
