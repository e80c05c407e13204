package postgres

import (
	"strings"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return hasSQLState(err, uniqueViolationCode)
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return hasSQLState(err, foreignKeyViolationCode)
}

// hasSQLState matches lib/pq errors by code and pgx errors by their rendered SQLSTATE
func hasSQLState(err error, code string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == code
	}

	return strings.Contains(err.Error(), "SQLSTATE "+code)
}
