package persistence

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/tenantbill/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// IsForeignKeyViolation reports whether err is a referential integrity failure.
// It covers GORM's translated error, a raw pgconn error and the SQLite message.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}
	return strings.Contains(strings.ToLower(err.Error()), "foreign key constraint")
}

// IsUniqueViolation reports whether err is a unique constraint failure
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint")
}

func notFound(entity string, id int64) error {
	return shared.NewDomainError("NOT_FOUND", fmt.Sprintf("%s %d not found", entity, id))
}

func unknownTenant(tenantID int64) error {
	return shared.NewDomainError("INVALID_INPUT", fmt.Sprintf("Tenant %d does not exist", tenantID))
}

func tenantHasBills(tenantID, count int64) error {
	if count > 0 {
		return shared.NewDomainError("CONFLICT", fmt.Sprintf("Tenant %d still has %d bill(s)", tenantID, count))
	}
	return shared.NewDomainError("CONFLICT", fmt.Sprintf("Tenant %d still has bills", tenantID))
}
