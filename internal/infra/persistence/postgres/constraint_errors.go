package postgres

import (
	"strings"

	"admission/internal/domain/entity"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes and the constraint names created by the migrations.
const (
	pgUniqueViolation  = "23505"
	pgNotNullViolation = "23502"
	pgCheckViolation   = "23514"

	accountsEmailKey    = "accounts_email_key"
	accountsUsernameKey = "accounts_username_key"
)

// uniqueViolationField reports whether err is a unique constraint violation
// and, when the driver exposes the constraint name, which account column it
// belongs to. GORM's translated ErrDuplicatedKey carries no name, so it yields
// entity.DuplicateNone.
func uniqueViolationField(err error) (entity.DuplicateField, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		switch pgErr.ConstraintName {
		case accountsEmailKey:
			return entity.DuplicateEmail, true
		case accountsUsernameKey:
			return entity.DuplicateUsername, true
		default:
			return entity.DuplicateNone, true
		}
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return entity.DuplicateNone, true
	}

	return entity.DuplicateNone, false
}

func isUniqueViolation(err error) bool {
	_, ok := uniqueViolationField(err)

	return ok
}

func isNotNullConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgNotNullViolation
	}

	// Check error message for PostgreSQL-specific not null constraint violation patterns
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, pgNotNullViolation)
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgCheckViolation
}
