package postgres

import (
	"strings"

	domainerrors "civic/internal/domain/errors"
	"civic/internal/errors"

	"gorm.io/gorm"
)

// Helper functions for constraint error checking.
// GORM's translated errors come first; the message checks cover PostgreSQL SQLSTATE codes and SQLite texts.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "23505")
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "foreign key constraint") ||
		strings.Contains(errMsg, "23503")
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502")
}

// mapCreateError converts an insert failure into a coded domain error.
func mapCreateError(err error, record string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return domainerrors.ErrRecordCreationFailed.WithDetails(record + " already exists")
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrRecordCreationFailed.WithDetails(record + " references a missing user")
	case isNotNullConstraintViolation(err):
		return domainerrors.ErrRecordCreationFailed.WithDetails(record + " is missing required fields")
	default:
		return domainerrors.NewDatabaseExecuteError(err, "failed to create "+record)
	}
}
