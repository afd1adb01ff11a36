package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	paperstash_errors "paperstash/pkg/errors"
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// translateError maps driver errors onto the package sentinels.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return paperstash_errors.ErrNotFound
	case isUniqueViolation(err):
		return paperstash_errors.ErrAlreadyExists
	default:
		return err
	}
}
