package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/appointment"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgSerializationFailed = "40001"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// translateWriteError maps constraint violations onto domain errors.
func translateWriteError(err error) error {
	switch pgCode(err) {
	case pgForeignKeyViolation:
		return domain.ErrTrainerNotFound
	case pgUniqueViolation:
		return domain.Validation("duplicate_weekday", "a weekday is listed more than once")
	}
	return nil
}
