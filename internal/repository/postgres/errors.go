package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	apperrors "github.com/trivialab/trivia-api/internal/pkg/errors"
)

// Коды ошибок PostgreSQL, которые означают невалидные данные, а не сбой хранилища
const (
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
	pgStringTooLong       = "22001"
	pgNumericOutOfRange   = "22003"
	pgInvalidTextEncoding = "22021"
)

// classifyError переводит ошибку драйвера в ошибку приложения.
// Нарушения ограничений данных становятся ErrValidation, остальное оборачивается как есть.
func classifyError(op string, err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgNotNullViolation, pgCheckViolation, pgStringTooLong, pgNumericOutOfRange, pgInvalidTextEncoding:
			return fmt.Errorf("%s: %w: %s", op, apperrors.ErrValidation, pgErr.Message)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
