package repositories

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/emrek/registra/internal/pkg/apperrors"
)

// wrapError classifies a pgx failure for the service layer. Errors reported
// by the server itself (constraint hits, bad statements) keep their message;
// anything else — a refused connection, a timeout, a closed pool — never
// reached the server and surfaces as ErrStoreUnavailable.
func wrapError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return apperrors.NewStoreError(fmt.Errorf("%s: %w", op, err))
}
