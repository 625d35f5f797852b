package repositories

import (
	"errors"
	"net"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/emrek/registra/internal/pkg/apperrors"
)

func TestWrapErrorClassifiesTransportFailures(t *testing.T) {
	cause := &net.OpError{Op: "dial", Err: errors.New("connection refused")}

	err := wrapError("error retrieving user", cause)
	if !errors.Is(err, apperrors.ErrStoreUnavailable) {
		t.Error("transport failures should surface as ErrStoreUnavailable")
	}
}

func TestWrapErrorKeepsServerErrors(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "42601", Message: "syntax error at or near"}

	err := wrapError("error listing courses", pgErr)
	if errors.Is(err, apperrors.ErrStoreUnavailable) {
		t.Error("server-reported errors are not store outages")
	}

	var out *pgconn.PgError
	if !errors.As(err, &out) {
		t.Error("wrapping should preserve the *pgconn.PgError for classification")
	}
}
