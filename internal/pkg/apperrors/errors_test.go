package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationErrorUnwrapsToSentinel(t *testing.T) {
	err := NewValidationError("email", "must be a valid email address")

	if !errors.Is(err, ErrValidationFailed) {
		t.Error("ValidationError should match ErrValidationFailed")
	}

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatal("errors.As should extract *ValidationError")
	}
	if validationErr.Field != "email" {
		t.Errorf("Field = %q, want %q", validationErr.Field, "email")
	}
}

func TestWrappedSentinelsSurviveFmtErrorf(t *testing.T) {
	err := fmt.Errorf("loading profile: %w", NewNotFoundError("user missing"))
	if !errors.Is(err, ErrNotFound) {
		t.Error("wrapped NotFound should still match ErrNotFound")
	}

	err = NewStoreError(errors.New("connection refused"))
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Error("store errors should match ErrStoreUnavailable")
	}
}

func TestIsMatchesAnyInList(t *testing.T) {
	err := fmt.Errorf("refresh: %w", ErrTokenRevoked)
	if !Is(err, ErrTokenExpired, ErrTokenNotFound, ErrTokenRevoked) {
		t.Error("Is should match any sentinel in the list")
	}
	if Is(err, ErrTokenExpired, ErrTokenNotFound) {
		t.Error("Is should not match absent sentinels")
	}
}
