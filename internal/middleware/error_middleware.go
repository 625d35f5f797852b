package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emrek/registra/internal/app/models/dto"
	"github.com/emrek/registra/internal/pkg/apperrors"
	"github.com/emrek/registra/internal/pkg/logger"
)

// HandleAPIError maps a service error onto the HTTP surface. Every controller
// funnels failures through here so the error taxonomy stays consistent.
func HandleAPIError(c *gin.Context, err error) {
	var validationErr *apperrors.ValidationError

	switch {
	case errors.As(err, &validationErr):
		respond(c, http.StatusBadRequest,
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, validationErr.Reason).
				WithField(validationErr.Field))

	case errors.Is(err, apperrors.ErrValidationFailed):
		respond(c, http.StatusBadRequest,
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()))

	case errors.Is(err, apperrors.ErrAuthenticationRequired):
		respond(c, http.StatusUnauthorized,
			dto.NewErrorDetail(dto.ErrorCodeAuthenticationRequired, "authentication required"))

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(c, http.StatusUnauthorized,
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "invalid email or password"))

	case errors.Is(err, apperrors.ErrTokenExpired):
		respond(c, http.StatusUnauthorized,
			dto.NewErrorDetail(dto.ErrorCodeTokenExpired, "token expired"))

	case apperrors.Is(err, apperrors.ErrTokenInvalid,
		apperrors.ErrTokenNotFound, apperrors.ErrTokenRevoked):
		respond(c, http.StatusUnauthorized,
			dto.NewErrorDetail(dto.ErrorCodeTokenInvalid, "invalid token"))

	// Denials deliberately carry no detail about the target record.
	case errors.Is(err, apperrors.ErrPermissionDenied):
		respond(c, http.StatusForbidden,
			dto.NewErrorDetail(dto.ErrorCodePermissionDenied, "permission denied"))

	case errors.Is(err, apperrors.ErrNotFound):
		respond(c, http.StatusNotFound,
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "resource not found"))

	case errors.Is(err, apperrors.ErrStoreUnavailable):
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Store unavailable")
		respond(c, http.StatusServiceUnavailable,
			dto.NewErrorDetail(dto.ErrorCodeStoreUnavailable, "store unavailable"))

	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled error")
		respond(c, http.StatusInternalServerError,
			dto.NewErrorDetail(dto.ErrorCodeInternalError, "an internal error occurred"))
	}
}

// HandleBindingError reports a malformed request body as a validation error.
func HandleBindingError(c *gin.Context, err error) {
	respond(c, http.StatusBadRequest,
		dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "invalid request body: "+err.Error()))
}

func respond(c *gin.Context, status int, detail *dto.ErrorDetail) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}
