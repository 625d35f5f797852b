package dto

// ErrorCode is the machine-readable classification carried on every error
// response, mirroring the service error taxonomy.
type ErrorCode string

const (
	ErrorCodeAuthenticationRequired ErrorCode = "AUTHENTICATION_REQUIRED"
	ErrorCodePermissionDenied       ErrorCode = "PERMISSION_DENIED"
	ErrorCodeValidationFailed       ErrorCode = "VALIDATION_FAILED"
	ErrorCodeResourceNotFound       ErrorCode = "RESOURCE_NOT_FOUND"
	ErrorCodeInvalidCredentials     ErrorCode = "INVALID_CREDENTIALS"
	ErrorCodeTokenExpired           ErrorCode = "TOKEN_EXPIRED"
	ErrorCodeTokenInvalid           ErrorCode = "TOKEN_INVALID"
	ErrorCodeStoreUnavailable       ErrorCode = "STORE_UNAVAILABLE"
	ErrorCodeInternalError          ErrorCode = "INTERNAL_ERROR"
)

// ErrorDetail is the error half of the response envelope.
type ErrorDetail struct {
	Code    ErrorCode `json:"code" example:"VALIDATION_FAILED"`
	Message string    `json:"message" example:"validation failed on email"`
	Field   string    `json:"field,omitempty" example:"email"`
}

// NewErrorDetail creates an error detail with a code and message.
func NewErrorDetail(code ErrorCode, message string) *ErrorDetail {
	return &ErrorDetail{Code: code, Message: message}
}

// WithField attaches the offending field name to a validation error.
func (e *ErrorDetail) WithField(field string) *ErrorDetail {
	e.Field = field
	return e
}
