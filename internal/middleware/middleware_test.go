package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emrek/registra/internal/app/models"
	"github.com/emrek/registra/internal/app/models/dto"
	"github.com/emrek/registra/internal/app/policy"
	"github.com/emrek/registra/internal/pkg/apperrors"
	"github.com/emrek/registra/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  15 * time.Minute,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "registra.test",
	})
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"validation", apperrors.NewValidationError("email", "bad"), http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"auth required", apperrors.ErrAuthenticationRequired, http.StatusUnauthorized, dto.ErrorCodeAuthenticationRequired},
		{"bad credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"revoked token", apperrors.ErrTokenRevoked, http.StatusUnauthorized, dto.ErrorCodeTokenInvalid},
		{"denied", apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodePermissionDenied},
		{"missing", apperrors.ErrNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"store down", apperrors.NewStoreError(assertableErr("boom")), http.StatusServiceUnavailable, dto.ErrorCodeStoreUnavailable},
		{"unknown", assertableErr("surprise"), http.StatusInternalServerError, dto.ErrorCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(recorder)
			c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			var response dto.APIResponse
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
			require.NotNil(t, response.Error)
			assert.Equal(t, tt.wantCode, response.Error.Code)
		})
	}
}

func TestValidationErrorCarriesField(t *testing.T) {
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodPost, "/test", nil)

	HandleAPIError(c, apperrors.NewValidationError("credits", "must be a positive integer"))

	var response dto.APIResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.NotNil(t, response.Error)
	assert.Equal(t, "credits", response.Error.Field)
}

// Denials must not describe the target record.
func TestPermissionDeniedCarriesNoDetail(t *testing.T) {
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	HandleAPIError(c, apperrors.ErrPermissionDenied)

	var response dto.APIResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.NotNil(t, response.Error)
	assert.Equal(t, "permission denied", response.Error.Message)
	assert.Empty(t, response.Error.Field)
}

func TestRequireAuthResolvesCaller(t *testing.T) {
	jwtService := testJWTService()
	department := "Computer Science"
	user := &models.User{
		ID:         "5f2b7c1e-9d34-4a1b-8a6f-0e1c2d3b4a5f",
		Email:      "prof@campus.edu",
		RoleType:   models.RoleFaculty,
		Department: &department,
	}
	accessToken, _, _, err := jwtService.GenerateTokenPair(user)
	require.NoError(t, err)

	var got policy.Caller
	engine := gin.New()
	engine.GET("/secure", RequireAuth(jwtService), func(c *gin.Context) {
		got = CallerFromContext(c)
		c.Status(http.StatusOK)
	})

	request := httptest.NewRequest(http.MethodGet, "/secure", nil)
	request.Header.Set("Authorization", "Bearer "+accessToken)
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, models.RoleFaculty, got.Role)
	assert.Equal(t, "Computer Science", got.Department)
	assert.False(t, got.Anonymous)
}

func TestRequireAuthRejectsMissingToken(t *testing.T) {
	engine := gin.New()
	engine.GET("/secure", RequireAuth(testJWTService()), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/secure", nil))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	request := httptest.NewRequest(http.MethodGet, "/secure", nil)
	request.Header.Set("Authorization", "Bearer not-a-token")
	recorder = httptest.NewRecorder()
	engine.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestOptionalAuthFallsBackToAnonymous(t *testing.T) {
	var got policy.Caller
	engine := gin.New()
	engine.GET("/open", OptionalAuth(testJWTService()), func(c *gin.Context) {
		got = CallerFromContext(c)
		c.Status(http.StatusOK)
	})

	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/open", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, got.Anonymous)
}

type assertableErr string

func (e assertableErr) Error() string { return string(e) }
