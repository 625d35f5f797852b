package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emrek/registra/internal/app/models"
)

func testService(accessExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "registra.test",
	})
}

func testUser() *models.User {
	department := "Computer Science"
	return &models.User{
		ID:         "5f2b7c1e-9d34-4a1b-8a6f-0e1c2d3b4a5f",
		Email:      "prof@campus.edu",
		RoleType:   models.RoleFaculty,
		Department: &department,
	}
}

func TestTokenPairRoundTrip(t *testing.T) {
	service := testService(15 * time.Minute)
	user := testUser()

	accessToken, refreshToken, expiresIn, err := service.GenerateTokenPair(user)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshToken)
	assert.Equal(t, int((15 * time.Minute).Seconds()), expiresIn)

	claims, err := service.ValidateToken(accessToken)
	require.NoError(t, err)

	// The claims carry everything needed to build a policy caller.
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, string(models.RoleFaculty), claims.Role)
	assert.Equal(t, "Computer Science", claims.Department)
}

func TestExpiredTokenRejected(t *testing.T) {
	service := testService(-time.Minute)

	accessToken, _, _, err := service.GenerateTokenPair(testUser())
	require.NoError(t, err)

	_, err = service.ValidateToken(accessToken)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenFromDifferentSecretRejected(t *testing.T) {
	accessToken, _, _, err := testService(15 * time.Minute).GenerateTokenPair(testUser())
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{
		SecretKey:       "another-secret",
		AccessTokenExp:  15 * time.Minute,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "registra.test",
	})
	_, err = other.ValidateToken(accessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	token, err = ExtractBearerToken("bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	for _, header := range []string{"", "abc.def.ghi", "Bearer", "Bearer ", "Basic abc"} {
		_, err := ExtractBearerToken(header)
		assert.Error(t, err, "header %q", header)
	}
}
