package dto

import (
	"github.com/emrek/registra/internal/app/models"
)

// RegisterRequest is the self-service registration payload. Every account
// created this way starts as a student; role escalation is an admin action.
type RegisterRequest struct {
	Email      string  `json:"email" binding:"required" example:"jane@campus.edu"`
	Password   string  `json:"password" binding:"required" example:"s3cret-pass"`
	FullName   *string `json:"fullName,omitempty" example:"Jane Doe"`
	Department *string `json:"department,omitempty" example:"Computer Science"`
}

// LoginRequest carries the credentials for a password login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"jane@campus.edu"`
	Password string `json:"password" binding:"required" example:"s3cret-pass"`
}

// RefreshTokenRequest carries the opaque refresh token being exchanged.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// UpdatePasswordRequest changes the caller's own password.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

// TokenResponse is the session payload returned by login, register and
// refresh. ExpiresIn is the access token lifetime in seconds.
type TokenResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	TokenType    string       `json:"tokenType" example:"Bearer"`
	ExpiresIn    int          `json:"expiresIn" example:"900"`
	User         UserResponse `json:"user"`
}

// NewTokenResponse builds the session payload for a freshly issued pair.
func NewTokenResponse(accessToken, refreshToken string, expiresIn int, user *models.User) TokenResponse {
	return TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    expiresIn,
		User:         NewUserResponse(user),
	}
}
