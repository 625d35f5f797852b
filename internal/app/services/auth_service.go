package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/emrek/registra/internal/app/models"
	"github.com/emrek/registra/internal/pkg/apperrors"
	"github.com/emrek/registra/internal/pkg/auth"
	"github.com/emrek/registra/internal/pkg/logger"
	"github.com/emrek/registra/internal/pkg/validation"
)

// TokenPair is the result of a successful authentication: a signed access
// token plus an opaque refresh token already persisted in the store.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int
	User         *models.User
}

// AuthService is the identity provider: it owns registration, credential
// checks, token issuance and refresh rotation.
type AuthService struct {
	users      UserStore
	tokens     RefreshTokenStore
	jwtService *auth.JWTService
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, tokens RefreshTokenStore, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		users:      users,
		tokens:     tokens,
		jwtService: jwtService,
	}
}

// Register creates a student account and signs it in. Self-service
// registration never grants a privileged role.
func (s *AuthService) Register(ctx context.Context, email, password string, fullName, department *string) (*TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !validation.IsValidEmail(email) {
		return nil, apperrors.NewValidationError("email", "must be a valid email address")
	}
	if len(password) < validation.PasswordMinLength {
		return nil, apperrors.NewValidationError("password",
			fmt.Sprintf("must be at least %d characters", validation.PasswordMinLength))
	}

	exists, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewValidationError("email", "email is already registered")
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:      email,
		Password:   passwordHash,
		FullName:   fullName,
		RoleType:   models.RoleStudent,
		Department: department,
	}

	if err := s.users.Create(ctx, user); err != nil {
		// The unique index wins the race between EmailExists and Create.
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil, apperrors.NewValidationError("email", "email is already registered")
		}
		return nil, err
	}

	logger.Info().Str("userID", user.ID).Msg("User registered")
	return s.issueTokens(ctx, user)
}

// Login verifies credentials and issues a token pair. Missing accounts and
// wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, password) {
		logger.Warn().Str("userID", user.ID).Msg("Failed login attempt")
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user)
}

// Refresh exchanges a valid refresh token for a fresh pair. The presented
// token is revoked so each refresh token is single-use.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	userID, err := s.tokens.GetTokenUser(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrTokenInvalid
		}
		return nil, err
	}

	if err := s.tokens.RevokeToken(ctx, refreshToken); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

// SignOut revokes a refresh token. The access token simply ages out.
func (s *AuthService) SignOut(ctx context.Context, refreshToken string) error {
	err := s.tokens.RevokeToken(ctx, refreshToken)
	if err != nil && !errors.Is(err, apperrors.ErrTokenNotFound) {
		return err
	}
	return nil
}

// UpdatePassword changes the caller's password after re-verifying the current
// one, then revokes every outstanding refresh token.
func (s *AuthService) UpdatePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if !auth.CheckPassword(user.Password, currentPassword) {
		return apperrors.ErrInvalidCredentials
	}
	if len(newPassword) < validation.PasswordMinLength {
		return apperrors.NewValidationError("newPassword",
			fmt.Sprintf("must be at least %d characters", validation.PasswordMinLength))
	}

	passwordHash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, userID, passwordHash); err != nil {
		return err
	}

	if err := s.tokens.RevokeAllUserTokens(ctx, userID); err != nil {
		logger.Error().Err(err).Str("userID", userID).Msg("Failed to revoke tokens after password change")
		return err
	}

	logger.Info().Str("userID", userID).Msg("Password updated, sessions revoked")
	return nil
}

func (s *AuthService) issueTokens(ctx context.Context, user *models.User) (*TokenPair, error) {
	accessToken, refreshToken, expiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token pair: %w", err)
	}

	expiry := s.jwtService.GetRefreshTokenExpiry()
	if err := s.tokens.CreateToken(ctx, refreshToken, user.ID, expiry); err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    expiresIn,
		User:         user,
	}, nil
}
