package services

import (
	"context"
	"errors"
	"strings"

	"github.com/emrek/registra/internal/app/models"
	"github.com/emrek/registra/internal/app/policy"
	"github.com/emrek/registra/internal/pkg/apperrors"
	"github.com/emrek/registra/internal/pkg/helpers"
	"github.com/emrek/registra/internal/pkg/logger"
	"github.com/emrek/registra/internal/pkg/validation"
)

// UserService is the access façade over user records.
type UserService struct {
	users UserStore
}

// NewUserService creates a new UserService.
func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// GetUser returns a single user. Non-admin callers can only read their own
// record.
func (s *UserService) GetUser(ctx context.Context, caller policy.Caller, id string) (*models.User, error) {
	if !policy.Check(caller, policy.ActionRead, policy.EntityUser, &policy.Target{OwnerID: id}) {
		return nil, apperrors.ErrPermissionDenied
	}
	return s.users.GetByID(ctx, id)
}

// GetProfile returns the caller's own record.
func (s *UserService) GetProfile(ctx context.Context, caller policy.Caller) (*models.User, error) {
	if caller.Anonymous {
		return nil, apperrors.ErrAuthenticationRequired
	}
	return s.users.GetByID(ctx, caller.ID)
}

// ListUsers returns a page of users plus the total count. Collection-level
// reads of users are admin-only.
func (s *UserService) ListUsers(ctx context.Context, caller policy.Caller, page, size int) ([]*models.User, int64, error) {
	if !policy.Check(caller, policy.ActionRead, policy.EntityUser, nil) {
		return nil, 0, apperrors.ErrPermissionDenied
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	users, err := s.users.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.users.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// UpdateUser applies a partial update. Self-service updates touch only the
// display fields; email and role changes require admin.
func (s *UserService) UpdateUser(ctx context.Context, caller policy.Caller, id string, fullName, department, email, role *string) (*models.User, error) {
	if !policy.Check(caller, policy.ActionUpdate, policy.EntityUser, &policy.Target{OwnerID: id}) {
		return nil, apperrors.ErrPermissionDenied
	}

	isAdmin := caller.Role == models.RoleAdmin
	if !isAdmin && (email != nil || role != nil) {
		return nil, apperrors.ErrPermissionDenied
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if fullName != nil {
		user.FullName = fullName
	}
	if department != nil {
		user.Department = department
	}
	if email != nil {
		normalized := strings.ToLower(strings.TrimSpace(*email))
		if !validation.IsValidEmail(normalized) {
			return nil, apperrors.NewValidationError("email", "must be a valid email address")
		}
		user.Email = normalized
	}
	if role != nil {
		roleType := models.RoleType(*role)
		if !roleType.IsValid() {
			return nil, apperrors.NewValidationError("role", "must be admin, faculty or student")
		}
		user.RoleType = roleType
	}

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil, apperrors.NewValidationError("email", "email is already registered")
		}
		return nil, err
	}

	logger.Info().Str("userID", id).Msg("User updated")
	return user, nil
}

// DeleteUser removes a user account. Admin-only; enrollments cascade,
// announcements keep their content with the author nulled out.
func (s *UserService) DeleteUser(ctx context.Context, caller policy.Caller, id string) error {
	if !policy.Check(caller, policy.ActionDelete, policy.EntityUser, &policy.Target{OwnerID: id}) {
		return apperrors.ErrPermissionDenied
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Str("userID", id).Msg("User deleted")
	return nil
}
