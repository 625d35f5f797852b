package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emrek/registra/internal/app/models"
	"github.com/emrek/registra/internal/pkg/apperrors"
)

func TestUserReadOwnership(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	admin := env.addUser(t, "admin@campus.edu", models.RoleAdmin, "")
	alice := env.addUser(t, "alice@campus.edu", models.RoleStudent, "")
	bob := env.addUser(t, "bob@campus.edu", models.RoleStudent, "")

	// Own record is readable; someone else's is not, regardless of existence.
	_, err := env.users.GetUser(ctx, callerFor(alice), alice.ID)
	assert.NoError(t, err)

	_, err = env.users.GetUser(ctx, callerFor(alice), bob.ID)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, err = env.users.GetUser(ctx, callerFor(alice), "no-such-id")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, err = env.users.GetUser(ctx, callerFor(admin), bob.ID)
	assert.NoError(t, err)
}

func TestListUsersIsAdminOnly(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	admin := env.addUser(t, "admin@campus.edu", models.RoleAdmin, "")
	faculty := env.addUser(t, "prof@campus.edu", models.RoleFaculty, "Computer Science")
	student := env.addUser(t, "student@campus.edu", models.RoleStudent, "")

	users, total, err := env.users.ListUsers(ctx, callerFor(admin), 1, 20)
	require.NoError(t, err)
	assert.Len(t, users, 3)
	assert.Equal(t, int64(3), total)

	_, _, err = env.users.ListUsers(ctx, callerFor(faculty), 1, 20)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, _, err = env.users.ListUsers(ctx, callerFor(student), 1, 20)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestSelfUpdateRestrictedToDisplayFields(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	alice := env.addUser(t, "alice@campus.edu", models.RoleStudent, "")
	bob := env.addUser(t, "bob@campus.edu", models.RoleStudent, "")

	name := "Alice A."
	department := "Mathematics"
	updated, err := env.users.UpdateUser(ctx, callerFor(alice), alice.ID, &name, &department, nil, nil)
	require.NoError(t, err)
	require.NotNil(t, updated.FullName)
	assert.Equal(t, "Alice A.", *updated.FullName)

	// Self-service cannot touch email or role.
	newEmail := "elevated@campus.edu"
	_, err = env.users.UpdateUser(ctx, callerFor(alice), alice.ID, nil, nil, &newEmail, nil)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	adminRole := "admin"
	_, err = env.users.UpdateUser(ctx, callerFor(alice), alice.ID, nil, nil, nil, &adminRole)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	// Nor anyone else's record at all.
	_, err = env.users.UpdateUser(ctx, callerFor(alice), bob.ID, &name, nil, nil, nil)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestAdminUpdatesRoleAndEmail(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	admin := env.addUser(t, "admin@campus.edu", models.RoleAdmin, "")
	alice := env.addUser(t, "alice@campus.edu", models.RoleStudent, "")
	bob := env.addUser(t, "bob@campus.edu", models.RoleStudent, "")

	role := "faculty"
	updated, err := env.users.UpdateUser(ctx, callerFor(admin), alice.ID, nil, nil, nil, &role)
	require.NoError(t, err)
	assert.Equal(t, models.RoleFaculty, updated.RoleType)

	badRole := "superuser"
	_, err = env.users.UpdateUser(ctx, callerFor(admin), alice.ID, nil, nil, nil, &badRole)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	// Email moves must not collide with an existing account.
	takenEmail := bob.Email
	_, err = env.users.UpdateUser(ctx, callerFor(admin), alice.ID, nil, nil, &takenEmail, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestDeleteUserIsAdminOnly(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	admin := env.addUser(t, "admin@campus.edu", models.RoleAdmin, "")
	alice := env.addUser(t, "alice@campus.edu", models.RoleStudent, "")

	// Not even the account owner may delete.
	err := env.users.DeleteUser(ctx, callerFor(alice), alice.ID)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	require.NoError(t, env.users.DeleteUser(ctx, callerFor(admin), alice.ID))

	_, err = env.users.GetUser(ctx, callerFor(admin), alice.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
