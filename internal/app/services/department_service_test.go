package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emrek/registra/internal/app/models"
	"github.com/emrek/registra/internal/app/policy"
	"github.com/emrek/registra/internal/pkg/apperrors"
)

func TestDepartmentWritesAreAdminOnly(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	admin := env.addUser(t, "admin@campus.edu", models.RoleAdmin, "")
	faculty := env.addUser(t, "prof@campus.edu", models.RoleFaculty, "Computer Science")
	student := env.addUser(t, "student@campus.edu", models.RoleStudent, "")

	department, err := env.departments.CreateDepartment(ctx, callerFor(admin), "Computer Science", nil)
	require.NoError(t, err)

	for _, caller := range []policy.Caller{callerFor(faculty), callerFor(student), policy.AnonymousCaller()} {
		_, err := env.departments.CreateDepartment(ctx, caller, "Physics", nil)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

		_, err = env.departments.UpdateDepartment(ctx, caller, department.ID, "Renamed", nil)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

		err = env.departments.DeleteDepartment(ctx, caller, department.ID)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	}
}

func TestDepartmentNameUniqueness(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	admin := env.addUser(t, "admin@campus.edu", models.RoleAdmin, "")

	first, err := env.departments.CreateDepartment(ctx, callerFor(admin), "Computer Science", nil)
	require.NoError(t, err)

	_, err = env.departments.CreateDepartment(ctx, callerFor(admin), "Computer Science", nil)
	require.Error(t, err)

	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "name", validationErr.Field)

	// Renaming onto another department's name fails the same way.
	second, err := env.departments.CreateDepartment(ctx, callerFor(admin), "Mathematics", nil)
	require.NoError(t, err)

	_, err = env.departments.UpdateDepartment(ctx, callerFor(admin), second.ID, first.Name, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	// Renaming onto its own name is fine.
	_, err = env.departments.UpdateDepartment(ctx, callerFor(admin), second.ID, second.Name, nil)
	assert.NoError(t, err)
}

func TestDepartmentReadsArePublic(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	admin := env.addUser(t, "admin@campus.edu", models.RoleAdmin, "")
	department, err := env.departments.CreateDepartment(ctx, callerFor(admin), "Computer Science", nil)
	require.NoError(t, err)

	listed, err := env.departments.ListDepartments(ctx, policy.AnonymousCaller())
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	read, err := env.departments.GetDepartment(ctx, policy.AnonymousCaller(), department.ID)
	require.NoError(t, err)
	assert.Equal(t, "Computer Science", read.Name)
}
