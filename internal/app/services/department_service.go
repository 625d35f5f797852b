package services

import (
	"context"
	"errors"

	"github.com/emrek/registra/internal/app/models"
	"github.com/emrek/registra/internal/app/policy"
	"github.com/emrek/registra/internal/pkg/apperrors"
	"github.com/emrek/registra/internal/pkg/logger"
	"github.com/emrek/registra/internal/pkg/validation"
)

// DepartmentService is the access façade over departments. Reads are public;
// every write is admin-only through the policy table.
type DepartmentService struct {
	departments DepartmentStore
}

// NewDepartmentService creates a new DepartmentService.
func NewDepartmentService(departments DepartmentStore) *DepartmentService {
	return &DepartmentService{departments: departments}
}

// GetDepartment returns a single department.
func (s *DepartmentService) GetDepartment(ctx context.Context, caller policy.Caller, id int64) (*models.Department, error) {
	if !policy.Check(caller, policy.ActionRead, policy.EntityDepartment, nil) {
		return nil, apperrors.ErrPermissionDenied
	}
	return s.departments.GetByID(ctx, id)
}

// ListDepartments returns all departments, name-ordered.
func (s *DepartmentService) ListDepartments(ctx context.Context, caller policy.Caller) ([]*models.Department, error) {
	if !policy.Check(caller, policy.ActionRead, policy.EntityDepartment, nil) {
		return nil, apperrors.ErrPermissionDenied
	}
	return s.departments.GetAll(ctx)
}

// CreateDepartment creates a department with a unique name.
func (s *DepartmentService) CreateDepartment(ctx context.Context, caller policy.Caller, name string, description *string) (*models.Department, error) {
	if !policy.Check(caller, policy.ActionCreate, policy.EntityDepartment, nil) {
		return nil, apperrors.ErrPermissionDenied
	}
	if validation.IsBlank(name) {
		return nil, apperrors.NewValidationError("name", "must not be empty")
	}

	department := &models.Department{Name: name, Description: description}
	if err := s.departments.Create(ctx, department); err != nil {
		if errors.Is(err, apperrors.ErrDepartmentAlreadyExists) {
			return nil, apperrors.NewValidationError("name", "a department with this name already exists")
		}
		return nil, err
	}

	logger.Info().Int64("departmentID", department.ID).Str("name", name).Msg("Department created")
	return department, nil
}

// UpdateDepartment renames or re-describes a department.
func (s *DepartmentService) UpdateDepartment(ctx context.Context, caller policy.Caller, id int64, name string, description *string) (*models.Department, error) {
	if !policy.Check(caller, policy.ActionUpdate, policy.EntityDepartment, nil) {
		return nil, apperrors.ErrPermissionDenied
	}
	if validation.IsBlank(name) {
		return nil, apperrors.NewValidationError("name", "must not be empty")
	}

	department, err := s.departments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	taken, err := s.departments.ExistsByName(ctx, name, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.NewValidationError("name", "a department with this name already exists")
	}

	department.Name = name
	department.Description = description
	if err := s.departments.Update(ctx, department); err != nil {
		if errors.Is(err, apperrors.ErrDepartmentAlreadyExists) {
			return nil, apperrors.NewValidationError("name", "a department with this name already exists")
		}
		return nil, err
	}

	return department, nil
}

// DeleteDepartment removes a department. Its courses, and their enrollments,
// go with it.
func (s *DepartmentService) DeleteDepartment(ctx context.Context, caller policy.Caller, id int64) error {
	if !policy.Check(caller, policy.ActionDelete, policy.EntityDepartment, nil) {
		return apperrors.ErrPermissionDenied
	}
	if err := s.departments.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Int64("departmentID", id).Msg("Department deleted")
	return nil
}
