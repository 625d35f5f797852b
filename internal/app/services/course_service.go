package services

import (
	"context"
	"errors"
	"strings"

	"github.com/emrek/registra/internal/app/models"
	"github.com/emrek/registra/internal/app/policy"
	"github.com/emrek/registra/internal/app/repositories"
	"github.com/emrek/registra/internal/pkg/apperrors"
	"github.com/emrek/registra/internal/pkg/logger"
	"github.com/emrek/registra/internal/pkg/validation"
)

// CourseService is the access façade over the course catalog. Reads are
// public; creation is open to faculty and admin, update and delete to admin.
type CourseService struct {
	courses     CourseStore
	departments DepartmentStore
	enrollments EnrollmentStore
}

// NewCourseService creates a new CourseService.
func NewCourseService(courses CourseStore, departments DepartmentStore, enrollments EnrollmentStore) *CourseService {
	return &CourseService{
		courses:     courses,
		departments: departments,
		enrollments: enrollments,
	}
}

// GetCourse returns a single course with its enrollment count attached.
func (s *CourseService) GetCourse(ctx context.Context, caller policy.Caller, id int64) (*models.Course, int64, error) {
	if !policy.Check(caller, policy.ActionRead, policy.EntityCourse, nil) {
		return nil, 0, apperrors.ErrPermissionDenied
	}

	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		return nil, 0, err
	}

	count, err := s.enrollments.CountByCourse(ctx, id)
	if err != nil {
		return nil, 0, err
	}

	return course, count, nil
}

// ListCourses returns the catalog, optionally scoped to one department.
func (s *CourseService) ListCourses(ctx context.Context, caller policy.Caller, filter repositories.CourseFilter) ([]*models.Course, error) {
	if !policy.Check(caller, policy.ActionRead, policy.EntityCourse, nil) {
		return nil, apperrors.ErrPermissionDenied
	}
	return s.courses.List(ctx, filter)
}

// CreateCourse creates a course inside an existing department.
func (s *CourseService) CreateCourse(ctx context.Context, caller policy.Caller, code, title string, description *string, credits int, departmentID int64) (*models.Course, error) {
	if !policy.Check(caller, policy.ActionCreate, policy.EntityCourse, nil) {
		return nil, apperrors.ErrPermissionDenied
	}

	course := &models.Course{
		Code:         strings.ToUpper(strings.TrimSpace(code)),
		Title:        strings.TrimSpace(title),
		Description:  description,
		Credits:      credits,
		DepartmentID: departmentID,
	}
	if err := s.validateCourse(ctx, course, 0); err != nil {
		return nil, err
	}

	if err := s.courses.Create(ctx, course); err != nil {
		if errors.Is(err, apperrors.ErrCourseCodeAlreadyExists) {
			return nil, apperrors.NewValidationError("code", "a course with this code already exists")
		}
		return nil, err
	}

	logger.Info().Int64("courseID", course.ID).Str("code", course.Code).Msg("Course created")
	return course, nil
}

// UpdateCourse replaces a course's attributes.
func (s *CourseService) UpdateCourse(ctx context.Context, caller policy.Caller, id int64, code, title string, description *string, credits int, departmentID int64) (*models.Course, error) {
	if !policy.Check(caller, policy.ActionUpdate, policy.EntityCourse, nil) {
		return nil, apperrors.ErrPermissionDenied
	}

	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	course.Code = strings.ToUpper(strings.TrimSpace(code))
	course.Title = strings.TrimSpace(title)
	course.Description = description
	course.Credits = credits
	course.DepartmentID = departmentID
	course.Department = nil
	if err := s.validateCourse(ctx, course, id); err != nil {
		return nil, err
	}

	if err := s.courses.Update(ctx, course); err != nil {
		if errors.Is(err, apperrors.ErrCourseCodeAlreadyExists) {
			return nil, apperrors.NewValidationError("code", "a course with this code already exists")
		}
		return nil, err
	}

	return course, nil
}

// DeleteCourse removes a course and, via the store's cascade, its
// enrollments.
func (s *CourseService) DeleteCourse(ctx context.Context, caller policy.Caller, id int64) error {
	if !policy.Check(caller, policy.ActionDelete, policy.EntityCourse, nil) {
		return apperrors.ErrPermissionDenied
	}
	if err := s.courses.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Int64("courseID", id).Msg("Course deleted")
	return nil
}

// validateCourse checks the course invariants shared by create and update.
// excludeID skips the course itself in the code-uniqueness check.
func (s *CourseService) validateCourse(ctx context.Context, course *models.Course, excludeID int64) error {
	if !validation.IsValidCourseCode(course.Code) {
		return apperrors.NewValidationError("code", "must be a short uppercase code like CS101")
	}
	if validation.IsBlank(course.Title) {
		return apperrors.NewValidationError("title", "must not be empty")
	}
	if course.Credits <= 0 {
		return apperrors.NewValidationError("credits", "must be a positive integer")
	}

	if _, err := s.departments.GetByID(ctx, course.DepartmentID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("department not found")
		}
		return err
	}

	taken, err := s.courses.ExistsByCode(ctx, course.Code, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return apperrors.NewValidationError("code", "a course with this code already exists")
	}

	return nil
}
