package services

import (
	"context"
	"errors"

	"github.com/emrek/registra/internal/app/models"
	"github.com/emrek/registra/internal/app/policy"
	"github.com/emrek/registra/internal/pkg/apperrors"
	"github.com/emrek/registra/internal/pkg/logger"
)

// EnrollmentService is the access façade over enrollments: the only mutable
// relationship in the system, with a small lifecycle state machine on top.
type EnrollmentService struct {
	enrollments EnrollmentStore
	courses     CourseStore
	users       UserStore
}

// NewEnrollmentService creates a new EnrollmentService.
func NewEnrollmentService(enrollments EnrollmentStore, courses CourseStore, users UserStore) *EnrollmentService {
	return &EnrollmentService{
		enrollments: enrollments,
		courses:     courses,
		users:       users,
	}
}

// Enroll creates an active enrollment. A student may only enroll themselves;
// faculty and admin may enroll any student. New enrollments always start
// active regardless of what the caller asks for.
func (s *EnrollmentService) Enroll(ctx context.Context, caller policy.Caller, studentID string, courseID int64) (*models.Enrollment, error) {
	if studentID == "" {
		studentID = caller.ID
	}

	if !policy.Check(caller, policy.ActionCreate, policy.EntityEnrollment, &policy.Target{OwnerID: studentID}) {
		return nil, apperrors.ErrPermissionDenied
	}

	student, err := s.users.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("student not found")
		}
		return nil, err
	}
	if student.RoleType != models.RoleStudent {
		return nil, apperrors.NewValidationError("studentId", "only students can be enrolled in courses")
	}

	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("course not found")
		}
		return nil, err
	}

	enrolled, err := s.enrollments.Exists(ctx, studentID, courseID)
	if err != nil {
		return nil, err
	}
	if enrolled {
		return nil, apperrors.NewValidationError("courseId", "student is already enrolled in this course")
	}

	enrollment := &models.Enrollment{
		StudentID: studentID,
		CourseID:  courseID,
		Status:    models.EnrollmentActive,
	}
	if err := s.enrollments.Create(ctx, enrollment); err != nil {
		// Concurrent enrolls race past the Exists check; the store's unique
		// constraint settles it.
		if errors.Is(err, apperrors.ErrAlreadyEnrolled) {
			return nil, apperrors.NewValidationError("courseId", "student is already enrolled in this course")
		}
		return nil, err
	}

	logger.Info().Int64("enrollmentID", enrollment.ID).
		Str("studentID", studentID).Int64("courseID", courseID).Msg("Student enrolled")
	return s.enrollments.GetByID(ctx, enrollment.ID)
}

// GetEnrollment returns a single enrollment. Students see their own rows,
// faculty see rows for their department's courses.
func (s *EnrollmentService) GetEnrollment(ctx context.Context, caller policy.Caller, id int64) (*models.Enrollment, error) {
	enrollment, err := s.enrollments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !policy.Check(caller, policy.ActionRead, policy.EntityEnrollment, enrollmentTarget(enrollment)) {
		return nil, apperrors.ErrPermissionDenied
	}

	return enrollment, nil
}

// ListMyEnrollments returns the caller's own enrollments.
func (s *EnrollmentService) ListMyEnrollments(ctx context.Context, caller policy.Caller) ([]*models.Enrollment, error) {
	if caller.Anonymous {
		return nil, apperrors.ErrAuthenticationRequired
	}
	if !policy.Check(caller, policy.ActionRead, policy.EntityEnrollment, &policy.Target{OwnerID: caller.ID}) {
		return nil, apperrors.ErrPermissionDenied
	}
	return s.enrollments.ListByStudent(ctx, caller.ID)
}

// ListStudentEnrollments returns another student's enrollments, for admin
// and same-department faculty views.
func (s *EnrollmentService) ListStudentEnrollments(ctx context.Context, caller policy.Caller, studentID string) ([]*models.Enrollment, error) {
	// Owners and admin pass outright. Faculty get a row-level filter below;
	// everyone else is denied before the store is touched.
	owner := policy.Check(caller, policy.ActionRead, policy.EntityEnrollment, &policy.Target{OwnerID: studentID})
	if !owner && caller.Role != models.RoleFaculty {
		return nil, apperrors.ErrPermissionDenied
	}

	enrollments, err := s.enrollments.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if owner {
		return enrollments, nil
	}

	// Faculty keep only the rows inside their department.
	visible := make([]*models.Enrollment, 0, len(enrollments))
	for _, enrollment := range enrollments {
		if policy.Check(caller, policy.ActionRead, policy.EntityEnrollment, enrollmentTarget(enrollment)) {
			visible = append(visible, enrollment)
		}
	}
	return visible, nil
}

// ListCourseEnrollments returns the roster of a course.
func (s *EnrollmentService) ListCourseEnrollments(ctx context.Context, caller policy.Caller, courseID int64) ([]*models.Enrollment, error) {
	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	target := &policy.Target{}
	if course.Department != nil {
		target.Department = course.Department.Name
	}
	if !policy.Check(caller, policy.ActionRead, policy.EntityEnrollment, target) {
		return nil, apperrors.ErrPermissionDenied
	}

	return s.enrollments.ListByCourse(ctx, courseID)
}

// UpdateStatus drives the enrollment lifecycle. Only active enrollments move;
// completed and dropped are terminal. A grade may accompany completion.
func (s *EnrollmentService) UpdateStatus(ctx context.Context, caller policy.Caller, id int64, status models.EnrollmentStatus, grade *string) (*models.Enrollment, error) {
	enrollment, err := s.enrollments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !policy.Check(caller, policy.ActionUpdate, policy.EntityEnrollment, enrollmentTarget(enrollment)) {
		return nil, apperrors.ErrPermissionDenied
	}

	if !status.IsValid() {
		return nil, apperrors.NewValidationError("status", "must be active, completed or dropped")
	}
	if enrollment.Status.IsTerminal() {
		return nil, apperrors.NewValidationError("status",
			"enrollment is "+string(enrollment.Status)+" and can no longer change state")
	}
	if status == models.EnrollmentActive {
		return nil, apperrors.NewValidationError("status", "an active enrollment can only move to completed or dropped")
	}
	if grade != nil && status != models.EnrollmentCompleted {
		return nil, apperrors.NewValidationError("grade", "a grade can only be assigned on completion")
	}

	if err := s.enrollments.UpdateStatus(ctx, id, status, grade); err != nil {
		return nil, err
	}

	logger.Info().Int64("enrollmentID", id).Str("status", string(status)).Msg("Enrollment status updated")
	return s.enrollments.GetByID(ctx, id)
}

// Withdraw removes an enrollment row entirely.
func (s *EnrollmentService) Withdraw(ctx context.Context, caller policy.Caller, id int64) error {
	enrollment, err := s.enrollments.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !policy.Check(caller, policy.ActionDelete, policy.EntityEnrollment, enrollmentTarget(enrollment)) {
		return apperrors.ErrPermissionDenied
	}

	if err := s.enrollments.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Int64("enrollmentID", id).Msg("Enrollment deleted")
	return nil
}

// GetAvailableStudents returns students not yet enrolled in the course. The
// store performs the anti-join; the caller never sees the full student body
// minus client-side filtering.
func (s *EnrollmentService) GetAvailableStudents(ctx context.Context, caller policy.Caller, courseID int64) ([]*models.User, error) {
	// Gated like enrollment management: faculty and admin only.
	if !policy.Check(caller, policy.ActionCreate, policy.EntityEnrollment, nil) {
		return nil, apperrors.ErrPermissionDenied
	}

	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		return nil, err
	}

	return s.enrollments.ListAvailableStudents(ctx, courseID)
}

// enrollmentTarget builds the policy target for a loaded enrollment row.
func enrollmentTarget(enrollment *models.Enrollment) *policy.Target {
	target := &policy.Target{OwnerID: enrollment.StudentID}
	if enrollment.Course != nil && enrollment.Course.Department != nil {
		target.Department = enrollment.Course.Department.Name
	}
	return target
}
