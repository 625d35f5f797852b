package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emrek/registra/internal/app/models"
	"github.com/emrek/registra/internal/pkg/apperrors"
	"github.com/emrek/registra/internal/pkg/dberrors"
	"github.com/emrek/registra/internal/pkg/logger"
)

const enrollmentUniqueConstraint = "enrollments_student_id_course_id_key"

// EnrollmentRepository handles database operations for enrollments
type EnrollmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new enrollment row. The store's unique constraint on
// (student_id, course_id) is the final word on double enrollment.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	query := `
		INSERT INTO enrollments (student_id, course_id, status, grade)
		VALUES ($1, $2, $3, $4)
		RETURNING id, enrollment_date
	`

	err := r.db.QueryRow(ctx, query,
		enrollment.StudentID, enrollment.CourseID, enrollment.Status, enrollment.Grade).
		Scan(&enrollment.ID, &enrollment.EnrollmentDate)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, enrollmentUniqueConstraint) {
			return apperrors.ErrAlreadyEnrolled
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewNotFoundError("student or course not found")
		}
		return wrapError("error creating enrollment", err)
	}

	return nil
}

// enrollmentColumns is the join used everywhere an enrollment is read: the
// course and its department name ride along so the policy layer can check
// faculty department scope without another round trip.
const enrollmentSelect = `
	SELECT e.id, e.student_id, e.course_id, e.enrollment_date, e.status, e.grade,
	       c.code, c.title, c.credits, c.department_id, d.name
	FROM enrollments e
	JOIN courses c ON c.id = e.course_id
	JOIN departments d ON d.id = c.department_id
`

func scanEnrollment(row pgx.Row) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	var course models.Course
	var departmentName string

	err := row.Scan(
		&enrollment.ID,
		&enrollment.StudentID,
		&enrollment.CourseID,
		&enrollment.EnrollmentDate,
		&enrollment.Status,
		&enrollment.Grade,
		&course.Code,
		&course.Title,
		&course.Credits,
		&course.DepartmentID,
		&departmentName,
	)
	if err != nil {
		return nil, err
	}

	course.ID = enrollment.CourseID
	course.Department = &models.Department{ID: course.DepartmentID, Name: departmentName}
	enrollment.Course = &course
	return &enrollment, nil
}

// GetByID retrieves an enrollment with its course and department attached.
func (r *EnrollmentRepository) GetByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	enrollment, err := scanEnrollment(r.db.QueryRow(ctx, enrollmentSelect+` WHERE e.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, wrapError("error retrieving enrollment", err)
	}
	return enrollment, nil
}

// ListByStudent retrieves all enrollments for a student, newest first.
func (r *EnrollmentRepository) ListByStudent(ctx context.Context, studentID string) ([]*models.Enrollment, error) {
	return r.list(ctx, enrollmentSelect+` WHERE e.student_id = $1 ORDER BY e.enrollment_date DESC`, studentID)
}

// ListByCourse retrieves all enrollments for a course.
func (r *EnrollmentRepository) ListByCourse(ctx context.Context, courseID int64) ([]*models.Enrollment, error) {
	return r.list(ctx, enrollmentSelect+` WHERE e.course_id = $1 ORDER BY e.enrollment_date ASC`, courseID)
}

func (r *EnrollmentRepository) list(ctx context.Context, query string, args ...interface{}) ([]*models.Enrollment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapError("error listing enrollments", err)
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		enrollment, err := scanEnrollment(rows)
		if err != nil {
			return nil, err
		}
		enrollments = append(enrollments, enrollment)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapError("error listing enrollments", err)
	}

	return enrollments, nil
}

// Exists checks whether the student is already enrolled in the course.
func (r *EnrollmentRepository) Exists(ctx context.Context, studentID string, courseID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM enrollments WHERE student_id = $1 AND course_id = $2)`,
		studentID, courseID).Scan(&exists)
	if err != nil {
		return false, wrapError("error checking enrollment existence", err)
	}
	return exists, nil
}

// UpdateStatus sets the status and (optionally) grade of an enrollment.
func (r *EnrollmentRepository) UpdateStatus(ctx context.Context, id int64, status models.EnrollmentStatus, grade *string) error {
	sql, args, err := r.sb.Update("enrollments").
		Set("status", status).
		Set("grade", grade).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update enrollment SQL")
		return fmt.Errorf("failed to build update enrollment query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return wrapError("error updating enrollment", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

// Delete removes an enrollment.
func (r *EnrollmentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM enrollments WHERE id = $1`, id)
	if err != nil {
		return wrapError("error deleting enrollment", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

// CountByCourse returns how many enrollments a course has.
func (r *EnrollmentRepository) CountByCourse(ctx context.Context, courseID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM enrollments WHERE course_id = $1`, courseID).Scan(&count)
	if err != nil {
		return 0, wrapError("error counting enrollments", err)
	}
	return count, nil
}

// ListAvailableStudents returns students not yet enrolled in the course.
// A single anti-join on the store side replaces fetching every student and
// filtering in the client.
func (r *EnrollmentRepository) ListAvailableStudents(ctx context.Context, courseID int64) ([]*models.User, error) {
	sql, args, err := r.sb.Select("u.id", "u.email", "u.full_name", "u.department").
		From("users u").
		Where(squirrel.Eq{"u.role": models.RoleStudent}).
		Where(squirrel.Expr(
			"NOT EXISTS (SELECT 1 FROM enrollments e WHERE e.student_id = u.id AND e.course_id = ?)",
			courseID)).
		OrderBy("u.email ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building available students SQL")
		return nil, fmt.Errorf("failed to build available students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapError("error listing available students", err)
	}
	defer rows.Close()

	var students []*models.User
	for rows.Next() {
		var student models.User
		if err := rows.Scan(&student.ID, &student.Email, &student.FullName, &student.Department); err != nil {
			return nil, err
		}
		student.RoleType = models.RoleStudent
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapError("error listing available students", err)
	}

	return students, nil
}
