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

// CourseFilter narrows course listing. Zero values mean no filtering.
type CourseFilter struct {
	DepartmentID int64
	OrderBy      string // column name, defaults to code
	Descending   bool
}

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// orderable whitelists sortable columns; anything else falls back to code.
var orderable = map[string]bool{
	"code":       true,
	"title":      true,
	"credits":    true,
	"created_at": true,
}

// Create creates a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (code, title, description, credits, department_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		course.Code, course.Title, course.Description, course.Credits, course.DepartmentID).
		Scan(&course.ID, &course.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "courses_code_key") {
			return apperrors.ErrCourseCodeAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewNotFoundError("department for course not found")
		}
		return wrapError("error creating course", err)
	}

	return nil
}

// GetByID retrieves a course with its owning department attached.
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `
		SELECT c.id, c.code, c.title, c.description, c.credits, c.department_id, c.created_at,
		       d.id, d.name, d.description, d.created_at
		FROM courses c
		JOIN departments d ON d.id = c.department_id
		WHERE c.id = $1
	`

	var course models.Course
	var department models.Department
	err := r.db.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.Code,
		&course.Title,
		&course.Description,
		&course.Credits,
		&course.DepartmentID,
		&course.CreatedAt,
		&department.ID,
		&department.Name,
		&department.Description,
		&department.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, wrapError("error retrieving course", err)
	}

	course.Department = &department
	return &course, nil
}

// List retrieves courses matching the filter.
func (r *CourseRepository) List(ctx context.Context, filter CourseFilter) ([]*models.Course, error) {
	builder := r.sb.Select(
		"c.id", "c.code", "c.title", "c.description", "c.credits", "c.department_id", "c.created_at",
		"d.name").
		From("courses c").
		Join("departments d ON d.id = c.department_id")

	if filter.DepartmentID > 0 {
		builder = builder.Where(squirrel.Eq{"c.department_id": filter.DepartmentID})
	}

	orderBy := filter.OrderBy
	if !orderable[orderBy] {
		orderBy = "code"
	}
	direction := "ASC"
	if filter.Descending {
		direction = "DESC"
	}
	builder = builder.OrderBy(fmt.Sprintf("c.%s %s", orderBy, direction))

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building course list SQL")
		return nil, fmt.Errorf("failed to build course list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapError("error listing courses", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		var departmentName string
		if err := rows.Scan(
			&course.ID,
			&course.Code,
			&course.Title,
			&course.Description,
			&course.Credits,
			&course.DepartmentID,
			&course.CreatedAt,
			&departmentName,
		); err != nil {
			return nil, err
		}
		course.Department = &models.Department{ID: course.DepartmentID, Name: departmentName}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapError("error listing courses", err)
	}

	return courses, nil
}

// ExistsByCode checks whether a course code is already taken, excluding the
// row with excludeID (pass 0 for inserts).
func (r *CourseRepository) ExistsByCode(ctx context.Context, code string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM courses WHERE code = $1 AND id != $2)`,
		code, excludeID).Scan(&exists)
	if err != nil {
		return false, wrapError("error checking course code existence", err)
	}
	return exists, nil
}

// Update updates an existing course
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses
		SET code = $1, title = $2, description = $3, credits = $4, department_id = $5
		WHERE id = $6
	`

	cmdTag, err := r.db.Exec(ctx, query,
		course.Code, course.Title, course.Description, course.Credits, course.DepartmentID, course.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "courses_code_key") {
			return apperrors.ErrCourseCodeAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewNotFoundError("department for course not found")
		}
		return wrapError("error updating course", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

// Delete deletes a course. Enrollments cascade at the store level.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return wrapError("error deleting course", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}
