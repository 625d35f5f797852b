package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emrek/registra/internal/app/models"
	"github.com/emrek/registra/internal/pkg/apperrors"
	"github.com/emrek/registra/internal/pkg/dberrors"
	"github.com/emrek/registra/internal/pkg/logger"
)

// AnnouncementFilter narrows announcement listing.
type AnnouncementFilter struct {
	DepartmentID int64 // 0 = all announcements
}

// AnnouncementRepository handles database operations for announcements
type AnnouncementRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAnnouncementRepository creates a new announcement repository
func NewAnnouncementRepository(db *pgxpool.Pool) *AnnouncementRepository {
	return &AnnouncementRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new announcement.
func (r *AnnouncementRepository) Create(ctx context.Context, announcement *models.Announcement) error {
	query := `
		INSERT INTO announcements (title, content, author_id, department_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		announcement.Title, announcement.Content, announcement.AuthorID, announcement.DepartmentID).
		Scan(&announcement.ID, &announcement.CreatedAt, &announcement.UpdatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewNotFoundError("author or department not found")
		}
		return wrapError("error creating announcement", err)
	}

	return nil
}

// GetByID retrieves an announcement, with the author's display name attached
// when the author still exists.
func (r *AnnouncementRepository) GetByID(ctx context.Context, id int64) (*models.Announcement, error) {
	query := `
		SELECT a.id, a.title, a.content, a.author_id, a.department_id, a.created_at, a.updated_at,
		       u.email, u.full_name
		FROM announcements a
		LEFT JOIN users u ON u.id = a.author_id
		WHERE a.id = $1
	`

	var announcement models.Announcement
	var authorEmail, authorName *string
	err := r.db.QueryRow(ctx, query, id).Scan(
		&announcement.ID,
		&announcement.Title,
		&announcement.Content,
		&announcement.AuthorID,
		&announcement.DepartmentID,
		&announcement.CreatedAt,
		&announcement.UpdatedAt,
		&authorEmail,
		&authorName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, wrapError("error retrieving announcement", err)
	}

	if announcement.AuthorID != nil && authorEmail != nil {
		announcement.Author = &models.User{
			ID:       *announcement.AuthorID,
			Email:    *authorEmail,
			FullName: authorName,
		}
	}

	return &announcement, nil
}

// List retrieves a page of announcements, newest first.
func (r *AnnouncementRepository) List(ctx context.Context, filter AnnouncementFilter, offset uint64, limit int) ([]*models.Announcement, error) {
	builder := r.sb.Select(
		"a.id", "a.title", "a.content", "a.author_id", "a.department_id",
		"a.created_at", "a.updated_at", "u.email", "u.full_name").
		From("announcements a").
		LeftJoin("users u ON u.id = a.author_id").
		OrderBy("a.created_at DESC").
		Offset(offset).
		Limit(uint64(limit))

	if filter.DepartmentID > 0 {
		builder = builder.Where(squirrel.Eq{"a.department_id": filter.DepartmentID})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building announcement list SQL")
		return nil, fmt.Errorf("failed to build announcement list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapError("error listing announcements", err)
	}
	defer rows.Close()

	var announcements []*models.Announcement
	for rows.Next() {
		var announcement models.Announcement
		var authorEmail, authorName *string
		if err := rows.Scan(
			&announcement.ID,
			&announcement.Title,
			&announcement.Content,
			&announcement.AuthorID,
			&announcement.DepartmentID,
			&announcement.CreatedAt,
			&announcement.UpdatedAt,
			&authorEmail,
			&authorName,
		); err != nil {
			return nil, err
		}
		if announcement.AuthorID != nil && authorEmail != nil {
			announcement.Author = &models.User{
				ID:       *announcement.AuthorID,
				Email:    *authorEmail,
				FullName: authorName,
			}
		}
		announcements = append(announcements, &announcement)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapError("error listing announcements", err)
	}

	return announcements, nil
}

// Count returns the number of announcements matching the filter.
func (r *AnnouncementRepository) Count(ctx context.Context, filter AnnouncementFilter) (int64, error) {
	builder := r.sb.Select("COUNT(*)").From("announcements")
	if filter.DepartmentID > 0 {
		builder = builder.Where(squirrel.Eq{"department_id": filter.DepartmentID})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build announcement count query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, wrapError("error counting announcements", err)
	}
	return count, nil
}

// Update updates an announcement's title, content and department scope.
func (r *AnnouncementRepository) Update(ctx context.Context, announcement *models.Announcement) error {
	query := `
		UPDATE announcements
		SET title = $1, content = $2, department_id = $3, updated_at = $4
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		announcement.Title, announcement.Content, announcement.DepartmentID, time.Now(), announcement.ID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewNotFoundError("department not found")
		}
		return wrapError("error updating announcement", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

// Delete removes an announcement.
func (r *AnnouncementRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return wrapError("error deleting announcement", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}
