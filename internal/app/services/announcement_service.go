package services

import (
	"context"
	"errors"

	"github.com/emrek/registra/internal/app/models"
	"github.com/emrek/registra/internal/app/policy"
	"github.com/emrek/registra/internal/app/repositories"
	"github.com/emrek/registra/internal/pkg/apperrors"
	"github.com/emrek/registra/internal/pkg/helpers"
	"github.com/emrek/registra/internal/pkg/logger"
	"github.com/emrek/registra/internal/pkg/validation"
)

// AnnouncementService is the access façade over announcements. Reads are
// public; faculty publish and edit their own posts, admin edits anything and
// is the only role that deletes.
type AnnouncementService struct {
	announcements AnnouncementStore
	departments   DepartmentStore
}

// NewAnnouncementService creates a new AnnouncementService.
func NewAnnouncementService(announcements AnnouncementStore, departments DepartmentStore) *AnnouncementService {
	return &AnnouncementService{
		announcements: announcements,
		departments:   departments,
	}
}

// GetAnnouncement returns a single announcement.
func (s *AnnouncementService) GetAnnouncement(ctx context.Context, caller policy.Caller, id int64) (*models.Announcement, error) {
	if !policy.Check(caller, policy.ActionRead, policy.EntityAnnouncement, nil) {
		return nil, apperrors.ErrPermissionDenied
	}
	return s.announcements.GetByID(ctx, id)
}

// ListAnnouncements returns a page of announcements, newest first.
func (s *AnnouncementService) ListAnnouncements(ctx context.Context, caller policy.Caller, filter repositories.AnnouncementFilter, page, size int) ([]*models.Announcement, int64, error) {
	if !policy.Check(caller, policy.ActionRead, policy.EntityAnnouncement, nil) {
		return nil, 0, apperrors.ErrPermissionDenied
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	announcements, err := s.announcements.List(ctx, filter, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.announcements.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return announcements, total, nil
}

// CreateAnnouncement publishes an announcement authored by the caller.
func (s *AnnouncementService) CreateAnnouncement(ctx context.Context, caller policy.Caller, title, content string, departmentID *int64) (*models.Announcement, error) {
	if !policy.Check(caller, policy.ActionCreate, policy.EntityAnnouncement, nil) {
		return nil, apperrors.ErrPermissionDenied
	}
	if err := s.validateAnnouncement(ctx, title, content, departmentID); err != nil {
		return nil, err
	}

	authorID := caller.ID
	announcement := &models.Announcement{
		Title:        title,
		Content:      content,
		AuthorID:     &authorID,
		DepartmentID: departmentID,
	}
	if err := s.announcements.Create(ctx, announcement); err != nil {
		return nil, err
	}

	logger.Info().Int64("announcementID", announcement.ID).Str("authorID", authorID).Msg("Announcement published")
	return s.announcements.GetByID(ctx, announcement.ID)
}

// UpdateAnnouncement edits an announcement. Faculty may edit only their own
// posts; admin may edit any.
func (s *AnnouncementService) UpdateAnnouncement(ctx context.Context, caller policy.Caller, id int64, title, content string, departmentID *int64) (*models.Announcement, error) {
	announcement, err := s.announcements.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !policy.Check(caller, policy.ActionUpdate, policy.EntityAnnouncement, announcementTarget(announcement)) {
		return nil, apperrors.ErrPermissionDenied
	}
	if err := s.validateAnnouncement(ctx, title, content, departmentID); err != nil {
		return nil, err
	}

	announcement.Title = title
	announcement.Content = content
	announcement.DepartmentID = departmentID
	if err := s.announcements.Update(ctx, announcement); err != nil {
		return nil, err
	}

	return s.announcements.GetByID(ctx, id)
}

// DeleteAnnouncement removes an announcement. Admin-only: authorship does not
// grant deletion.
func (s *AnnouncementService) DeleteAnnouncement(ctx context.Context, caller policy.Caller, id int64) error {
	announcement, err := s.announcements.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !policy.Check(caller, policy.ActionDelete, policy.EntityAnnouncement, announcementTarget(announcement)) {
		return apperrors.ErrPermissionDenied
	}

	if err := s.announcements.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Int64("announcementID", id).Msg("Announcement deleted")
	return nil
}

func (s *AnnouncementService) validateAnnouncement(ctx context.Context, title, content string, departmentID *int64) error {
	if validation.IsBlank(title) {
		return apperrors.NewValidationError("title", "must not be empty")
	}
	if validation.IsBlank(content) {
		return apperrors.NewValidationError("content", "must not be empty")
	}
	if departmentID != nil {
		if _, err := s.departments.GetByID(ctx, *departmentID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.NewNotFoundError("department not found")
			}
			return err
		}
	}
	return nil
}

// announcementTarget builds the policy target for an announcement. A deleted
// author leaves OwnerID empty, which denies ownership-based edits.
func announcementTarget(announcement *models.Announcement) *policy.Target {
	target := &policy.Target{}
	if announcement.AuthorID != nil {
		target.OwnerID = *announcement.AuthorID
	}
	return target
}
