package dto

import (
	"time"

	"github.com/emrek/registra/internal/app/models"
)

// CreateAnnouncementRequest publishes a new announcement. A nil DepartmentID
// makes the announcement institution-wide.
type CreateAnnouncementRequest struct {
	Title        string `json:"title" binding:"required" example:"Midterm schedule published"`
	Content      string `json:"content" binding:"required"`
	DepartmentID *int64 `json:"departmentId,omitempty" example:"1"`
}

// UpdateAnnouncementRequest edits an existing announcement.
type UpdateAnnouncementRequest struct {
	Title        string `json:"title" binding:"required"`
	Content      string `json:"content" binding:"required"`
	DepartmentID *int64 `json:"departmentId,omitempty"`
}

// AnnouncementResponse is the public view of an announcement. AuthorName is
// empty when the author account was deleted.
type AnnouncementResponse struct {
	ID           int64     `json:"id" example:"1"`
	Title        string    `json:"title" example:"Midterm schedule published"`
	Content      string    `json:"content"`
	AuthorID     *string   `json:"authorId,omitempty"`
	AuthorName   string    `json:"authorName,omitempty" example:"Dr. Smith"`
	DepartmentID *int64    `json:"departmentId,omitempty" example:"1"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NewAnnouncementResponse maps an announcement model to its response shape.
func NewAnnouncementResponse(announcement *models.Announcement) AnnouncementResponse {
	response := AnnouncementResponse{
		ID:           announcement.ID,
		Title:        announcement.Title,
		Content:      announcement.Content,
		AuthorID:     announcement.AuthorID,
		DepartmentID: announcement.DepartmentID,
		CreatedAt:    announcement.CreatedAt,
		UpdatedAt:    announcement.UpdatedAt,
	}
	if announcement.Author != nil {
		if announcement.Author.FullName != nil {
			response.AuthorName = *announcement.Author.FullName
		} else {
			response.AuthorName = announcement.Author.Email
		}
	}
	return response
}

// NewAnnouncementResponses maps a slice of announcement models.
func NewAnnouncementResponses(announcements []*models.Announcement) []AnnouncementResponse {
	responses := make([]AnnouncementResponse, 0, len(announcements))
	for _, announcement := range announcements {
		responses = append(responses, NewAnnouncementResponse(announcement))
	}
	return responses
}

// AnnouncementListResponse is a page of announcements.
type AnnouncementListResponse struct {
	Announcements []AnnouncementResponse `json:"announcements"`
	Pagination    PaginationInfo         `json:"pagination"`
}
