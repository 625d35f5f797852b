package models

import (
	"time"
)

// Announcement defines the announcement model based on the 'announcements'
// table. AuthorID is nullified when the author is deleted; a nil DepartmentID
// marks an institution-wide announcement.
type Announcement struct {
	ID           int64       `json:"id" db:"id" example:"1"`
	Title        string      `json:"title" db:"title" example:"Midterm schedule published"`
	Content      string      `json:"content" db:"content"`
	AuthorID     *string     `json:"authorId,omitempty" db:"author_id"`         // FK to users (set null on delete)
	DepartmentID *int64      `json:"departmentId,omitempty" db:"department_id"` // FK to departments (set null on delete)
	CreatedAt    time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time   `json:"updatedAt" db:"updated_at"`
	Author       *User       `json:"author,omitempty"`     // Relation, no db tag
	Department   *Department `json:"department,omitempty"` // Relation, no db tag
}
