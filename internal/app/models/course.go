package models

import (
	"time"
)

// Course defines the course model based on the 'courses' table
type Course struct {
	ID           int64       `json:"id" db:"id" example:"1"`
	Code         string      `json:"code" db:"code" example:"CS101"` // Unique course code
	Title        string      `json:"title" db:"title" example:"Introduction to Programming"`
	Description  *string     `json:"description,omitempty" db:"description"`
	Credits      int         `json:"credits" db:"credits" example:"4"`  // Positive integer
	DepartmentID int64       `json:"departmentId" db:"department_id"`   // Owning department (cascade on delete)
	CreatedAt    time.Time   `json:"createdAt" db:"created_at"`
	Department   *Department `json:"department,omitempty"` // Relation, no db tag
}
