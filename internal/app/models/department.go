package models

import (
	"time"
)

// Department defines the department model based on the 'departments' table
type Department struct {
	ID          int64     `json:"id" db:"id" example:"1"`
	Name        string    `json:"name" db:"name" example:"Computer Science"` // Unique department name
	Description *string   `json:"description,omitempty" db:"description"`    // Optional description (nullable)
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
