package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID         string    `json:"id" db:"id" example:"5f2b7c1e-9d34-4a1b-8a6f-0e1c2d3b4a5f"` // Opaque stable identifier (UUID)
	Email      string    `json:"email" db:"email" example:"user@campus.edu"`                // User's email address (unique)
	Password   string    `json:"-" db:"password"`                                           // Hashed password (excluded from JSON)
	FullName   *string   `json:"fullName,omitempty" db:"full_name" example:"Jane Doe"`      // Display name (nullable)
	RoleType   RoleType  `json:"role" db:"role" example:"student"`                          // admin, faculty or student
	Department *string   `json:"department,omitempty" db:"department"`                      // Free-text department name (nullable)
	CreatedAt  time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"`
}
