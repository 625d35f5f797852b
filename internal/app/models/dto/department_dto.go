package dto

import (
	"time"

	"github.com/emrek/registra/internal/app/models"
)

// CreateDepartmentRequest creates a new department.
type CreateDepartmentRequest struct {
	Name        string  `json:"name" binding:"required" example:"Computer Science"`
	Description *string `json:"description,omitempty"`
}

// UpdateDepartmentRequest updates an existing department.
type UpdateDepartmentRequest struct {
	Name        string  `json:"name" binding:"required" example:"Computer Science"`
	Description *string `json:"description,omitempty"`
}

// DepartmentResponse is the public view of a department.
type DepartmentResponse struct {
	ID          int64     `json:"id" example:"1"`
	Name        string    `json:"name" example:"Computer Science"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewDepartmentResponse maps a department model to its response shape.
func NewDepartmentResponse(department *models.Department) DepartmentResponse {
	return DepartmentResponse{
		ID:          department.ID,
		Name:        department.Name,
		Description: department.Description,
		CreatedAt:   department.CreatedAt,
	}
}

// NewDepartmentResponses maps a slice of department models.
func NewDepartmentResponses(departments []*models.Department) []DepartmentResponse {
	responses := make([]DepartmentResponse, 0, len(departments))
	for _, department := range departments {
		responses = append(responses, NewDepartmentResponse(department))
	}
	return responses
}
