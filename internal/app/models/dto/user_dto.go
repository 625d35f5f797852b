package dto

import (
	"time"

	"github.com/emrek/registra/internal/app/models"
)

// UserResponse is the public view of a user record. The password hash never
// leaves the service layer.
type UserResponse struct {
	ID         string    `json:"id"`
	Email      string    `json:"email" example:"jane@campus.edu"`
	FullName   *string   `json:"fullName,omitempty" example:"Jane Doe"`
	Role       string    `json:"role" example:"student"`
	Department *string   `json:"department,omitempty" example:"Computer Science"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// NewUserResponse maps a user model to its response shape.
func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:         user.ID,
		Email:      user.Email,
		FullName:   user.FullName,
		Role:       string(user.RoleType),
		Department: user.Department,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}

// NewUserResponses maps a slice of user models.
func NewUserResponses(users []*models.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, NewUserResponse(user))
	}
	return responses
}

// UpdateUserRequest carries a partial user update. Nil fields are left
// untouched. Email and Role are honored only for admin callers.
type UpdateUserRequest struct {
	FullName   *string `json:"fullName,omitempty"`
	Department *string `json:"department,omitempty"`
	Email      *string `json:"email,omitempty"`
	Role       *string `json:"role,omitempty" example:"faculty"`
}

// UserListResponse is a page of users.
type UserListResponse struct {
	Users      []UserResponse `json:"users"`
	Pagination PaginationInfo `json:"pagination"`
}
