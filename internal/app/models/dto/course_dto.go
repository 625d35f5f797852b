package dto

import (
	"time"

	"github.com/emrek/registra/internal/app/models"
)

// CreateCourseRequest creates a new course inside a department.
type CreateCourseRequest struct {
	Code         string  `json:"code" binding:"required" example:"CS101"`
	Title        string  `json:"title" binding:"required" example:"Introduction to Programming"`
	Description  *string `json:"description,omitempty"`
	Credits      int     `json:"credits" binding:"required" example:"4"`
	DepartmentID int64   `json:"departmentId" binding:"required" example:"1"`
}

// UpdateCourseRequest updates an existing course.
type UpdateCourseRequest struct {
	Code         string  `json:"code" binding:"required" example:"CS101"`
	Title        string  `json:"title" binding:"required" example:"Introduction to Programming"`
	Description  *string `json:"description,omitempty"`
	Credits      int     `json:"credits" binding:"required" example:"4"`
	DepartmentID int64   `json:"departmentId" binding:"required" example:"1"`
}

// CourseResponse is the public view of a course. DepartmentName is resolved
// from the owning department; EnrollmentCount is filled for detail reads.
type CourseResponse struct {
	ID              int64     `json:"id" example:"1"`
	Code            string    `json:"code" example:"CS101"`
	Title           string    `json:"title" example:"Introduction to Programming"`
	Description     *string   `json:"description,omitempty"`
	Credits         int       `json:"credits" example:"4"`
	DepartmentID    int64     `json:"departmentId" example:"1"`
	DepartmentName  string    `json:"departmentName,omitempty" example:"Computer Science"`
	EnrollmentCount *int64    `json:"enrollmentCount,omitempty" example:"42"`
	CreatedAt       time.Time `json:"createdAt"`
}

// NewCourseResponse maps a course model to its response shape.
func NewCourseResponse(course *models.Course) CourseResponse {
	response := CourseResponse{
		ID:           course.ID,
		Code:         course.Code,
		Title:        course.Title,
		Description:  course.Description,
		Credits:      course.Credits,
		DepartmentID: course.DepartmentID,
		CreatedAt:    course.CreatedAt,
	}
	if course.Department != nil {
		response.DepartmentName = course.Department.Name
	}
	return response
}

// NewCourseResponses maps a slice of course models.
func NewCourseResponses(courses []*models.Course) []CourseResponse {
	responses := make([]CourseResponse, 0, len(courses))
	for _, course := range courses {
		responses = append(responses, NewCourseResponse(course))
	}
	return responses
}
