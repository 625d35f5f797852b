package dto

import (
	"time"

	"github.com/emrek/registra/internal/app/models"
)

// CreateEnrollmentRequest enrolls a student in a course. StudentID may be
// omitted, in which case the caller enrolls themselves.
type CreateEnrollmentRequest struct {
	CourseID  int64  `json:"courseId" binding:"required" example:"1"`
	StudentID string `json:"studentId,omitempty"`
}

// UpdateEnrollmentRequest moves an enrollment to a new lifecycle state.
// Grade may accompany the transition to completed.
type UpdateEnrollmentRequest struct {
	Status string  `json:"status" binding:"required" example:"completed"`
	Grade  *string `json:"grade,omitempty" example:"A"`
}

// EnrollmentResponse is the public view of an enrollment with its course
// attached.
type EnrollmentResponse struct {
	ID             int64           `json:"id" example:"1"`
	StudentID      string          `json:"studentId"`
	CourseID       int64           `json:"courseId" example:"1"`
	Status         string          `json:"status" example:"active"`
	Grade          *string         `json:"grade,omitempty" example:"A"`
	EnrollmentDate time.Time       `json:"enrollmentDate"`
	Course         *CourseResponse `json:"course,omitempty"`
	Student        *UserResponse   `json:"student,omitempty"`
}

// NewEnrollmentResponse maps an enrollment model to its response shape.
func NewEnrollmentResponse(enrollment *models.Enrollment) EnrollmentResponse {
	response := EnrollmentResponse{
		ID:             enrollment.ID,
		StudentID:      enrollment.StudentID,
		CourseID:       enrollment.CourseID,
		Status:         string(enrollment.Status),
		Grade:          enrollment.Grade,
		EnrollmentDate: enrollment.EnrollmentDate,
	}
	if enrollment.Course != nil {
		course := NewCourseResponse(enrollment.Course)
		response.Course = &course
	}
	if enrollment.Student != nil {
		student := NewUserResponse(enrollment.Student)
		response.Student = &student
	}
	return response
}

// NewEnrollmentResponses maps a slice of enrollment models.
func NewEnrollmentResponses(enrollments []*models.Enrollment) []EnrollmentResponse {
	responses := make([]EnrollmentResponse, 0, len(enrollments))
	for _, enrollment := range enrollments {
		responses = append(responses, NewEnrollmentResponse(enrollment))
	}
	return responses
}
