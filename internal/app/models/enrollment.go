package models

import (
	"time"
)

// Enrollment defines the enrollment model based on the 'enrollments' table.
// The (student_id, course_id) pair is unique: a student cannot enroll twice
// in the same course.
type Enrollment struct {
	ID             int64            `json:"id" db:"id" example:"1"`
	StudentID      string           `json:"studentId" db:"student_id"` // FK to users (cascade on delete)
	CourseID       int64            `json:"courseId" db:"course_id"`   // FK to courses (cascade on delete)
	EnrollmentDate time.Time        `json:"enrollmentDate" db:"enrollment_date"`
	Status         EnrollmentStatus `json:"status" db:"status" example:"active"`
	Grade          *string          `json:"grade,omitempty" db:"grade"` // Optional letter grade (nullable)
	Student        *User            `json:"student,omitempty"`          // Relation, no db tag
	Course         *Course          `json:"course,omitempty"`           // Relation, no db tag
}
