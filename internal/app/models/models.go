package models

// RoleType defines the user role type
type RoleType string

const (
	RoleAdmin   RoleType = "admin"
	RoleFaculty RoleType = "faculty"
	RoleStudent RoleType = "student"
)

// IsValid reports whether the role is one of the three known kinds.
// Unknown roles are treated as unprivileged by the policy layer.
func (r RoleType) IsValid() bool {
	return r == RoleAdmin || r == RoleFaculty || r == RoleStudent
}

// EnrollmentStatus defines the lifecycle state of an enrollment
type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "active"
	EnrollmentCompleted EnrollmentStatus = "completed"
	EnrollmentDropped   EnrollmentStatus = "dropped"
)

// IsValid reports whether the status is a known enrollment state.
func (s EnrollmentStatus) IsValid() bool {
	return s == EnrollmentActive || s == EnrollmentCompleted || s == EnrollmentDropped
}

// IsTerminal reports whether the status admits no further transitions.
// Only active enrollments may change state.
func (s EnrollmentStatus) IsTerminal() bool {
	return s == EnrollmentCompleted || s == EnrollmentDropped
}
