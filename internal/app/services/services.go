// Package services implements the access façade: every operation resolves
// the caller, consults the policy evaluator, validates input, and only then
// touches the store. Store access goes through the narrow interfaces below so
// tests can substitute in-memory doubles.
package services

import (
	"context"
	"time"

	"github.com/emrek/registra/internal/app/models"
	"github.com/emrek/registra/internal/app/repositories"
)

// UserStore is the slice of the entity store the user façade needs.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, offset uint64, limit int) ([]*models.User, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	Delete(ctx context.Context, id string) error
	EmailExists(ctx context.Context, email string) (bool, error)
}

// DepartmentStore is the slice of the entity store the department façade needs.
type DepartmentStore interface {
	Create(ctx context.Context, department *models.Department) error
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	GetAll(ctx context.Context) ([]*models.Department, error)
	ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error)
	Update(ctx context.Context, department *models.Department) error
	Delete(ctx context.Context, id int64) error
}

// CourseStore is the slice of the entity store the course façade needs.
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	List(ctx context.Context, filter repositories.CourseFilter) ([]*models.Course, error)
	ExistsByCode(ctx context.Context, code string, excludeID int64) (bool, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
}

// EnrollmentStore is the slice of the entity store the enrollment façade needs.
type EnrollmentStore interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
	GetByID(ctx context.Context, id int64) (*models.Enrollment, error)
	ListByStudent(ctx context.Context, studentID string) ([]*models.Enrollment, error)
	ListByCourse(ctx context.Context, courseID int64) ([]*models.Enrollment, error)
	Exists(ctx context.Context, studentID string, courseID int64) (bool, error)
	UpdateStatus(ctx context.Context, id int64, status models.EnrollmentStatus, grade *string) error
	Delete(ctx context.Context, id int64) error
	CountByCourse(ctx context.Context, courseID int64) (int64, error)
	ListAvailableStudents(ctx context.Context, courseID int64) ([]*models.User, error)
}

// AnnouncementStore is the slice of the entity store the announcement façade needs.
type AnnouncementStore interface {
	Create(ctx context.Context, announcement *models.Announcement) error
	GetByID(ctx context.Context, id int64) (*models.Announcement, error)
	List(ctx context.Context, filter repositories.AnnouncementFilter, offset uint64, limit int) ([]*models.Announcement, error)
	Count(ctx context.Context, filter repositories.AnnouncementFilter) (int64, error)
	Update(ctx context.Context, announcement *models.Announcement) error
	Delete(ctx context.Context, id int64) error
}

// StatsStore serves aggregate entity counts for the dashboard.
type StatsStore interface {
	GetDashboardStats(ctx context.Context) (*models.DashboardStats, error)
}

// RefreshTokenStore persists opaque refresh tokens for the identity provider.
type RefreshTokenStore interface {
	CreateToken(ctx context.Context, token, userID string, expiryDate time.Time) error
	GetTokenUser(ctx context.Context, token string) (string, error)
	RevokeToken(ctx context.Context, token string) error
	RevokeAllUserTokens(ctx context.Context, userID string) error
}
