package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles every repository for dependency injection.
type Repositories struct {
	UserRepository         *UserRepository
	DepartmentRepository   *DepartmentRepository
	CourseRepository       *CourseRepository
	EnrollmentRepository   *EnrollmentRepository
	AnnouncementRepository *AnnouncementRepository
	TokenRepository        *TokenRepository
	StatsRepository        *StatsRepository
}

// NewRepositories creates the repository container backed by a single pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		DepartmentRepository:   NewDepartmentRepository(db),
		CourseRepository:       NewCourseRepository(db),
		EnrollmentRepository:   NewEnrollmentRepository(db),
		AnnouncementRepository: NewAnnouncementRepository(db),
		TokenRepository:        NewTokenRepository(db),
		StatsRepository:        NewStatsRepository(db),
	}
}
