package services

import (
	"github.com/emrek/registra/internal/app/repositories"
	"github.com/emrek/registra/internal/pkg/auth"
)

// Services bundles every service for dependency injection.
type Services struct {
	AuthService         *AuthService
	UserService         *UserService
	DepartmentService   *DepartmentService
	CourseService       *CourseService
	EnrollmentService   *EnrollmentService
	AnnouncementService *AnnouncementService
	StatsService        *StatsService
}

// NewServices wires the services to their repositories.
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService) *Services {
	return &Services{
		AuthService: NewAuthService(
			repos.UserRepository, repos.TokenRepository, jwtService),
		UserService: NewUserService(repos.UserRepository),
		DepartmentService: NewDepartmentService(
			repos.DepartmentRepository),
		CourseService: NewCourseService(
			repos.CourseRepository, repos.DepartmentRepository, repos.EnrollmentRepository),
		EnrollmentService: NewEnrollmentService(
			repos.EnrollmentRepository, repos.CourseRepository, repos.UserRepository),
		AnnouncementService: NewAnnouncementService(
			repos.AnnouncementRepository, repos.DepartmentRepository),
		StatsService: NewStatsService(repos.StatsRepository),
	}
}
