package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/emrek/registra/internal/app/models"
	"github.com/emrek/registra/internal/app/policy"
	"github.com/emrek/registra/internal/app/repositories"
	"github.com/emrek/registra/internal/pkg/auth"
)

type testEnv struct {
	stores        *memStores
	auth          *AuthService
	users         *UserService
	departments   *DepartmentService
	courses       *CourseService
	enrollments   *EnrollmentService
	announcements *AnnouncementService
	stats         *StatsService
}

func newTestEnv() *testEnv {
	stores := newMemStores()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  15 * time.Minute,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "registra.test",
	})
	return &testEnv{
		stores:        stores,
		auth:          NewAuthService(stores.users, stores.tokens, jwtService),
		users:         NewUserService(stores.users),
		departments:   NewDepartmentService(stores.departments),
		courses:       NewCourseService(stores.courses, stores.departments, stores.enrollments),
		enrollments:   NewEnrollmentService(stores.enrollments, stores.courses, stores.users),
		announcements: NewAnnouncementService(stores.announcements, stores.departments),
		stats:         NewStatsService(stores.stats),
	}
}

func (e *testEnv) addUser(t *testing.T, email string, role models.RoleType, department string) *models.User {
	t.Helper()
	user := &models.User{
		Email:    email,
		Password: "$2a$12$notarealhashnotarealhashnotarealhashnotarealhash",
		RoleType: role,
	}
	if department != "" {
		user.Department = &department
	}
	require.NoError(t, e.stores.users.Create(context.Background(), user))
	return user
}

func (e *testEnv) addDepartment(t *testing.T, name string) *models.Department {
	t.Helper()
	department := &models.Department{Name: name}
	require.NoError(t, e.stores.departments.Create(context.Background(), department))
	return department
}

func (e *testEnv) addCourse(t *testing.T, code string, departmentID int64) *models.Course {
	t.Helper()
	course := &models.Course{
		Code:         code,
		Title:        "Course " + code,
		Credits:      3,
		DepartmentID: departmentID,
	}
	require.NoError(t, e.stores.courses.Create(context.Background(), course))
	return course
}

func listAllAnnouncements() repositories.AnnouncementFilter {
	return repositories.AnnouncementFilter{}
}

func departmentAnnouncements(departmentID int64) repositories.AnnouncementFilter {
	return repositories.AnnouncementFilter{DepartmentID: departmentID}
}

func callerFor(user *models.User) policy.Caller {
	caller := policy.Caller{ID: user.ID, Role: user.RoleType}
	if user.Department != nil {
		caller.Department = *user.Department
	}
	return caller
}
