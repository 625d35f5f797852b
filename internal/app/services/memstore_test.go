package services

// In-memory store doubles. They honor the same contracts as the SQL
// repositories: sentinel errors for constraint hits, cascade and nullify
// semantics on delete, and relations attached on enrollment reads.

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/emrek/registra/internal/app/models"
	"github.com/emrek/registra/internal/app/repositories"
	"github.com/emrek/registra/internal/pkg/apperrors"
)

type memToken struct {
	userID     string
	expiryDate time.Time
	revoked    bool
}

type memDB struct {
	mu            sync.Mutex
	users         map[string]*models.User
	userOrder     []string
	departments   map[int64]*models.Department
	courses       map[int64]*models.Course
	enrollments   map[int64]*models.Enrollment
	announcements map[int64]*models.Announcement
	tokens        map[string]*memToken
	nextID        int64
}

type memStores struct {
	db            *memDB
	users         *memUsers
	departments   *memDepartments
	courses       *memCourses
	enrollments   *memEnrollments
	announcements *memAnnouncements
	tokens        *memTokens
	stats         *memStats
}

func newMemStores() *memStores {
	db := &memDB{
		users:         make(map[string]*models.User),
		departments:   make(map[int64]*models.Department),
		courses:       make(map[int64]*models.Course),
		enrollments:   make(map[int64]*models.Enrollment),
		announcements: make(map[int64]*models.Announcement),
		tokens:        make(map[string]*memToken),
	}
	return &memStores{
		db:            db,
		users:         &memUsers{db},
		departments:   &memDepartments{db},
		courses:       &memCourses{db},
		enrollments:   &memEnrollments{db},
		announcements: &memAnnouncements{db},
		tokens:        &memTokens{db},
		stats:         &memStats{db},
	}
}

func (db *memDB) nextSerial() int64 {
	db.nextID++
	return db.nextID
}

// --- users ---

type memUsers struct{ db *memDB }

func (s *memUsers) Create(_ context.Context, user *models.User) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for _, existing := range s.db.users {
		if existing.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	user.ID = uuid.New().String()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	s.db.users[user.ID] = copyUser(user)
	s.db.userOrder = append(s.db.userOrder, user.ID)
	return nil
}

func (s *memUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	user, ok := s.db.users[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return copyUser(user), nil
}

func (s *memUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for _, user := range s.db.users {
		if user.Email == email {
			return copyUser(user), nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *memUsers) List(_ context.Context, offset uint64, limit int) ([]*models.User, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	var users []*models.User
	for i := int(offset); i < len(s.db.userOrder) && len(users) < limit; i++ {
		users = append(users, copyUser(s.db.users[s.db.userOrder[i]]))
	}
	return users, nil
}

func (s *memUsers) Count(_ context.Context) (int64, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	return int64(len(s.db.users)), nil
}

func (s *memUsers) Update(_ context.Context, user *models.User) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	existing, ok := s.db.users[user.ID]
	if !ok {
		return apperrors.ErrNotFound
	}
	for id, other := range s.db.users {
		if id != user.ID && other.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	updated := copyUser(user)
	updated.Password = existing.Password
	updated.UpdatedAt = time.Now()
	s.db.users[user.ID] = updated
	return nil
}

func (s *memUsers) UpdatePassword(_ context.Context, id, passwordHash string) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	user, ok := s.db.users[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	user.Password = passwordHash
	return nil
}

func (s *memUsers) Delete(_ context.Context, id string) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, ok := s.db.users[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(s.db.users, id)
	for i, userID := range s.db.userOrder {
		if userID == id {
			s.db.userOrder = append(s.db.userOrder[:i], s.db.userOrder[i+1:]...)
			break
		}
	}
	// Enrollments cascade, announcements keep content with the author nulled.
	for enrollmentID, enrollment := range s.db.enrollments {
		if enrollment.StudentID == id {
			delete(s.db.enrollments, enrollmentID)
		}
	}
	for _, announcement := range s.db.announcements {
		if announcement.AuthorID != nil && *announcement.AuthorID == id {
			announcement.AuthorID = nil
		}
	}
	// Refresh tokens cascade with the account.
	for token, record := range s.db.tokens {
		if record.userID == id {
			delete(s.db.tokens, token)
		}
	}
	return nil
}

func (s *memUsers) EmailExists(_ context.Context, email string) (bool, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for _, user := range s.db.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// --- departments ---

type memDepartments struct{ db *memDB }

func (s *memDepartments) Create(_ context.Context, department *models.Department) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for _, existing := range s.db.departments {
		if existing.Name == department.Name {
			return apperrors.ErrDepartmentAlreadyExists
		}
	}
	department.ID = s.db.nextSerial()
	department.CreatedAt = time.Now()
	s.db.departments[department.ID] = copyDepartment(department)
	return nil
}

func (s *memDepartments) GetByID(_ context.Context, id int64) (*models.Department, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	department, ok := s.db.departments[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return copyDepartment(department), nil
}

func (s *memDepartments) GetAll(_ context.Context) ([]*models.Department, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	var departments []*models.Department
	for _, department := range s.db.departments {
		departments = append(departments, copyDepartment(department))
	}
	sort.Slice(departments, func(i, j int) bool {
		return departments[i].Name < departments[j].Name
	})
	return departments, nil
}

func (s *memDepartments) ExistsByName(_ context.Context, name string, excludeID int64) (bool, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for id, department := range s.db.departments {
		if id != excludeID && department.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (s *memDepartments) Update(_ context.Context, department *models.Department) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, ok := s.db.departments[department.ID]; !ok {
		return apperrors.ErrNotFound
	}
	s.db.departments[department.ID] = copyDepartment(department)
	return nil
}

func (s *memDepartments) Delete(_ context.Context, id int64) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, ok := s.db.departments[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(s.db.departments, id)
	// Courses cascade and take their enrollments with them; announcements
	// survive with the department nulled.
	for courseID, course := range s.db.courses {
		if course.DepartmentID == id {
			delete(s.db.courses, courseID)
			for enrollmentID, enrollment := range s.db.enrollments {
				if enrollment.CourseID == courseID {
					delete(s.db.enrollments, enrollmentID)
				}
			}
		}
	}
	for _, announcement := range s.db.announcements {
		if announcement.DepartmentID != nil && *announcement.DepartmentID == id {
			announcement.DepartmentID = nil
		}
	}
	return nil
}

// --- courses ---

type memCourses struct{ db *memDB }

func (s *memCourses) Create(_ context.Context, course *models.Course) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for _, existing := range s.db.courses {
		if existing.Code == course.Code {
			return apperrors.ErrCourseCodeAlreadyExists
		}
	}
	if _, ok := s.db.departments[course.DepartmentID]; !ok {
		return apperrors.NewNotFoundError("department not found")
	}
	course.ID = s.db.nextSerial()
	course.CreatedAt = time.Now()
	s.db.courses[course.ID] = copyCourse(course)
	return nil
}

func (s *memCourses) GetByID(_ context.Context, id int64) (*models.Course, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	course, ok := s.db.courses[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return s.withDepartment(course), nil
}

func (s *memCourses) List(_ context.Context, filter repositories.CourseFilter) ([]*models.Course, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	var courses []*models.Course
	for _, course := range s.db.courses {
		if filter.DepartmentID > 0 && course.DepartmentID != filter.DepartmentID {
			continue
		}
		courses = append(courses, s.withDepartment(course))
	}
	sort.Slice(courses, func(i, j int) bool {
		if filter.Descending {
			return courses[i].Code > courses[j].Code
		}
		return courses[i].Code < courses[j].Code
	})
	return courses, nil
}

func (s *memCourses) ExistsByCode(_ context.Context, code string, excludeID int64) (bool, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for id, course := range s.db.courses {
		if id != excludeID && strings.EqualFold(course.Code, code) {
			return true, nil
		}
	}
	return false, nil
}

func (s *memCourses) Update(_ context.Context, course *models.Course) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, ok := s.db.courses[course.ID]; !ok {
		return apperrors.ErrNotFound
	}
	if _, ok := s.db.departments[course.DepartmentID]; !ok {
		return apperrors.NewNotFoundError("department not found")
	}
	s.db.courses[course.ID] = copyCourse(course)
	return nil
}

func (s *memCourses) Delete(_ context.Context, id int64) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, ok := s.db.courses[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(s.db.courses, id)
	for enrollmentID, enrollment := range s.db.enrollments {
		if enrollment.CourseID == id {
			delete(s.db.enrollments, enrollmentID)
		}
	}
	return nil
}

func (s *memCourses) withDepartment(course *models.Course) *models.Course {
	result := copyCourse(course)
	if department, ok := s.db.departments[course.DepartmentID]; ok {
		result.Department = copyDepartment(department)
	}
	return result
}

// --- enrollments ---

type memEnrollments struct{ db *memDB }

func (s *memEnrollments) Create(_ context.Context, enrollment *models.Enrollment) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for _, existing := range s.db.enrollments {
		if existing.StudentID == enrollment.StudentID && existing.CourseID == enrollment.CourseID {
			return apperrors.ErrAlreadyEnrolled
		}
	}
	if _, ok := s.db.users[enrollment.StudentID]; !ok {
		return apperrors.NewNotFoundError("student or course not found")
	}
	if _, ok := s.db.courses[enrollment.CourseID]; !ok {
		return apperrors.NewNotFoundError("student or course not found")
	}
	enrollment.ID = s.db.nextSerial()
	enrollment.EnrollmentDate = time.Now()
	s.db.enrollments[enrollment.ID] = copyEnrollment(enrollment)
	return nil
}

func (s *memEnrollments) GetByID(_ context.Context, id int64) (*models.Enrollment, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	enrollment, ok := s.db.enrollments[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return s.withRelations(enrollment), nil
}

func (s *memEnrollments) ListByStudent(_ context.Context, studentID string) ([]*models.Enrollment, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	var enrollments []*models.Enrollment
	for _, enrollment := range s.db.enrollments {
		if enrollment.StudentID == studentID {
			enrollments = append(enrollments, s.withRelations(enrollment))
		}
	}
	sort.Slice(enrollments, func(i, j int) bool { return enrollments[i].ID < enrollments[j].ID })
	return enrollments, nil
}

func (s *memEnrollments) ListByCourse(_ context.Context, courseID int64) ([]*models.Enrollment, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	var enrollments []*models.Enrollment
	for _, enrollment := range s.db.enrollments {
		if enrollment.CourseID == courseID {
			enrollments = append(enrollments, s.withRelations(enrollment))
		}
	}
	sort.Slice(enrollments, func(i, j int) bool { return enrollments[i].ID < enrollments[j].ID })
	return enrollments, nil
}

func (s *memEnrollments) Exists(_ context.Context, studentID string, courseID int64) (bool, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for _, enrollment := range s.db.enrollments {
		if enrollment.StudentID == studentID && enrollment.CourseID == courseID {
			return true, nil
		}
	}
	return false, nil
}

func (s *memEnrollments) UpdateStatus(_ context.Context, id int64, status models.EnrollmentStatus, grade *string) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	enrollment, ok := s.db.enrollments[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	enrollment.Status = status
	enrollment.Grade = grade
	return nil
}

func (s *memEnrollments) Delete(_ context.Context, id int64) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, ok := s.db.enrollments[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(s.db.enrollments, id)
	return nil
}

func (s *memEnrollments) CountByCourse(_ context.Context, courseID int64) (int64, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	var count int64
	for _, enrollment := range s.db.enrollments {
		if enrollment.CourseID == courseID {
			count++
		}
	}
	return count, nil
}

func (s *memEnrollments) ListAvailableStudents(_ context.Context, courseID int64) ([]*models.User, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	enrolled := make(map[string]bool)
	for _, enrollment := range s.db.enrollments {
		if enrollment.CourseID == courseID {
			enrolled[enrollment.StudentID] = true
		}
	}
	var students []*models.User
	for _, user := range s.db.users {
		if user.RoleType == models.RoleStudent && !enrolled[user.ID] {
			students = append(students, copyUser(user))
		}
	}
	sort.Slice(students, func(i, j int) bool { return students[i].Email < students[j].Email })
	return students, nil
}

func (s *memEnrollments) withRelations(enrollment *models.Enrollment) *models.Enrollment {
	result := copyEnrollment(enrollment)
	if course, ok := s.db.courses[enrollment.CourseID]; ok {
		courseCopy := copyCourse(course)
		if department, ok := s.db.departments[course.DepartmentID]; ok {
			courseCopy.Department = copyDepartment(department)
		}
		result.Course = courseCopy
	}
	return result
}

// --- announcements ---

type memAnnouncements struct{ db *memDB }

func (s *memAnnouncements) Create(_ context.Context, announcement *models.Announcement) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	announcement.ID = s.db.nextSerial()
	announcement.CreatedAt = time.Now()
	announcement.UpdatedAt = announcement.CreatedAt
	s.db.announcements[announcement.ID] = copyAnnouncement(announcement)
	return nil
}

func (s *memAnnouncements) GetByID(_ context.Context, id int64) (*models.Announcement, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	announcement, ok := s.db.announcements[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	result := copyAnnouncement(announcement)
	if announcement.AuthorID != nil {
		if author, ok := s.db.users[*announcement.AuthorID]; ok {
			result.Author = copyUser(author)
		}
	}
	return result, nil
}

func (s *memAnnouncements) List(_ context.Context, filter repositories.AnnouncementFilter, offset uint64, limit int) ([]*models.Announcement, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	var announcements []*models.Announcement
	for _, announcement := range s.db.announcements {
		if filter.DepartmentID > 0 &&
			(announcement.DepartmentID == nil || *announcement.DepartmentID != filter.DepartmentID) {
			continue
		}
		announcements = append(announcements, copyAnnouncement(announcement))
	}
	sort.Slice(announcements, func(i, j int) bool { return announcements[i].ID > announcements[j].ID })
	if int(offset) >= len(announcements) {
		return nil, nil
	}
	announcements = announcements[offset:]
	if len(announcements) > limit {
		announcements = announcements[:limit]
	}
	return announcements, nil
}

func (s *memAnnouncements) Count(_ context.Context, filter repositories.AnnouncementFilter) (int64, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	var count int64
	for _, announcement := range s.db.announcements {
		if filter.DepartmentID > 0 &&
			(announcement.DepartmentID == nil || *announcement.DepartmentID != filter.DepartmentID) {
			continue
		}
		count++
	}
	return count, nil
}

func (s *memAnnouncements) Update(_ context.Context, announcement *models.Announcement) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	existing, ok := s.db.announcements[announcement.ID]
	if !ok {
		return apperrors.ErrNotFound
	}
	updated := copyAnnouncement(announcement)
	updated.AuthorID = existing.AuthorID
	updated.UpdatedAt = time.Now()
	s.db.announcements[announcement.ID] = updated
	return nil
}

func (s *memAnnouncements) Delete(_ context.Context, id int64) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, ok := s.db.announcements[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(s.db.announcements, id)
	return nil
}

// --- refresh tokens ---

type memTokens struct{ db *memDB }

func (s *memTokens) CreateToken(_ context.Context, token, userID string, expiryDate time.Time) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	s.db.tokens[token] = &memToken{userID: userID, expiryDate: expiryDate}
	return nil
}

func (s *memTokens) GetTokenUser(_ context.Context, token string) (string, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	record, ok := s.db.tokens[token]
	if !ok {
		return "", apperrors.ErrTokenNotFound
	}
	if record.revoked {
		return "", apperrors.ErrTokenRevoked
	}
	if record.expiryDate.Before(time.Now()) {
		return "", apperrors.ErrTokenExpired
	}
	return record.userID, nil
}

func (s *memTokens) RevokeToken(_ context.Context, token string) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	record, ok := s.db.tokens[token]
	if !ok {
		return apperrors.ErrTokenNotFound
	}
	record.revoked = true
	return nil
}

func (s *memTokens) RevokeAllUserTokens(_ context.Context, userID string) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for _, record := range s.db.tokens {
		if record.userID == userID {
			record.revoked = true
		}
	}
	return nil
}

// --- copies ---

func copyUser(user *models.User) *models.User {
	result := *user
	return &result
}

func copyDepartment(department *models.Department) *models.Department {
	result := *department
	return &result
}

func copyCourse(course *models.Course) *models.Course {
	result := *course
	result.Department = nil
	return &result
}

func copyEnrollment(enrollment *models.Enrollment) *models.Enrollment {
	result := *enrollment
	result.Course = nil
	result.Student = nil
	return &result
}

func copyAnnouncement(announcement *models.Announcement) *models.Announcement {
	result := *announcement
	result.Author = nil
	result.Department = nil
	return &result
}

// --- stats ---

type memStats struct{ db *memDB }

func (s *memStats) GetDashboardStats(_ context.Context) (*models.DashboardStats, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	stats := &models.DashboardStats{
		Courses:       int64(len(s.db.courses)),
		Departments:   int64(len(s.db.departments)),
		Announcements: int64(len(s.db.announcements)),
	}
	for _, user := range s.db.users {
		switch user.RoleType {
		case models.RoleStudent:
			stats.Students++
		case models.RoleFaculty:
			stats.Faculty++
		}
	}
	return stats, nil
}
