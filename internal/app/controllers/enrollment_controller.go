package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emrek/registra/internal/app/models"
	"github.com/emrek/registra/internal/app/models/dto"
	"github.com/emrek/registra/internal/app/services"
	"github.com/emrek/registra/internal/middleware"
)

// EnrollmentController handles enrollment lifecycle endpoints.
type EnrollmentController struct {
	enrollmentService *services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController.
func NewEnrollmentController(enrollmentService *services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{enrollmentService: enrollmentService}
}

// Enroll handles POST /api/v1/enrollments.
func (ec *EnrollmentController) Enroll(c *gin.Context) {
	var req dto.CreateEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	caller := middleware.CallerFromContext(c)
	enrollment, err := ec.enrollmentService.Enroll(c.Request.Context(), caller, req.StudentID, req.CourseID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewEnrollmentResponse(enrollment)))
}

// GetEnrollment handles GET /api/v1/enrollments/:id.
func (ec *EnrollmentController) GetEnrollment(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	caller := middleware.CallerFromContext(c)
	enrollment, err := ec.enrollmentService.GetEnrollment(c.Request.Context(), caller, id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewEnrollmentResponse(enrollment)))
}

// ListMyEnrollments handles GET /api/v1/enrollments/me.
func (ec *EnrollmentController) ListMyEnrollments(c *gin.Context) {
	caller := middleware.CallerFromContext(c)

	enrollments, err := ec.enrollmentService.ListMyEnrollments(c.Request.Context(), caller)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewEnrollmentResponses(enrollments)))
}

// ListStudentEnrollments handles GET /api/v1/students/:id/enrollments.
func (ec *EnrollmentController) ListStudentEnrollments(c *gin.Context) {
	caller := middleware.CallerFromContext(c)

	enrollments, err := ec.enrollmentService.ListStudentEnrollments(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewEnrollmentResponses(enrollments)))
}

// ListCourseEnrollments handles GET /api/v1/courses/:id/enrollments.
func (ec *EnrollmentController) ListCourseEnrollments(c *gin.Context) {
	courseID, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	caller := middleware.CallerFromContext(c)
	enrollments, err := ec.enrollmentService.ListCourseEnrollments(c.Request.Context(), caller, courseID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewEnrollmentResponses(enrollments)))
}

// GetAvailableStudents handles GET /api/v1/courses/:id/available-students.
func (ec *EnrollmentController) GetAvailableStudents(c *gin.Context) {
	courseID, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	caller := middleware.CallerFromContext(c)
	students, err := ec.enrollmentService.GetAvailableStudents(c.Request.Context(), caller, courseID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewUserResponses(students)))
}

// UpdateEnrollment handles PUT /api/v1/enrollments/:id.
func (ec *EnrollmentController) UpdateEnrollment(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	caller := middleware.CallerFromContext(c)
	enrollment, err := ec.enrollmentService.UpdateStatus(c.Request.Context(), caller, id,
		models.EnrollmentStatus(req.Status), req.Grade)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewEnrollmentResponse(enrollment)))
}

// DeleteEnrollment handles DELETE /api/v1/enrollments/:id.
func (ec *EnrollmentController) DeleteEnrollment(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	caller := middleware.CallerFromContext(c)
	if err := ec.enrollmentService.Withdraw(c.Request.Context(), caller, id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"message": "enrollment deleted"}))
}
