package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emrek/registra/internal/app/models/dto"
	"github.com/emrek/registra/internal/app/repositories"
	"github.com/emrek/registra/internal/app/services"
	"github.com/emrek/registra/internal/middleware"
)

// CourseController handles course catalog endpoints.
type CourseController struct {
	courseService *services.CourseService
}

// NewCourseController creates a new CourseController.
func NewCourseController(courseService *services.CourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

// ListCourses handles GET /api/v1/courses. Supports departmentId, sort and
// order query parameters.
func (cc *CourseController) ListCourses(c *gin.Context) {
	caller := middleware.CallerFromContext(c)

	filter := repositories.CourseFilter{
		OrderBy:    c.Query("sort"),
		Descending: c.Query("order") == "desc",
	}
	if raw := c.Query("departmentId"); raw != "" {
		if departmentID, err := strconv.ParseInt(raw, 10, 64); err == nil && departmentID > 0 {
			filter.DepartmentID = departmentID
		}
	}

	courses, err := cc.courseService.ListCourses(c.Request.Context(), caller, filter)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewCourseResponses(courses)))
}

// GetCourse handles GET /api/v1/courses/:id.
func (cc *CourseController) GetCourse(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	caller := middleware.CallerFromContext(c)
	course, enrollmentCount, err := cc.courseService.GetCourse(c.Request.Context(), caller, id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	response := dto.NewCourseResponse(course)
	response.EnrollmentCount = &enrollmentCount
	c.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// CreateCourse handles POST /api/v1/courses.
func (cc *CourseController) CreateCourse(c *gin.Context) {
	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	caller := middleware.CallerFromContext(c)
	course, err := cc.courseService.CreateCourse(c.Request.Context(), caller,
		req.Code, req.Title, req.Description, req.Credits, req.DepartmentID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewCourseResponse(course)))
}

// UpdateCourse handles PUT /api/v1/courses/:id.
func (cc *CourseController) UpdateCourse(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	caller := middleware.CallerFromContext(c)
	course, err := cc.courseService.UpdateCourse(c.Request.Context(), caller, id,
		req.Code, req.Title, req.Description, req.Credits, req.DepartmentID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewCourseResponse(course)))
}

// DeleteCourse handles DELETE /api/v1/courses/:id.
func (cc *CourseController) DeleteCourse(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	caller := middleware.CallerFromContext(c)
	if err := cc.courseService.DeleteCourse(c.Request.Context(), caller, id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"message": "course deleted"}))
}
