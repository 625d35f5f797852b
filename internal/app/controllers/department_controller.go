package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emrek/registra/internal/app/models/dto"
	"github.com/emrek/registra/internal/app/services"
	"github.com/emrek/registra/internal/middleware"
	"github.com/emrek/registra/internal/pkg/apperrors"
)

// DepartmentController handles department endpoints.
type DepartmentController struct {
	departmentService *services.DepartmentService
}

// NewDepartmentController creates a new DepartmentController.
func NewDepartmentController(departmentService *services.DepartmentService) *DepartmentController {
	return &DepartmentController{departmentService: departmentService}
}

// parseIDParam reads a positive integer path parameter.
func parseIDParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError(name, "must be a positive integer")
	}
	return id, nil
}

// ListDepartments handles GET /api/v1/departments.
func (dc *DepartmentController) ListDepartments(c *gin.Context) {
	caller := middleware.CallerFromContext(c)

	departments, err := dc.departmentService.ListDepartments(c.Request.Context(), caller)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewDepartmentResponses(departments)))
}

// GetDepartment handles GET /api/v1/departments/:id.
func (dc *DepartmentController) GetDepartment(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	caller := middleware.CallerFromContext(c)
	department, err := dc.departmentService.GetDepartment(c.Request.Context(), caller, id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewDepartmentResponse(department)))
}

// CreateDepartment handles POST /api/v1/departments.
func (dc *DepartmentController) CreateDepartment(c *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	caller := middleware.CallerFromContext(c)
	department, err := dc.departmentService.CreateDepartment(c.Request.Context(), caller, req.Name, req.Description)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewDepartmentResponse(department)))
}

// UpdateDepartment handles PUT /api/v1/departments/:id.
func (dc *DepartmentController) UpdateDepartment(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	caller := middleware.CallerFromContext(c)
	department, err := dc.departmentService.UpdateDepartment(c.Request.Context(), caller, id, req.Name, req.Description)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewDepartmentResponse(department)))
}

// DeleteDepartment handles DELETE /api/v1/departments/:id.
func (dc *DepartmentController) DeleteDepartment(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	caller := middleware.CallerFromContext(c)
	if err := dc.departmentService.DeleteDepartment(c.Request.Context(), caller, id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"message": "department deleted"}))
}
