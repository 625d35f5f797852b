package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emrek/registra/internal/app/models/dto"
	"github.com/emrek/registra/internal/app/services"
	"github.com/emrek/registra/internal/middleware"
	"github.com/emrek/registra/internal/pkg/helpers"
)

// UserController handles user administration endpoints.
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new UserController.
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

// ListUsers handles GET /api/v1/users.
func (uc *UserController) ListUsers(c *gin.Context) {
	caller := middleware.CallerFromContext(c)
	page, size := helpers.ParsePaginationParams(c)

	users, total, err := uc.userService.ListUsers(c.Request.Context(), caller, page, size)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.UserListResponse{
		Users:      dto.NewUserResponses(users),
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}))
}

// GetUser handles GET /api/v1/users/:id.
func (uc *UserController) GetUser(c *gin.Context) {
	caller := middleware.CallerFromContext(c)

	user, err := uc.userService.GetUser(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewUserResponse(user)))
}

// UpdateUser handles PUT /api/v1/users/:id.
func (uc *UserController) UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	caller := middleware.CallerFromContext(c)
	user, err := uc.userService.UpdateUser(c.Request.Context(), caller, c.Param("id"),
		req.FullName, req.Department, req.Email, req.Role)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewUserResponse(user)))
}

// DeleteUser handles DELETE /api/v1/users/:id.
func (uc *UserController) DeleteUser(c *gin.Context) {
	caller := middleware.CallerFromContext(c)

	if err := uc.userService.DeleteUser(c.Request.Context(), caller, c.Param("id")); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"message": "user deleted"}))
}
