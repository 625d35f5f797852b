// Package controllers adapts HTTP requests into façade calls. Controllers do
// binding and response shaping only; validation and authorization live in the
// service and policy layers.
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emrek/registra/internal/app/models/dto"
	"github.com/emrek/registra/internal/app/services"
	"github.com/emrek/registra/internal/middleware"
)

// AuthController handles registration, login and session lifecycle.
type AuthController struct {
	authService *services.AuthService
	userService *services.UserService
}

// NewAuthController creates a new AuthController.
func NewAuthController(authService *services.AuthService, userService *services.UserService) *AuthController {
	return &AuthController{
		authService: authService,
		userService: userService,
	}
}

// Register handles POST /api/v1/auth/register.
func (ac *AuthController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	pair, err := ac.authService.Register(c.Request.Context(), req.Email, req.Password, req.FullName, req.Department)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccessResponse(
		dto.NewTokenResponse(pair.AccessToken, pair.RefreshToken, pair.ExpiresIn, pair.User)))
}

// Login handles POST /api/v1/auth/login.
func (ac *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	pair, err := ac.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(
		dto.NewTokenResponse(pair.AccessToken, pair.RefreshToken, pair.ExpiresIn, pair.User)))
}

// Refresh handles POST /api/v1/auth/refresh.
func (ac *AuthController) Refresh(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	pair, err := ac.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(
		dto.NewTokenResponse(pair.AccessToken, pair.RefreshToken, pair.ExpiresIn, pair.User)))
}

// SignOut handles POST /api/v1/auth/sign-out.
func (ac *AuthController) SignOut(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	if err := ac.authService.SignOut(c.Request.Context(), req.RefreshToken); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"message": "signed out"}))
}

// UpdatePassword handles PUT /api/v1/auth/password.
func (ac *AuthController) UpdatePassword(c *gin.Context) {
	var req dto.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	caller := middleware.CallerFromContext(c)
	if err := ac.authService.UpdatePassword(c.Request.Context(), caller.ID, req.CurrentPassword, req.NewPassword); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"message": "password updated"}))
}

// Me handles GET /api/v1/auth/me: the caller's own profile.
func (ac *AuthController) Me(c *gin.Context) {
	caller := middleware.CallerFromContext(c)
	user, err := ac.userService.GetProfile(c.Request.Context(), caller)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewUserResponse(user)))
}
