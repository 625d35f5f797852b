package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emrek/registra/internal/app/models/dto"
	"github.com/emrek/registra/internal/app/repositories"
	"github.com/emrek/registra/internal/app/services"
	"github.com/emrek/registra/internal/middleware"
	"github.com/emrek/registra/internal/pkg/helpers"
)

// AnnouncementController handles announcement endpoints.
type AnnouncementController struct {
	announcementService *services.AnnouncementService
}

// NewAnnouncementController creates a new AnnouncementController.
func NewAnnouncementController(announcementService *services.AnnouncementService) *AnnouncementController {
	return &AnnouncementController{announcementService: announcementService}
}

// ListAnnouncements handles GET /api/v1/announcements.
func (ac *AnnouncementController) ListAnnouncements(c *gin.Context) {
	caller := middleware.CallerFromContext(c)
	page, size := helpers.ParsePaginationParams(c)

	var filter repositories.AnnouncementFilter
	if raw := c.Query("departmentId"); raw != "" {
		if departmentID, err := strconv.ParseInt(raw, 10, 64); err == nil && departmentID > 0 {
			filter.DepartmentID = departmentID
		}
	}

	announcements, total, err := ac.announcementService.ListAnnouncements(c.Request.Context(), caller, filter, page, size)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.AnnouncementListResponse{
		Announcements: dto.NewAnnouncementResponses(announcements),
		Pagination:    helpers.NewPaginationInfo(total, page, size),
	}))
}

// GetAnnouncement handles GET /api/v1/announcements/:id.
func (ac *AnnouncementController) GetAnnouncement(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	caller := middleware.CallerFromContext(c)
	announcement, err := ac.announcementService.GetAnnouncement(c.Request.Context(), caller, id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewAnnouncementResponse(announcement)))
}

// CreateAnnouncement handles POST /api/v1/announcements.
func (ac *AnnouncementController) CreateAnnouncement(c *gin.Context) {
	var req dto.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	caller := middleware.CallerFromContext(c)
	announcement, err := ac.announcementService.CreateAnnouncement(c.Request.Context(), caller,
		req.Title, req.Content, req.DepartmentID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewAnnouncementResponse(announcement)))
}

// UpdateAnnouncement handles PUT /api/v1/announcements/:id.
func (ac *AnnouncementController) UpdateAnnouncement(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	caller := middleware.CallerFromContext(c)
	announcement, err := ac.announcementService.UpdateAnnouncement(c.Request.Context(), caller, id,
		req.Title, req.Content, req.DepartmentID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewAnnouncementResponse(announcement)))
}

// DeleteAnnouncement handles DELETE /api/v1/announcements/:id.
func (ac *AnnouncementController) DeleteAnnouncement(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	caller := middleware.CallerFromContext(c)
	if err := ac.announcementService.DeleteAnnouncement(c.Request.Context(), caller, id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"message": "announcement deleted"}))
}
