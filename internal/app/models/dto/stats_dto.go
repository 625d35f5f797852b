package dto

import (
	"github.com/emrek/registra/internal/app/models"
)

// StatsResponse carries the dashboard's aggregate counts.
type StatsResponse struct {
	Students      int64 `json:"students" example:"420"`
	Faculty       int64 `json:"faculty" example:"35"`
	Courses       int64 `json:"courses" example:"64"`
	Departments   int64 `json:"departments" example:"4"`
	Announcements int64 `json:"announcements" example:"12"`
}

// NewStatsResponse maps dashboard stats to their response shape.
func NewStatsResponse(stats *models.DashboardStats) StatsResponse {
	return StatsResponse{
		Students:      stats.Students,
		Faculty:       stats.Faculty,
		Courses:       stats.Courses,
		Departments:   stats.Departments,
		Announcements: stats.Announcements,
	}
}
