package services

import (
	"context"

	"github.com/emrek/registra/internal/app/models"
	"github.com/emrek/registra/internal/app/policy"
	"github.com/emrek/registra/internal/pkg/apperrors"
)

// StatsService serves the dashboard's aggregate counts. Any signed-in user
// may read them; the numbers carry no record-level detail.
type StatsService struct {
	stats StatsStore
}

// NewStatsService creates a new StatsService.
func NewStatsService(stats StatsStore) *StatsService {
	return &StatsService{stats: stats}
}

// GetDashboardStats returns entity counts for the caller's dashboard.
func (s *StatsService) GetDashboardStats(ctx context.Context, caller policy.Caller) (*models.DashboardStats, error) {
	if caller.Anonymous {
		return nil, apperrors.ErrAuthenticationRequired
	}
	return s.stats.GetDashboardStats(ctx)
}
