package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emrek/registra/internal/app/models"
)

// StatsRepository serves aggregate counts for the dashboard.
type StatsRepository struct {
	db *pgxpool.Pool
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{db: db}
}

// GetDashboardStats collects every dashboard count in one round trip.
func (r *StatsRepository) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users WHERE role = $1),
			(SELECT COUNT(*) FROM users WHERE role = $2),
			(SELECT COUNT(*) FROM courses),
			(SELECT COUNT(*) FROM departments),
			(SELECT COUNT(*) FROM announcements)
	`

	var stats models.DashboardStats
	err := r.db.QueryRow(ctx, query, models.RoleStudent, models.RoleFaculty).Scan(
		&stats.Students,
		&stats.Faculty,
		&stats.Courses,
		&stats.Departments,
		&stats.Announcements,
	)
	if err != nil {
		return nil, wrapError("error collecting dashboard stats", err)
	}

	return &stats, nil
}
