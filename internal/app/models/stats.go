package models

// DashboardStats aggregates entity counts for the dashboard landing view.
type DashboardStats struct {
	Students      int64 `json:"students"`
	Faculty       int64 `json:"faculty"`
	Courses       int64 `json:"courses"`
	Departments   int64 `json:"departments"`
	Announcements int64 `json:"announcements"`
}
