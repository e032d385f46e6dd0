package dashboard

import "context"

type DashboardService interface {
	// GetDashboard collects the counters concurrently for the current month.
	GetDashboard(ctx context.Context) (DashboardResponse, error)
}
