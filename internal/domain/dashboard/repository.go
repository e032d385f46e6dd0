package dashboard

import "context"

// DashboardRepository holds aggregate queries that span several tables.
type DashboardRepository interface {
	CountOpenSessions(ctx context.Context) (int64, error)
	SumHoursForMonth(ctx context.Context, month string) (float64, error)
}
