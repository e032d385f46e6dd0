package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

func (r *dashboardRepositoryImpl) CountOpenSessions(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM working_hours WHERE check_out IS NULL`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count open sessions: %w", err)
	}
	return count, nil
}

func (r *dashboardRepositoryImpl) SumHoursForMonth(ctx context.Context, month string) (float64, error) {
	q := GetQuerier(ctx, r.db)

	var total float64
	query := `SELECT COALESCE(SUM(total_hours), 0) FROM working_hours WHERE to_char(date, 'YYYY-MM') = $1`
	if err := q.QueryRow(ctx, query, month).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum hours for %s: %w", month, err)
	}
	return total, nil
}
