package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/wage"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/database"
)

const wageWithdrawalColumns = `id, employee_id, month, withdrawn_at`

type wageWithdrawalRow struct {
	ID          string    `db:"id"`
	EmployeeID  string    `db:"employee_id"`
	Month       string    `db:"month"`
	WithdrawnAt time.Time `db:"withdrawn_at"`
}

func (r wageWithdrawalRow) toEntity() wage.Withdrawal {
	return wage.Withdrawal{
		ID:          r.ID,
		EmployeeID:  r.EmployeeID,
		Month:       r.Month,
		WithdrawnAt: r.WithdrawnAt,
	}
}

type wageWithdrawalRepositoryImpl struct {
	db *database.DB
}

func NewWageWithdrawalRepository(db *database.DB) wage.WithdrawalRepository {
	return &wageWithdrawalRepositoryImpl{db: db}
}

func (r *wageWithdrawalRepositoryImpl) Create(ctx context.Context, w wage.Withdrawal) (wage.Withdrawal, error) {
	q := GetQuerier(ctx, r.db)

	query := `INSERT INTO wage_withdrawals (employee_id, month) VALUES ($1, $2) RETURNING ` + wageWithdrawalColumns
	rows, err := q.Query(ctx, query, w.EmployeeID, w.Month)
	if err != nil {
		return wage.Withdrawal{}, fmt.Errorf("failed to insert wage withdrawal: %w", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[wageWithdrawalRow])
	if err != nil {
		if c, ok := uniqueViolation(err); ok && c == constraintWageWithdrawal {
			return wage.Withdrawal{}, wage.ErrAlreadyWithdrawn
		}
		return wage.Withdrawal{}, fmt.Errorf("failed to insert wage withdrawal: %w", err)
	}
	return row.toEntity(), nil
}

func (r *wageWithdrawalRepositoryImpl) Exists(ctx context.Context, employeeID, month string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM wage_withdrawals WHERE employee_id = $1 AND month = $2)`
	if err := q.QueryRow(ctx, query, employeeID, month).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check wage withdrawal: %w", err)
	}
	return exists, nil
}

func (r *wageWithdrawalRepositoryImpl) ListByMonth(ctx context.Context, month string) ([]wage.Withdrawal, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+wageWithdrawalColumns+` FROM wage_withdrawals WHERE month = $1`, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list wage withdrawals: %w", err)
	}
	collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[wageWithdrawalRow])
	if err != nil {
		return nil, fmt.Errorf("failed to scan wage withdrawals: %w", err)
	}
	result := make([]wage.Withdrawal, len(collected))
	for i, row := range collected {
		result[i] = row.toEntity()
	}
	return result, nil
}
