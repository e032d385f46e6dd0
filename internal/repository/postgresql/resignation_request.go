package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/approval"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/resignation"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/database"
)

const resignationRequestColumns = `rr.id, rr.employee_id, rr.passport, rr.ic_reason, rr.ooc_reason, rr.request_date, rr.status, rr.created_at, rr.updated_at`

type resignationRequestRow struct {
	ID           string    `db:"id"`
	EmployeeID   string    `db:"employee_id"`
	Passport     string    `db:"passport"`
	ICReason     string    `db:"ic_reason"`
	OOCReason    string    `db:"ooc_reason"`
	RequestDate  time.Time `db:"request_date"`
	Status       string    `db:"status"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
	EmployeeName *string   `db:"employee_name"`
}

func (r resignationRequestRow) toEntity() resignation.ResignationRequest {
	return resignation.ResignationRequest{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		Passport:     r.Passport,
		ICReason:     r.ICReason,
		OOCReason:    r.OOCReason,
		RequestDate:  r.RequestDate,
		Status:       approval.Status(r.Status),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
		EmployeeName: r.EmployeeName,
	}
}

type resignationRequestRepositoryImpl struct {
	db *database.DB
}

func NewResignationRequestRepository(db *database.DB) resignation.ResignationRequestRepository {
	return &resignationRequestRepositoryImpl{db: db}
}

func (r *resignationRequestRepositoryImpl) Create(ctx context.Context, request resignation.ResignationRequest) (resignation.ResignationRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO resignation_requests AS rr (employee_id, passport, ic_reason, ooc_reason, request_date, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + resignationRequestColumns

	rows, err := q.Query(ctx, query,
		request.EmployeeID, request.Passport, request.ICReason, request.OOCReason, request.RequestDate, string(request.Status),
	)
	if err != nil {
		return resignation.ResignationRequest{}, fmt.Errorf("failed to insert resignation request: %w", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByNameLax[resignationRequestRow])
	if err != nil {
		return resignation.ResignationRequest{}, fmt.Errorf("failed to insert resignation request: %w", err)
	}
	return row.toEntity(), nil
}

func (r *resignationRequestRepositoryImpl) GetByID(ctx context.Context, id string) (resignation.ResignationRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + resignationRequestColumns + `, e.name AS employee_name
		FROM resignation_requests rr
		JOIN employees e ON e.id = rr.employee_id
		WHERE rr.id = $1`

	rows, err := q.Query(ctx, query, id)
	if err != nil {
		return resignation.ResignationRequest{}, fmt.Errorf("failed to get resignation request %s: %w", id, err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByNameLax[resignationRequestRow])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return resignation.ResignationRequest{}, resignation.ErrResignationRequestNotFound
		}
		return resignation.ResignationRequest{}, fmt.Errorf("failed to get resignation request %s: %w", id, err)
	}
	return row.toEntity(), nil
}

func (r *resignationRequestRepositoryImpl) List(ctx context.Context, filter resignation.ResignationRequestFilter) ([]resignation.ResignationRequest, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []any
	argIndex := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("rr.employee_id = $%d", argIndex))
		args = append(args, *filter.EmployeeID)
		argIndex++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("rr.status = $%d", argIndex))
		args = append(args, string(*filter.Status))
		argIndex++
	}

	query := `SELECT ` + resignationRequestColumns + `, e.name AS employee_name
		FROM resignation_requests rr
		JOIN employees e ON e.id = rr.employee_id`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY rr.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list resignation requests: %w", err)
	}
	collected, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[resignationRequestRow])
	if err != nil {
		return nil, fmt.Errorf("failed to scan resignation requests: %w", err)
	}
	requests := make([]resignation.ResignationRequest, len(collected))
	for i, row := range collected {
		requests[i] = row.toEntity()
	}
	return requests, nil
}

func (r *resignationRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status approval.Status) (resignation.ResignationRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE resignation_requests AS rr
		SET status = $2, updated_at = NOW()
		FROM employees e
		WHERE rr.id = $1 AND rr.status = 'pending' AND e.id = rr.employee_id
		RETURNING ` + resignationRequestColumns + `, e.name AS employee_name`

	rows, err := q.Query(ctx, query, id, string(status))
	if err != nil {
		return resignation.ResignationRequest{}, fmt.Errorf("failed to update resignation request status: %w", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByNameLax[resignationRequestRow])
	if err == nil {
		return row.toEntity(), nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return resignation.ResignationRequest{}, fmt.Errorf("failed to update resignation request status: %w", err)
	}

	current, err := r.GetByID(ctx, id)
	if err != nil {
		return resignation.ResignationRequest{}, err
	}
	return resignation.ResignationRequest{}, fmt.Errorf("%w: status is %s", approval.ErrRequestAlreadyProcessed, current.Status)
}

func (r *resignationRequestRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM resignation_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete resignation request %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return resignation.ErrResignationRequestNotFound
	}
	return nil
}

func (r *resignationRequestRepositoryImpl) CountByStatus(ctx context.Context, status approval.Status) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM resignation_requests WHERE status = $1`, string(status)).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count resignation requests: %w", err)
	}
	return count, nil
}
