package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/workhours"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/validator"
)

const workingHoursColumns = `wh.id, wh.employee_id, wh.date, wh.check_in, wh.check_out, wh.total_hours, wh.notes, wh.created_at, wh.updated_at`

type workingHoursRow struct {
	ID               string     `db:"id"`
	EmployeeID       string     `db:"employee_id"`
	Date             time.Time  `db:"date"`
	CheckIn          time.Time  `db:"check_in"`
	CheckOut         *time.Time `db:"check_out"`
	TotalHours       *float64   `db:"total_hours"`
	Notes            *string    `db:"notes"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`
	EmployeeName     *string    `db:"employee_name"`
	EmployeePosition *string    `db:"employee_position"`
}

func (r workingHoursRow) toEntity() workhours.WorkingHours {
	return workhours.WorkingHours{
		ID:               r.ID,
		EmployeeID:       r.EmployeeID,
		Date:             r.Date.Format(validator.DateLayout),
		CheckIn:          r.CheckIn,
		CheckOut:         r.CheckOut,
		TotalHours:       r.TotalHours,
		Notes:            r.Notes,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
		EmployeeName:     r.EmployeeName,
		EmployeePosition: r.EmployeePosition,
	}
}

type workingHoursRepositoryImpl struct {
	db *database.DB
}

func NewWorkingHoursRepository(db *database.DB) workhours.WorkingHoursRepository {
	return &workingHoursRepositoryImpl{db: db}
}

// mapWorkingHoursWriteError translates store constraint violations into the check-in conflicts.
func mapWorkingHoursWriteError(err error) error {
	if c, ok := uniqueViolation(err); ok {
		switch c {
		case constraintOneOpenSession:
			return workhours.ErrActiveSessionExists
		case constraintWorkingHoursDate:
			return workhours.ErrAlreadyCheckedInToday
		}
	}
	return err
}

func (r *workingHoursRepositoryImpl) Create(ctx context.Context, wh workhours.WorkingHours) (workhours.WorkingHours, error) {
	q := GetQuerier(ctx, r.db)

	date, err := parseDate(wh.Date)
	if err != nil {
		return workhours.WorkingHours{}, fmt.Errorf("invalid working hours date %q: %w", wh.Date, err)
	}

	query := `
		INSERT INTO working_hours AS wh (employee_id, date, check_in, check_out, total_hours, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + workingHoursColumns

	rows, err := q.Query(ctx, query, wh.EmployeeID, date, wh.CheckIn.UTC(), utcPtr(wh.CheckOut), wh.TotalHours, wh.Notes)
	if err != nil {
		return workhours.WorkingHours{}, fmt.Errorf("failed to insert working hours: %w", mapWorkingHoursWriteError(err))
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByNameLax[workingHoursRow])
	if err != nil {
		if mapped := mapWorkingHoursWriteError(err); mapped != err {
			return workhours.WorkingHours{}, mapped
		}
		return workhours.WorkingHours{}, fmt.Errorf("failed to insert working hours: %w", err)
	}
	return row.toEntity(), nil
}

func (r *workingHoursRepositoryImpl) GetByID(ctx context.Context, id string) (workhours.WorkingHours, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workingHoursColumns + `, e.name AS employee_name, e.position AS employee_position
		FROM working_hours wh
		JOIN employees e ON e.id = wh.employee_id
		WHERE wh.id = $1`

	rows, err := q.Query(ctx, query, id)
	if err != nil {
		return workhours.WorkingHours{}, fmt.Errorf("failed to get working hours %s: %w", id, err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByNameLax[workingHoursRow])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return workhours.WorkingHours{}, workhours.ErrWorkingHoursNotFound
		}
		return workhours.WorkingHours{}, fmt.Errorf("failed to get working hours %s: %w", id, err)
	}
	return row.toEntity(), nil
}

func (r *workingHoursRepositoryImpl) ListConflicting(ctx context.Context, employeeID string, date string) ([]workhours.WorkingHours, error) {
	q := GetQuerier(ctx, r.db)

	d, err := parseDate(date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	query := `SELECT ` + workingHoursColumns + ` FROM working_hours wh
		WHERE wh.employee_id = $1 AND (wh.check_out IS NULL OR wh.date = $2)`

	rows, err := q.Query(ctx, query, employeeID, d)
	if err != nil {
		return nil, fmt.Errorf("failed to query conflicting sessions: %w", err)
	}
	return collectWorkingHours(rows)
}

func (r *workingHoursRepositoryImpl) Close(ctx context.Context, id string, checkOut time.Time, totalHours float64) (workhours.WorkingHours, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE working_hours AS wh
		SET check_out = $2, total_hours = $3, updated_at = NOW()
		WHERE wh.id = $1 AND wh.check_out IS NULL
		RETURNING ` + workingHoursColumns

	rows, err := q.Query(ctx, query, id, checkOut.UTC(), totalHours)
	if err != nil {
		return workhours.WorkingHours{}, fmt.Errorf("failed to close session %s: %w", id, err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByNameLax[workingHoursRow])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return workhours.WorkingHours{}, workhours.ErrNoActiveSession
		}
		return workhours.WorkingHours{}, fmt.Errorf("failed to close session %s: %w", id, err)
	}
	return row.toEntity(), nil
}

func (r *workingHoursRepositoryImpl) GetOpenSession(ctx context.Context, employeeID string) (workhours.WorkingHours, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workingHoursColumns + `, e.name AS employee_name, e.position AS employee_position
		FROM working_hours wh
		JOIN employees e ON e.id = wh.employee_id
		WHERE wh.employee_id = $1 AND wh.check_out IS NULL`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return workhours.WorkingHours{}, fmt.Errorf("failed to get open session: %w", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByNameLax[workingHoursRow])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return workhours.WorkingHours{}, workhours.ErrNoActiveSession
		}
		return workhours.WorkingHours{}, fmt.Errorf("failed to get open session: %w", err)
	}
	return row.toEntity(), nil
}

func (r *workingHoursRepositoryImpl) Update(ctx context.Context, wh workhours.WorkingHours) error {
	q := GetQuerier(ctx, r.db)

	date, err := parseDate(wh.Date)
	if err != nil {
		return fmt.Errorf("invalid working hours date %q: %w", wh.Date, err)
	}

	query := `
		UPDATE working_hours
		SET date = $2, check_in = $3, check_out = $4, total_hours = $5, notes = $6, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query, wh.ID, date, wh.CheckIn.UTC(), utcPtr(wh.CheckOut), wh.TotalHours, wh.Notes)
	if err != nil {
		if mapped := mapWorkingHoursWriteError(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("failed to update working hours %s: %w", wh.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return workhours.ErrWorkingHoursNotFound
	}
	return nil
}

func (r *workingHoursRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM working_hours WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete working hours %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return workhours.ErrWorkingHoursNotFound
	}
	return nil
}

func (r *workingHoursRepositoryImpl) List(ctx context.Context, filter workhours.WorkingHoursFilter) ([]workhours.WorkingHours, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []any
	argIndex := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("wh.employee_id = $%d", argIndex))
		args = append(args, *filter.EmployeeID)
		argIndex++
	}
	if filter.Month != nil {
		conditions = append(conditions, fmt.Sprintf("to_char(wh.date, 'YYYY-MM') = $%d", argIndex))
		args = append(args, *filter.Month)
		argIndex++
	}
	if filter.OpenOnly {
		conditions = append(conditions, "wh.check_out IS NULL")
	}

	query := `SELECT ` + workingHoursColumns + `, e.name AS employee_name, e.position AS employee_position
		FROM working_hours wh
		JOIN employees e ON e.id = wh.employee_id`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY wh.date DESC, wh.check_in DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list working hours: %w", err)
	}
	return collectWorkingHours(rows)
}

func (r *workingHoursRepositoryImpl) ListOpenBefore(ctx context.Context, cutoff time.Time) ([]workhours.WorkingHours, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workingHoursColumns + `, e.name AS employee_name, e.position AS employee_position
		FROM working_hours wh
		JOIN employees e ON e.id = wh.employee_id
		WHERE wh.check_out IS NULL AND wh.check_in < $1
		ORDER BY wh.check_in ASC`

	rows, err := q.Query(ctx, query, cutoff.UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to list stale sessions: %w", err)
	}
	return collectWorkingHours(rows)
}

func collectWorkingHours(rows pgx.Rows) ([]workhours.WorkingHours, error) {
	collected, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[workingHoursRow])
	if err != nil {
		return nil, fmt.Errorf("failed to scan working hours: %w", err)
	}
	result := make([]workhours.WorkingHours, len(collected))
	for i, row := range collected {
		result[i] = row.toEntity()
	}
	return result, nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
