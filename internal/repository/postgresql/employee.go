package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/workhours"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/database"
)

const employeeColumns = `id, name, position, join_date, pin_hash, warnings, created_at, updated_at`

type employeeRow struct {
	ID        string             `db:"id"`
	Name      string             `db:"name"`
	Position  string             `db:"position"`
	JoinDate  time.Time          `db:"join_date"`
	PinHash   *string            `db:"pin_hash"`
	Warnings  []employee.Warning `db:"warnings"`
	CreatedAt time.Time          `db:"created_at"`
	UpdatedAt time.Time          `db:"updated_at"`
}

func (r employeeRow) toEntity() employee.Employee {
	return employee.Employee{
		ID:        r.ID,
		Name:      r.Name,
		Position:  employee.Position(r.Position),
		JoinDate:  r.JoinDate,
		PinHash:   r.PinHash,
		Warnings:  r.Warnings,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (name, position, join_date, pin_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + employeeColumns

	rows, err := q.Query(ctx, query, newEmployee.Name, string(newEmployee.Position), newEmployee.JoinDate, newEmployee.PinHash)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to insert employee: %w", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[employeeRow])
	if err != nil {
		if c, ok := uniqueViolation(err); ok && c == constraintEmployeeNamePosition {
			return employee.Employee{}, employee.ErrEmployeeExists
		}
		return employee.Employee{}, fmt.Errorf("failed to insert employee: %w", err)
	}
	return row.toEntity(), nil
}

func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	rows, err := q.Query(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to get employee %s: %w", id, err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[employeeRow])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee %s: %w", id, err)
	}

	emp := row.toEntity()
	hours, err := e.workingHoursFor(ctx, []string{emp.ID})
	if err != nil {
		return employee.Employee{}, err
	}
	emp.WorkingHours = hours[emp.ID]
	return emp, nil
}

func (e *employeeRepositoryImpl) FindByNameAndPosition(ctx context.Context, name string, position employee.Position) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	rows, err := q.Query(ctx, `SELECT `+employeeColumns+` FROM employees WHERE name = $1 AND position = $2`, name, string(position))
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to find employee: %w", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[employeeRow])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to find employee: %w", err)
	}
	return row.toEntity(), nil
}

func (e *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	var conditions []string
	var args []any
	argIndex := 1

	if filter.Name != nil && *filter.Name != "" {
		conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", argIndex))
		args = append(args, "%"+*filter.Name+"%")
		argIndex++
	}
	if filter.Position != nil && *filter.Position != "" {
		conditions = append(conditions, fmt.Sprintf("position = $%d", argIndex))
		args = append(args, *filter.Position)
		argIndex++
	}

	query := `SELECT ` + employeeColumns + ` FROM employees`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY name ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[employeeRow])
	if err != nil {
		return nil, fmt.Errorf("failed to scan employees: %w", err)
	}

	employees := make([]employee.Employee, len(collected))
	ids := make([]string, len(collected))
	for i, row := range collected {
		employees[i] = row.toEntity()
		ids[i] = row.ID
	}

	hours, err := e.workingHoursFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range employees {
		employees[i].WorkingHours = hours[employees[i].ID]
	}
	return employees, nil
}

// workingHoursFor loads working hours for the given employees, keyed by employee id.
func (e *employeeRepositoryImpl) workingHoursFor(ctx context.Context, employeeIDs []string) (map[string][]workhours.WorkingHours, error) {
	result := make(map[string][]workhours.WorkingHours, len(employeeIDs))
	if len(employeeIDs) == 0 {
		return result, nil
	}

	q := GetQuerier(ctx, e.db)
	query := `SELECT ` + workingHoursColumns + ` FROM working_hours wh
		WHERE wh.employee_id = ANY($1::uuid[])
		ORDER BY wh.date ASC, wh.check_in ASC`

	rows, err := q.Query(ctx, query, employeeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load working hours: %w", err)
	}
	collected, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[workingHoursRow])
	if err != nil {
		return nil, fmt.Errorf("failed to scan working hours: %w", err)
	}
	for _, row := range collected {
		wh := row.toEntity()
		result[wh.EmployeeID] = append(result[wh.EmployeeID], wh)
	}
	return result, nil
}

func (e *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET name = $2, position = $3, join_date = $4, pin_hash = $5, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query, emp.ID, emp.Name, string(emp.Position), emp.JoinDate, emp.PinHash)
	if err != nil {
		if c, ok := uniqueViolation(err); ok && c == constraintEmployeeNamePosition {
			return employee.ErrEmployeeExists
		}
		return fmt.Errorf("failed to update employee %s: %w", emp.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (e *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (e *employeeRepositoryImpl) Count(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, e.db)

	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return count, nil
}
