package postgresql

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/validator"
)

const (
	uniqueViolationCode = "23505"

	constraintEmployeeNamePosition = "employees_name_position_key"
	constraintWorkingHoursDate     = "working_hours_employee_date_key"
	constraintOneOpenSession       = "working_hours_one_open_session_idx"
	constraintWageWithdrawal       = "wage_withdrawals_employee_month_key"
)

// uniqueViolation returns the violated constraint name for a 23505 error.
func uniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return pgErr.ConstraintName, true
	}
	return "", false
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(validator.DateLayout, s)
}
