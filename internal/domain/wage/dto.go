package wage

import (
	"time"

	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/validator"
)

type WithdrawRequest struct {
	EmployeeID string `json:"-"`
	Month      string `json:"month"`
}

func (r *WithdrawRequest) Validate() error {
	var errs validator.ValidationErrors
	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id must be a valid id"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be in YYYY-MM format"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeWageResponse struct {
	EmployeeID       string  `json:"employee_id"`
	EmployeeName     string  `json:"employee_name"`
	Position         string  `json:"position"`
	Month            string  `json:"month"`
	TotalHours       float64 `json:"total_hours"`
	FixedSalary      bool    `json:"fixed_salary"`
	HourlyRate       string  `json:"hourly_rate"`
	BaseWage         string  `json:"base_wage"`
	PerformanceBonus string  `json:"performance_bonus"`
	FixedBonus       string  `json:"fixed_bonus"`
	TotalWage        string  `json:"total_wage"`
	Display          string  `json:"display"`
	Withdrawn        bool    `json:"withdrawn"`
	Error            *string `json:"error,omitempty"`
}

func NewEmployeeWageResponse(b WageBreakdown, month string, withdrawn bool) EmployeeWageResponse {
	return EmployeeWageResponse{
		Position:         string(b.Position),
		Month:            month,
		TotalHours:       b.Hours,
		FixedSalary:      b.FixedSalary,
		HourlyRate:       b.HourlyRate.String(),
		BaseWage:         b.BaseWage.String(),
		PerformanceBonus: b.PerformanceBonus.String(),
		FixedBonus:       b.FixedBonus.String(),
		TotalWage:        b.TotalWage.String(),
		Display:          b.Display(),
		Withdrawn:        withdrawn,
	}
}

type WithdrawalResponse struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employee_id"`
	Month       string `json:"month"`
	WithdrawnAt string `json:"withdrawn_at"`
}

func NewWithdrawalResponse(w Withdrawal) WithdrawalResponse {
	return WithdrawalResponse{
		ID:          w.ID,
		EmployeeID:  w.EmployeeID,
		Month:       w.Month,
		WithdrawnAt: w.WithdrawnAt.UTC().Format(time.RFC3339),
	}
}
