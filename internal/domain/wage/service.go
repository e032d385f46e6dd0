package wage

import (
	"context"
	"io"
)

type WageService interface {
	// List computes every employee's wage for month. A per-employee calculation
	// failure is reported on that row, not as an error.
	List(ctx context.Context, month string) ([]EmployeeWageResponse, error)
	Get(ctx context.Context, employeeID, month string) (EmployeeWageResponse, error)
	Withdraw(ctx context.Context, req WithdrawRequest) (WithdrawalResponse, error)
	// WriteSlip renders a PDF wage slip for one employee and month.
	WriteSlip(ctx context.Context, employeeID, month string, w io.Writer) error
}
