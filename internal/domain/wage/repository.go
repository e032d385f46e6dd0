package wage

import "context"

type WithdrawalRepository interface {
	// Create inserts the marker. A second marker for the same employee and month
	// yields ErrAlreadyWithdrawn.
	Create(ctx context.Context, w Withdrawal) (Withdrawal, error)
	Exists(ctx context.Context, employeeID, month string) (bool, error)
	ListByMonth(ctx context.Context, month string) ([]Withdrawal, error)
}
