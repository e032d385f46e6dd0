package wage

import "time"

// Withdrawal marks that the computed wage for (EmployeeID, Month) was paid out.
type Withdrawal struct {
	ID          string
	EmployeeID  string
	Month       string // YYYY-MM
	WithdrawnAt time.Time
}
