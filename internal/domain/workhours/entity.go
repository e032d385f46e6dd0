package workhours

import (
	"time"
)

type WorkingHours struct {
	ID         string
	EmployeeID string
	Date       string // YYYY-MM-DD, calendar day of the check-in in the configured timezone
	CheckIn    time.Time
	CheckOut   *time.Time
	TotalHours *float64
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined
	EmployeeName     *string
	EmployeePosition *string
}

// IsOpen reports whether the record is an active session.
func (w WorkingHours) IsOpen() bool {
	return w.CheckOut == nil
}

// Hours returns the stored total, or 0 for an open session.
func (w WorkingHours) Hours() float64 {
	if w.TotalHours == nil {
		return 0
	}
	return *w.TotalHours
}

// ImportSummary is the outcome of a bulk import. Row failures never abort the batch.
type ImportSummary struct {
	Success int      `json:"success"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors"`
}
