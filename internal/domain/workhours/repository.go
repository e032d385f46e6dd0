package workhours

import (
	"context"
	"time"
)

type WorkingHoursRepository interface {
	// Create inserts a record. Store constraints reject a second open session
	// (ErrActiveSessionExists) and a second record for the same date (ErrAlreadyCheckedInToday).
	Create(ctx context.Context, wh WorkingHours) (WorkingHours, error)

	GetByID(ctx context.Context, id string) (WorkingHours, error)

	// ListConflicting returns the employee's open sessions and records dated date.
	ListConflicting(ctx context.Context, employeeID string, date string) ([]WorkingHours, error)

	// Close sets check-out only if the record is still open; otherwise ErrNoActiveSession.
	Close(ctx context.Context, id string, checkOut time.Time, totalHours float64) (WorkingHours, error)

	// GetOpenSession returns the employee's active session or ErrNoActiveSession.
	GetOpenSession(ctx context.Context, employeeID string) (WorkingHours, error)

	Update(ctx context.Context, wh WorkingHours) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter WorkingHoursFilter) ([]WorkingHours, error)

	// ListOpenBefore returns active sessions that started before cutoff.
	ListOpenBefore(ctx context.Context, cutoff time.Time) ([]WorkingHours, error)
}
