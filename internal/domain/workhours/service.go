package workhours

import (
	"context"
	"io"
)

type WorkingHoursService interface {
	CheckIn(ctx context.Context, req CheckInRequest) (WorkingHoursResponse, error)
	CheckOut(ctx context.Context, req CheckOutRequest) (WorkingHoursResponse, error)

	// Create and Update are the manual admin paths; both validate the time pair.
	Create(ctx context.Context, req CreateWorkingHoursRequest) (WorkingHoursResponse, error)
	Update(ctx context.Context, req UpdateWorkingHoursRequest) (WorkingHoursResponse, error)

	Get(ctx context.Context, id string) (WorkingHoursResponse, error)
	List(ctx context.Context, filter WorkingHoursFilter) ([]WorkingHoursResponse, error)
	Delete(ctx context.Context, id string) error

	// Import creates records from a spreadsheet. Only an unreadable file is an error.
	Import(ctx context.Context, file io.Reader, filename string) (ImportSummary, error)
}
