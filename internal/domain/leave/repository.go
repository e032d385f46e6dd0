package leave

import (
	"context"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/approval"
)

type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, error)
	// UpdateStatus moves a pending request to status. A request that is no longer
	// pending yields approval.ErrRequestAlreadyProcessed.
	UpdateStatus(ctx context.Context, id string, status approval.Status) (LeaveRequest, error)
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context, status approval.Status) (int64, error)
}
