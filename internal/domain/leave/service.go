package leave

import (
	"context"
)

type LeaveService interface {
	Create(ctx context.Context, req CreateLeaveRequest) (LeaveRequestResponse, error)
	Get(ctx context.Context, id string) (LeaveRequestResponse, error)
	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequestResponse, error)
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (LeaveRequestResponse, error)
	Delete(ctx context.Context, id string) error
}
