package resignation

import (
	"context"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/approval"
)

type ResignationRequestRepository interface {
	Create(ctx context.Context, request ResignationRequest) (ResignationRequest, error)
	GetByID(ctx context.Context, id string) (ResignationRequest, error)
	List(ctx context.Context, filter ResignationRequestFilter) ([]ResignationRequest, error)
	// UpdateStatus only succeeds while the request is pending.
	UpdateStatus(ctx context.Context, id string, status approval.Status) (ResignationRequest, error)
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context, status approval.Status) (int64, error)
}
