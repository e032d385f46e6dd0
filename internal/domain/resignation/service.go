package resignation

import "context"

type ResignationService interface {
	Create(ctx context.Context, req CreateResignationRequest) (ResignationRequestResponse, error)
	Get(ctx context.Context, id string) (ResignationRequestResponse, error)
	List(ctx context.Context, filter ResignationRequestFilter) ([]ResignationRequestResponse, error)
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (ResignationRequestResponse, error)
	Delete(ctx context.Context, id string) error
}
