package resignation

import (
	"context"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/approval"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/notification"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/resignation"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/validator"
)

type ResignationServiceImpl struct {
	resignationRepo resignation.ResignationRequestRepository
	employeeRepo    employee.EmployeeRepository
	notifier        notification.Notifier
}

func NewResignationService(resignationRepo resignation.ResignationRequestRepository, employeeRepo employee.EmployeeRepository, notifier notification.Notifier) resignation.ResignationService {
	return &ResignationServiceImpl{
		resignationRepo: resignationRepo,
		employeeRepo:    employeeRepo,
		notifier:        notifier,
	}
}

func (s *ResignationServiceImpl) Create(ctx context.Context, req resignation.CreateResignationRequest) (resignation.ResignationRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return resignation.ResignationRequestResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return resignation.ResignationRequestResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	requestDate, _ := validator.IsValidDate(req.RequestDate)
	created, err := s.resignationRepo.Create(ctx, resignation.ResignationRequest{
		EmployeeID:  emp.ID,
		Passport:    strings.TrimSpace(req.Passport),
		ICReason:    req.ICReason,
		OOCReason:   req.OOCReason,
		RequestDate: requestDate,
		Status:      approval.StatusPending,
	})
	if err != nil {
		return resignation.ResignationRequestResponse{}, fmt.Errorf("failed to create resignation request: %w", err)
	}
	created.EmployeeName = &emp.Name

	return resignation.NewResignationRequestResponse(created), nil
}

func (s *ResignationServiceImpl) Get(ctx context.Context, id string) (resignation.ResignationRequestResponse, error) {
	if !validator.IsValidUUID(id) {
		return resignation.ResignationRequestResponse{}, resignation.ErrResignationRequestNotFound
	}
	request, err := s.resignationRepo.GetByID(ctx, id)
	if err != nil {
		return resignation.ResignationRequestResponse{}, fmt.Errorf("failed to get resignation request: %w", err)
	}
	return resignation.NewResignationRequestResponse(request), nil
}

func (s *ResignationServiceImpl) List(ctx context.Context, filter resignation.ResignationRequestFilter) ([]resignation.ResignationRequestResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	requests, err := s.resignationRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list resignation requests: %w", err)
	}

	result := make([]resignation.ResignationRequestResponse, 0, len(requests))
	for _, request := range requests {
		result = append(result, resignation.NewResignationRequestResponse(request))
	}
	return result, nil
}

func (s *ResignationServiceImpl) UpdateStatus(ctx context.Context, req resignation.UpdateStatusRequest) (resignation.ResignationRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return resignation.ResignationRequestResponse{}, err
	}

	current, err := s.resignationRepo.GetByID(ctx, req.ID)
	if err != nil {
		return resignation.ResignationRequestResponse{}, fmt.Errorf("failed to get resignation request: %w", err)
	}
	if err := approval.CanTransition(current.Status, req.Status); err != nil {
		return resignation.ResignationRequestResponse{}, err
	}

	updated, err := s.resignationRepo.UpdateStatus(ctx, req.ID, req.Status)
	if err != nil {
		return resignation.ResignationRequestResponse{}, fmt.Errorf("failed to update resignation request status: %w", err)
	}

	event := notification.ResignationStatusEvent{
		RequestID:   updated.ID,
		Passport:    updated.Passport,
		RequestDate: updated.RequestDate.Format(validator.DateLayout),
		Status:      string(updated.Status),
	}
	if updated.EmployeeName != nil {
		event.EmployeeName = *updated.EmployeeName
	}
	s.notifier.NotifyResignationStatus(event)

	return resignation.NewResignationRequestResponse(updated), nil
}

func (s *ResignationServiceImpl) Delete(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return resignation.ErrResignationRequestNotFound
	}
	if err := s.resignationRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete resignation request: %w", err)
	}
	return nil
}
