package leave

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/approval"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/notification"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	leaveRequestRepo leave.LeaveRequestRepository
	employeeRepo     employee.EmployeeRepository
	notifier         notification.Notifier
}

func NewLeaveService(leaveRequestRepo leave.LeaveRequestRepository, employeeRepo employee.EmployeeRepository, notifier notification.Notifier) leave.LeaveService {
	return &LeaveServiceImpl{
		leaveRequestRepo: leaveRequestRepo,
		employeeRepo:     employeeRepo,
		notifier:         notifier,
	}
}

// Create implements leave.LeaveService.
func (s *LeaveServiceImpl) Create(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	startDate, _ := validator.IsValidDate(req.StartDate)
	endDate, _ := validator.IsValidDate(req.EndDate)

	created, err := s.leaveRequestRepo.Create(ctx, leave.LeaveRequest{
		EmployeeID: emp.ID,
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     req.Reason,
		Status:     approval.StatusPending,
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	created.EmployeeName = &emp.Name

	return leave.NewLeaveRequestResponse(created), nil
}

// Get implements leave.LeaveService.
func (s *LeaveServiceImpl) Get(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	if !validator.IsValidUUID(id) {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestNotFound
	}
	request, err := s.leaveRequestRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	return leave.NewLeaveRequestResponse(request), nil
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequestResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	requests, err := s.leaveRequestRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	result := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, request := range requests {
		result = append(result, leave.NewLeaveRequestResponse(request))
	}
	return result, nil
}

// UpdateStatus implements leave.LeaveService. A successful transition sends
// exactly one notification.
func (s *LeaveServiceImpl) UpdateStatus(ctx context.Context, req leave.UpdateStatusRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	current, err := s.leaveRequestRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	if err := approval.CanTransition(current.Status, req.Status); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	updated, err := s.leaveRequestRepo.UpdateStatus(ctx, req.ID, req.Status)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to update leave request status: %w", err)
	}

	event := notification.LeaveStatusEvent{
		RequestID: updated.ID,
		StartDate: updated.StartDate.Format(validator.DateLayout),
		EndDate:   updated.EndDate.Format(validator.DateLayout),
		Reason:    updated.Reason,
		Status:    string(updated.Status),
	}
	if updated.EmployeeName != nil {
		event.EmployeeName = *updated.EmployeeName
	}
	s.notifier.NotifyLeaveStatus(event)

	return leave.NewLeaveRequestResponse(updated), nil
}

// Delete implements leave.LeaveService.
func (s *LeaveServiceImpl) Delete(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return leave.ErrLeaveRequestNotFound
	}
	if err := s.leaveRequestRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete leave request: %w", err)
	}
	return nil
}
