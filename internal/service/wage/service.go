package wage

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/wage"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/workhours"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/validator"
)

type WageServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	withdrawalRepo wage.WithdrawalRepository
}

func NewWageService(employeeRepo employee.EmployeeRepository, withdrawalRepo wage.WithdrawalRepository) wage.WageService {
	return &WageServiceImpl{
		employeeRepo:   employeeRepo,
		withdrawalRepo: withdrawalRepo,
	}
}

func invalidMonth() error {
	return validator.ValidationErrors{{Field: "month", Message: "month must be in YYYY-MM format"}}
}

// List implements wage.WageService.
func (s *WageServiceImpl) List(ctx context.Context, month string) ([]wage.EmployeeWageResponse, error) {
	if !validator.IsValidMonth(month) {
		return nil, invalidMonth()
	}

	employees, err := s.employeeRepo.List(ctx, employee.EmployeeFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	withdrawals, err := s.withdrawalRepo.ListByMonth(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list withdrawals: %w", err)
	}
	withdrawn := make(map[string]bool, len(withdrawals))
	for _, w := range withdrawals {
		withdrawn[w.EmployeeID] = true
	}

	result := make([]wage.EmployeeWageResponse, 0, len(employees))
	for _, emp := range employees {
		result = append(result, wageRow(emp, month, withdrawn[emp.ID]))
	}
	return result, nil
}

// wageRow never fails; a calculation error is carried on the row.
func wageRow(emp employee.Employee, month string, withdrawn bool) wage.EmployeeWageResponse {
	hours := workhours.MonthlyHours(emp.WorkingHours, month)

	breakdown, err := wage.Calculate(emp.Position, hours)
	if err != nil {
		msg := err.Error()
		return wage.EmployeeWageResponse{
			EmployeeID:   emp.ID,
			EmployeeName: emp.Name,
			Position:     string(emp.Position),
			Month:        month,
			TotalHours:   workhours.RoundHours(hours),
			Withdrawn:    withdrawn,
			Error:        &msg,
		}
	}

	resp := wage.NewEmployeeWageResponse(breakdown, month, withdrawn)
	resp.EmployeeID = emp.ID
	resp.EmployeeName = emp.Name
	resp.TotalHours = workhours.RoundHours(hours)
	return resp
}

func (s *WageServiceImpl) breakdownFor(ctx context.Context, employeeID, month string) (employee.Employee, wage.WageBreakdown, error) {
	if !validator.IsValidUUID(employeeID) {
		return employee.Employee{}, wage.WageBreakdown{}, employee.ErrEmployeeNotFound
	}
	if !validator.IsValidMonth(month) {
		return employee.Employee{}, wage.WageBreakdown{}, invalidMonth()
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return employee.Employee{}, wage.WageBreakdown{}, fmt.Errorf("failed to get employee: %w", err)
	}

	breakdown, err := wage.Calculate(emp.Position, workhours.MonthlyHours(emp.WorkingHours, month))
	if err != nil {
		return employee.Employee{}, wage.WageBreakdown{}, err
	}
	return emp, breakdown, nil
}

// Get implements wage.WageService.
func (s *WageServiceImpl) Get(ctx context.Context, employeeID, month string) (wage.EmployeeWageResponse, error) {
	emp, breakdown, err := s.breakdownFor(ctx, employeeID, month)
	if err != nil {
		return wage.EmployeeWageResponse{}, err
	}

	withdrawn, err := s.withdrawalRepo.Exists(ctx, emp.ID, month)
	if err != nil {
		return wage.EmployeeWageResponse{}, fmt.Errorf("failed to check withdrawal: %w", err)
	}

	resp := wage.NewEmployeeWageResponse(breakdown, month, withdrawn)
	resp.EmployeeID = emp.ID
	resp.EmployeeName = emp.Name
	resp.TotalHours = workhours.RoundHours(breakdown.Hours)
	return resp, nil
}

// Withdraw implements wage.WageService. The marker is written once per
// employee and month; a repeat yields wage.ErrAlreadyWithdrawn.
func (s *WageServiceImpl) Withdraw(ctx context.Context, req wage.WithdrawRequest) (wage.WithdrawalResponse, error) {
	if err := req.Validate(); err != nil {
		return wage.WithdrawalResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return wage.WithdrawalResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	created, err := s.withdrawalRepo.Create(ctx, wage.Withdrawal{
		EmployeeID: emp.ID,
		Month:      req.Month,
	})
	if err != nil {
		return wage.WithdrawalResponse{}, fmt.Errorf("failed to mark wage withdrawn: %w", err)
	}
	return wage.NewWithdrawalResponse(created), nil
}
