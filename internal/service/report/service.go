package report

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/food"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/resignation"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/wage"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/workhours"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/spreadsheet"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/validator"
)

type ReportServiceImpl struct {
	employeeService     employee.EmployeeService
	workingHoursService workhours.WorkingHoursService
	leaveService        leave.LeaveService
	resignationService  resignation.ResignationService
	foodService         food.FoodService
	wageService         wage.WageService
	loc                 *time.Location
	now                 func() time.Time
}

func NewReportService(
	employeeService employee.EmployeeService,
	workingHoursService workhours.WorkingHoursService,
	leaveService leave.LeaveService,
	resignationService resignation.ResignationService,
	foodService food.FoodService,
	wageService wage.WageService,
	loc *time.Location,
) report.ReportService {
	return &ReportServiceImpl{
		employeeService:     employeeService,
		workingHoursService: workingHoursService,
		leaveService:        leaveService,
		resignationService:  resignationService,
		foodService:         foodService,
		wageService:         wageService,
		loc:                 loc,
		now:                 time.Now,
	}
}

// Export implements report.ReportService.
func (s *ReportServiceImpl) Export(ctx context.Context, req report.ExportRequest) (report.ExportFile, error) {
	if err := req.Validate(); err != nil {
		return report.ExportFile{}, err
	}
	format, _ := spreadsheet.ParseExportFormat(req.Format)

	table, err := s.table(ctx, req)
	if err != nil {
		return report.ExportFile{}, err
	}

	var buf bytes.Buffer
	if err := spreadsheet.Write(&buf, format, sheetName(req.Kind), table); err != nil {
		return report.ExportFile{}, fmt.Errorf("%w: %w", report.ErrReportGenerationFailed, err)
	}

	return report.ExportFile{
		Filename:    spreadsheet.Filename(string(req.Kind), format, s.now().In(s.loc)),
		ContentType: format.ContentType(),
		Content:     buf.Bytes(),
	}, nil
}

func (s *ReportServiceImpl) table(ctx context.Context, req report.ExportRequest) (spreadsheet.Table, error) {
	switch req.Kind {
	case report.KindEmployees:
		items, err := s.employeeService.List(ctx, employee.EmployeeFilter{})
		if err != nil {
			return spreadsheet.Table{}, err
		}
		return spreadsheet.Build(items, employeeColumns), nil

	case report.KindWorkingHours:
		items, err := s.workingHoursService.List(ctx, workhours.WorkingHoursFilter{Month: req.Month})
		if err != nil {
			return spreadsheet.Table{}, err
		}
		return spreadsheet.Build(items, s.workingHoursColumns()), nil

	case report.KindLeaveRequests:
		items, err := s.leaveService.List(ctx, leave.LeaveRequestFilter{})
		if err != nil {
			return spreadsheet.Table{}, err
		}
		return spreadsheet.Build(items, leaveColumns), nil

	case report.KindResignationRequests:
		items, err := s.resignationService.List(ctx, resignation.ResignationRequestFilter{})
		if err != nil {
			return spreadsheet.Table{}, err
		}
		return spreadsheet.Build(items, resignationColumns), nil

	case report.KindFoodItems:
		items, err := s.foodService.ListItems(ctx, food.FoodItemFilter{})
		if err != nil {
			return spreadsheet.Table{}, err
		}
		return spreadsheet.Build(items, foodItemColumns), nil

	case report.KindFoodTransactions:
		items, err := s.foodService.ListTransactions(ctx, food.FoodTransactionFilter{})
		if err != nil {
			return spreadsheet.Table{}, err
		}
		return spreadsheet.Build(items, s.foodTransactionColumns()), nil

	case report.KindWages:
		month := s.now().In(s.loc).Format(validator.MonthLayout)
		if req.Month != nil {
			month = *req.Month
		}
		items, err := s.wageService.List(ctx, month)
		if err != nil {
			return spreadsheet.Table{}, err
		}
		return spreadsheet.Build(items, wageColumns), nil
	}
	return spreadsheet.Table{}, report.ErrUnknownKind
}

func sheetName(kind report.Kind) string {
	switch kind {
	case report.KindEmployees:
		return "Employees"
	case report.KindWorkingHours:
		return "Working Hours"
	case report.KindLeaveRequests:
		return "Leave Requests"
	case report.KindResignationRequests:
		return "Resignation Requests"
	case report.KindFoodItems:
		return "Food Items"
	case report.KindFoodTransactions:
		return "Food Transactions"
	case report.KindWages:
		return "Wages"
	}
	return "Sheet1"
}

func formatHours(h float64) string {
	return strconv.FormatFloat(workhours.RoundHours(h), 'f', 2, 64)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// localTime renders an RFC3339 response timestamp as wall-clock time in loc.
func localTime(value string, loc *time.Location) string {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return value
	}
	return t.In(loc).Format(validator.DateTimeLayout)
}
