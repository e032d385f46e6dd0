package dashboard

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/approval"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/resignation"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/wage"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/validator"
)

type DashboardServiceImpl struct {
	dashboardRepo   dashboard.DashboardRepository
	employeeRepo    employee.EmployeeRepository
	leaveRepo       leave.LeaveRequestRepository
	resignationRepo resignation.ResignationRequestRepository
	withdrawalRepo  wage.WithdrawalRepository
	loc             *time.Location
	now             func() time.Time
}

func NewDashboardService(
	dashboardRepo dashboard.DashboardRepository,
	employeeRepo employee.EmployeeRepository,
	leaveRepo leave.LeaveRequestRepository,
	resignationRepo resignation.ResignationRequestRepository,
	withdrawalRepo wage.WithdrawalRepository,
	loc *time.Location,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		dashboardRepo:   dashboardRepo,
		employeeRepo:    employeeRepo,
		leaveRepo:       leaveRepo,
		resignationRepo: resignationRepo,
		withdrawalRepo:  withdrawalRepo,
		loc:             loc,
		now:             time.Now,
	}
}

// GetDashboard runs one query per counter in parallel.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (dashboard.DashboardResponse, error) {
	resp := dashboard.DashboardResponse{
		Month: s.now().In(s.loc).Format(validator.MonthLayout),
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.employeeRepo.Count(gCtx)
		resp.TotalEmployees = n
		return err
	})

	g.Go(func() error {
		n, err := s.dashboardRepo.CountOpenSessions(gCtx)
		resp.OpenSessions = n
		return err
	})

	g.Go(func() error {
		n, err := s.leaveRepo.CountByStatus(gCtx, approval.StatusPending)
		resp.PendingLeaveRequests = n
		return err
	})

	g.Go(func() error {
		n, err := s.resignationRepo.CountByStatus(gCtx, approval.StatusPending)
		resp.PendingResignationRequest = n
		return err
	})

	g.Go(func() error {
		hours, err := s.dashboardRepo.SumHoursForMonth(gCtx, resp.Month)
		resp.HoursThisMonth = hours
		return err
	})

	g.Go(func() error {
		withdrawals, err := s.withdrawalRepo.ListByMonth(gCtx, resp.Month)
		resp.WithdrawnThisMonth = len(withdrawals)
		return err
	})

	if err := g.Wait(); err != nil {
		return dashboard.DashboardResponse{}, err
	}
	return resp, nil
}
