package workhours

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/notification"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/workhours"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/validator"
)

type WorkingHoursServiceImpl struct {
	workingHoursRepo workhours.WorkingHoursRepository
	employeeRepo     employee.EmployeeRepository
	notifier         notification.Notifier
	loc              *time.Location
	now              func() time.Time
}

func NewWorkingHoursService(
	workingHoursRepo workhours.WorkingHoursRepository,
	employeeRepo employee.EmployeeRepository,
	notifier notification.Notifier,
	loc *time.Location,
) workhours.WorkingHoursService {
	return &WorkingHoursServiceImpl{
		workingHoursRepo: workingHoursRepo,
		employeeRepo:     employeeRepo,
		notifier:         notifier,
		loc:              loc,
		now:              time.Now,
	}
}

// CheckIn implements workhours.WorkingHoursService.
func (s *WorkingHoursServiceImpl) CheckIn(ctx context.Context, req workhours.CheckInRequest) (workhours.WorkingHoursResponse, error) {
	if err := req.Validate(); err != nil {
		return workhours.WorkingHoursResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return workhours.WorkingHoursResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	nowUTC := s.now().UTC()
	dateLocal := nowUTC.In(s.loc).Format(validator.DateLayout)

	existing, err := s.workingHoursRepo.ListConflicting(ctx, emp.ID, dateLocal)
	if err != nil {
		return workhours.WorkingHoursResponse{}, fmt.Errorf("failed to load working hours: %w", err)
	}
	if err := workhours.CheckInConflict(existing, dateLocal); err != nil {
		return workhours.WorkingHoursResponse{}, err
	}

	created, err := s.workingHoursRepo.Create(ctx, workhours.WorkingHours{
		EmployeeID: emp.ID,
		Date:       dateLocal,
		CheckIn:    nowUTC,
	})
	if err != nil {
		return workhours.WorkingHoursResponse{}, fmt.Errorf("failed to check in: %w", err)
	}
	withEmployee(&created, emp)

	s.notifier.NotifyCheckIn(notification.CheckInEvent{
		EmployeeName: emp.Name,
		Position:     string(emp.Position),
		Date:         created.Date,
		CheckIn:      created.CheckIn.In(s.loc),
	})

	return workhours.NewWorkingHoursResponse(created), nil
}

// CheckOut implements workhours.WorkingHoursService.
func (s *WorkingHoursServiceImpl) CheckOut(ctx context.Context, req workhours.CheckOutRequest) (workhours.WorkingHoursResponse, error) {
	if err := req.Validate(); err != nil {
		return workhours.WorkingHoursResponse{}, err
	}

	var record workhours.WorkingHours
	var err error
	if req.RecordID == "" {
		record, err = s.workingHoursRepo.GetOpenSession(ctx, req.EmployeeID)
	} else {
		record, err = s.workingHoursRepo.GetByID(ctx, req.RecordID)
		if errors.Is(err, workhours.ErrWorkingHoursNotFound) {
			err = workhours.ErrNoActiveSession
		}
	}
	if err != nil {
		return workhours.WorkingHoursResponse{}, fmt.Errorf("failed to find session: %w", err)
	}
	if err := workhours.CheckOutAllowed(&record, req.EmployeeID); err != nil {
		return workhours.WorkingHoursResponse{}, err
	}

	nowUTC := s.now().UTC()
	if err := workhours.ValidateTimes(record.CheckIn, &nowUTC, nowUTC); err != nil {
		return workhours.WorkingHoursResponse{}, err
	}

	record.Close(nowUTC)
	closed, err := s.workingHoursRepo.Close(ctx, record.ID, nowUTC, *record.TotalHours)
	if err != nil {
		return workhours.WorkingHoursResponse{}, fmt.Errorf("failed to check out: %w", err)
	}
	closed.EmployeeName = record.EmployeeName
	closed.EmployeePosition = record.EmployeePosition

	event := notification.CheckOutEvent{
		Date:       closed.Date,
		CheckIn:    closed.CheckIn.In(s.loc),
		CheckOut:   nowUTC.In(s.loc),
		TotalHours: closed.Hours(),
	}
	if closed.EmployeeName != nil {
		event.EmployeeName = *closed.EmployeeName
	}
	if closed.EmployeePosition != nil {
		event.Position = *closed.EmployeePosition
	}
	s.notifier.NotifyCheckOut(event)

	return workhours.NewWorkingHoursResponse(closed), nil
}

// Create implements workhours.WorkingHoursService.
func (s *WorkingHoursServiceImpl) Create(ctx context.Context, req workhours.CreateWorkingHoursRequest) (workhours.WorkingHoursResponse, error) {
	if err := req.Validate(); err != nil {
		return workhours.WorkingHoursResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return workhours.WorkingHoursResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	checkIn, _ := validator.ParseDateTimeIn(req.CheckIn, s.loc)
	var checkOut *time.Time
	if req.CheckOut != nil && *req.CheckOut != "" {
		t, _ := validator.ParseDateTimeIn(*req.CheckOut, s.loc)
		checkOut = &t
	}

	created, err := s.createRecord(ctx, emp.ID, req.Date, checkIn, checkOut, req.Notes)
	if err != nil {
		return workhours.WorkingHoursResponse{}, err
	}
	withEmployee(&created, emp)
	return workhours.NewWorkingHoursResponse(created), nil
}

// createRecord is shared by manual entry and import. The store rejects a second
// open session or a second record for the same date.
func (s *WorkingHoursServiceImpl) createRecord(ctx context.Context, employeeID, date string, checkIn time.Time, checkOut *time.Time, notes *string) (workhours.WorkingHours, error) {
	if err := workhours.ValidateTimes(checkIn, checkOut, s.now()); err != nil {
		return workhours.WorkingHours{}, err
	}
	if err := workhours.ValidateDate(date, checkIn, s.loc); err != nil {
		return workhours.WorkingHours{}, err
	}

	wh := workhours.WorkingHours{
		EmployeeID: employeeID,
		Date:       date,
		CheckIn:    checkIn.UTC(),
		Notes:      notes,
	}
	if checkOut != nil {
		wh.Close(checkOut.UTC())
	}

	created, err := s.workingHoursRepo.Create(ctx, wh)
	if err != nil {
		return workhours.WorkingHours{}, fmt.Errorf("failed to create working hours: %w", err)
	}
	return created, nil
}

// Update implements workhours.WorkingHoursService.
func (s *WorkingHoursServiceImpl) Update(ctx context.Context, req workhours.UpdateWorkingHoursRequest) (workhours.WorkingHoursResponse, error) {
	if err := req.Validate(); err != nil {
		return workhours.WorkingHoursResponse{}, err
	}

	wh, err := s.workingHoursRepo.GetByID(ctx, req.ID)
	if err != nil {
		return workhours.WorkingHoursResponse{}, fmt.Errorf("failed to get working hours: %w", err)
	}

	if req.Date != nil {
		wh.Date = *req.Date
	}
	if req.CheckIn != nil {
		checkIn, _ := validator.ParseDateTimeIn(*req.CheckIn, s.loc)
		wh.CheckIn = checkIn.UTC()
	}
	if req.CheckOut != nil {
		if *req.CheckOut == "" {
			wh.CheckOut = nil
		} else {
			checkOut, _ := validator.ParseDateTimeIn(*req.CheckOut, s.loc)
			checkOut = checkOut.UTC()
			wh.CheckOut = &checkOut
		}
	}
	if req.Notes != nil {
		wh.Notes = req.Notes
	}

	if err := workhours.ValidateTimes(wh.CheckIn, wh.CheckOut, s.now()); err != nil {
		return workhours.WorkingHoursResponse{}, err
	}
	if err := workhours.ValidateDate(wh.Date, wh.CheckIn, s.loc); err != nil {
		return workhours.WorkingHoursResponse{}, err
	}
	wh.Recompute()

	if err := s.workingHoursRepo.Update(ctx, wh); err != nil {
		return workhours.WorkingHoursResponse{}, fmt.Errorf("failed to update working hours: %w", err)
	}

	updated, err := s.workingHoursRepo.GetByID(ctx, wh.ID)
	if err != nil {
		return workhours.WorkingHoursResponse{}, fmt.Errorf("failed to reload working hours: %w", err)
	}
	return workhours.NewWorkingHoursResponse(updated), nil
}

// Get implements workhours.WorkingHoursService.
func (s *WorkingHoursServiceImpl) Get(ctx context.Context, id string) (workhours.WorkingHoursResponse, error) {
	if !validator.IsValidUUID(id) {
		return workhours.WorkingHoursResponse{}, workhours.ErrWorkingHoursNotFound
	}
	wh, err := s.workingHoursRepo.GetByID(ctx, id)
	if err != nil {
		return workhours.WorkingHoursResponse{}, fmt.Errorf("failed to get working hours: %w", err)
	}
	return workhours.NewWorkingHoursResponse(wh), nil
}

// List implements workhours.WorkingHoursService.
func (s *WorkingHoursServiceImpl) List(ctx context.Context, filter workhours.WorkingHoursFilter) ([]workhours.WorkingHoursResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := s.workingHoursRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list working hours: %w", err)
	}

	result := make([]workhours.WorkingHoursResponse, 0, len(records))
	for _, wh := range records {
		result = append(result, workhours.NewWorkingHoursResponse(wh))
	}
	return result, nil
}

// Delete implements workhours.WorkingHoursService.
func (s *WorkingHoursServiceImpl) Delete(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return workhours.ErrWorkingHoursNotFound
	}
	if err := s.workingHoursRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete working hours: %w", err)
	}
	return nil
}

func withEmployee(wh *workhours.WorkingHours, emp employee.Employee) {
	name, position := emp.Name, string(emp.Position)
	wh.EmployeeName = &name
	wh.EmployeePosition = &position
}
