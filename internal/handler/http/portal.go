package http

import (
	"net/http"
	"time"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/resignation"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/wage"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/workhours"
	"github.com/cmlabs-hris/workforce-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/workforce-backend-go/internal/handler/http/response"
)

// PortalHandler serves the employee self-service routes under /me.
// The employee is always taken from the access token, never from the request.
type PortalHandler interface {
	Me(w http.ResponseWriter, r *http.Request)
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	MyWorkingHours(w http.ResponseWriter, r *http.Request)
	MyWage(w http.ResponseWriter, r *http.Request)
	MyLeaveRequests(w http.ResponseWriter, r *http.Request)
	CreateLeaveRequest(w http.ResponseWriter, r *http.Request)
	MyResignationRequests(w http.ResponseWriter, r *http.Request)
	CreateResignationRequest(w http.ResponseWriter, r *http.Request)
}

type portalHandlerImpl struct {
	employeeService     employee.EmployeeService
	workingHoursService workhours.WorkingHoursService
	wageService         wage.WageService
	leaveService        leave.LeaveService
	resignationService  resignation.ResignationService
	loc                 *time.Location
	now                 func() time.Time
}

func NewPortalHandler(
	employeeService employee.EmployeeService,
	workingHoursService workhours.WorkingHoursService,
	wageService wage.WageService,
	leaveService leave.LeaveService,
	resignationService resignation.ResignationService,
	loc *time.Location,
) PortalHandler {
	return &portalHandlerImpl{
		employeeService:     employeeService,
		workingHoursService: workingHoursService,
		wageService:         wageService,
		leaveService:        leaveService,
		resignationService:  resignationService,
		loc:                 loc,
		now:                 time.Now,
	}
}

func (h *portalHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.Get(r.Context(), middleware.EmployeeID(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *portalHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	req := workhours.CheckInRequest{EmployeeID: middleware.EmployeeID(r.Context())}

	result, err := h.workingHoursService.CheckIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Checked in successfully", result)
}

// CheckOut closes the employee's open session, or ?record_id= when given.
func (h *portalHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	req := workhours.CheckOutRequest{
		EmployeeID: middleware.EmployeeID(r.Context()),
		RecordID:   r.URL.Query().Get("record_id"),
	}

	result, err := h.workingHoursService.CheckOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked out successfully", result)
}

func (h *portalHandlerImpl) MyWorkingHours(w http.ResponseWriter, r *http.Request) {
	employeeID := middleware.EmployeeID(r.Context())
	filter := workhours.WorkingHoursFilter{
		EmployeeID: &employeeID,
		Month:      queryPtr(r, "month"),
	}

	result, err := h.workingHoursService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *portalHandlerImpl) MyWage(w http.ResponseWriter, r *http.Request) {
	month := monthOrCurrent(r, h.now().In(h.loc))

	result, err := h.wageService.Get(r.Context(), middleware.EmployeeID(r.Context()), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *portalHandlerImpl) MyLeaveRequests(w http.ResponseWriter, r *http.Request) {
	employeeID := middleware.EmployeeID(r.Context())

	result, err := h.leaveService.List(r.Context(), leave.LeaveRequestFilter{EmployeeID: &employeeID, Status: statusPtr(r)})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *portalHandlerImpl) CreateLeaveRequest(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.EmployeeID = middleware.EmployeeID(r.Context())

	result, err := h.leaveService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", result)
}

func (h *portalHandlerImpl) MyResignationRequests(w http.ResponseWriter, r *http.Request) {
	employeeID := middleware.EmployeeID(r.Context())

	result, err := h.resignationService.List(r.Context(), resignation.ResignationRequestFilter{EmployeeID: &employeeID, Status: statusPtr(r)})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *portalHandlerImpl) CreateResignationRequest(w http.ResponseWriter, r *http.Request) {
	var req resignation.CreateResignationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.EmployeeID = middleware.EmployeeID(r.Context())

	result, err := h.resignationService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Resignation request submitted", result)
}
