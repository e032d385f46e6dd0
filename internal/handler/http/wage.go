package http

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/wage"
	"github.com/cmlabs-hris/workforce-backend-go/internal/handler/http/response"
)

type WageHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	Slip(w http.ResponseWriter, r *http.Request)
}

type wageHandlerImpl struct {
	wageService wage.WageService
	loc         *time.Location
	now         func() time.Time
}

func NewWageHandler(wageService wage.WageService, loc *time.Location) WageHandler {
	return &wageHandlerImpl{wageService: wageService, loc: loc, now: time.Now}
}

func (h *wageHandlerImpl) month(r *http.Request) string {
	return monthOrCurrent(r, h.now().In(h.loc))
}

// List handles GET /wages
func (h *wageHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.wageService.List(r.Context(), h.month(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Get handles GET /wages/{employeeID}
func (h *wageHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.wageService.Get(r.Context(), chi.URLParam(r, "employeeID"), h.month(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Withdraw handles POST /wages/{employeeID}/withdraw
func (h *wageHandlerImpl) Withdraw(w http.ResponseWriter, r *http.Request) {
	var req wage.WithdrawRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.EmployeeID = chi.URLParam(r, "employeeID")

	result, err := h.wageService.Withdraw(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Wage marked as withdrawn", result)
}

// Slip handles GET /wages/{employeeID}/slip
func (h *wageHandlerImpl) Slip(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	month := h.month(r)

	var buf bytes.Buffer
	if err := h.wageService.WriteSlip(r.Context(), employeeID, month, &buf); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Attachment(w, fmt.Sprintf("wage_slip_%s.pdf", month), "application/pdf", buf.Bytes())
}
