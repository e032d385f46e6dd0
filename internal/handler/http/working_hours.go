package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/workhours"
	"github.com/cmlabs-hris/workforce-backend-go/internal/handler/http/response"
)

const maxImportSize = 10 << 20

type WorkingHoursHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Import(w http.ResponseWriter, r *http.Request)
}

type workingHoursHandlerImpl struct {
	workingHoursService workhours.WorkingHoursService
}

func NewWorkingHoursHandler(workingHoursService workhours.WorkingHoursService) WorkingHoursHandler {
	return &workingHoursHandlerImpl{workingHoursService: workingHoursService}
}

// CheckIn implements WorkingHoursHandler.
func (h *workingHoursHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req workhours.CheckInRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.workingHoursService.CheckIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Checked in successfully", result)
}

// CheckOut implements WorkingHoursHandler.
func (h *workingHoursHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	var req workhours.CheckOutRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.workingHoursService.CheckOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked out successfully", result)
}

// List implements WorkingHoursHandler. Supports ?employee_id=, ?month=YYYY-MM and ?open=true.
func (h *workingHoursHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := workhours.WorkingHoursFilter{
		EmployeeID: queryPtr(r, "employee_id"),
		Month:      queryPtr(r, "month"),
		OpenOnly:   r.URL.Query().Get("open") == "true",
	}

	result, err := h.workingHoursService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Get implements WorkingHoursHandler.
func (h *workingHoursHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.workingHoursService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Create implements WorkingHoursHandler.
func (h *workingHoursHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req workhours.CreateWorkingHoursRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.workingHoursService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Working hours created successfully", result)
}

// Update implements WorkingHoursHandler.
func (h *workingHoursHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req workhours.UpdateWorkingHoursRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.workingHoursService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Working hours updated successfully", result)
}

// Delete implements WorkingHoursHandler.
func (h *workingHoursHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.workingHoursService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Working hours deleted successfully", nil)
}

// Import implements WorkingHoursHandler. Expects a multipart "file" field (.csv, .xlsx or .xls).
func (h *workingHoursHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportSize)
	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Field 'file' is required", nil)
		return
	}
	defer file.Close()

	summary, err := h.workingHoursService.Import(r.Context(), file, header.Filename)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("working hours imported", "filename", header.Filename, "success", summary.Success, "failed", summary.Failed)
	response.SuccessWithMessage(w, "Import completed", summary)
}
