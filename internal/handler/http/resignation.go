package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/approval"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/resignation"
	"github.com/cmlabs-hris/workforce-backend-go/internal/handler/http/response"
)

type ResignationHandler interface {
	ListRequests(w http.ResponseWriter, r *http.Request)
	GetRequest(w http.ResponseWriter, r *http.Request)
	CreateRequest(w http.ResponseWriter, r *http.Request)
	ApproveRequest(w http.ResponseWriter, r *http.Request)
	RejectRequest(w http.ResponseWriter, r *http.Request)
	DeleteRequest(w http.ResponseWriter, r *http.Request)
}

type resignationHandlerImpl struct {
	resignationService resignation.ResignationService
}

func NewResignationHandler(resignationService resignation.ResignationService) ResignationHandler {
	return &resignationHandlerImpl{resignationService: resignationService}
}

func (h *resignationHandlerImpl) ListRequests(w http.ResponseWriter, r *http.Request) {
	filter := resignation.ResignationRequestFilter{
		EmployeeID: queryPtr(r, "employee_id"),
		Status:     statusPtr(r),
	}

	result, err := h.resignationService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *resignationHandlerImpl) GetRequest(w http.ResponseWriter, r *http.Request) {
	result, err := h.resignationService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *resignationHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req resignation.CreateResignationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.resignationService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Resignation request created successfully", result)
}

func (h *resignationHandlerImpl) updateStatus(w http.ResponseWriter, r *http.Request, status approval.Status, message string) {
	result, err := h.resignationService.UpdateStatus(r.Context(), resignation.UpdateStatusRequest{
		ID:     chi.URLParam(r, "id"),
		Status: status,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, message, result)
}

func (h *resignationHandlerImpl) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	h.updateStatus(w, r, approval.StatusApproved, "Resignation request approved successfully")
}

func (h *resignationHandlerImpl) RejectRequest(w http.ResponseWriter, r *http.Request) {
	h.updateStatus(w, r, approval.StatusRejected, "Resignation request rejected successfully")
}

func (h *resignationHandlerImpl) DeleteRequest(w http.ResponseWriter, r *http.Request) {
	if err := h.resignationService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Resignation request deleted successfully", nil)
}
