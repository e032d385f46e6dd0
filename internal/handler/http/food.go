package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/food"
	"github.com/cmlabs-hris/workforce-backend-go/internal/handler/http/response"
)

type FoodHandler interface {
	ListItems(w http.ResponseWriter, r *http.Request)
	GetItem(w http.ResponseWriter, r *http.Request)
	CreateItem(w http.ResponseWriter, r *http.Request)
	UpdateItem(w http.ResponseWriter, r *http.Request)
	DeleteItem(w http.ResponseWriter, r *http.Request)

	ListTransactions(w http.ResponseWriter, r *http.Request)
	GetTransaction(w http.ResponseWriter, r *http.Request)
	CreateTransaction(w http.ResponseWriter, r *http.Request)
}

type foodHandlerImpl struct {
	foodService food.FoodService
}

func NewFoodHandler(foodService food.FoodService) FoodHandler {
	return &foodHandlerImpl{foodService: foodService}
}

func (h *foodHandlerImpl) ListItems(w http.ResponseWriter, r *http.Request) {
	result, err := h.foodService.ListItems(r.Context(), food.FoodItemFilter{Type: queryPtr(r, "type")})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *foodHandlerImpl) GetItem(w http.ResponseWriter, r *http.Request) {
	result, err := h.foodService.GetItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *foodHandlerImpl) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req food.CreateFoodItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.foodService.CreateItem(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Food item created successfully", result)
}

func (h *foodHandlerImpl) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req food.UpdateFoodItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.foodService.UpdateItem(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Food item updated successfully", result)
}

func (h *foodHandlerImpl) DeleteItem(w http.ResponseWriter, r *http.Request) {
	if err := h.foodService.DeleteItem(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Food item deleted successfully", nil)
}

// ListTransactions supports ?employee_id=, ?food_item_id= and ?type=deposit|withdraw.
func (h *foodHandlerImpl) ListTransactions(w http.ResponseWriter, r *http.Request) {
	filter := food.FoodTransactionFilter{
		EmployeeID: queryPtr(r, "employee_id"),
		FoodItemID: queryPtr(r, "food_item_id"),
	}
	if t := queryPtr(r, "type"); t != nil {
		txType := food.TransactionType(*t)
		filter.Type = &txType
	}

	result, err := h.foodService.ListTransactions(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *foodHandlerImpl) GetTransaction(w http.ResponseWriter, r *http.Request) {
	result, err := h.foodService.GetTransaction(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *foodHandlerImpl) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req food.CreateFoodTransactionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.foodService.CreateTransaction(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Food transaction recorded successfully", result)
}
