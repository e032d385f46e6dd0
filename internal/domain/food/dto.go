package food

import (
	"time"

	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/validator"
)

type CreateFoodItemRequest struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Quantity int    `json:"quantity"`
}

func (r *CreateFoodItemRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if validator.IsEmpty(r.Type) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type is required"})
	}
	if r.Quantity < 0 {
		errs = append(errs, validator.ValidationError{Field: "quantity", Message: "quantity must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateFoodItemRequest struct {
	ID       string  `json:"-"`
	Name     *string `json:"name,omitempty"`
	Type     *string `json:"type,omitempty"`
	Quantity *int    `json:"quantity,omitempty"`
}

func (r *UpdateFoodItemRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "invalid food item id"})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not be empty"})
	}
	if r.Type != nil && validator.IsEmpty(*r.Type) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type must not be empty"})
	}
	if r.Quantity != nil && *r.Quantity < 0 {
		errs = append(errs, validator.ValidationError{Field: "quantity", Message: "quantity must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type FoodItemFilter struct {
	Type *string
}

type CreateFoodTransactionRequest struct {
	EmployeeID string          `json:"employee_id"`
	FoodItemID string          `json:"food_item_id"`
	Type       TransactionType `json:"type"`
	Quantity   int             `json:"quantity"`
	Notes      *string         `json:"notes,omitempty"`
}

func (r *CreateFoodTransactionRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id must be a valid id"})
	}
	if !validator.IsValidUUID(r.FoodItemID) {
		errs = append(errs, validator.ValidationError{Field: "food_item_id", Message: "food_item_id must be a valid id"})
	}
	if !r.Type.IsValid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type must be deposit or withdraw"})
	}
	if r.Quantity <= 0 {
		errs = append(errs, validator.ValidationError{Field: "quantity", Message: "quantity must be a positive integer"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type FoodTransactionFilter struct {
	EmployeeID *string
	FoodItemID *string
	Type       *TransactionType
}

func (f *FoodTransactionFilter) Validate() error {
	var errs validator.ValidationErrors
	if f.EmployeeID != nil && !validator.IsValidUUID(*f.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id must be a valid id"})
	}
	if f.FoodItemID != nil && !validator.IsValidUUID(*f.FoodItemID) {
		errs = append(errs, validator.ValidationError{Field: "food_item_id", Message: "food_item_id must be a valid id"})
	}
	if f.Type != nil && !f.Type.IsValid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type must be deposit or withdraw"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type FoodItemResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Quantity  int    `json:"quantity"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func NewFoodItemResponse(item FoodItem) FoodItemResponse {
	return FoodItemResponse{
		ID:        item.ID,
		Name:      item.Name,
		Type:      item.Type,
		Quantity:  item.Quantity,
		CreatedAt: item.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: item.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

type FoodTransactionResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	FoodItemID   string  `json:"food_item_id"`
	FoodItemName *string `json:"food_item_name,omitempty"`
	Type         string  `json:"type"`
	Quantity     int     `json:"quantity"`
	Notes        *string `json:"notes,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

func NewFoodTransactionResponse(tx FoodTransaction) FoodTransactionResponse {
	return FoodTransactionResponse{
		ID:           tx.ID,
		EmployeeID:   tx.EmployeeID,
		EmployeeName: tx.EmployeeName,
		FoodItemID:   tx.FoodItemID,
		FoodItemName: tx.FoodItemName,
		Type:         string(tx.Type),
		Quantity:     tx.Quantity,
		Notes:        tx.Notes,
		CreatedAt:    tx.CreatedAt.UTC().Format(time.RFC3339),
	}
}
