package food

import (
	"context"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/food"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/validator"
)

type FoodServiceImpl struct {
	transactor      database.Transactor
	foodItemRepo    food.FoodItemRepository
	transactionRepo food.FoodTransactionRepository
	employeeRepo    employee.EmployeeRepository
}

func NewFoodService(
	transactor database.Transactor,
	foodItemRepo food.FoodItemRepository,
	transactionRepo food.FoodTransactionRepository,
	employeeRepo employee.EmployeeRepository,
) food.FoodService {
	return &FoodServiceImpl{
		transactor:      transactor,
		foodItemRepo:    foodItemRepo,
		transactionRepo: transactionRepo,
		employeeRepo:    employeeRepo,
	}
}

func (s *FoodServiceImpl) CreateItem(ctx context.Context, req food.CreateFoodItemRequest) (food.FoodItemResponse, error) {
	if err := req.Validate(); err != nil {
		return food.FoodItemResponse{}, err
	}

	item, err := s.foodItemRepo.Create(ctx, food.FoodItem{
		Name:     strings.TrimSpace(req.Name),
		Type:     strings.TrimSpace(req.Type),
		Quantity: req.Quantity,
	})
	if err != nil {
		return food.FoodItemResponse{}, fmt.Errorf("failed to create food item: %w", err)
	}
	return food.NewFoodItemResponse(item), nil
}

func (s *FoodServiceImpl) GetItem(ctx context.Context, id string) (food.FoodItemResponse, error) {
	if !validator.IsValidUUID(id) {
		return food.FoodItemResponse{}, food.ErrFoodItemNotFound
	}
	item, err := s.foodItemRepo.GetByID(ctx, id)
	if err != nil {
		return food.FoodItemResponse{}, fmt.Errorf("failed to get food item: %w", err)
	}
	return food.NewFoodItemResponse(item), nil
}

func (s *FoodServiceImpl) ListItems(ctx context.Context, filter food.FoodItemFilter) ([]food.FoodItemResponse, error) {
	items, err := s.foodItemRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list food items: %w", err)
	}

	result := make([]food.FoodItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, food.NewFoodItemResponse(item))
	}
	return result, nil
}

func (s *FoodServiceImpl) UpdateItem(ctx context.Context, req food.UpdateFoodItemRequest) (food.FoodItemResponse, error) {
	if err := req.Validate(); err != nil {
		return food.FoodItemResponse{}, err
	}

	item, err := s.foodItemRepo.GetByID(ctx, req.ID)
	if err != nil {
		return food.FoodItemResponse{}, fmt.Errorf("failed to get food item: %w", err)
	}
	if req.Name != nil {
		item.Name = strings.TrimSpace(*req.Name)
	}
	if req.Type != nil {
		item.Type = strings.TrimSpace(*req.Type)
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}

	if err := s.foodItemRepo.Update(ctx, item); err != nil {
		return food.FoodItemResponse{}, fmt.Errorf("failed to update food item: %w", err)
	}

	updated, err := s.foodItemRepo.GetByID(ctx, item.ID)
	if err != nil {
		return food.FoodItemResponse{}, fmt.Errorf("failed to reload food item: %w", err)
	}
	return food.NewFoodItemResponse(updated), nil
}

func (s *FoodServiceImpl) DeleteItem(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return food.ErrFoodItemNotFound
	}
	if err := s.foodItemRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete food item: %w", err)
	}
	return nil
}

// CreateTransaction records a deposit or withdraw and moves the item stock in
// the same database transaction.
func (s *FoodServiceImpl) CreateTransaction(ctx context.Context, req food.CreateFoodTransactionRequest) (food.FoodTransactionResponse, error) {
	if err := req.Validate(); err != nil {
		return food.FoodTransactionResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return food.FoodTransactionResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	var created food.FoodTransaction
	err = s.transactor.WithinTransaction(ctx, func(txCtx context.Context) error {
		item, err := s.foodItemRepo.AdjustQuantity(txCtx, req.FoodItemID, req.Type.Delta(req.Quantity))
		if err != nil {
			return fmt.Errorf("failed to adjust stock: %w", err)
		}

		created, err = s.transactionRepo.Create(txCtx, food.FoodTransaction{
			EmployeeID: emp.ID,
			FoodItemID: item.ID,
			Type:       req.Type,
			Quantity:   req.Quantity,
			Notes:      req.Notes,
		})
		if err != nil {
			return fmt.Errorf("failed to create food transaction: %w", err)
		}
		created.EmployeeName = &emp.Name
		created.FoodItemName = &item.Name
		return nil
	})
	if err != nil {
		return food.FoodTransactionResponse{}, err
	}

	return food.NewFoodTransactionResponse(created), nil
}

func (s *FoodServiceImpl) GetTransaction(ctx context.Context, id string) (food.FoodTransactionResponse, error) {
	if !validator.IsValidUUID(id) {
		return food.FoodTransactionResponse{}, food.ErrFoodTransactionNotFound
	}
	tx, err := s.transactionRepo.GetByID(ctx, id)
	if err != nil {
		return food.FoodTransactionResponse{}, fmt.Errorf("failed to get food transaction: %w", err)
	}
	return food.NewFoodTransactionResponse(tx), nil
}

func (s *FoodServiceImpl) ListTransactions(ctx context.Context, filter food.FoodTransactionFilter) ([]food.FoodTransactionResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	txs, err := s.transactionRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list food transactions: %w", err)
	}

	result := make([]food.FoodTransactionResponse, 0, len(txs))
	for _, tx := range txs {
		result = append(result, food.NewFoodTransactionResponse(tx))
	}
	return result, nil
}
