package food

import "context"

type FoodItemRepository interface {
	Create(ctx context.Context, item FoodItem) (FoodItem, error)
	GetByID(ctx context.Context, id string) (FoodItem, error)
	List(ctx context.Context, filter FoodItemFilter) ([]FoodItem, error)
	Update(ctx context.Context, item FoodItem) error
	Delete(ctx context.Context, id string) error

	// AdjustQuantity adds delta to the stock and returns the updated item.
	// Stock never goes below zero; that case yields ErrInsufficientStock.
	AdjustQuantity(ctx context.Context, id string, delta int) (FoodItem, error)
}

type FoodTransactionRepository interface {
	Create(ctx context.Context, tx FoodTransaction) (FoodTransaction, error)
	GetByID(ctx context.Context, id string) (FoodTransaction, error)
	List(ctx context.Context, filter FoodTransactionFilter) ([]FoodTransaction, error)
}
