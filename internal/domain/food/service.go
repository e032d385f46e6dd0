package food

import "context"

type FoodService interface {
	// Items
	CreateItem(ctx context.Context, req CreateFoodItemRequest) (FoodItemResponse, error)
	GetItem(ctx context.Context, id string) (FoodItemResponse, error)
	ListItems(ctx context.Context, filter FoodItemFilter) ([]FoodItemResponse, error)
	UpdateItem(ctx context.Context, req UpdateFoodItemRequest) (FoodItemResponse, error)
	DeleteItem(ctx context.Context, id string) error

	// Transactions
	CreateTransaction(ctx context.Context, req CreateFoodTransactionRequest) (FoodTransactionResponse, error)
	GetTransaction(ctx context.Context, id string) (FoodTransactionResponse, error)
	ListTransactions(ctx context.Context, filter FoodTransactionFilter) ([]FoodTransactionResponse, error)
}
