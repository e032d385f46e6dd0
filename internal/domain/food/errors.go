package food

import "errors"

var (
	ErrFoodItemNotFound        = errors.New("food item not found")
	ErrFoodTransactionNotFound = errors.New("food transaction not found")
	ErrInsufficientStock       = errors.New("insufficient stock for withdrawal")
)
