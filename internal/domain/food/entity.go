package food

import "time"

type TransactionType string

const (
	TransactionDeposit  TransactionType = "deposit"
	TransactionWithdraw TransactionType = "withdraw"
)

func (t TransactionType) IsValid() bool {
	return t == TransactionDeposit || t == TransactionWithdraw
}

// Delta is the signed stock change for quantity units of this transaction type.
func (t TransactionType) Delta(quantity int) int {
	if t == TransactionWithdraw {
		return -quantity
	}
	return quantity
}

// FoodItem entity
type FoodItem struct {
	ID        string
	Name      string
	Type      string
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FoodTransaction entity
type FoodTransaction struct {
	ID         string
	EmployeeID string
	FoodItemID string
	Type       TransactionType
	Quantity   int
	Notes      *string
	CreatedAt  time.Time

	// Relationships (for responses)
	EmployeeName *string
	FoodItemName *string
}
