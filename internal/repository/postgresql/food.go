package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/food"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/database"
)

const foodItemColumns = `id, name, type, quantity, created_at, updated_at`

type foodItemRow struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Type      string    `db:"type"`
	Quantity  int       `db:"quantity"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r foodItemRow) toEntity() food.FoodItem {
	return food.FoodItem{
		ID:        r.ID,
		Name:      r.Name,
		Type:      r.Type,
		Quantity:  r.Quantity,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type foodItemRepositoryImpl struct {
	db *database.DB
}

func NewFoodItemRepository(db *database.DB) food.FoodItemRepository {
	return &foodItemRepositoryImpl{db: db}
}

func (r *foodItemRepositoryImpl) Create(ctx context.Context, item food.FoodItem) (food.FoodItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `INSERT INTO food_items (name, type, quantity) VALUES ($1, $2, $3) RETURNING ` + foodItemColumns
	rows, err := q.Query(ctx, query, item.Name, item.Type, item.Quantity)
	if err != nil {
		return food.FoodItem{}, fmt.Errorf("failed to insert food item: %w", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[foodItemRow])
	if err != nil {
		return food.FoodItem{}, fmt.Errorf("failed to insert food item: %w", err)
	}
	return row.toEntity(), nil
}

func (r *foodItemRepositoryImpl) GetByID(ctx context.Context, id string) (food.FoodItem, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+foodItemColumns+` FROM food_items WHERE id = $1`, id)
	if err != nil {
		return food.FoodItem{}, fmt.Errorf("failed to get food item %s: %w", id, err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[foodItemRow])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return food.FoodItem{}, food.ErrFoodItemNotFound
		}
		return food.FoodItem{}, fmt.Errorf("failed to get food item %s: %w", id, err)
	}
	return row.toEntity(), nil
}

func (r *foodItemRepositoryImpl) List(ctx context.Context, filter food.FoodItemFilter) ([]food.FoodItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + foodItemColumns + ` FROM food_items`
	var args []any
	if filter.Type != nil && *filter.Type != "" {
		query += ` WHERE type = $1`
		args = append(args, *filter.Type)
	}
	query += ` ORDER BY name ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list food items: %w", err)
	}
	collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[foodItemRow])
	if err != nil {
		return nil, fmt.Errorf("failed to scan food items: %w", err)
	}
	items := make([]food.FoodItem, len(collected))
	for i, row := range collected {
		items[i] = row.toEntity()
	}
	return items, nil
}

func (r *foodItemRepositoryImpl) Update(ctx context.Context, item food.FoodItem) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE food_items SET name = $2, type = $3, quantity = $4, updated_at = NOW() WHERE id = $1`
	tag, err := q.Exec(ctx, query, item.ID, item.Name, item.Type, item.Quantity)
	if err != nil {
		return fmt.Errorf("failed to update food item %s: %w", item.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return food.ErrFoodItemNotFound
	}
	return nil
}

func (r *foodItemRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM food_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete food item %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return food.ErrFoodItemNotFound
	}
	return nil
}

func (r *foodItemRepositoryImpl) AdjustQuantity(ctx context.Context, id string, delta int) (food.FoodItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE food_items
		SET quantity = quantity + $2, updated_at = NOW()
		WHERE id = $1 AND quantity + $2 >= 0
		RETURNING ` + foodItemColumns

	rows, err := q.Query(ctx, query, id, delta)
	if err != nil {
		return food.FoodItem{}, fmt.Errorf("failed to adjust food item %s: %w", id, err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[foodItemRow])
	if err == nil {
		return row.toEntity(), nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return food.FoodItem{}, fmt.Errorf("failed to adjust food item %s: %w", id, err)
	}

	if _, err := r.GetByID(ctx, id); err != nil {
		return food.FoodItem{}, err
	}
	return food.FoodItem{}, food.ErrInsufficientStock
}

const foodTransactionColumns = `ft.id, ft.employee_id, ft.food_item_id, ft.type, ft.quantity, ft.notes, ft.created_at`

type foodTransactionRow struct {
	ID           string    `db:"id"`
	EmployeeID   string    `db:"employee_id"`
	FoodItemID   string    `db:"food_item_id"`
	Type         string    `db:"type"`
	Quantity     int       `db:"quantity"`
	Notes        *string   `db:"notes"`
	CreatedAt    time.Time `db:"created_at"`
	EmployeeName *string   `db:"employee_name"`
	FoodItemName *string   `db:"food_item_name"`
}

func (r foodTransactionRow) toEntity() food.FoodTransaction {
	return food.FoodTransaction{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		FoodItemID:   r.FoodItemID,
		Type:         food.TransactionType(r.Type),
		Quantity:     r.Quantity,
		Notes:        r.Notes,
		CreatedAt:    r.CreatedAt,
		EmployeeName: r.EmployeeName,
		FoodItemName: r.FoodItemName,
	}
}

type foodTransactionRepositoryImpl struct {
	db *database.DB
}

func NewFoodTransactionRepository(db *database.DB) food.FoodTransactionRepository {
	return &foodTransactionRepositoryImpl{db: db}
}

func (r *foodTransactionRepositoryImpl) Create(ctx context.Context, tx food.FoodTransaction) (food.FoodTransaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO food_transactions AS ft (employee_id, food_item_id, type, quantity, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + foodTransactionColumns

	rows, err := q.Query(ctx, query, tx.EmployeeID, tx.FoodItemID, string(tx.Type), tx.Quantity, tx.Notes)
	if err != nil {
		return food.FoodTransaction{}, fmt.Errorf("failed to insert food transaction: %w", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByNameLax[foodTransactionRow])
	if err != nil {
		return food.FoodTransaction{}, fmt.Errorf("failed to insert food transaction: %w", err)
	}
	return row.toEntity(), nil
}

const foodTransactionSelect = `SELECT ` + foodTransactionColumns + `, e.name AS employee_name, fi.name AS food_item_name
	FROM food_transactions ft
	JOIN employees e ON e.id = ft.employee_id
	JOIN food_items fi ON fi.id = ft.food_item_id`

func (r *foodTransactionRepositoryImpl) GetByID(ctx context.Context, id string) (food.FoodTransaction, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, foodTransactionSelect+` WHERE ft.id = $1`, id)
	if err != nil {
		return food.FoodTransaction{}, fmt.Errorf("failed to get food transaction %s: %w", id, err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByNameLax[foodTransactionRow])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return food.FoodTransaction{}, food.ErrFoodTransactionNotFound
		}
		return food.FoodTransaction{}, fmt.Errorf("failed to get food transaction %s: %w", id, err)
	}
	return row.toEntity(), nil
}

func (r *foodTransactionRepositoryImpl) List(ctx context.Context, filter food.FoodTransactionFilter) ([]food.FoodTransaction, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []any
	argIndex := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("ft.employee_id = $%d", argIndex))
		args = append(args, *filter.EmployeeID)
		argIndex++
	}
	if filter.FoodItemID != nil {
		conditions = append(conditions, fmt.Sprintf("ft.food_item_id = $%d", argIndex))
		args = append(args, *filter.FoodItemID)
		argIndex++
	}
	if filter.Type != nil {
		conditions = append(conditions, fmt.Sprintf("ft.type = $%d", argIndex))
		args = append(args, string(*filter.Type))
		argIndex++
	}

	query := foodTransactionSelect
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY ft.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list food transactions: %w", err)
	}
	collected, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[foodTransactionRow])
	if err != nil {
		return nil, fmt.Errorf("failed to scan food transactions: %w", err)
	}
	txs := make([]food.FoodTransaction, len(collected))
	for i, row := range collected {
		txs[i] = row.toEntity()
	}
	return txs, nil
}
