package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/database"
)

type adminRepositoryImpl struct {
	db *database.DB
}

func NewAdminRepository(db *database.DB) auth.AdminRepository {
	return &adminRepositoryImpl{db: db}
}

// VerifyPassword delegates to the verify_admin_password stored procedure.
func (r *adminRepositoryImpl) VerifyPassword(ctx context.Context, password string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var ok bool
	if err := q.QueryRow(ctx, `SELECT verify_admin_password($1)`, password).Scan(&ok); err != nil {
		return false, fmt.Errorf("failed to verify admin password: %w", err)
	}
	return ok, nil
}
