package auth

import "context"

// AdminRepository verifies the shared admin password inside the store.
type AdminRepository interface {
	VerifyPassword(ctx context.Context, password string) (bool, error)
}
