package auth

import "context"

type AuthService interface {
	AdminLogin(ctx context.Context, req AdminLoginRequest) (TokenResponse, error)
	EmployeeLogin(ctx context.Context, req EmployeeLoginRequest) (TokenResponse, error)
}
