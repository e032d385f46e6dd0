package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	adminRepo    auth.AdminRepository
	employeeRepo employee.EmployeeRepository
	jwtService   jwt.Service
}

func NewAuthService(adminRepo auth.AdminRepository, employeeRepo employee.EmployeeRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		adminRepo:    adminRepo,
		employeeRepo: employeeRepo,
		jwtService:   jwtService,
	}
}

// AdminLogin implements auth.AuthService. The password is checked by the
// store's verify_admin_password procedure.
func (a *AuthServiceImpl) AdminLogin(ctx context.Context, req auth.AdminLoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	ok, err := a.adminRepo.VerifyPassword(ctx, req.Password)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to verify admin password: %w", err)
	}
	if !ok {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issue(jwt.RoleAdmin, nil)
}

// EmployeeLogin implements auth.AuthService.
func (a *AuthServiceImpl) EmployeeLogin(ctx context.Context, req auth.EmployeeLoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	emp, err := a.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if emp.PinHash == nil {
		return auth.TokenResponse{}, auth.ErrPinNotSet
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*emp.PinHash), []byte(req.Pin)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issue(jwt.RoleEmployee, &emp.ID)
}

func (a *AuthServiceImpl) issue(role jwt.Role, employeeID *string) (auth.TokenResponse, error) {
	token, expiresAt, err := a.jwtService.GenerateAccessToken(role, employeeID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	return auth.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		Role:        string(role),
		EmployeeID:  employeeID,
	}, nil
}
