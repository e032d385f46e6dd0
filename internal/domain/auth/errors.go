package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPinNotSet          = errors.New("portal pin has not been set for this employee")

	ErrInvalidToken     = errors.New("invalid or missing access token")
	ErrAdminRequired    = errors.New("admin access required")
	ErrEmployeeRequired = errors.New("employee access required")
)
