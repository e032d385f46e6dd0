package auth

import "github.com/cmlabs-hris/workforce-backend-go/internal/pkg/validator"

type AdminLoginRequest struct {
	Password string `json:"password"`
}

func (r *AdminLoginRequest) Validate() error {
	if validator.IsEmpty(r.Password) {
		return validator.ValidationErrors{{Field: "password", Message: "password is required"}}
	}
	return nil
}

type EmployeeLoginRequest struct {
	EmployeeID string `json:"employee_id"`
	Pin        string `json:"pin"`
}

func (r *EmployeeLoginRequest) Validate() error {
	var errs validator.ValidationErrors

	// Employee ID
	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid id",
		})
	}

	// PIN
	if validator.IsEmpty(r.Pin) {
		errs = append(errs, validator.ValidationError{
			Field:   "pin",
			Message: "pin is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TokenResponse struct {
	AccessToken string  `json:"access_token"`
	TokenType   string  `json:"token_type"`
	ExpiresAt   int64   `json:"expires_at"`
	Role        string  `json:"role"`
	EmployeeID  *string `json:"employee_id,omitempty"`
}
