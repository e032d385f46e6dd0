package employee

import (
	"regexp"
	"strings"
	"time"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/workhours"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/validator"
)

var pinRegex = regexp.MustCompile(`^\d{4,8}$`)

type CreateEmployeeRequest struct {
	Name     string  `json:"name"`
	Position string  `json:"position"`
	JoinDate string  `json:"join_date"`
	Pin      *string `json:"pin,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Name = strings.TrimSpace(r.Name)
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !Position(r.Position).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position must be one of: " + strings.Join(PositionNames(), ", "),
		})
	}

	if _, ok := validator.IsValidDate(r.JoinDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "join_date",
			Message: "join_date must be in YYYY-MM-DD format",
		})
	}

	if r.Pin != nil && !pinRegex.MatchString(*r.Pin) {
		errs = append(errs, validator.ValidationError{
			Field:   "pin",
			Message: "pin must be 4 to 8 digits",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID       string  `json:"-"`
	Name     *string `json:"name,omitempty"`
	Position *string `json:"position,omitempty"`
	JoinDate *string `json:"join_date,omitempty"`
	Pin      *string `json:"pin,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "invalid employee id"})
	}
	if r.Name != nil {
		trimmed := strings.TrimSpace(*r.Name)
		r.Name = &trimmed
		if trimmed == "" {
			errs = append(errs, validator.ValidationError{Field: "name", Message: "name cannot be empty"})
		}
	}
	if r.Position != nil && !Position(*r.Position).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position must be one of: " + strings.Join(PositionNames(), ", "),
		})
	}
	if r.JoinDate != nil {
		if _, ok := validator.IsValidDate(*r.JoinDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "join_date", Message: "join_date must be in YYYY-MM-DD format"})
		}
	}
	if r.Pin != nil && !pinRegex.MatchString(*r.Pin) {
		errs = append(errs, validator.ValidationError{Field: "pin", Message: "pin must be 4 to 8 digits"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeFilter struct {
	Name     *string
	Position *string
}

type EmployeeResponse struct {
	ID           string                           `json:"id"`
	Name         string                           `json:"name"`
	Position     string                           `json:"position"`
	JoinDate     string                           `json:"join_date"`
	TotalHours   float64                          `json:"total_hours"`
	HasPin       bool                             `json:"has_pin"`
	WorkingHours []workhours.WorkingHoursResponse `json:"working_hours"`
	Warnings     []Warning                        `json:"warnings"`
	CreatedAt    string                           `json:"created_at"`
	UpdatedAt    string                           `json:"updated_at"`
}

// NewEmployeeResponse is the single entity-to-response mapping for employees.
func NewEmployeeResponse(emp Employee) EmployeeResponse {
	hours := make([]workhours.WorkingHoursResponse, 0, len(emp.WorkingHours))
	for _, wh := range emp.WorkingHours {
		hours = append(hours, workhours.NewWorkingHoursResponse(wh))
	}
	warnings := emp.Warnings
	if warnings == nil {
		warnings = []Warning{}
	}

	return EmployeeResponse{
		ID:           emp.ID,
		Name:         emp.Name,
		Position:     string(emp.Position),
		JoinDate:     emp.JoinDate.Format(validator.DateLayout),
		TotalHours:   workhours.TotalHours(emp.WorkingHours),
		HasPin:       emp.PinHash != nil,
		WorkingHours: hours,
		Warnings:     warnings,
		CreatedAt:    emp.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    emp.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
