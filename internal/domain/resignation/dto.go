package resignation

import (
	"time"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/approval"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/validator"
)

type CreateResignationRequest struct {
	EmployeeID  string `json:"employee_id"`
	Passport    string `json:"passport"`
	ICReason    string `json:"ic_reason"`
	OOCReason   string `json:"ooc_reason"`
	RequestDate string `json:"request_date"`
}

func (r *CreateResignationRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id must be a valid id"})
	}
	if validator.IsEmpty(r.Passport) {
		errs = append(errs, validator.ValidationError{Field: "passport", Message: "passport is required"})
	}
	if validator.IsEmpty(r.ICReason) {
		errs = append(errs, validator.ValidationError{Field: "ic_reason", Message: "ic_reason is required"})
	}
	if validator.IsEmpty(r.OOCReason) {
		errs = append(errs, validator.ValidationError{Field: "ooc_reason", Message: "ooc_reason is required"})
	}
	if _, ok := validator.IsValidDate(r.RequestDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "request_date", Message: "request_date must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	ID     string          `json:"-"`
	Status approval.Status `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors
	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "invalid resignation request id"})
	}
	if r.Status != approval.StatusApproved && r.Status != approval.StatusRejected {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be approved or rejected"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ResignationRequestFilter struct {
	EmployeeID *string
	Status     *approval.Status
}

func (f *ResignationRequestFilter) Validate() error {
	var errs validator.ValidationErrors
	if f.EmployeeID != nil && !validator.IsValidUUID(*f.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id must be a valid id"})
	}
	if f.Status != nil && !f.Status.IsValid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be pending, approved or rejected"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ResignationRequestResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Passport     string  `json:"passport"`
	ICReason     string  `json:"ic_reason"`
	OOCReason    string  `json:"ooc_reason"`
	RequestDate  string  `json:"request_date"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

func NewResignationRequestResponse(r ResignationRequest) ResignationRequestResponse {
	return ResignationRequestResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		Passport:     r.Passport,
		ICReason:     r.ICReason,
		OOCReason:    r.OOCReason,
		RequestDate:  r.RequestDate.Format(validator.DateLayout),
		Status:       string(r.Status),
		CreatedAt:    r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    r.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
