package workhours

import (
	"time"

	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/validator"
)

type CheckInRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *CheckInRequest) Validate() error {
	if !validator.IsValidUUID(r.EmployeeID) {
		return validator.ValidationErrors{{Field: "employee_id", Message: "employee_id must be a valid id"}}
	}
	return nil
}

type CheckOutRequest struct {
	EmployeeID string `json:"employee_id"`
	// RecordID targets a specific session; empty means the employee's open session.
	RecordID string `json:"record_id,omitempty"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors
	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id must be a valid id"})
	}
	if r.RecordID != "" && !validator.IsValidUUID(r.RecordID) {
		errs = append(errs, validator.ValidationError{Field: "record_id", Message: "record_id must be a valid id"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CreateWorkingHoursRequest is a manual entry. Timestamps are "YYYY-MM-DD HH:mm:ss" in the
// configured timezone, or RFC3339.
type CreateWorkingHoursRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	CheckIn    string  `json:"check_in"`
	CheckOut   *string `json:"check_out,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

func (r *CreateWorkingHoursRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id must be a valid id"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}
	if _, ok := validator.ParseDateTimeIn(r.CheckIn, time.UTC); !ok {
		errs = append(errs, validator.ValidationError{Field: "check_in", Message: "check_in must be YYYY-MM-DD HH:mm:ss"})
	}
	if r.CheckOut != nil && *r.CheckOut != "" {
		if _, ok := validator.ParseDateTimeIn(*r.CheckOut, time.UTC); !ok {
			errs = append(errs, validator.ValidationError{Field: "check_out", Message: "check_out must be YYYY-MM-DD HH:mm:ss"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateWorkingHoursRequest struct {
	ID       string  `json:"-"`
	Date     *string `json:"date,omitempty"`
	CheckIn  *string `json:"check_in,omitempty"`
	CheckOut *string `json:"check_out,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

func (r *UpdateWorkingHoursRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "invalid working hours id"})
	}
	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
		}
	}
	if r.CheckIn != nil {
		if _, ok := validator.ParseDateTimeIn(*r.CheckIn, time.UTC); !ok {
			errs = append(errs, validator.ValidationError{Field: "check_in", Message: "check_in must be YYYY-MM-DD HH:mm:ss"})
		}
	}
	if r.CheckOut != nil && *r.CheckOut != "" {
		if _, ok := validator.ParseDateTimeIn(*r.CheckOut, time.UTC); !ok {
			errs = append(errs, validator.ValidationError{Field: "check_out", Message: "check_out must be YYYY-MM-DD HH:mm:ss"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkingHoursFilter struct {
	EmployeeID *string
	Month      *string // YYYY-MM
	OpenOnly   bool
}

func (f *WorkingHoursFilter) Validate() error {
	var errs validator.ValidationErrors
	if f.EmployeeID != nil && !validator.IsValidUUID(*f.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id must be a valid id"})
	}
	if f.Month != nil && !validator.IsValidMonth(*f.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be in YYYY-MM format"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkingHoursResponse struct {
	ID               string   `json:"id"`
	EmployeeID       string   `json:"employee_id"`
	EmployeeName     *string  `json:"employee_name,omitempty"`
	EmployeePosition *string  `json:"employee_position,omitempty"`
	Date             string   `json:"date"`
	CheckIn          string   `json:"check_in"`
	CheckOut         *string  `json:"check_out"`
	TotalHours       *float64 `json:"total_hours"`
	Notes            *string  `json:"notes,omitempty"`
	CreatedAt        string   `json:"created_at"`
	UpdatedAt        string   `json:"updated_at"`
}

// NewWorkingHoursResponse is the single entity-to-response mapping for working hours.
// Timestamps are ISO-8601 UTC.
func NewWorkingHoursResponse(wh WorkingHours) WorkingHoursResponse {
	var checkOut *string
	if wh.CheckOut != nil {
		s := wh.CheckOut.UTC().Format(time.RFC3339)
		checkOut = &s
	}
	var total *float64
	if wh.TotalHours != nil {
		h := RoundHours(*wh.TotalHours)
		total = &h
	}

	return WorkingHoursResponse{
		ID:               wh.ID,
		EmployeeID:       wh.EmployeeID,
		EmployeeName:     wh.EmployeeName,
		EmployeePosition: wh.EmployeePosition,
		Date:             wh.Date,
		CheckIn:          wh.CheckIn.UTC().Format(time.RFC3339),
		CheckOut:         checkOut,
		TotalHours:       total,
		Notes:            wh.Notes,
		CreatedAt:        wh.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:        wh.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// Spreadsheet columns shared by import and export.
const (
	ColumnName       = "Name"
	ColumnPosition   = "Position"
	ColumnDate       = "Date (YYYY-MM-DD)"
	ColumnCheckIn    = "Check In (YYYY-MM-DD HH:mm:ss)"
	ColumnCheckOut   = "Check Out (YYYY-MM-DD HH:mm:ss)"
	ColumnNotes      = "Notes"
	ColumnTotalHours = "Total Hours"
)
