package report

import (
	"strings"

	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/spreadsheet"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/validator"
)

// Kind names an exportable collection.
type Kind string

const (
	KindEmployees           Kind = "employees"
	KindWorkingHours        Kind = "working_hours"
	KindLeaveRequests       Kind = "leave_requests"
	KindResignationRequests Kind = "resignation_requests"
	KindFoodItems           Kind = "food_items"
	KindFoodTransactions    Kind = "food_transactions"
	KindWages               Kind = "wages"
)

var Kinds = []Kind{
	KindEmployees,
	KindWorkingHours,
	KindLeaveRequests,
	KindResignationRequests,
	KindFoodItems,
	KindFoodTransactions,
	KindWages,
}

func (k Kind) IsValid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

type ExportRequest struct {
	Kind   Kind
	Format string
	// Month narrows working_hours and selects the wages period (YYYY-MM).
	// Wages default to the current month.
	Month *string
}

func (r *ExportRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.Kind.IsValid() {
		names := make([]string, len(Kinds))
		for i, k := range Kinds {
			names[i] = string(k)
		}
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: " + strings.Join(names, ", "),
		})
	}

	if _, err := spreadsheet.ParseExportFormat(r.Format); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "format",
			Message: "format must be csv or xlsx",
		})
	}

	if r.Month != nil && !validator.IsValidMonth(*r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ExportFile is a rendered spreadsheet ready to be sent as an attachment.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}
