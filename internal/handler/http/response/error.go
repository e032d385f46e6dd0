package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/approval"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/food"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/resignation"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/wage"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/workhours"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid credentials")
	case errors.Is(err, auth.ErrPinNotSet):
		Unauthorized(w, "Portal PIN has not been set")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrAdminRequired):
		Forbidden(w, "Admin access required")
	case errors.Is(err, auth.ErrEmployeeRequired):
		Forbidden(w, "Employee access required")

	// Employee
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeExists):
		Conflict(w, err.Error())
	case errors.Is(err, employee.ErrFutureDateNotAllowed),
		errors.Is(err, employee.ErrInvalidPosition):
		BadRequest(w, err.Error(), nil)

	// Time clock
	case errors.Is(err, workhours.ErrActiveSessionExists),
		errors.Is(err, workhours.ErrAlreadyCheckedInToday):
		Conflict(w, err.Error())
	case errors.Is(err, workhours.ErrNoActiveSession),
		errors.Is(err, workhours.ErrCheckOutNotAfterCheckIn),
		errors.Is(err, workhours.ErrFutureTimestamp),
		errors.Is(err, workhours.ErrDateMismatch),
		errors.Is(err, workhours.ErrInvalidImportFile):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, workhours.ErrWorkingHoursNotFound):
		NotFound(w, "Working hours record not found")

	// Requests
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, resignation.ErrResignationRequestNotFound):
		NotFound(w, "Resignation request not found")
	case errors.Is(err, leave.ErrEndBeforeStart):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, approval.ErrRequestAlreadyProcessed):
		Conflict(w, "Request already processed")
	case errors.Is(err, approval.ErrInvalidStatus):
		BadRequest(w, err.Error(), nil)

	// Food bank
	case errors.Is(err, food.ErrFoodItemNotFound):
		NotFound(w, "Food item not found")
	case errors.Is(err, food.ErrFoodTransactionNotFound):
		NotFound(w, "Food transaction not found")
	case errors.Is(err, food.ErrInsufficientStock):
		Conflict(w, err.Error())

	// Wages
	case errors.Is(err, wage.ErrAlreadyWithdrawn):
		Conflict(w, err.Error())
	case errors.Is(err, wage.ErrUnknownPosition):
		BadRequest(w, err.Error(), nil)

	// Exports
	case errors.Is(err, report.ErrUnknownKind):
		NotFound(w, "Unknown export type")

	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
