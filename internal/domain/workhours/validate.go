package workhours

import (
	"time"

	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/validator"
)

// CheckInConflict applies the check-in rules to the employee's existing records:
// no open session may exist and no record may share the calendar date.
func CheckInConflict(existing []WorkingHours, date string) error {
	for _, wh := range existing {
		if wh.IsOpen() {
			return ErrActiveSessionExists
		}
	}
	for _, wh := range existing {
		if wh.Date == date {
			return ErrAlreadyCheckedInToday
		}
	}
	return nil
}

// CheckOutAllowed verifies that record is an open session owned by employeeID.
func CheckOutAllowed(record *WorkingHours, employeeID string) error {
	if record == nil || record.EmployeeID != employeeID || !record.IsOpen() {
		return ErrNoActiveSession
	}
	return nil
}

// ValidateTimes checks a check-in/check-out pair against the clock.
// A nil checkOut only validates the check-in.
func ValidateTimes(checkIn time.Time, checkOut *time.Time, now time.Time) error {
	if checkIn.After(now) {
		return ErrFutureTimestamp
	}
	if checkOut == nil {
		return nil
	}
	if !checkOut.After(checkIn) {
		return ErrCheckOutNotAfterCheckIn
	}
	if checkOut.After(now) {
		return ErrFutureTimestamp
	}
	return nil
}

// ValidateDate requires date to be the calendar day of checkIn in loc.
func ValidateDate(date string, checkIn time.Time, loc *time.Location) error {
	if checkIn.In(loc).Format(validator.DateLayout) != date {
		return ErrDateMismatch
	}
	return nil
}
