package workhours

import "errors"

var (
	// Check-in errors
	ErrActiveSessionExists   = errors.New("employee already has an active session; check out first")
	ErrAlreadyCheckedInToday = errors.New("employee has already checked in today")

	// Check-out errors
	ErrNoActiveSession = errors.New("no active session found")

	// Time validation errors
	ErrCheckOutNotAfterCheckIn = errors.New("check-out time must be after check-in time")
	ErrFutureTimestamp         = errors.New("check-in and check-out times cannot be in the future")
	ErrDateMismatch            = errors.New("date must be the calendar day of the check-in time")

	// General errors
	ErrWorkingHoursNotFound = errors.New("working hours record not found")
	ErrInvalidImportFile    = errors.New("import file could not be read")
)
