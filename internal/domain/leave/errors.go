package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrEndBeforeStart       = errors.New("end date must not be before start date")
)
