package wage

import "errors"

var (
	ErrUnknownPosition  = errors.New("no wage rate for position")
	ErrAlreadyWithdrawn = errors.New("wage already withdrawn for this month")
)
