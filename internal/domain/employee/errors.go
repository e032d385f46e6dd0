package employee

import "errors"

var (
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrEmployeeExists       = errors.New("an employee with this name and position already exists")
	ErrInvalidPosition      = errors.New("position is not recognized")
	ErrFutureDateNotAllowed = errors.New("date cannot be in the future")
)
