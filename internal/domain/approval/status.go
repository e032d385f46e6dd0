package approval

import (
	"errors"
	"fmt"
)

// Status is the lifecycle state shared by leave and resignation requests.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

var (
	ErrInvalidStatus           = errors.New("invalid request status")
	ErrRequestAlreadyProcessed = errors.New("request already processed")
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is allowed.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// CanTransition allows pending -> approved and pending -> rejected only.
func CanTransition(from, to Status) error {
	if !to.IsValid() || to == StatusPending {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, to)
	}
	if from.IsTerminal() {
		return fmt.Errorf("%w: status is %s", ErrRequestAlreadyProcessed, from)
	}
	if from != StatusPending {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, from)
	}
	return nil
}
