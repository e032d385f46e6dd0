package notification

import "time"

// Kind selects the webhook endpoint an event is delivered to.
type Kind string

const (
	KindCheckIn     Kind = "check_in"
	KindCheckOut    Kind = "check_out"
	KindLeave       Kind = "leave_request"
	KindResignation Kind = "resignation_request"
)

type CheckInEvent struct {
	EmployeeName string
	Position     string
	Date         string
	CheckIn      time.Time
}

type CheckOutEvent struct {
	EmployeeName string
	Position     string
	Date         string
	CheckIn      time.Time
	CheckOut     time.Time
	TotalHours   float64
}

type LeaveStatusEvent struct {
	RequestID    string
	EmployeeName string
	StartDate    string
	EndDate      string
	Reason       string
	Status       string
}

type ResignationStatusEvent struct {
	RequestID    string
	EmployeeName string
	Passport     string
	RequestDate  string
	Status       string
}
