package notification

import (
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/approval"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/notification"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/webhook"
)

const clockLayout = "15:04:05"

func checkInEmbed(e notification.CheckInEvent) webhook.Embed {
	return webhook.Embed{
		Title: "Check In",
		Color: webhook.ColorGreen,
		Fields: []webhook.Field{
			{Name: "Employee", Value: e.EmployeeName, Inline: true},
			{Name: "Position", Value: e.Position, Inline: true},
			{Name: "Date", Value: e.Date, Inline: false},
			{Name: "Check In", Value: e.CheckIn.Format(clockLayout), Inline: true},
		},
	}
}

func checkOutEmbed(e notification.CheckOutEvent) webhook.Embed {
	return webhook.Embed{
		Title: "Check Out",
		Color: webhook.ColorBlue,
		Fields: []webhook.Field{
			{Name: "Employee", Value: e.EmployeeName, Inline: true},
			{Name: "Position", Value: e.Position, Inline: true},
			{Name: "Date", Value: e.Date, Inline: false},
			{Name: "Check In", Value: e.CheckIn.Format(clockLayout), Inline: true},
			{Name: "Check Out", Value: e.CheckOut.Format(clockLayout), Inline: true},
			{Name: "Total Hours", Value: strconv.FormatFloat(e.TotalHours, 'f', 2, 64), Inline: true},
		},
	}
}

func statusColor(status string) int {
	switch approval.Status(status) {
	case approval.StatusApproved:
		return webhook.ColorGreen
	case approval.StatusRejected:
		return webhook.ColorRed
	}
	return webhook.ColorGrey
}

// statusTitle builds a new Caser per call; a Caser is not safe for concurrent use.
func statusTitle(status string) string {
	return cases.Title(language.English).String(status)
}

func leaveEmbed(e notification.LeaveStatusEvent) webhook.Embed {
	return webhook.Embed{
		Title: "Leave Request " + statusTitle(e.Status),
		Color: statusColor(e.Status),
		Fields: []webhook.Field{
			{Name: "Employee", Value: e.EmployeeName, Inline: true},
			{Name: "Status", Value: e.Status, Inline: true},
			{Name: "Period", Value: e.StartDate + " to " + e.EndDate, Inline: false},
			{Name: "Reason", Value: e.Reason, Inline: false},
			{Name: "Request ID", Value: e.RequestID, Inline: false},
		},
	}
}

func resignationEmbed(e notification.ResignationStatusEvent) webhook.Embed {
	return webhook.Embed{
		Title: "Resignation Request " + statusTitle(e.Status),
		Color: statusColor(e.Status),
		Fields: []webhook.Field{
			{Name: "Employee", Value: e.EmployeeName, Inline: true},
			{Name: "Status", Value: e.Status, Inline: true},
			{Name: "Passport", Value: e.Passport, Inline: true},
			{Name: "Request Date", Value: e.RequestDate, Inline: true},
			{Name: "Request ID", Value: e.RequestID, Inline: false},
		},
	}
}
