package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/workforce-backend-go/internal/config"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/approval"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/notification"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/webhook"
	leavesvc "github.com/cmlabs-hris/workforce-backend-go/internal/service/leave"
	"github.com/cmlabs-hris/workforce-backend-go/internal/testfixtures"
)

type recorder struct {
	mu       sync.Mutex
	payloads []webhook.Payload
	status   int
}

func (r *recorder) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		var p webhook.Payload
		assert.NoError(t, json.NewDecoder(req.Body).Decode(&p))
		r.mu.Lock()
		r.payloads = append(r.payloads, p)
		status := r.status
		r.mu.Unlock()
		if status == 0 {
			status = http.StatusNoContent
		}
		w.WriteHeader(status)
	}
}

func (r *recorder) all() []webhook.Payload {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]webhook.Payload(nil), r.payloads...)
}

func fieldValue(e webhook.Embed, name string) string {
	for _, f := range e.Fields {
		if f.Name == name {
			return f.Value
		}
	}
	return ""
}

func TestLeaveApprovalSendsOneWebhook(t *testing.T) {
	rec := &recorder{}
	srv := httptest.NewServer(rec.handler(t))
	defer srv.Close()

	notifier := NewWebhookNotifier(config.WebhookConfig{LeaveURL: srv.URL}, Config{})
	store := testfixtures.NewStore()
	svc := leavesvc.NewLeaveService(store.LeaveRequests(), store.Employees(), notifier)
	ctx := context.Background()
	emp := store.MustEmployee("Budi", employee.PositionKaryawan)

	request, err := svc.Create(ctx, leave.CreateLeaveRequest{
		EmployeeID: emp.ID,
		StartDate:  "2024-04-01",
		EndDate:    "2024-04-03",
		Reason:     "Family event",
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, leave.UpdateStatusRequest{ID: request.ID, Status: approval.StatusApproved})
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, leave.UpdateStatusRequest{ID: request.ID, Status: approval.StatusRejected})
	require.Error(t, err)

	notifier.Close()

	payloads := rec.all()
	require.Len(t, payloads, 1)
	require.Len(t, payloads[0].Embeds, 1)
	embed := payloads[0].Embeds[0]
	assert.Equal(t, "approved", fieldValue(embed, "Status"))
	assert.Equal(t, "2024-04-01 to 2024-04-03", fieldValue(embed, "Period"))
	assert.Equal(t, "Budi", fieldValue(embed, "Employee"))
	assert.Equal(t, webhook.ColorGreen, embed.Color)
	assert.NotEmpty(t, embed.Timestamp)
}

func TestEventsRouteToTheirOwnURL(t *testing.T) {
	checkIns := &recorder{}
	checkInSrv := httptest.NewServer(checkIns.handler(t))
	defer checkInSrv.Close()
	checkOuts := &recorder{}
	checkOutSrv := httptest.NewServer(checkOuts.handler(t))
	defer checkOutSrv.Close()

	notifier := NewWebhookNotifier(config.WebhookConfig{
		CheckInURL:  checkInSrv.URL,
		CheckOutURL: checkOutSrv.URL,
	}, Config{WorkerCount: 1})

	in := time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)
	notifier.NotifyCheckIn(notification.CheckInEvent{EmployeeName: "Budi", Position: "Karyawan", Date: "2024-03-15", CheckIn: in})
	notifier.NotifyCheckOut(notification.CheckOutEvent{
		EmployeeName: "Budi",
		Position:     "Karyawan",
		Date:         "2024-03-15",
		CheckIn:      in,
		CheckOut:     in.Add(7*time.Hour + 45*time.Minute),
		TotalHours:   7.75,
	})
	// Resignation URL is not configured.
	notifier.NotifyResignationStatus(notification.ResignationStatusEvent{Status: "approved"})
	notifier.Close()

	require.Len(t, checkIns.all(), 1)
	assert.Equal(t, "08:00:00", fieldValue(checkIns.all()[0].Embeds[0], "Check In"))

	require.Len(t, checkOuts.all(), 1)
	out := checkOuts.all()[0].Embeds[0]
	assert.Equal(t, "7.75", fieldValue(out, "Total Hours"))
	assert.Equal(t, "15:45:00", fieldValue(out, "Check Out"))
}

func TestFailedDeliveryIsNotRetried(t *testing.T) {
	rec := &recorder{status: http.StatusInternalServerError}
	srv := httptest.NewServer(rec.handler(t))
	defer srv.Close()

	notifier := NewWebhookNotifier(config.WebhookConfig{ResignationURL: srv.URL}, Config{})
	notifier.NotifyResignationStatus(notification.ResignationStatusEvent{EmployeeName: "Budi", Status: "rejected"})
	notifier.Close()

	assert.Len(t, rec.all(), 1)
}

func TestNotifyAfterCloseIsDropped(t *testing.T) {
	rec := &recorder{}
	srv := httptest.NewServer(rec.handler(t))
	defer srv.Close()

	notifier := NewWebhookNotifier(config.WebhookConfig{LeaveURL: srv.URL}, Config{})
	notifier.Close()
	notifier.Close()
	notifier.NotifyLeaveStatus(notification.LeaveStatusEvent{Status: "approved"})

	assert.Empty(t, rec.all())
}

func TestOverflowStillDelivers(t *testing.T) {
	rec := &recorder{}
	srv := httptest.NewServer(rec.handler(t))
	defer srv.Close()

	notifier := NewWebhookNotifier(config.WebhookConfig{LeaveURL: srv.URL}, Config{WorkerCount: 1, QueueSize: 1})
	for i := 0; i < 5; i++ {
		notifier.NotifyLeaveStatus(notification.LeaveStatusEvent{Status: "approved"})
	}
	notifier.Close()

	assert.Len(t, rec.all(), 5)
}

func TestLeaveEmbedTitle(t *testing.T) {
	embed := leaveEmbed(notification.LeaveStatusEvent{Status: "rejected"})
	assert.Equal(t, "Leave Request Rejected", embed.Title)
	assert.Equal(t, webhook.ColorRed, embed.Color)
}
