package leave

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/approval"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/workforce-backend-go/internal/testfixtures"
)

func newTestService(t *testing.T) (leave.LeaveService, *testfixtures.Store, *testfixtures.RecordingNotifier) {
	t.Helper()
	store := testfixtures.NewStore()
	notifier := &testfixtures.RecordingNotifier{}
	return NewLeaveService(store.LeaveRequests(), store.Employees(), notifier), store, notifier
}

func createPending(t *testing.T, svc leave.LeaveService, employeeID string) leave.LeaveRequestResponse {
	t.Helper()
	resp, err := svc.Create(context.Background(), leave.CreateLeaveRequest{
		EmployeeID: employeeID,
		StartDate:  "2024-04-01",
		EndDate:    "2024-04-03",
		Reason:     "Family event",
	})
	require.NoError(t, err)
	return resp
}

func TestCreate_StartsPending(t *testing.T) {
	svc, store, _ := newTestService(t)
	emp := store.MustEmployee("Budi", employee.PositionKaryawan)

	resp := createPending(t, svc, emp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, 3, resp.Days)
	require.NotNil(t, resp.EmployeeName)
	assert.Equal(t, "Budi", *resp.EmployeeName)
}

func TestCreate_Validation(t *testing.T) {
	svc, store, _ := newTestService(t)
	emp := store.MustEmployee("Budi", employee.PositionKaryawan)

	_, err := svc.Create(context.Background(), leave.CreateLeaveRequest{
		EmployeeID: emp.ID,
		StartDate:  "2024-04-03",
		EndDate:    "2024-04-01",
		Reason:     " ",
	})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, leave.ErrEndBeforeStart.Error(), verrs.ToMap()["end_date"])
	assert.Contains(t, verrs.ToMap(), "reason")

	_, err = svc.Create(context.Background(), leave.CreateLeaveRequest{
		EmployeeID: emp.ID,
		StartDate:  "2024-04-01",
		EndDate:    "2024-04-01",
		Reason:     "One day",
	})
	assert.NoError(t, err)
}

func TestUpdateStatus_NotifiesOnce(t *testing.T) {
	svc, store, notifier := newTestService(t)
	ctx := context.Background()
	emp := store.MustEmployee("Budi", employee.PositionKaryawan)
	request := createPending(t, svc, emp.ID)

	updated, err := svc.UpdateStatus(ctx, leave.UpdateStatusRequest{ID: request.ID, Status: approval.StatusApproved})
	require.NoError(t, err)
	assert.Equal(t, "approved", updated.Status)

	require.Len(t, notifier.Leaves, 1)
	event := notifier.Leaves[0]
	assert.Equal(t, "approved", event.Status)
	assert.Equal(t, "Budi", event.EmployeeName)
	assert.Equal(t, "2024-04-01", event.StartDate)
	assert.Equal(t, "2024-04-03", event.EndDate)
}

func TestUpdateStatus_TerminalStatesAreFinal(t *testing.T) {
	svc, store, notifier := newTestService(t)
	ctx := context.Background()
	emp := store.MustEmployee("Budi", employee.PositionKaryawan)
	request := createPending(t, svc, emp.ID)

	_, err := svc.UpdateStatus(ctx, leave.UpdateStatusRequest{ID: request.ID, Status: approval.StatusRejected})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, leave.UpdateStatusRequest{ID: request.ID, Status: approval.StatusApproved})
	assert.ErrorIs(t, err, approval.ErrRequestAlreadyProcessed)
	assert.Len(t, notifier.Leaves, 1)

	got, err := svc.Get(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, "rejected", got.Status)
}

func TestUpdateStatus_RejectsPendingTarget(t *testing.T) {
	svc, store, notifier := newTestService(t)
	emp := store.MustEmployee("Budi", employee.PositionKaryawan)
	request := createPending(t, svc, emp.ID)

	_, err := svc.UpdateStatus(context.Background(), leave.UpdateStatusRequest{ID: request.ID, Status: approval.StatusPending})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
	assert.Empty(t, notifier.Leaves)
}

func TestListFiltersAndDelete(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()
	budi := store.MustEmployee("Budi", employee.PositionKaryawan)
	sari := store.MustEmployee("Sari", employee.PositionSupervisor)
	first := createPending(t, svc, budi.ID)
	createPending(t, svc, sari.ID)

	_, err := svc.UpdateStatus(ctx, leave.UpdateStatusRequest{ID: first.ID, Status: approval.StatusApproved})
	require.NoError(t, err)

	pending := approval.StatusPending
	list, err := svc.List(ctx, leave.LeaveRequestFilter{Status: &pending})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, sari.ID, list[0].EmployeeID)

	list, err = svc.List(ctx, leave.LeaveRequestFilter{EmployeeID: &budi.ID})
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, svc.Delete(ctx, first.ID))
	_, err = svc.Get(ctx, first.ID)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}
