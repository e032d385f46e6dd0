package resignation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/approval"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/resignation"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/workforce-backend-go/internal/testfixtures"
)

func TestResignationLifecycle(t *testing.T) {
	store := testfixtures.NewStore()
	notifier := &testfixtures.RecordingNotifier{}
	svc := NewResignationService(store.ResignationRequests(), store.Employees(), notifier)
	ctx := context.Background()
	emp := store.MustEmployee("Budi", employee.PositionKaryawan)

	created, err := svc.Create(ctx, resignation.CreateResignationRequest{
		EmployeeID:  emp.ID,
		Passport:    " P-1234 ",
		ICReason:    "Moving to another city",
		OOCReason:   "Less time to play",
		RequestDate: "2024-03-10",
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", created.Status)
	assert.Equal(t, "P-1234", created.Passport)

	updated, err := svc.UpdateStatus(ctx, resignation.UpdateStatusRequest{ID: created.ID, Status: approval.StatusApproved})
	require.NoError(t, err)
	assert.Equal(t, "approved", updated.Status)

	_, err = svc.UpdateStatus(ctx, resignation.UpdateStatusRequest{ID: created.ID, Status: approval.StatusRejected})
	assert.ErrorIs(t, err, approval.ErrRequestAlreadyProcessed)

	require.Len(t, notifier.Resignations, 1)
	assert.Equal(t, "approved", notifier.Resignations[0].Status)
	assert.Equal(t, "P-1234", notifier.Resignations[0].Passport)
	assert.Equal(t, "2024-03-10", notifier.Resignations[0].RequestDate)
	assert.Equal(t, "Budi", notifier.Resignations[0].EmployeeName)
}

func TestCreate_RequiresAllFields(t *testing.T) {
	store := testfixtures.NewStore()
	svc := NewResignationService(store.ResignationRequests(), store.Employees(), &testfixtures.RecordingNotifier{})

	_, err := svc.Create(context.Background(), resignation.CreateResignationRequest{EmployeeID: "x"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	for _, f := range []string{"employee_id", "passport", "ic_reason", "ooc_reason", "request_date"} {
		assert.Contains(t, fields, f)
	}
}

func TestUpdateStatus_UnknownRequest(t *testing.T) {
	store := testfixtures.NewStore()
	notifier := &testfixtures.RecordingNotifier{}
	svc := NewResignationService(store.ResignationRequests(), store.Employees(), notifier)

	_, err := svc.UpdateStatus(context.Background(), resignation.UpdateStatusRequest{
		ID:     "0190c8e4-3b5a-7c3e-9f00-000000000001",
		Status: approval.StatusRejected,
	})
	assert.ErrorIs(t, err, resignation.ErrResignationRequestNotFound)
	assert.Empty(t, notifier.Resignations)
}
