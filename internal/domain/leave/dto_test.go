package leave

import (
	"testing"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/approval"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEmployeeID = "0190c8e4-3b5a-7c3e-9f00-000000000001"

func TestCreateLeaveRequest_Validate(t *testing.T) {
	tests := []struct {
		name       string
		req        CreateLeaveRequest
		wantFields []string
	}{
		{
			name: "valid single day",
			req:  CreateLeaveRequest{EmployeeID: testEmployeeID, StartDate: "2024-03-01", EndDate: "2024-03-01", Reason: "family"},
		},
		{
			name:       "end before start",
			req:        CreateLeaveRequest{EmployeeID: testEmployeeID, StartDate: "2024-03-05", EndDate: "2024-03-01", Reason: "family"},
			wantFields: []string{"end_date"},
		},
		{
			name:       "missing reason and bad dates",
			req:        CreateLeaveRequest{EmployeeID: testEmployeeID, StartDate: "03/01/2024", EndDate: "2024-13-01", Reason: "  "},
			wantFields: []string{"start_date", "end_date", "reason"},
		},
		{
			name:       "bad employee",
			req:        CreateLeaveRequest{EmployeeID: "abc", StartDate: "2024-03-01", EndDate: "2024-03-02", Reason: "x"},
			wantFields: []string{"employee_id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			got := verrs.ToMap()
			for _, f := range tt.wantFields {
				assert.Contains(t, got, f)
			}
		})
	}
}

func TestUpdateStatusRequest_Validate(t *testing.T) {
	ok := UpdateStatusRequest{ID: testEmployeeID, Status: approval.StatusApproved}
	assert.NoError(t, ok.Validate())

	pending := UpdateStatusRequest{ID: testEmployeeID, Status: approval.StatusPending}
	assert.Error(t, pending.Validate())
}

func TestLeaveRequest_Days(t *testing.T) {
	start, _ := validator.IsValidDate("2024-03-01")
	end, _ := validator.IsValidDate("2024-03-03")

	assert.Equal(t, 3, LeaveRequest{StartDate: start, EndDate: end}.Days())
	assert.Equal(t, 1, LeaveRequest{StartDate: start, EndDate: start}.Days())
}
