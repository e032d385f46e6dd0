package approval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		to      Status
		wantErr error
	}{
		{"pending to approved", StatusPending, StatusApproved, nil},
		{"pending to rejected", StatusPending, StatusRejected, nil},
		{"approved is terminal", StatusApproved, StatusRejected, ErrRequestAlreadyProcessed},
		{"rejected is terminal", StatusRejected, StatusApproved, ErrRequestAlreadyProcessed},
		{"approved again", StatusApproved, StatusApproved, ErrRequestAlreadyProcessed},
		{"back to pending", StatusPending, StatusPending, ErrInvalidStatus},
		{"unknown target", StatusPending, Status("cancelled"), ErrInvalidStatus},
		{"unknown source", Status(""), StatusApproved, ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanTransition(tt.from, tt.to)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestStatus_IsValid(t *testing.T) {
	assert.True(t, StatusPending.IsValid())
	assert.True(t, StatusApproved.IsValid())
	assert.True(t, StatusRejected.IsValid())
	assert.False(t, Status("waiting_approval").IsValid())
}
