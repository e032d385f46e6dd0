package wage

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/wage"
	"github.com/cmlabs-hris/workforce-backend-go/internal/testfixtures"
)

func newTestService(t *testing.T) (wage.WageService, *testfixtures.Store) {
	t.Helper()
	store := testfixtures.NewStore()
	return NewWageService(store.Employees(), store.Withdrawals()), store
}

func march(day int) time.Time {
	return time.Date(2024, 3, day, 1, 0, 0, 0, time.UTC)
}

func TestGet_HourlyWage(t *testing.T) {
	svc, store := newTestService(t)
	emp := store.MustEmployee("Budi", employee.PositionKaryawan)
	store.AddWorkingHours(emp.ID, "2024-03-01", march(1), 6)
	store.AddWorkingHours(emp.ID, "2024-03-02", march(2), 4)
	store.AddWorkingHours(emp.ID, "2024-02-28", time.Date(2024, 2, 28, 1, 0, 0, 0, time.UTC), 8)

	resp, err := svc.Get(context.Background(), emp.ID, "2024-03")
	require.NoError(t, err)
	assert.Equal(t, 10.0, resp.TotalHours)
	assert.Equal(t, "90000", resp.TotalWage)
	assert.Equal(t, "Rp 90.000", resp.Display)
	assert.False(t, resp.FixedSalary)
	assert.False(t, resp.Withdrawn)
}

func TestGet_FixedSalary(t *testing.T) {
	svc, store := newTestService(t)
	emp := store.MustEmployee("Ayu", employee.PositionManager)
	store.AddWorkingHours(emp.ID, "2024-03-01", march(1), 9)

	resp, err := svc.Get(context.Background(), emp.ID, "2024-03")
	require.NoError(t, err)
	assert.True(t, resp.FixedSalary)
	assert.Equal(t, wage.FixedSalaryLabel, resp.Display)
	assert.Equal(t, "0", resp.TotalWage)
}

func TestGet_InvalidMonth(t *testing.T) {
	svc, store := newTestService(t)
	emp := store.MustEmployee("Budi", employee.PositionKaryawan)

	_, err := svc.Get(context.Background(), emp.ID, "2024-13")
	assert.Error(t, err)
}

func TestList_ReportsWithdrawnAndPerRowErrors(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	budi := store.MustEmployee("Budi", employee.PositionKaryawan)
	store.MustEmployee("Ayu", employee.PositionCEO)
	legacy := store.MustEmployee("Old", employee.Position("Intern"))
	store.AddWorkingHours(budi.ID, "2024-03-01", march(1), 8)

	_, err := svc.Withdraw(ctx, wage.WithdrawRequest{EmployeeID: budi.ID, Month: "2024-03"})
	require.NoError(t, err)

	rows, err := svc.List(ctx, "2024-03")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	byID := make(map[string]wage.EmployeeWageResponse)
	for _, row := range rows {
		byID[row.EmployeeID] = row
	}
	assert.True(t, byID[budi.ID].Withdrawn)
	assert.Equal(t, "Rp 72.000", byID[budi.ID].Display)
	require.NotNil(t, byID[legacy.ID].Error)
	assert.Contains(t, *byID[legacy.ID].Error, "Intern")
}

func TestWithdraw_IsRecordedOnce(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	emp := store.MustEmployee("Budi", employee.PositionKaryawan)
	req := wage.WithdrawRequest{EmployeeID: emp.ID, Month: "2024-03"}

	first, err := svc.Withdraw(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "2024-03", first.Month)

	_, err = svc.Withdraw(ctx, req)
	assert.ErrorIs(t, err, wage.ErrAlreadyWithdrawn)
	assert.Equal(t, 1, store.WithdrawalCount(emp.ID, "2024-03"))

	got, err := svc.Get(ctx, emp.ID, "2024-03")
	require.NoError(t, err)
	assert.True(t, got.Withdrawn)

	_, err = svc.Withdraw(ctx, wage.WithdrawRequest{EmployeeID: emp.ID, Month: "2024-04"})
	assert.NoError(t, err)
}

func TestWriteSlip(t *testing.T) {
	svc, store := newTestService(t)
	emp := store.MustEmployee("Budi", employee.PositionKaryawan)
	store.AddWorkingHours(emp.ID, "2024-03-01", march(1), 8)

	var buf bytes.Buffer
	require.NoError(t, svc.WriteSlip(context.Background(), emp.ID, "2024-03", &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}
