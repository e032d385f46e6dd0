package workhours

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/workhours"
	"github.com/cmlabs-hris/workforce-backend-go/internal/testfixtures"
)

type testEnv struct {
	svc      *WorkingHoursServiceImpl
	store    *testfixtures.Store
	clock    *testfixtures.Clock
	notifier *testfixtures.RecordingNotifier
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()

	store := testfixtures.NewStore()
	clock := testfixtures.NewClock(testfixtures.ReferenceTime())
	store.SetNow(clock.Now)
	notifier := &testfixtures.RecordingNotifier{}

	svc := NewWorkingHoursService(store.WorkingHours(), store.Employees(), notifier, testfixtures.Jakarta()).(*WorkingHoursServiceImpl)
	svc.now = clock.Now

	return testEnv{svc: svc, store: store, clock: clock, notifier: notifier}
}

func strPtr(s string) *string { return &s }

func TestCheckIn_TwiceIsConflict(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	emp := env.store.MustEmployee("Budi", employee.PositionKaryawan)

	resp, err := env.svc.CheckIn(ctx, workhours.CheckInRequest{EmployeeID: emp.ID})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", resp.Date)
	assert.Nil(t, resp.CheckOut)
	require.NotNil(t, resp.EmployeeName)
	assert.Equal(t, "Budi", *resp.EmployeeName)

	_, err = env.svc.CheckIn(ctx, workhours.CheckInRequest{EmployeeID: emp.ID})
	assert.ErrorIs(t, err, workhours.ErrActiveSessionExists)

	require.Len(t, env.notifier.CheckIns, 1)
	assert.Equal(t, "Budi", env.notifier.CheckIns[0].EmployeeName)
	assert.Equal(t, "Karyawan", env.notifier.CheckIns[0].Position)
}

func TestCheckIn_SameDateAfterCheckOutIsConflict(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	emp := env.store.MustEmployee("Budi", employee.PositionKaryawan)

	_, err := env.svc.CheckIn(ctx, workhours.CheckInRequest{EmployeeID: emp.ID})
	require.NoError(t, err)

	env.clock.Advance(8 * time.Hour)
	out, err := env.svc.CheckOut(ctx, workhours.CheckOutRequest{EmployeeID: emp.ID})
	require.NoError(t, err)
	require.NotNil(t, out.TotalHours)
	assert.Equal(t, 8.0, *out.TotalHours)

	env.clock.Advance(time.Hour)
	_, err = env.svc.CheckIn(ctx, workhours.CheckInRequest{EmployeeID: emp.ID})
	assert.ErrorIs(t, err, workhours.ErrAlreadyCheckedInToday)

	require.Len(t, env.notifier.CheckOuts, 1)
	assert.Equal(t, 8.0, env.notifier.CheckOuts[0].TotalHours)
}

func TestCheckIn_UsesConfiguredTimezoneForDate(t *testing.T) {
	env := newTestEnv(t)
	emp := env.store.MustEmployee("Budi", employee.PositionKaryawan)

	// 20:00 UTC is 03:00 the next day in Jakarta.
	env.clock.Set(time.Date(2024, 3, 15, 20, 0, 0, 0, time.UTC))

	resp, err := env.svc.CheckIn(context.Background(), workhours.CheckInRequest{EmployeeID: emp.ID})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-16", resp.Date)
	assert.Equal(t, "2024-03-15T20:00:00Z", resp.CheckIn)
}

func TestCheckIn_UnknownEmployee(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.CheckIn(context.Background(), workhours.CheckInRequest{EmployeeID: "0190c8e4-3b5a-7c3e-9f00-000000000099"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.Empty(t, env.notifier.CheckIns)
}

func TestCheckOut_WithoutSession(t *testing.T) {
	env := newTestEnv(t)
	emp := env.store.MustEmployee("Budi", employee.PositionKaryawan)

	_, err := env.svc.CheckOut(context.Background(), workhours.CheckOutRequest{EmployeeID: emp.ID})
	assert.ErrorIs(t, err, workhours.ErrNoActiveSession)
	assert.Empty(t, env.notifier.CheckOuts)
}

func TestCheckOut_RecordOfAnotherEmployee(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	budi := env.store.MustEmployee("Budi", employee.PositionKaryawan)
	sari := env.store.MustEmployee("Sari", employee.PositionSupervisor)

	session, err := env.svc.CheckIn(ctx, workhours.CheckInRequest{EmployeeID: budi.ID})
	require.NoError(t, err)
	env.clock.Advance(time.Hour)

	_, err = env.svc.CheckOut(ctx, workhours.CheckOutRequest{EmployeeID: sari.ID, RecordID: session.ID})
	assert.ErrorIs(t, err, workhours.ErrNoActiveSession)

	_, err = env.svc.CheckOut(ctx, workhours.CheckOutRequest{EmployeeID: budi.ID, RecordID: session.ID})
	require.NoError(t, err)

	_, err = env.svc.CheckOut(ctx, workhours.CheckOutRequest{EmployeeID: budi.ID, RecordID: session.ID})
	assert.ErrorIs(t, err, workhours.ErrNoActiveSession)
}

func TestCheckOut_AtCheckInInstantIsRejected(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	emp := env.store.MustEmployee("Budi", employee.PositionKaryawan)

	_, err := env.svc.CheckIn(ctx, workhours.CheckInRequest{EmployeeID: emp.ID})
	require.NoError(t, err)

	_, err = env.svc.CheckOut(ctx, workhours.CheckOutRequest{EmployeeID: emp.ID})
	assert.ErrorIs(t, err, workhours.ErrCheckOutNotAfterCheckIn)
}

func TestCreate_ValidatesTimes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	emp := env.store.MustEmployee("Budi", employee.PositionKaryawan)

	tests := []struct {
		name     string
		checkIn  string
		checkOut *string
		wantErr  error
	}{
		{"check-out before check-in", "2024-03-14 10:00:00", strPtr("2024-03-14 09:00:00"), workhours.ErrCheckOutNotAfterCheckIn},
		{"check-out equals check-in", "2024-03-14 10:00:00", strPtr("2024-03-14 10:00:00"), workhours.ErrCheckOutNotAfterCheckIn},
		{"future check-in", "2024-03-16 08:00:00", nil, workhours.ErrFutureTimestamp},
		{"future check-out", "2024-03-15 08:00:00", strPtr("2024-03-15 18:00:00"), workhours.ErrFutureTimestamp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.svc.Create(ctx, workhours.CreateWorkingHoursRequest{
				EmployeeID: emp.ID,
				Date:       tt.checkIn[:10],
				CheckIn:    tt.checkIn,
				CheckOut:   tt.checkOut,
			})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreate_StoresUTCAndComputesHours(t *testing.T) {
	env := newTestEnv(t)
	emp := env.store.MustEmployee("Budi", employee.PositionKaryawan)

	resp, err := env.svc.Create(context.Background(), workhours.CreateWorkingHoursRequest{
		EmployeeID: emp.ID,
		Date:       "2024-03-14",
		CheckIn:    "2024-03-14 08:00:00",
		CheckOut:   strPtr("2024-03-14 15:45:00"),
		Notes:      strPtr("manual"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-14T01:00:00Z", resp.CheckIn)
	require.NotNil(t, resp.TotalHours)
	assert.Equal(t, 7.75, *resp.TotalHours)
}

func TestCreate_SameDateIsConflict(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	emp := env.store.MustEmployee("Budi", employee.PositionKaryawan)

	req := workhours.CreateWorkingHoursRequest{
		EmployeeID: emp.ID,
		Date:       "2024-03-14",
		CheckIn:    "2024-03-14 08:00:00",
		CheckOut:   strPtr("2024-03-14 12:00:00"),
	}
	_, err := env.svc.Create(ctx, req)
	require.NoError(t, err)

	req.CheckIn = "2024-03-14 13:00:00"
	req.CheckOut = strPtr("2024-03-14 17:00:00")
	_, err = env.svc.Create(ctx, req)
	assert.ErrorIs(t, err, workhours.ErrAlreadyCheckedInToday)
}

func TestCreate_DateMustMatchCheckInDay(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	emp := env.store.MustEmployee("Budi", employee.PositionKaryawan)

	_, err := env.svc.Create(ctx, workhours.CreateWorkingHoursRequest{
		EmployeeID: emp.ID,
		Date:       "2024-03-14",
		CheckIn:    "2024-03-14 08:00:00",
		CheckOut:   strPtr("2024-03-14 12:00:00"),
	})
	require.NoError(t, err)

	_, err = env.svc.Create(ctx, workhours.CreateWorkingHoursRequest{
		EmployeeID: emp.ID,
		Date:       "2024-02-29",
		CheckIn:    "2024-03-14 13:00:00",
		CheckOut:   strPtr("2024-03-14 17:00:00"),
	})
	assert.ErrorIs(t, err, workhours.ErrDateMismatch)

	feb := "2024-02"
	records, err := env.svc.List(ctx, workhours.WorkingHoursFilter{EmployeeID: &emp.ID, Month: &feb})
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestUpdate_DateMustMatchCheckInDay(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	emp := env.store.MustEmployee("Budi", employee.PositionKaryawan)

	created, err := env.svc.Create(ctx, workhours.CreateWorkingHoursRequest{
		EmployeeID: emp.ID,
		Date:       "2024-03-14",
		CheckIn:    "2024-03-14 08:00:00",
		CheckOut:   strPtr("2024-03-14 16:00:00"),
	})
	require.NoError(t, err)

	_, err = env.svc.Update(ctx, workhours.UpdateWorkingHoursRequest{ID: created.ID, Date: strPtr("2024-02-29")})
	assert.ErrorIs(t, err, workhours.ErrDateMismatch)

	_, err = env.svc.Update(ctx, workhours.UpdateWorkingHoursRequest{ID: created.ID, CheckIn: strPtr("2024-03-13 08:00:00")})
	assert.ErrorIs(t, err, workhours.ErrDateMismatch)

	moved, err := env.svc.Update(ctx, workhours.UpdateWorkingHoursRequest{
		ID:      created.ID,
		Date:    strPtr("2024-03-13"),
		CheckIn: strPtr("2024-03-13 08:00:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-13", moved.Date)

	got, err := env.svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-13", got.Date)
}

func TestUpdate_RecomputesHours(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	emp := env.store.MustEmployee("Budi", employee.PositionKaryawan)

	created, err := env.svc.Create(ctx, workhours.CreateWorkingHoursRequest{
		EmployeeID: emp.ID,
		Date:       "2024-03-14",
		CheckIn:    "2024-03-14 08:00:00",
		CheckOut:   strPtr("2024-03-14 16:00:00"),
	})
	require.NoError(t, err)

	updated, err := env.svc.Update(ctx, workhours.UpdateWorkingHoursRequest{
		ID:       created.ID,
		CheckOut: strPtr("2024-03-14 17:30:00"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.TotalHours)
	assert.Equal(t, 9.5, *updated.TotalHours)

	_, err = env.svc.Update(ctx, workhours.UpdateWorkingHoursRequest{
		ID:      created.ID,
		CheckIn: strPtr("2024-03-14 18:00:00"),
	})
	assert.ErrorIs(t, err, workhours.ErrCheckOutNotAfterCheckIn)
}

func TestListAndDelete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	emp := env.store.MustEmployee("Budi", employee.PositionKaryawan)
	first := env.store.AddWorkingHours(emp.ID, "2024-02-28", time.Date(2024, 2, 28, 1, 0, 0, 0, time.UTC), 8)
	env.store.AddWorkingHours(emp.ID, "2024-03-01", time.Date(2024, 3, 1, 1, 0, 0, 0, time.UTC), 4)

	month := "2024-03"
	list, err := env.svc.List(ctx, workhours.WorkingHoursFilter{EmployeeID: &emp.ID, Month: &month})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "2024-03-01", list[0].Date)

	bad := "March"
	_, err = env.svc.List(ctx, workhours.WorkingHoursFilter{Month: &bad})
	assert.Error(t, err)

	require.NoError(t, env.svc.Delete(ctx, first.ID))
	_, err = env.svc.Get(ctx, first.ID)
	assert.ErrorIs(t, err, workhours.ErrWorkingHoursNotFound)
	assert.ErrorIs(t, env.svc.Delete(ctx, "not-a-uuid"), workhours.ErrWorkingHoursNotFound)
}

const importHeader = "Name,Position,Date (YYYY-MM-DD),Check In (YYYY-MM-DD HH:mm:ss),Check Out (YYYY-MM-DD HH:mm:ss),Notes\n"

func TestImport_ContinuesPastBadRow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	budi := env.store.MustEmployee("Budi", employee.PositionKaryawan)
	env.store.MustEmployee("Sari", employee.PositionSupervisor)

	csv := importHeader +
		"Budi,Karyawan,2024-03-01,2024-03-01 08:00:00,2024-03-01 16:00:00,\n" +
		"Ghost,Karyawan,2024-03-01,2024-03-01 08:00:00,2024-03-01 16:00:00,\n" +
		"Sari,Supervisor,2024-03-01,2024-03-01 09:00:00,2024-03-01 17:30:00,late shift\n"

	summary, err := env.svc.Import(ctx, strings.NewReader(csv), "hours.csv")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Success)
	assert.Equal(t, 1, summary.Failed)
	require.Len(t, summary.Errors, 1)
	assert.True(t, strings.HasPrefix(summary.Errors[0], "Row 2: "), summary.Errors[0])
	assert.Contains(t, summary.Errors[0], "Ghost")

	month := "2024-03"
	records, err := env.svc.List(ctx, workhours.WorkingHoursFilter{EmployeeID: &budi.ID, Month: &month})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2024-03-01T01:00:00Z", records[0].CheckIn)
	require.NotNil(t, records[0].TotalHours)
	assert.Equal(t, 8.0, *records[0].TotalHours)
}

func TestImport_CheckOutBeforeCheckInFailsOnlyThatRow(t *testing.T) {
	env := newTestEnv(t)
	env.store.MustEmployee("Budi", employee.PositionKaryawan)
	env.store.MustEmployee("Sari", employee.PositionSupervisor)

	csv := importHeader +
		"Budi,Karyawan,2024-03-01,2024-03-01 08:00:00,2024-03-01 16:00:00,\n" +
		"Sari,Supervisor,2024-03-01,2024-03-01 16:00:00,2024-03-01 08:00:00,\n" +
		"Sari,Supervisor,2024-03-02,2024-03-02 08:00:00,2024-03-02 16:00:00,\n"

	summary, err := env.svc.Import(context.Background(), strings.NewReader(csv), "hours.csv")
	require.NoError(t, err)
	assert.Equal(t, workhours.ImportSummary{
		Success: 2,
		Failed:  1,
		Errors:  []string{"Row 2: " + workhours.ErrCheckOutNotAfterCheckIn.Error()},
	}, summary)
}

func TestImport_DateMustMatchCheckInDay(t *testing.T) {
	env := newTestEnv(t)
	env.store.MustEmployee("Budi", employee.PositionKaryawan)

	csv := importHeader +
		"Budi,Karyawan,2024-03-14,2024-03-14 08:00:00,2024-03-14 12:00:00,\n" +
		"Budi,Karyawan,2024-02-29,2024-03-14 13:00:00,2024-03-14 17:00:00,\n"

	summary, err := env.svc.Import(context.Background(), strings.NewReader(csv), "hours.csv")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Success)
	assert.Equal(t, []string{"Row 2: " + workhours.ErrDateMismatch.Error()}, summary.Errors)
}

func TestImport_RowRuleViolations(t *testing.T) {
	env := newTestEnv(t)
	env.store.MustEmployee("Budi", employee.PositionKaryawan)

	csv := importHeader +
		"Budi,Karyawan,2024-03-01,2024-03-01 08:00:00,2024-03-01 07:00:00,\n" +
		"Budi,Janitor,2024-03-02,2024-03-02 08:00:00,2024-03-02 16:00:00,\n" +
		"Budi,Karyawan,2024-03-03,03/03/2024,,\n" +
		"Budi,Karyawan,2024-03-04,2024-03-04 08:00:00,2024-03-04 16:00:00,\n" +
		"Budi,Karyawan,2024-03-04,2024-03-04 17:00:00,2024-03-04 18:00:00,\n"

	summary, err := env.svc.Import(context.Background(), strings.NewReader(csv), "hours.csv")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Success)
	assert.Equal(t, 4, summary.Failed)
	require.Len(t, summary.Errors, 4)
	assert.Equal(t, "Row 1: "+workhours.ErrCheckOutNotAfterCheckIn.Error(), summary.Errors[0])
	assert.True(t, strings.HasPrefix(summary.Errors[1], "Row 2: "))
	assert.Contains(t, summary.Errors[2], "Check In")
	assert.Equal(t, "Row 5: "+workhours.ErrAlreadyCheckedInToday.Error(), summary.Errors[3])
}

func TestImport_SkipsBlankRowsButKeepsNumbering(t *testing.T) {
	env := newTestEnv(t)
	env.store.MustEmployee("Budi", employee.PositionKaryawan)

	csv := importHeader +
		",,,,,\n" +
		"Nobody,Karyawan,2024-03-01,2024-03-01 08:00:00,,\n"

	summary, err := env.svc.Import(context.Background(), strings.NewReader(csv), "hours.csv")
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Success)
	assert.Equal(t, 1, summary.Failed)
	require.Len(t, summary.Errors, 1)
	assert.True(t, strings.HasPrefix(summary.Errors[0], "Row 2: "))
}

func TestImport_InvalidFile(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.svc.Import(ctx, strings.NewReader("Name,Position\nBudi,Karyawan\n"), "hours.csv")
	assert.ErrorIs(t, err, workhours.ErrInvalidImportFile)

	_, err = env.svc.Import(ctx, strings.NewReader("anything"), "hours.pdf")
	assert.ErrorIs(t, err, workhours.ErrInvalidImportFile)

	_, err = env.svc.Import(ctx, strings.NewReader(""), "hours.csv")
	assert.ErrorIs(t, err, workhours.ErrInvalidImportFile)
}

func TestExcelSerial(t *testing.T) {
	loc := testfixtures.Jakarta()

	// 45352.375 is 2024-03-01 09:00.
	got, ok := excelSerial("45352.375", loc)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 1, 9, 0, 0, 0, loc), got)

	_, ok = excelSerial("not a number", loc)
	assert.False(t, ok)
}
