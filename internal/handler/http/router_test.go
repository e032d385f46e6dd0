package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/jwt"
	authsvc "github.com/cmlabs-hris/workforce-backend-go/internal/service/auth"
	dashboardsvc "github.com/cmlabs-hris/workforce-backend-go/internal/service/dashboard"
	employeesvc "github.com/cmlabs-hris/workforce-backend-go/internal/service/employee"
	foodsvc "github.com/cmlabs-hris/workforce-backend-go/internal/service/food"
	leavesvc "github.com/cmlabs-hris/workforce-backend-go/internal/service/leave"
	reportsvc "github.com/cmlabs-hris/workforce-backend-go/internal/service/report"
	resignationsvc "github.com/cmlabs-hris/workforce-backend-go/internal/service/resignation"
	wagesvc "github.com/cmlabs-hris/workforce-backend-go/internal/service/wage"
	workhourssvc "github.com/cmlabs-hris/workforce-backend-go/internal/service/workhours"
	"github.com/cmlabs-hris/workforce-backend-go/internal/testfixtures"
)

const testAdminPassword = "admin-secret"

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

type testServer struct {
	t        *testing.T
	server   *httptest.Server
	store    *testfixtures.Store
	notifier *testfixtures.RecordingNotifier
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	store := testfixtures.NewStore()
	store.SetAdminPassword(testAdminPassword)
	notifier := &testfixtures.RecordingNotifier{}
	loc := testfixtures.Jakarta()
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h")

	employeeService := employeesvc.NewEmployeeService(store.Employees(), loc)
	workingHoursService := workhourssvc.NewWorkingHoursService(store.WorkingHours(), store.Employees(), notifier, loc)
	leaveService := leavesvc.NewLeaveService(store.LeaveRequests(), store.Employees(), notifier)
	resignationService := resignationsvc.NewResignationService(store.ResignationRequests(), store.Employees(), notifier)
	foodService := foodsvc.NewFoodService(store.Transactor(), store.FoodItems(), store.FoodTransactions(), store.Employees())
	wageService := wagesvc.NewWageService(store.Employees(), store.Withdrawals())

	handlers := Handlers{
		Auth:         NewAuthHandler(authsvc.NewAuthService(store.Admin(), store.Employees(), jwtService)),
		Employee:     NewEmployeeHandler(employeeService),
		WorkingHours: NewWorkingHoursHandler(workingHoursService),
		Leave:        NewLeaveHandler(leaveService),
		Resignation:  NewResignationHandler(resignationService),
		Food:         NewFoodHandler(foodService),
		Wage:         NewWageHandler(wageService, loc),
		Report: NewReportHandler(reportsvc.NewReportService(
			employeeService, workingHoursService, leaveService, resignationService, foodService, wageService, loc,
		)),
		Dashboard: NewDashboardHandler(dashboardsvc.NewDashboardService(
			store.Dashboard(), store.Employees(), store.LeaveRequests(), store.ResignationRequests(), store.Withdrawals(), loc,
		)),
		Portal: NewPortalHandler(employeeService, workingHoursService, wageService, leaveService, resignationService, loc),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := httptest.NewServer(NewRouter(logger, []string{"http://localhost:3000"}, jwtService, handlers))
	t.Cleanup(server.Close)

	return &testServer{t: t, server: server, store: store, notifier: notifier}
}

func (s *testServer) do(method, path, token string, body any) (*http.Response, envelope) {
	s.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, s.server.URL+path, reader)
	require.NoError(s.t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return s.send(req)
}

func (s *testServer) send(req *http.Request) (*http.Response, envelope) {
	s.t.Helper()

	resp, err := http.DefaultClient.Do(req)
	require.NoError(s.t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(s.t, err)

	var env envelope
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(s.t, json.Unmarshal(raw, &env))
	} else {
		env.Data = raw
	}
	return resp, env
}

func (s *testServer) login(path string, body any) string {
	s.t.Helper()

	resp, env := s.do(http.MethodPost, path, "", body)
	require.Equal(s.t, http.StatusOK, resp.StatusCode)

	var token struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(s.t, json.Unmarshal(env.Data, &token))
	require.NotEmpty(s.t, token.AccessToken)
	return token.AccessToken
}

func (s *testServer) adminToken() string {
	return s.login("/api/v1/auth/admin/login", map[string]string{"password": testAdminPassword})
}

// createEmployee creates an employee with PIN 1234 and returns its id.
func (s *testServer) createEmployee(admin, name, position string) string {
	s.t.Helper()

	resp, env := s.do(http.MethodPost, "/api/v1/employees", admin, map[string]any{
		"name":      name,
		"position":  position,
		"join_date": "2023-01-02",
		"pin":       "1234",
	})
	require.Equal(s.t, http.StatusCreated, resp.StatusCode)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(s.t, json.Unmarshal(env.Data, &created))
	return created.ID
}

func TestAdminLogin_WrongPassword(t *testing.T) {
	srv := newTestServer(t)

	resp, env := srv.do(http.MethodPost, "/api/v1/auth/admin/login", "", map[string]string{"password": "nope"})

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.False(t, env.Success)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := srv.do(http.MethodGet, "/api/v1/employees", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = srv.do(http.MethodGet, "/api/v1/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestEmployees_CreateValidateAndConflict(t *testing.T) {
	srv := newTestServer(t)
	admin := srv.adminToken()

	srv.createEmployee(admin, "Budi", "Karyawan")

	resp, env := srv.do(http.MethodPost, "/api/v1/employees", admin, map[string]any{
		"name": "Budi", "position": "Karyawan", "join_date": "2023-01-02",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CONFLICT", env.Error.Code)

	resp, env = srv.do(http.MethodPost, "/api/v1/employees", admin, map[string]any{
		"name": "", "position": "Astronaut", "join_date": "02-01-2023",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, env.Error.Details, "name")
	assert.Contains(t, env.Error.Details, "position")
	assert.Contains(t, env.Error.Details, "join_date")

	resp, _ = srv.do(http.MethodGet, "/api/v1/employees/not-a-uuid", admin, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPortal_EmployeeCannotUseAdminRoutes(t *testing.T) {
	srv := newTestServer(t)
	id := srv.createEmployee(srv.adminToken(), "Budi", "Karyawan")
	token := srv.login("/api/v1/auth/employee/login", map[string]string{"employee_id": id, "pin": "1234"})

	resp, env := srv.do(http.MethodGet, "/api/v1/employees", token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", env.Error.Code)

	resp, _ = srv.do(http.MethodGet, "/api/v1/me", srv.adminToken(), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestPortal_CheckInTwiceIsConflict(t *testing.T) {
	srv := newTestServer(t)
	id := srv.createEmployee(srv.adminToken(), "Budi", "Karyawan")
	token := srv.login("/api/v1/auth/employee/login", map[string]string{"employee_id": id, "pin": "1234"})

	resp, _ := srv.do(http.MethodPost, "/api/v1/me/check-in", token, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, env := srv.do(http.MethodPost, "/api/v1/me/check-in", token, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CONFLICT", env.Error.Code)

	resp, env = srv.do(http.MethodGet, "/api/v1/me/working-hours", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var records []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &records))
	assert.Len(t, records, 1)

	assert.Len(t, srv.notifier.CheckIns, 1)
}

func TestPortal_LeaveRequestUsesTokenEmployee(t *testing.T) {
	srv := newTestServer(t)
	admin := srv.adminToken()
	budi := srv.createEmployee(admin, "Budi", "Karyawan")
	sari := srv.createEmployee(admin, "Sari", "Karyawan")
	token := srv.login("/api/v1/auth/employee/login", map[string]string{"employee_id": budi, "pin": "1234"})

	resp, env := srv.do(http.MethodPost, "/api/v1/me/leave-requests", token, map[string]string{
		"employee_id": sari,
		"start_date":  "2024-04-01",
		"end_date":    "2024-04-03",
		"reason":      "family",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		ID         string `json:"id"`
		EmployeeID string `json:"employee_id"`
		Status     string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, budi, created.EmployeeID)
	assert.Equal(t, "pending", created.Status)

	resp, _ = srv.do(http.MethodPost, "/api/v1/leave-requests/"+created.ID+"/approve", admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env = srv.do(http.MethodPost, "/api/v1/leave-requests/"+created.ID+"/reject", admin, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Request already processed", env.Error.Message)

	assert.Len(t, srv.notifier.Leaves, 1)
}

func TestFood_WithdrawBeyondStockIsConflict(t *testing.T) {
	srv := newTestServer(t)
	admin := srv.adminToken()
	budi := srv.createEmployee(admin, "Budi", "Karyawan")

	resp, env := srv.do(http.MethodPost, "/api/v1/food/items", admin, map[string]any{"name": "Rice", "type": "staple", "quantity": 3})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var item struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &item))

	resp, _ = srv.do(http.MethodPost, "/api/v1/food/transactions", admin, map[string]any{
		"employee_id": budi, "food_item_id": item.ID, "type": "withdraw", "quantity": 5,
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestFood_ListTransactionsRejectsMalformedIDs(t *testing.T) {
	srv := newTestServer(t)
	admin := srv.adminToken()

	resp, env := srv.do(http.MethodGet, "/api/v1/food/transactions?employee_id=abc", admin, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, env.Error.Details, "employee_id")
}

func TestExport_ReturnsAttachment(t *testing.T) {
	srv := newTestServer(t)
	admin := srv.adminToken()
	srv.createEmployee(admin, "Budi", "Karyawan")

	resp, env := srv.do(http.MethodGet, "/api/v1/exports/employees?format=csv", admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")
	assert.True(t, strings.HasPrefix(string(env.Data), "Name,Position,Join Date,Total Hours\n"))

	resp, env = srv.do(http.MethodGet, "/api/v1/exports/payroll", admin, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, env.Error.Details, "type")
}

func TestImport_ReportsRowErrors(t *testing.T) {
	srv := newTestServer(t)
	admin := srv.adminToken()
	srv.createEmployee(admin, "Budi", "Karyawan")

	csv := "Name,Position,Date (YYYY-MM-DD),Check In (YYYY-MM-DD HH:mm:ss),Check Out (YYYY-MM-DD HH:mm:ss)\n" +
		"Budi,Karyawan,2024-03-01,2024-03-01 08:00:00,2024-03-01 16:00:00\n" +
		"Ghost,Karyawan,2024-03-01,2024-03-01 08:00:00,2024-03-01 16:00:00\n"

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("file", "hours.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(csv))
	require.NoError(t, err)
	require.NoError(t, form.Close())

	req, err := http.NewRequest(http.MethodPost, srv.server.URL+"/api/v1/working-hours/import", &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+admin)

	resp, env := srv.send(req)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var summary struct {
		Success int      `json:"success"`
		Failed  int      `json:"failed"`
		Errors  []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &summary))
	assert.Equal(t, 1, summary.Success)
	assert.Equal(t, 1, summary.Failed)
	require.Len(t, summary.Errors, 1)
	assert.True(t, strings.HasPrefix(summary.Errors[0], "Row 2: "))
}
