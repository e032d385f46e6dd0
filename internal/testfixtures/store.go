package testfixtures

import (
	"context"
	"maps"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/approval"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/food"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/resignation"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/wage"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/workhours"
)

// Store is an in-memory stand-in for the PostgreSQL schema. It enforces the
// same uniqueness and status constraints as the real tables.
type Store struct {
	mu sync.Mutex

	employees     map[string]employee.Employee
	workingHours  map[string]workhours.WorkingHours
	leaves        map[string]leave.LeaveRequest
	resignations  map[string]resignation.ResignationRequest
	foodItems     map[string]food.FoodItem
	foodTxs       map[string]food.FoodTransaction
	withdrawals   map[string]wage.Withdrawal
	adminPassword string
	foodTxErr     error

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		employees:    make(map[string]employee.Employee),
		workingHours: make(map[string]workhours.WorkingHours),
		leaves:       make(map[string]leave.LeaveRequest),
		resignations: make(map[string]resignation.ResignationRequest),
		foodItems:    make(map[string]food.FoodItem),
		foodTxs:      make(map[string]food.FoodTransaction),
		withdrawals:  make(map[string]wage.Withdrawal),
		now:          time.Now,
	}
}

// SetAdminPassword configures the password accepted by the admin repository.
func (s *Store) SetAdminPassword(p string) {
	s.mu.Lock()
	s.adminPassword = p
	s.mu.Unlock()
}

func (s *Store) Employees() employee.EmployeeRepository         { return employeeRepo{s} }
func (s *Store) WorkingHours() workhours.WorkingHoursRepository { return workingHoursRepo{s} }
func (s *Store) LeaveRequests() leave.LeaveRequestRepository    { return leaveRepo{s} }
func (s *Store) ResignationRequests() resignation.ResignationRequestRepository {
	return resignationRepo{s}
}
func (s *Store) FoodItems() food.FoodItemRepository               { return foodItemRepo{s} }
func (s *Store) FoodTransactions() food.FoodTransactionRepository { return foodTxRepo{s} }
func (s *Store) Withdrawals() wage.WithdrawalRepository           { return withdrawalRepo{s} }
func (s *Store) Admin() adminRepo                                 { return adminRepo{s} }
func (s *Store) Transactor() Transactor                           { return Transactor{s} }

// FailFoodTransactions makes every food transaction insert return err until cleared with nil.
func (s *Store) FailFoodTransactions(err error) {
	s.mu.Lock()
	s.foodTxErr = err
	s.mu.Unlock()
}

// Transactor snapshots the food tables and restores them when fn fails.
type Transactor struct{ s *Store }

func (t Transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.s.mu.Lock()
	items := maps.Clone(t.s.foodItems)
	txs := maps.Clone(t.s.foodTxs)
	t.s.mu.Unlock()

	if err := fn(ctx); err != nil {
		t.s.mu.Lock()
		t.s.foodItems = items
		t.s.foodTxs = txs
		t.s.mu.Unlock()
		return err
	}
	return nil
}

// MustEmployee inserts an employee and returns it.
func (s *Store) MustEmployee(name string, position employee.Position) employee.Employee {
	emp, err := s.Employees().Create(context.Background(), employee.Employee{
		Name:     name,
		Position: position,
		JoinDate: time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		panic(err)
	}
	return emp
}

// AddWorkingHours inserts a closed record directly.
func (s *Store) AddWorkingHours(employeeID, date string, checkIn time.Time, hours float64) workhours.WorkingHours {
	wh := workhours.WorkingHours{EmployeeID: employeeID, Date: date, CheckIn: checkIn}
	wh.Close(checkIn.Add(time.Duration(hours * float64(time.Hour))))
	created, err := s.WorkingHours().Create(context.Background(), wh)
	if err != nil {
		panic(err)
	}
	return created
}

func (s *Store) employeeJoin(wh workhours.WorkingHours) workhours.WorkingHours {
	if emp, ok := s.employees[wh.EmployeeID]; ok {
		name, pos := emp.Name, string(emp.Position)
		wh.EmployeeName = &name
		wh.EmployeePosition = &pos
	}
	return wh
}

func (s *Store) employeeName(id string) *string {
	if emp, ok := s.employees[id]; ok {
		name := emp.Name
		return &name
	}
	return nil
}

// employees

type employeeRepo struct{ s *Store }

func (r employeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.employees {
		if existing.Name == e.Name && existing.Position == e.Position {
			return employee.Employee{}, employee.ErrEmployeeExists
		}
	}
	e.ID = uuid.NewString()
	e.CreatedAt = r.s.now()
	e.UpdatedAt = e.CreatedAt
	e.WorkingHours = nil
	r.s.employees[e.ID] = e
	return e, nil
}

func (r employeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	e, ok := r.s.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	e.WorkingHours = r.s.hoursFor(id)
	return e, nil
}

func (r employeeRepo) FindByNameAndPosition(ctx context.Context, name string, position employee.Position) (employee.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, e := range r.s.employees {
		if e.Name == name && e.Position == position {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r employeeRepo) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var result []employee.Employee
	for _, e := range r.s.employees {
		if filter.Name != nil && !strings.Contains(strings.ToLower(e.Name), strings.ToLower(*filter.Name)) {
			continue
		}
		if filter.Position != nil && string(e.Position) != *filter.Position {
			continue
		}
		e.WorkingHours = r.s.hoursFor(e.ID)
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r employeeRepo) Update(ctx context.Context, e employee.Employee) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.employees[e.ID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	for id, existing := range r.s.employees {
		if id != e.ID && existing.Name == e.Name && existing.Position == e.Position {
			return employee.ErrEmployeeExists
		}
	}
	e.UpdatedAt = r.s.now()
	e.WorkingHours = nil
	r.s.employees[e.ID] = e
	return nil
}

func (r employeeRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(r.s.employees, id)
	for whID, wh := range r.s.workingHours {
		if wh.EmployeeID == id {
			delete(r.s.workingHours, whID)
		}
	}
	return nil
}

func (r employeeRepo) Count(ctx context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.employees)), nil
}

func (s *Store) hoursFor(employeeID string) []workhours.WorkingHours {
	var result []workhours.WorkingHours
	for _, wh := range s.workingHours {
		if wh.EmployeeID == employeeID {
			result = append(result, wh)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CheckIn.Before(result[j].CheckIn) })
	return result
}

// working hours

type workingHoursRepo struct{ s *Store }

func (r workingHoursRepo) violates(wh workhours.WorkingHours) error {
	for id, existing := range r.s.workingHours {
		if id == wh.ID || existing.EmployeeID != wh.EmployeeID {
			continue
		}
		if wh.IsOpen() && existing.IsOpen() {
			return workhours.ErrActiveSessionExists
		}
		if existing.Date == wh.Date {
			return workhours.ErrAlreadyCheckedInToday
		}
	}
	return nil
}

func (r workingHoursRepo) Create(ctx context.Context, wh workhours.WorkingHours) (workhours.WorkingHours, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.violates(wh); err != nil {
		return workhours.WorkingHours{}, err
	}
	wh.ID = uuid.NewString()
	wh.CreatedAt = r.s.now()
	wh.UpdatedAt = wh.CreatedAt
	wh.EmployeeName, wh.EmployeePosition = nil, nil
	r.s.workingHours[wh.ID] = wh
	return wh, nil
}

func (r workingHoursRepo) GetByID(ctx context.Context, id string) (workhours.WorkingHours, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	wh, ok := r.s.workingHours[id]
	if !ok {
		return workhours.WorkingHours{}, workhours.ErrWorkingHoursNotFound
	}
	return r.s.employeeJoin(wh), nil
}

func (r workingHoursRepo) ListConflicting(ctx context.Context, employeeID string, date string) ([]workhours.WorkingHours, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var result []workhours.WorkingHours
	for _, wh := range r.s.workingHours {
		if wh.EmployeeID == employeeID && (wh.IsOpen() || wh.Date == date) {
			result = append(result, wh)
		}
	}
	return result, nil
}

func (r workingHoursRepo) Close(ctx context.Context, id string, checkOut time.Time, totalHours float64) (workhours.WorkingHours, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	wh, ok := r.s.workingHours[id]
	if !ok || !wh.IsOpen() {
		return workhours.WorkingHours{}, workhours.ErrNoActiveSession
	}
	wh.CheckOut = &checkOut
	wh.TotalHours = &totalHours
	wh.UpdatedAt = r.s.now()
	r.s.workingHours[id] = wh
	return wh, nil
}

func (r workingHoursRepo) GetOpenSession(ctx context.Context, employeeID string) (workhours.WorkingHours, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, wh := range r.s.workingHours {
		if wh.EmployeeID == employeeID && wh.IsOpen() {
			return r.s.employeeJoin(wh), nil
		}
	}
	return workhours.WorkingHours{}, workhours.ErrNoActiveSession
}

func (r workingHoursRepo) Update(ctx context.Context, wh workhours.WorkingHours) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.workingHours[wh.ID]
	if !ok {
		return workhours.ErrWorkingHoursNotFound
	}
	if err := r.violates(wh); err != nil {
		return err
	}
	wh.CreatedAt = existing.CreatedAt
	wh.UpdatedAt = r.s.now()
	wh.EmployeeName, wh.EmployeePosition = nil, nil
	r.s.workingHours[wh.ID] = wh
	return nil
}

func (r workingHoursRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.workingHours[id]; !ok {
		return workhours.ErrWorkingHoursNotFound
	}
	delete(r.s.workingHours, id)
	return nil
}

func (r workingHoursRepo) List(ctx context.Context, filter workhours.WorkingHoursFilter) ([]workhours.WorkingHours, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var result []workhours.WorkingHours
	for _, wh := range r.s.workingHours {
		if filter.EmployeeID != nil && wh.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Month != nil && !strings.HasPrefix(wh.Date, *filter.Month+"-") {
			continue
		}
		if filter.OpenOnly && !wh.IsOpen() {
			continue
		}
		result = append(result, r.s.employeeJoin(wh))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CheckIn.After(result[j].CheckIn) })
	return result, nil
}

func (r workingHoursRepo) ListOpenBefore(ctx context.Context, cutoff time.Time) ([]workhours.WorkingHours, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var result []workhours.WorkingHours
	for _, wh := range r.s.workingHours {
		if wh.IsOpen() && wh.CheckIn.Before(cutoff) {
			result = append(result, r.s.employeeJoin(wh))
		}
	}
	return result, nil
}

// leave requests

type leaveRepo struct{ s *Store }

func (r leaveRepo) Create(ctx context.Context, l leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	l.ID = uuid.NewString()
	l.CreatedAt = r.s.now()
	l.UpdatedAt = l.CreatedAt
	r.s.leaves[l.ID] = l
	return l, nil
}

func (r leaveRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	l, ok := r.s.leaves[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	l.EmployeeName = r.s.employeeName(l.EmployeeID)
	return l, nil
}

func (r leaveRepo) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var result []leave.LeaveRequest
	for _, l := range r.s.leaves {
		if filter.EmployeeID != nil && l.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Status != nil && l.Status != *filter.Status {
			continue
		}
		l.EmployeeName = r.s.employeeName(l.EmployeeID)
		result = append(result, l)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (r leaveRepo) UpdateStatus(ctx context.Context, id string, status approval.Status) (leave.LeaveRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	l, ok := r.s.leaves[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	if l.Status != approval.StatusPending {
		return leave.LeaveRequest{}, approval.ErrRequestAlreadyProcessed
	}
	l.Status = status
	l.UpdatedAt = r.s.now()
	r.s.leaves[id] = l
	l.EmployeeName = r.s.employeeName(l.EmployeeID)
	return l, nil
}

func (r leaveRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.leaves[id]; !ok {
		return leave.ErrLeaveRequestNotFound
	}
	delete(r.s.leaves, id)
	return nil
}

func (r leaveRepo) CountByStatus(ctx context.Context, status approval.Status) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var n int64
	for _, l := range r.s.leaves {
		if l.Status == status {
			n++
		}
	}
	return n, nil
}

// resignation requests

type resignationRepo struct{ s *Store }

func (r resignationRepo) Create(ctx context.Context, req resignation.ResignationRequest) (resignation.ResignationRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	req.ID = uuid.NewString()
	req.CreatedAt = r.s.now()
	req.UpdatedAt = req.CreatedAt
	r.s.resignations[req.ID] = req
	return req, nil
}

func (r resignationRepo) GetByID(ctx context.Context, id string) (resignation.ResignationRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	req, ok := r.s.resignations[id]
	if !ok {
		return resignation.ResignationRequest{}, resignation.ErrResignationRequestNotFound
	}
	req.EmployeeName = r.s.employeeName(req.EmployeeID)
	return req, nil
}

func (r resignationRepo) List(ctx context.Context, filter resignation.ResignationRequestFilter) ([]resignation.ResignationRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var result []resignation.ResignationRequest
	for _, req := range r.s.resignations {
		if filter.EmployeeID != nil && req.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Status != nil && req.Status != *filter.Status {
			continue
		}
		req.EmployeeName = r.s.employeeName(req.EmployeeID)
		result = append(result, req)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (r resignationRepo) UpdateStatus(ctx context.Context, id string, status approval.Status) (resignation.ResignationRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	req, ok := r.s.resignations[id]
	if !ok {
		return resignation.ResignationRequest{}, resignation.ErrResignationRequestNotFound
	}
	if req.Status != approval.StatusPending {
		return resignation.ResignationRequest{}, approval.ErrRequestAlreadyProcessed
	}
	req.Status = status
	req.UpdatedAt = r.s.now()
	r.s.resignations[id] = req
	req.EmployeeName = r.s.employeeName(req.EmployeeID)
	return req, nil
}

func (r resignationRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.resignations[id]; !ok {
		return resignation.ErrResignationRequestNotFound
	}
	delete(r.s.resignations, id)
	return nil
}

func (r resignationRepo) CountByStatus(ctx context.Context, status approval.Status) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var n int64
	for _, req := range r.s.resignations {
		if req.Status == status {
			n++
		}
	}
	return n, nil
}

// food

type foodItemRepo struct{ s *Store }

func (r foodItemRepo) Create(ctx context.Context, item food.FoodItem) (food.FoodItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	item.ID = uuid.NewString()
	item.CreatedAt = r.s.now()
	item.UpdatedAt = item.CreatedAt
	r.s.foodItems[item.ID] = item
	return item, nil
}

func (r foodItemRepo) GetByID(ctx context.Context, id string) (food.FoodItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	item, ok := r.s.foodItems[id]
	if !ok {
		return food.FoodItem{}, food.ErrFoodItemNotFound
	}
	return item, nil
}

func (r foodItemRepo) List(ctx context.Context, filter food.FoodItemFilter) ([]food.FoodItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var result []food.FoodItem
	for _, item := range r.s.foodItems {
		if filter.Type != nil && item.Type != *filter.Type {
			continue
		}
		result = append(result, item)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r foodItemRepo) Update(ctx context.Context, item food.FoodItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.foodItems[item.ID]
	if !ok {
		return food.ErrFoodItemNotFound
	}
	item.CreatedAt = existing.CreatedAt
	item.UpdatedAt = r.s.now()
	r.s.foodItems[item.ID] = item
	return nil
}

func (r foodItemRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.foodItems[id]; !ok {
		return food.ErrFoodItemNotFound
	}
	delete(r.s.foodItems, id)
	return nil
}

func (r foodItemRepo) AdjustQuantity(ctx context.Context, id string, delta int) (food.FoodItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	item, ok := r.s.foodItems[id]
	if !ok {
		return food.FoodItem{}, food.ErrFoodItemNotFound
	}
	if item.Quantity+delta < 0 {
		return food.FoodItem{}, food.ErrInsufficientStock
	}
	item.Quantity += delta
	item.UpdatedAt = r.s.now()
	r.s.foodItems[id] = item
	return item, nil
}

type foodTxRepo struct{ s *Store }

func (r foodTxRepo) Create(ctx context.Context, tx food.FoodTransaction) (food.FoodTransaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.foodTxErr != nil {
		return food.FoodTransaction{}, r.s.foodTxErr
	}
	tx.ID = uuid.NewString()
	tx.CreatedAt = r.s.now()
	r.s.foodTxs[tx.ID] = tx
	return tx, nil
}

func (r foodTxRepo) join(tx food.FoodTransaction) food.FoodTransaction {
	tx.EmployeeName = r.s.employeeName(tx.EmployeeID)
	if item, ok := r.s.foodItems[tx.FoodItemID]; ok {
		name := item.Name
		tx.FoodItemName = &name
	}
	return tx
}

func (r foodTxRepo) GetByID(ctx context.Context, id string) (food.FoodTransaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	tx, ok := r.s.foodTxs[id]
	if !ok {
		return food.FoodTransaction{}, food.ErrFoodTransactionNotFound
	}
	return r.join(tx), nil
}

func (r foodTxRepo) List(ctx context.Context, filter food.FoodTransactionFilter) ([]food.FoodTransaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var result []food.FoodTransaction
	for _, tx := range r.s.foodTxs {
		if filter.EmployeeID != nil && tx.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.FoodItemID != nil && tx.FoodItemID != *filter.FoodItemID {
			continue
		}
		if filter.Type != nil && tx.Type != *filter.Type {
			continue
		}
		result = append(result, r.join(tx))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

// wage withdrawals

type withdrawalRepo struct{ s *Store }

func withdrawalKey(employeeID, month string) string { return employeeID + "|" + month }

func (r withdrawalRepo) Create(ctx context.Context, w wage.Withdrawal) (wage.Withdrawal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := withdrawalKey(w.EmployeeID, w.Month)
	if _, exists := r.s.withdrawals[key]; exists {
		return wage.Withdrawal{}, wage.ErrAlreadyWithdrawn
	}
	w.ID = uuid.NewString()
	w.WithdrawnAt = r.s.now()
	r.s.withdrawals[key] = w
	return w, nil
}

func (r withdrawalRepo) Exists(ctx context.Context, employeeID, month string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	_, ok := r.s.withdrawals[withdrawalKey(employeeID, month)]
	return ok, nil
}

func (r withdrawalRepo) ListByMonth(ctx context.Context, month string) ([]wage.Withdrawal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var result []wage.Withdrawal
	for _, w := range r.s.withdrawals {
		if w.Month == month {
			result = append(result, w)
		}
	}
	return result, nil
}

// WithdrawalCount returns the number of stored markers for (employeeID, month).
func (s *Store) WithdrawalCount(employeeID, month string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, w := range s.withdrawals {
		if w.EmployeeID == employeeID && w.Month == month {
			n++
		}
	}
	return n
}

// admin

type adminRepo struct{ s *Store }

func (r adminRepo) VerifyPassword(ctx context.Context, password string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.adminPassword != "" && password == r.s.adminPassword, nil
}

// dashboard

type dashboardRepo struct{ s *Store }

func (s *Store) Dashboard() dashboardRepo { return dashboardRepo{s} }

func (r dashboardRepo) CountOpenSessions(ctx context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var n int64
	for _, wh := range r.s.workingHours {
		if wh.IsOpen() {
			n++
		}
	}
	return n, nil
}

func (r dashboardRepo) SumHoursForMonth(ctx context.Context, month string) (float64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var total float64
	for _, wh := range r.s.workingHours {
		if strings.HasPrefix(wh.Date, month+"-") {
			total += wh.Hours()
		}
	}
	return total, nil
}

// SetNow replaces the timestamp source used for created_at and updated_at.
func (s *Store) SetNow(now func() time.Time) {
	s.mu.Lock()
	s.now = now
	s.mu.Unlock()
}
