package report

import (
	"strconv"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/food"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/resignation"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/wage"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/workhours"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/spreadsheet"
)

var employeeColumns = []spreadsheet.Column[employee.EmployeeResponse]{
	{Header: "Name", Value: func(e employee.EmployeeResponse) string { return e.Name }},
	{Header: "Position", Value: func(e employee.EmployeeResponse) string { return e.Position }},
	{Header: "Join Date", Value: func(e employee.EmployeeResponse) string { return e.JoinDate }},
	{Header: "Total Hours", Value: func(e employee.EmployeeResponse) string { return formatHours(e.TotalHours) }},
}

// workingHoursColumns mirror the import header so an export can be re-imported.
func (s *ReportServiceImpl) workingHoursColumns() []spreadsheet.Column[workhours.WorkingHoursResponse] {
	return []spreadsheet.Column[workhours.WorkingHoursResponse]{
		{Header: workhours.ColumnName, Value: func(w workhours.WorkingHoursResponse) string { return deref(w.EmployeeName) }},
		{Header: workhours.ColumnPosition, Value: func(w workhours.WorkingHoursResponse) string { return deref(w.EmployeePosition) }},
		{Header: workhours.ColumnDate, Value: func(w workhours.WorkingHoursResponse) string { return w.Date }},
		{Header: workhours.ColumnCheckIn, Value: func(w workhours.WorkingHoursResponse) string { return localTime(w.CheckIn, s.loc) }},
		{Header: workhours.ColumnCheckOut, Value: func(w workhours.WorkingHoursResponse) string {
			if w.CheckOut == nil {
				return ""
			}
			return localTime(*w.CheckOut, s.loc)
		}},
		{Header: workhours.ColumnTotalHours, Value: func(w workhours.WorkingHoursResponse) string {
			if w.TotalHours == nil {
				return ""
			}
			return formatHours(*w.TotalHours)
		}},
		{Header: workhours.ColumnNotes, Value: func(w workhours.WorkingHoursResponse) string { return deref(w.Notes) }},
	}
}

var leaveColumns = []spreadsheet.Column[leave.LeaveRequestResponse]{
	{Header: "Employee", Value: func(l leave.LeaveRequestResponse) string { return deref(l.EmployeeName) }},
	{Header: "Start Date", Value: func(l leave.LeaveRequestResponse) string { return l.StartDate }},
	{Header: "End Date", Value: func(l leave.LeaveRequestResponse) string { return l.EndDate }},
	{Header: "Days", Value: func(l leave.LeaveRequestResponse) string { return strconv.Itoa(l.Days) }},
	{Header: "Reason", Value: func(l leave.LeaveRequestResponse) string { return l.Reason }},
	{Header: "Status", Value: func(l leave.LeaveRequestResponse) string { return l.Status }},
}

var resignationColumns = []spreadsheet.Column[resignation.ResignationRequestResponse]{
	{Header: "Employee", Value: func(r resignation.ResignationRequestResponse) string { return deref(r.EmployeeName) }},
	{Header: "Passport", Value: func(r resignation.ResignationRequestResponse) string { return r.Passport }},
	{Header: "IC Reason", Value: func(r resignation.ResignationRequestResponse) string { return r.ICReason }},
	{Header: "OOC Reason", Value: func(r resignation.ResignationRequestResponse) string { return r.OOCReason }},
	{Header: "Request Date", Value: func(r resignation.ResignationRequestResponse) string { return r.RequestDate }},
	{Header: "Status", Value: func(r resignation.ResignationRequestResponse) string { return r.Status }},
}

var foodItemColumns = []spreadsheet.Column[food.FoodItemResponse]{
	{Header: "Name", Value: func(f food.FoodItemResponse) string { return f.Name }},
	{Header: "Type", Value: func(f food.FoodItemResponse) string { return f.Type }},
	{Header: "Quantity", Value: func(f food.FoodItemResponse) string { return strconv.Itoa(f.Quantity) }},
}

func (s *ReportServiceImpl) foodTransactionColumns() []spreadsheet.Column[food.FoodTransactionResponse] {
	return []spreadsheet.Column[food.FoodTransactionResponse]{
		{Header: "Time", Value: func(f food.FoodTransactionResponse) string { return localTime(f.CreatedAt, s.loc) }},
		{Header: "Employee", Value: func(f food.FoodTransactionResponse) string { return deref(f.EmployeeName) }},
		{Header: "Item", Value: func(f food.FoodTransactionResponse) string { return deref(f.FoodItemName) }},
		{Header: "Type", Value: func(f food.FoodTransactionResponse) string { return f.Type }},
		{Header: "Quantity", Value: func(f food.FoodTransactionResponse) string { return strconv.Itoa(f.Quantity) }},
		{Header: "Notes", Value: func(f food.FoodTransactionResponse) string { return deref(f.Notes) }},
	}
}

var wageColumns = []spreadsheet.Column[wage.EmployeeWageResponse]{
	{Header: "Employee", Value: func(w wage.EmployeeWageResponse) string { return w.EmployeeName }},
	{Header: "Position", Value: func(w wage.EmployeeWageResponse) string { return w.Position }},
	{Header: "Month", Value: func(w wage.EmployeeWageResponse) string { return w.Month }},
	{Header: "Total Hours", Value: func(w wage.EmployeeWageResponse) string { return formatHours(w.TotalHours) }},
	{Header: "Hourly Rate", Value: func(w wage.EmployeeWageResponse) string { return w.HourlyRate }},
	{Header: "Base Wage", Value: func(w wage.EmployeeWageResponse) string { return w.BaseWage }},
	{Header: "Performance Bonus", Value: func(w wage.EmployeeWageResponse) string { return w.PerformanceBonus }},
	{Header: "Fixed Bonus", Value: func(w wage.EmployeeWageResponse) string { return w.FixedBonus }},
	{Header: "Total Wage", Value: func(w wage.EmployeeWageResponse) string {
		if w.Error != nil {
			return *w.Error
		}
		return w.Display
	}},
	{Header: "Withdrawn", Value: func(w wage.EmployeeWageResponse) string { return strconv.FormatBool(w.Withdrawn) }},
}
