package workhours

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/workhours"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/spreadsheet"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/validator"
)

var requiredColumns = []string{workhours.ColumnName, workhours.ColumnPosition, workhours.ColumnDate, workhours.ColumnCheckIn}

// Import implements workhours.WorkingHoursService.
func (s *WorkingHoursServiceImpl) Import(ctx context.Context, file io.Reader, filename string) (workhours.ImportSummary, error) {
	rows, err := spreadsheet.ReadRows(file, filename)
	if err != nil {
		return workhours.ImportSummary{}, fmt.Errorf("%w: %w", workhours.ErrInvalidImportFile, err)
	}

	if err := spreadsheet.RequireColumns(rows[0], requiredColumns...); err != nil {
		return workhours.ImportSummary{}, fmt.Errorf("%w: %w", workhours.ErrInvalidImportFile, err)
	}

	var records []importRecord
	if err := spreadsheet.Decode(rows, &records); err != nil {
		return workhours.ImportSummary{}, fmt.Errorf("%w: %w", workhours.ErrInvalidImportFile, err)
	}

	summary := workhours.ImportSummary{Errors: []string{}}
	for i, row := range rows[1:] {
		if spreadsheet.IsBlank(row) || i >= len(records) {
			continue
		}
		rowNum := i + 1

		if err := s.importRow(ctx, records[i]); err != nil {
			summary.Failed++
			summary.Errors = append(summary.Errors, fmt.Sprintf("Row %d: %s", rowNum, rowMessage(err)))
			continue
		}
		summary.Success++
	}

	return summary, nil
}

// importRecord is one data row, matched to the sheet by header name. Tags
// follow the workhours.Column* headers.
type importRecord struct {
	Name     string `csv:"Name"`
	Position string `csv:"Position"`
	Date     string `csv:"Date (YYYY-MM-DD)"`
	CheckIn  string `csv:"Check In (YYYY-MM-DD HH:mm:ss)"`
	CheckOut string `csv:"Check Out (YYYY-MM-DD HH:mm:ss)"`
	Notes    string `csv:"Notes"`
}

func (s *WorkingHoursServiceImpl) importRow(ctx context.Context, rec importRecord) error {
	name := rec.Name
	position := employee.Position(rec.Position)
	if name == "" {
		return errors.New("name is required")
	}
	if !position.IsValid() {
		return fmt.Errorf("%w: %q", employee.ErrInvalidPosition, position)
	}

	date, err := s.parseImportDate(rec.Date)
	if err != nil {
		return err
	}
	checkIn, err := s.parseImportTime(rec.CheckIn, workhours.ColumnCheckIn)
	if err != nil {
		return err
	}
	var checkOut *time.Time
	if rec.CheckOut != "" {
		t, err := s.parseImportTime(rec.CheckOut, workhours.ColumnCheckOut)
		if err != nil {
			return err
		}
		checkOut = &t
	}
	var notes *string
	if rec.Notes != "" {
		notes = &rec.Notes
	}

	emp, err := s.employeeRepo.FindByNameAndPosition(ctx, name, position)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return fmt.Errorf("employee %q with position %q not found", name, position)
		}
		return err
	}

	_, err = s.createRecord(ctx, emp.ID, date, checkIn, checkOut, notes)
	return err
}

// parseImportDate accepts YYYY-MM-DD text or an Excel serial date.
func (s *WorkingHoursServiceImpl) parseImportDate(raw string) (string, error) {
	if _, ok := validator.IsValidDate(raw); ok {
		return raw, nil
	}
	if t, ok := excelSerial(raw, s.loc); ok {
		return t.Format(validator.DateLayout), nil
	}
	return "", fmt.Errorf("invalid %s value %q", workhours.ColumnDate, raw)
}

// parseImportTime interprets wall-clock text or an Excel serial in the configured timezone.
func (s *WorkingHoursServiceImpl) parseImportTime(raw, column string) (time.Time, error) {
	if t, ok := validator.ParseDateTimeIn(raw, s.loc); ok {
		return t, nil
	}
	if t, ok := excelSerial(raw, s.loc); ok {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid %s value %q", column, raw)
}

func excelSerial(raw string, loc *time.Location) (time.Time, bool) {
	serial, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || serial <= 0 {
		return time.Time{}, false
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc), true
}

// rowMessage reports a time-clock rule by its own message, without wrapping context.
func rowMessage(err error) string {
	for _, rule := range []error{
		workhours.ErrActiveSessionExists,
		workhours.ErrAlreadyCheckedInToday,
		workhours.ErrCheckOutNotAfterCheckIn,
		workhours.ErrFutureTimestamp,
		workhours.ErrDateMismatch,
	} {
		if errors.Is(err, rule) {
			return rule.Error()
		}
	}
	return err.Error()
}
