package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/extrame/xls"
	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"
)

const maxXLSRows = 100000

// ReadRows returns every row of the first sheet, header included.
func ReadRows(r io.Reader, filename string) ([][]string, error) {
	format, err := FormatFromFilename(filename)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}

	var rows [][]string
	switch format {
	case FormatXLS:
		workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
		if err != nil {
			return nil, fmt.Errorf("open xls: %w", err)
		}
		if workbook.NumSheets() == 0 {
			return nil, ErrEmptySheet
		}
		rows = workbook.ReadAllCells(maxXLSRows)
	case FormatXLSX:
		file, err := excelize.OpenReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("open xlsx: %w", err)
		}
		defer func() { _ = file.Close() }()

		sheetName := file.GetSheetName(0)
		if sheetName == "" {
			return nil, ErrEmptySheet
		}
		rows, err = file.GetRows(sheetName)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", sheetName, err)
		}
	default:
		reader := csv.NewReader(bytes.NewReader(data))
		reader.FieldsPerRecord = -1
		rows, err = reader.ReadAll()
		if err != nil {
			return nil, fmt.Errorf("parse csv: %w", err)
		}
	}

	if len(rows) == 0 {
		return nil, ErrEmptySheet
	}
	return rows, nil
}

// Decode maps the data rows onto out, a pointer to a slice of structs tagged
// `csv:"<header>"`. out gets one element per data row, blank rows included, so
// element i is row i+1 of the sheet.
func Decode(rows [][]string, out any) error {
	if len(rows) == 0 {
		return ErrEmptySheet
	}
	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = headerName(h)
	}
	trimmed := make([][]string, 0, len(rows))
	trimmed = append(trimmed, header)
	for _, row := range rows[1:] {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = strings.TrimSpace(c)
		}
		trimmed = append(trimmed, cells)
	}

	if err := gocsv.UnmarshalCSV(&rowReader{rows: trimmed}, out); err != nil {
		return fmt.Errorf("decode rows: %w", err)
	}
	return nil
}

// rowReader feeds already parsed rows to gocsv.
type rowReader struct {
	rows [][]string
	next int
}

func (r *rowReader) Read() ([]string, error) {
	if r.next >= len(r.rows) {
		return nil, io.EOF
	}
	row := r.rows[r.next]
	r.next++
	return row, nil
}

func (r *rowReader) ReadAll() ([][]string, error) {
	rest := r.rows[r.next:]
	r.next = len(r.rows)
	return rest, nil
}

func headerName(h string) string {
	return strings.TrimPrefix(strings.TrimSpace(h), "\ufeff")
}

// RequireColumns reports every required column missing from header. Header
// names are matched exactly after trimming.
func RequireColumns(header []string, required ...string) error {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[headerName(h)] = true
	}

	var missing []string
	for _, col := range required {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return nil
}

// IsBlank reports whether every cell of row is empty.
func IsBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
