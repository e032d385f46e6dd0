package spreadsheet

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type person struct {
	Name string
	Note string
}

var personColumns = []Column[person]{
	{Header: "Name", Value: func(p person) string { return p.Name }},
	{Header: "Note", Value: func(p person) string { return p.Note }},
}

func TestWriteCSV_QuotesSpecialCharacters(t *testing.T) {
	table := Build([]person{
		{Name: "Budi", Note: "plain"},
		{Name: "Sari, S.Kom", Note: `said "hi"`},
		{Name: "Tono", Note: "line1\nline2"},
	}, personColumns)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, table))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Name,Note\n"))
	assert.Contains(t, out, `"Sari, S.Kom"`)
	assert.Contains(t, out, `"said ""hi"""`)
	assert.Contains(t, out, "\"line1\nline2\"")
}

func TestCSVRoundTrip(t *testing.T) {
	table := Build([]person{{Name: "Sari, S.Kom", Note: `a "b"`}}, personColumns)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, table))

	rows, err := ReadRows(&buf, "people.csv")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Name", "Note"}, rows[0])
	assert.Equal(t, []string{"Sari, S.Kom", `a "b"`}, rows[1])
}

func TestXLSXRoundTrip(t *testing.T) {
	table := Build([]person{{Name: "Budi", Note: "x"}, {Name: "Sari", Note: ""}}, personColumns)

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, "people", table))

	rows, err := ReadRows(&buf, "people.xlsx")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 3)
	assert.Equal(t, []string{"Name", "Note"}, rows[0])
	assert.Equal(t, []string{"Budi", "x"}, rows[1])
	assert.Equal(t, "Sari", rows[2][0])
}

func TestReadRows_CSVAllowsShortRows(t *testing.T) {
	in := "Name,Position,Notes\nBudi,Karyawan\n"

	rows, err := ReadRows(strings.NewReader(in), "import.csv")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Len(t, rows[1], 2)
}

func TestReadRows_Errors(t *testing.T) {
	_, err := ReadRows(strings.NewReader("x"), "import.pdf")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = ReadRows(strings.NewReader(""), "import.csv")
	assert.ErrorIs(t, err, ErrEmptySheet)

	_, err = ReadRows(strings.NewReader("not a zip"), "import.xlsx")
	assert.Error(t, err)
}

func TestRequireColumns(t *testing.T) {
	header := []string{"\ufeffName", " Position ", "Notes"}

	require.NoError(t, RequireColumns(header, "Name", "Position"))

	err := RequireColumns(header, "Name", "Date", "Check In")
	assert.ErrorIs(t, err, ErrMissingColumn)
	assert.Contains(t, err.Error(), "Date, Check In")
}

type decodedRow struct {
	Name  string `csv:"Name"`
	Notes string `csv:"Notes"`
}

func TestDecode_MatchesHeadersAndKeepsRowPositions(t *testing.T) {
	rows := [][]string{
		{"\ufeffName", "Ignored", " Notes "},
		{" Budi ", "x", "early"},
		{"", "", ""},
		{"Sari"},
	}

	var out []decodedRow
	require.NoError(t, Decode(rows, &out))
	assert.Equal(t, []decodedRow{
		{Name: "Budi", Notes: "early"},
		{},
		{Name: "Sari"},
	}, out)
}

func TestDecode_EmptySheet(t *testing.T) {
	var out []decodedRow
	assert.ErrorIs(t, Decode(nil, &out), ErrEmptySheet)
}

func TestFilename(t *testing.T) {
	day := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, "employees_2024-03-15.csv", Filename("employees", FormatCSV, day))
	assert.Equal(t, "wages_2024-03-15.xlsx", Filename("wages", FormatXLSX, day))
}

func TestParseExportFormat(t *testing.T) {
	f, err := ParseExportFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	f, err = ParseExportFormat("XLSX")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)

	_, err = ParseExportFormat("xls")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank([]string{"", "  "}))
	assert.True(t, IsBlank(nil))
	assert.False(t, IsBlank([]string{"", "x"}))
}
