package dataset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrBadSource marks structural load failures: unreadable workbook,
// empty sheet, or missing required columns. Row-level defects are not
// structural and degrade per record instead.
var ErrBadSource = errors.New("activity source is unreadable or malformed")

// requiredColumns maps canonical column keys to header names as they
// appear in the source. Header matching is case-insensitive and ignores
// surrounding whitespace.
var requiredColumns = []string{
	"teacher_id",
	"teacher_name",
	"activity_type",
	"grade",
	"subject",
	"created_at",
}

// LoadWorkbook reads the activity sheet from the Excel workbook at path
// and returns one RawRow per data row. The first row is the header; when
// sheet is empty the workbook's first sheet is used.
func LoadWorkbook(path, sheet string) ([]RawRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrBadSource, path, err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: read sheet %q: %v", ErrBadSource, sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: sheet %q has no header row", ErrBadSource, sheet)
	}

	columns, err := mapColumns(rows[0])
	if err != nil {
		return nil, err
	}

	raw := make([]RawRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}
		raw = append(raw, RawRow{
			TeacherID:    cell(row, columns["teacher_id"]),
			TeacherName:  cell(row, columns["teacher_name"]),
			ActivityType: cell(row, columns["activity_type"]),
			Grade:        cell(row, columns["grade"]),
			Subject:      cell(row, columns["subject"]),
			CreatedAt:    cell(row, columns["created_at"]),
		})
	}
	return raw, nil
}

// mapColumns resolves header names to column positions.
func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(requiredColumns))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, seen := columns[key]; !seen {
			columns[key] = i
		}
	}
	for _, key := range requiredColumns {
		if _, ok := columns[key]; !ok {
			return nil, fmt.Errorf("%w: missing required column %q", ErrBadSource, key)
		}
	}
	return columns, nil
}

func cell(row []string, idx int) string {
	if idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}

func isEmptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
