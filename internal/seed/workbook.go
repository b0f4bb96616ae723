package seed

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/stemsi/campus-api/internal/model"
	"github.com/xuri/excelize/v2"
)

// Sheet names read from a seed workbook.
const (
	CampusSheet  = "Campuses"
	StudentSheet = "Students"
)

var (
	campusColumns  = []string{"name", "address", "description", "imageurl"}
	studentColumns = []string{"firstname", "lastname", "email", "gpa", "imageurl", "campus"}
)

// CampusRow is one campus read from the workbook.
type CampusRow struct {
	Row     int
	Request model.CreateCampusRequest
}

// StudentRow is one student read from the workbook. Campus holds the
// campus name to resolve; empty means unassigned.
type StudentRow struct {
	Row     int
	Campus  string
	Request model.CreateStudentRequest
}

// RowError records a row that was skipped.
type RowError struct {
	Sheet string
	Row   int
	Err   error
}

func (e RowError) Error() string {
	return fmt.Sprintf("%s row %d: %v", e.Sheet, e.Row, e.Err)
}

// Workbook holds the parsed contents of a seed file.
type Workbook struct {
	Campuses []CampusRow
	Students []StudentRow
	Skipped  []RowError
}

// Open reads a workbook from r and parses it.
func Open(r io.Reader) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse extracts campuses and students from f. Columns are located by
// their header in the first row, so order does not matter. Blank rows are
// ignored; rows with unparsable values land in Skipped. A missing sheet is
// treated as empty, but a workbook with neither sheet is an error.
func Parse(f *excelize.File) (*Workbook, error) {
	campusRows, hasCampuses, err := readSheet(f, CampusSheet)
	if err != nil {
		return nil, err
	}
	studentRows, hasStudents, err := readSheet(f, StudentSheet)
	if err != nil {
		return nil, err
	}
	if !hasCampuses && !hasStudents {
		return nil, fmt.Errorf("workbook has no %q or %q sheet", CampusSheet, StudentSheet)
	}

	wb := &Workbook{}

	if len(campusRows) > 0 {
		cols, err := locate(campusRows[0], campusColumns)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", CampusSheet, err)
		}
		for i, row := range campusRows[1:] {
			if blank(row) {
				continue
			}
			wb.Campuses = append(wb.Campuses, CampusRow{
				Row: i + 2,
				Request: model.CreateCampusRequest{
					Name:        cell(row, cols["name"]),
					Address:     cell(row, cols["address"]),
					Description: cell(row, cols["description"]),
					ImageURL:    cell(row, cols["imageurl"]),
				},
			})
		}
	}

	if len(studentRows) > 0 {
		cols, err := locate(studentRows[0], studentColumns)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", StudentSheet, err)
		}
		for i, row := range studentRows[1:] {
			if blank(row) {
				continue
			}
			rowNum := i + 2

			req := model.CreateStudentRequest{
				Firstname: cell(row, cols["firstname"]),
				Lastname:  cell(row, cols["lastname"]),
				Email:     cell(row, cols["email"]),
			}
			if v := cell(row, cols["imageurl"]); v != "" {
				req.ImageURL = &v
			}
			if v := cell(row, cols["gpa"]); v != "" {
				gpa, err := strconv.ParseFloat(v, 64)
				if err != nil {
					wb.Skipped = append(wb.Skipped, RowError{Sheet: StudentSheet, Row: rowNum, Err: fmt.Errorf("gpa %q is not a number", v)})
					continue
				}
				req.GPA = &gpa
			}

			wb.Students = append(wb.Students, StudentRow{
				Row:     rowNum,
				Campus:  cell(row, cols["campus"]),
				Request: req,
			})
		}
	}

	return wb, nil
}

func readSheet(f *excelize.File, name string) ([][]string, bool, error) {
	if idx, err := f.GetSheetIndex(name); err != nil || idx < 0 {
		return nil, false, nil
	}
	rows, err := f.GetRows(name)
	if err != nil {
		return nil, true, fmt.Errorf("read sheet %s: %w", name, err)
	}
	return rows, true, nil
}

// locate maps each wanted column to its index in header. Optional columns
// that are absent map to -1.
func locate(header []string, wanted []string) (map[string]int, error) {
	cols := make(map[string]int, len(wanted))
	for _, w := range wanted {
		cols[w] = -1
	}
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		if _, ok := cols[key]; ok && cols[key] < 0 {
			cols[key] = i
		}
	}

	var missing []string
	for _, required := range wanted[:2] {
		if cols[required] < 0 {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return nil, errors.New("missing column(s): " + strings.Join(missing, ", "))
	}
	return cols, nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func blank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
