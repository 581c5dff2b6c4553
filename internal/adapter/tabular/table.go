package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"campaign-roi/internal/core/port"
)

var (
	errMissingColumn = errors.New("required column is missing")
	errEmptyTable    = errors.New("no header row")
)

// table is a header plus string cells, independent of the file format.
type table struct {
	name   string
	header []string
	rows   [][]string
	// nums holds the 1-based data row number of each entry in rows, as
	// counted in the file before blank rows were dropped.
	nums []int

	// serialDates is set for spreadsheets, where date cells hold Excel
	// serial numbers rather than text.
	serialDates bool
}

// readTable reads path as CSV or XLSX depending on its extension.
func readTable(path string) (*table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return readXLSX(path)
	default:
		return readCSV(path)
	}
}

func readCSV(path string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &port.LoadError{Source: path, Err: err}
	}
	defer f.Close()
	return parseCSV(path, f)
}

func parseCSV(name string, r io.Reader) (*table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	t := &table{name: name}
	headerLine := 0
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				row := 0
				if t.header != nil {
					row = pe.Line - headerLine
				}
				return nil, &port.LoadError{Source: name, Row: row, Err: pe.Err}
			}
			return nil, &port.LoadError{Source: name, Err: err}
		}
		line, _ := reader.FieldPos(0)
		if t.header == nil {
			t.header, headerLine = rec, line
			continue
		}
		t.rows = append(t.rows, rec)
		t.nums = append(t.nums, line-headerLine)
	}
	return t.normalize()
}

func readXLSX(path string) (*table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &port.LoadError{Source: path, Err: err}
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0), excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &port.LoadError{Source: path, Err: err}
	}

	t := &table{name: path, serialDates: true}
	if len(rows) > 0 {
		t.header, t.rows = rows[0], rows[1:]
	}
	for i := range t.rows {
		t.nums = append(t.nums, i+1)
	}
	return t.normalize()
}

// normalize trims header names, drops a UTF-8 byte order mark and removes
// blank rows. Remaining rows keep their original row numbers.
func (t *table) normalize() (*table, error) {
	if len(t.header) == 0 {
		return nil, &port.LoadError{Source: t.name, Err: errEmptyTable}
	}
	for i, h := range t.header {
		t.header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	rows, nums := t.rows[:0], t.nums[:0]
	for i, row := range t.rows {
		if !blank(row) {
			rows = append(rows, row)
			nums = append(nums, t.nums[i])
		}
	}
	t.rows, t.nums = rows, nums
	return t, nil
}

func blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// columns maps every required column to its index. Columns not listed are
// ignored.
func (t *table) columns(required []string) (map[string]int, error) {
	pos := make(map[string]int, len(t.header))
	for i, h := range t.header {
		if _, dup := pos[h]; !dup {
			pos[h] = i
		}
	}
	idx := make(map[string]int, len(required))
	for _, name := range required {
		i, ok := pos[name]
		if !ok {
			return nil, &port.LoadError{Source: t.name, Column: name, Err: errMissingColumn}
		}
		idx[name] = i
	}
	return idx, nil
}

// cell returns the trimmed value of column col in row; short rows read as
// empty cells.
func cell(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

func (t *table) errorf(row int, column string, format string, args ...any) error {
	return &port.LoadError{Source: t.name, Row: row, Column: column, Err: fmt.Errorf(format, args...)}
}
