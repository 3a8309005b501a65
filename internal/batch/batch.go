// Package batch reads utilisation loads from spreadsheet uploads.
package batch

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/eugenenazirov/wagon-calculator/internal/calculator"
)

// MaxRows bounds the number of load rows accepted from a single workbook.
const MaxRows = 1000

var (
	// ErrInvalidWorkbook indicates the upload is not a readable XLSX workbook.
	ErrInvalidWorkbook = errors.New("invalid workbook")
	// ErrEmptySheet indicates the first sheet has no load rows below the header.
	ErrEmptySheet = errors.New("sheet contains no load rows")
	// ErrTooManyRows indicates the sheet exceeds MaxRows load rows.
	ErrTooManyRows = errors.New("sheet contains too many load rows")
)

// Row is one load read from the sheet. Err is set when the row could not be
// parsed; Line is the 1-based spreadsheet row number.
type Row struct {
	Line    int
	Vehicle string
	Input   calculator.LoadInput
	Err     error
}

// ParseLoads reads the first sheet of an XLSX workbook. The first row is a
// header; each following row holds vehicle, doors and pallets columns.
// Blank rows are skipped and empty numeric cells count as zero.
func ParseLoads(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWorkbook, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWorkbook, err)
	}

	rows := make([]Row, 0, len(records))
	for i := 1; i < len(records); i++ {
		record := records[i]
		if isBlank(record) {
			continue
		}
		if len(rows) == MaxRows {
			return nil, fmt.Errorf("%w: limit is %d", ErrTooManyRows, MaxRows)
		}
		rows = append(rows, parseRow(i+1, record))
	}
	if len(rows) == 0 {
		return nil, ErrEmptySheet
	}
	return rows, nil
}

func parseRow(line int, record []string) Row {
	row := Row{Line: line, Vehicle: strings.TrimSpace(cell(record, 0))}
	if row.Vehicle == "" {
		row.Err = fmt.Errorf("%w: vehicle is required", calculator.ErrInvalidInput)
		return row
	}

	doors, err := parseDoors(cell(record, 1))
	if err != nil {
		row.Err = err
		return row
	}
	pallets, err := parsePallets(cell(record, 2))
	if err != nil {
		row.Err = err
		return row
	}

	row.Input = calculator.LoadInput{Doors: doors, Pallets: pallets}
	return row
}

func parseDoors(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value != math.Trunc(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: doors %q is not a whole number", calculator.ErrInvalidInput, raw)
	}
	if value < 0 || value >= math.MaxInt {
		return 0, fmt.Errorf("%w: doors %q is out of range", calculator.ErrInvalidInput, raw)
	}
	return int(value), nil
}

func parsePallets(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: pallets %q is not a number", calculator.ErrInvalidInput, raw)
	}
	return value, nil
}

func cell(record []string, idx int) string {
	if idx < len(record) {
		return record[idx]
	}
	return ""
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
