package finreport

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

// Column names of the CSV reports.
const (
	ColDay        = "Day"
	ColCashOnHand = "Cash On Hand"
	ColNetProfit  = "Net Profit"
	ColCategory   = "Category"
	ColOverheads  = "Overheads"
)

// SchemaError reports a required column missing from a CSV report.
type SchemaError struct {
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("required column %q is missing", e.Column)
}

// FormatError reports a cell value that cannot be coerced to its
// column's type.
type FormatError struct {
	Column string
	Value  string
	Err    error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid value %q in column %q: %v", e.Value, e.Column, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// DecodeDailyRecords reads a daily CSV report from 'r' into typed
// records, preserving the source row order.
//
// The report must have a header row naming a "Day" column (integer) and
// the given value column (decimal). Any other column is ignored. A
// missing column yields a *SchemaError, a cell that fails coercion a
// *FormatError.
func DecodeDailyRecords(r io.Reader, valueColumn string) ([]DailyRecord, error) {
	rows, err := decodeRows(r, ColDay, valueColumn)
	if err != nil {
		return nil, err
	}
	records := make([]DailyRecord, 0, len(rows))
	for _, row := range rows {
		day, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, &FormatError{Column: ColDay, Value: row[0], Err: err}
		}
		value, err := ParseAmount(row[1])
		if err != nil {
			return nil, &FormatError{Column: valueColumn, Value: row[1], Err: err}
		}
		records = append(records, DailyRecord{Day: day, Value: value})
	}
	return records, nil
}

// DecodeOverheadRecords reads the overheads CSV report from 'r',
// preserving the source row order.
//
// The report must have a header row naming a "Category" column (text)
// and an "Overheads" column (decimal, a percentage). Duplicate
// categories are passed through untouched.
func DecodeOverheadRecords(r io.Reader) ([]OverheadRecord, error) {
	rows, err := decodeRows(r, ColCategory, ColOverheads)
	if err != nil {
		return nil, err
	}
	records := make([]OverheadRecord, 0, len(rows))
	for _, row := range rows {
		percent, err := ParsePercent(row[1])
		if err != nil {
			return nil, &FormatError{Column: ColOverheads, Value: row[1], Err: err}
		}
		records = append(records, OverheadRecord{Category: row[0], Percent: percent})
	}
	return records, nil
}

// decodeRows reads the header, locates the requested columns, and
// returns their cells for every data row in source order. A leading
// byte-order mark is stripped so it cannot corrupt the first column
// name.
func decodeRows(r io.Reader, columns ...string) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &SchemaError{Column: columns[0]}
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read CSV header: %w", err)
	}
	header[0] = strings.TrimPrefix(header[0], "\ufeff")

	index := make([]int, len(columns))
	for i, name := range columns {
		index[i] = slices.Index(header, name)
		if index[i] < 0 {
			return nil, &SchemaError{Column: name}
		}
	}

	var rows [][]string
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read CSV row: %w", err)
		}
		cells := make([]string, len(columns))
		for i, j := range index {
			if j >= len(record) {
				return nil, &SchemaError{Column: columns[i]}
			}
			cells[i] = record[j]
		}
		rows = append(rows, cells)
	}
	return rows, nil
}
