package excel

import (
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/xuri/excelize/v2"
)

// rangeRef is a parsed range address. Columns are 1-based and always
// bounded; rows are 1-based with zero meaning unbounded ("Sheet!A:D").
type rangeRef struct {
	sheet    string
	firstCol int
	lastCol  int
	firstRow int
	lastRow  int
}

// parseAddress parses an address of the form "Sheet1!A2:D10" or, with open
// row bounds, "Sheet1!A:D".
func parseAddress(address string) (rangeRef, error) {
	sheet, bounds, ok := strings.Cut(address, "!")
	if !ok || sheet == "" {
		return rangeRef{}, errors.Newf("malformed range address %q", address)
	}
	start, end, ok := strings.Cut(bounds, ":")
	if !ok {
		return rangeRef{}, errors.Newf("malformed range address %q", address)
	}

	firstCol, firstRow, err := parseEndpoint(start)
	if err != nil {
		return rangeRef{}, errors.Wrapf(err, "malformed range address %q", address)
	}
	lastCol, lastRow, err := parseEndpoint(end)
	if err != nil {
		return rangeRef{}, errors.Wrapf(err, "malformed range address %q", address)
	}

	return rangeRef{
		sheet:    sheet,
		firstCol: firstCol,
		lastCol:  lastCol,
		firstRow: firstRow,
		lastRow:  lastRow,
	}, nil
}

// parseEndpoint parses one side of a range reference: a column letter with
// an optional 1-based row number ("D", "D10"). A missing row parses as 0.
func parseEndpoint(ref string) (col, row int, err error) {
	i := 0
	for i < len(ref) && (ref[i] < '0' || ref[i] > '9') {
		i++
	}
	col, err = excelize.ColumnNameToNumber(ref[:i])
	if err != nil {
		return 0, 0, err
	}
	if i == len(ref) {
		return col, 0, nil
	}
	row, err = strconv.Atoi(ref[i:])
	if err != nil {
		return 0, 0, err
	}
	return col, row, nil
}

// sliceRow extracts the cells between two 1-based column bounds and parses
// them into typed values. Trailing empty cells are dropped so the row
// compares equal regardless of how far the backend padded it.
func sliceRow(row []string, firstCol, lastCol int) []interface{} {
	if lastCol > len(row) {
		lastCol = len(row)
	}

	out := []interface{}{}
	for c := firstCol; c <= lastCol; c++ {
		out = append(out, parseValue(row[c-1]))
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return out
}

// parseValue attempts to parse a cell value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
// ParseFloat accepts "NaN" and "Inf" spellings; those stay strings so cell
// values are always finite numbers or text.
func parseValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	return s
}
