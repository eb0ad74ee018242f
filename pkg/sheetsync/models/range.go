// Package models defines data structures for range synchronization.
package models

import "strconv"

// RangeDescriptor identifies a rectangular region of a worksheet.
type RangeDescriptor struct {
	// SheetName is the worksheet name used in range addresses.
	SheetName string
	// SheetID is the backend worksheet identifier.
	SheetID int
	// FirstColumn and LastColumn are column letters ("A", "AC").
	FirstColumn string
	LastColumn  string
	// FirstRow and LastRow are 1-based row bounds. Zero means unbounded.
	FirstRow int
	LastRow  int
}

// ReadRange renders the descriptor as a range address of the form
// "Sheet1!A2:D10". Zero row bounds render as empty strings, producing an
// open-ended address ("Sheet1!A:D") whose interpretation is left to the
// backend. No column-letter validation is performed; malformed input
// propagates as a malformed address.
func (r RangeDescriptor) ReadRange() string {
	first := r.FirstColumn
	if r.FirstRow > 0 {
		first += strconv.Itoa(r.FirstRow)
	}
	last := r.LastColumn
	if r.LastRow > 0 {
		last += strconv.Itoa(r.LastRow)
	}
	return r.SheetName + "!" + first + ":" + last
}

// RowRange renders the address of a single worksheet row spanning the
// descriptor's column bounds. The index is 0-based; the address uses
// 1-based row numbering.
func (r RangeDescriptor) RowRange(index int) string {
	row := strconv.Itoa(index + 1)
	return r.SheetName + "!" + r.FirstColumn + row + ":" + r.LastColumn + row
}
