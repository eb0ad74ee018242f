package models

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrMissingIdentifier indicates a required spreadsheet identifier is absent
// from a sync request. No backend I/O is attempted for such requests.
var ErrMissingIdentifier = errors.New("missing spreadsheet identifier")

// SyncRequest carries the origin and destination identifiers and range
// bounds for one synchronization. It is immutable for the duration of the
// request. JSON field names mirror the inbound HTTP body.
type SyncRequest struct {
	OriginSpreadsheetID        string `json:"originSpreadsheetId"`
	OriginSpreadsheetName      string `json:"originSpreadsheetName"`
	OriginWorksheetID          int    `json:"originWorksheetId"`
	OriginWorksheetName        string `json:"originWorksheetName"`
	OriginWorksheetFirstColumn string `json:"originWorksheetFirstColumn"`
	OriginWorksheetLastColumn  string `json:"originWorksheetLastColumn"`
	OriginWorksheetFirstRow    int    `json:"originWorksheetFirstRow"`
	OriginWorksheetLastRow     int    `json:"originWorksheetLastRow"`

	DestinationSpreadsheetID   string `json:"destinationSpreadsheetId"`
	DestinationSpreadsheetName string `json:"destinationSpreadsheetName"`
	DestinationWorksheetID     int    `json:"destinationWorksheetId"`
	DestinationWorksheetName   string `json:"destinationWorksheetName"`
}

// Validate checks that both spreadsheet identifiers are present. This is
// the only required-field invariant enforced before I/O.
func (r SyncRequest) Validate() error {
	if strings.TrimSpace(r.OriginSpreadsheetID) == "" {
		return errors.Wrap(ErrMissingIdentifier, "originSpreadsheetId")
	}
	if strings.TrimSpace(r.DestinationSpreadsheetID) == "" {
		return errors.Wrap(ErrMissingIdentifier, "destinationSpreadsheetId")
	}
	return nil
}

// Origin returns the descriptor of the range to read from.
func (r SyncRequest) Origin() RangeDescriptor {
	return RangeDescriptor{
		SheetName:   r.OriginWorksheetName,
		SheetID:     r.OriginWorksheetID,
		FirstColumn: r.OriginWorksheetFirstColumn,
		LastColumn:  r.OriginWorksheetLastColumn,
		FirstRow:    r.OriginWorksheetFirstRow,
		LastRow:     r.OriginWorksheetLastRow,
	}
}

// Destination returns the descriptor of the range to write to. The request
// carries no destination column bounds, so the origin's column bounds are
// reused for destination addresses.
func (r SyncRequest) Destination() RangeDescriptor {
	return RangeDescriptor{
		SheetName:   r.DestinationWorksheetName,
		SheetID:     r.DestinationWorksheetID,
		FirstColumn: r.OriginWorksheetFirstColumn,
		LastColumn:  r.OriginWorksheetLastColumn,
		FirstRow:    r.OriginWorksheetFirstRow,
		LastRow:     r.OriginWorksheetLastRow,
	}
}
