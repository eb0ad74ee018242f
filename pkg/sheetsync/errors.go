package sheetsync

import "fmt"

// Op identifies the backend operation that failed.
type Op string

const (
	OpRead      Op = "read"
	OpWrite     Op = "write"
	OpResize    Op = "resize"
	OpSizeQuery Op = "size_query"
)

// BackendError represents a spreadsheet backend failure. Backend failures
// abort the remaining pipeline; none are retried internally. The cause is
// recorded for diagnostics and deliberately not surfaced to callers.
//
// A race between two concurrent syncs, or between a sync and a manual edit
// of the destination, is not detected: the backend is the only shared
// mutable resource and no mutual exclusion is provided against external
// writers. That lost-update risk is an accepted limitation, not an error
// this type can report.
type BackendError struct {
	Op            Op
	SpreadsheetID string
	Err           error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("spreadsheet %s failed for %q: %v", e.Op, e.SpreadsheetID, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// NewBackendError creates a new BackendError.
func NewBackendError(op Op, spreadsheetID string, err error) *BackendError {
	return &BackendError{Op: op, SpreadsheetID: spreadsheetID, Err: err}
}
