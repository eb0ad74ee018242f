package sheetsync

import (
	"context"

	"github.com/hokuto3/sheetsync-go/pkg/sheetsync/models"
)

// Backend is the spreadsheet service collaborator the engine writes
// through. Implementations perform the actual range I/O; the engine only
// decides what to read and write.
type Backend interface {
	// ReadRange returns the dataset at the given range address.
	ReadRange(ctx context.Context, spreadsheetID, address string) (models.Dataset, error)

	// WriteRange replaces the cells at the given range address with the
	// dataset. Writing the same dataset twice is a no-op in effect.
	WriteRange(ctx context.Context, spreadsheetID, address string, data models.Dataset) error

	// SheetSize returns the structural capacity of a worksheet. A missing
	// worksheet yields a zero SheetSize and a nil error; only backend
	// failures return an error.
	SheetSize(ctx context.Context, spreadsheetID string, worksheetID int) (models.SheetSize, error)

	// ApplyResize grows a worksheet's capacity. An empty operation list is
	// a no-op.
	ApplyResize(ctx context.Context, spreadsheetID string, worksheetID int, ops []models.ResizeOp) error
}
