// Package excel implements the sheetsync Backend against xlsx workbooks
// stored in a workspace directory. A spreadsheet ID maps to the workbook
// file "<dir>/<id>.xlsx".
package excel

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/hokuto3/sheetsync-go/pkg/sheetsync"
	"github.com/hokuto3/sheetsync-go/pkg/sheetsync/models"
)

// Store resolves spreadsheet IDs to workbook files under a base directory.
type Store struct {
	dir string
	log *zap.SugaredLogger
}

// NewStore creates a Store rooted at dir. A nil logger disables logging.
func NewStore(dir string, log *zap.SugaredLogger) *Store {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Store{dir: dir, log: log}
}

func (s *Store) path(spreadsheetID string) string {
	return filepath.Join(s.dir, spreadsheetID+".xlsx")
}

// ReadRange returns the dataset at the given range address. Rows are
// trimmed to the address bounds; trailing empty cells within each row are
// dropped, so rows come back ragged.
func (s *Store) ReadRange(ctx context.Context, spreadsheetID, address string) (models.Dataset, error) {
	f, err := excelize.OpenFile(s.path(spreadsheetID))
	if err != nil {
		return nil, sheetsync.NewBackendError(sheetsync.OpRead, spreadsheetID, err)
	}
	defer f.Close()

	ref, err := parseAddress(address)
	if err != nil {
		return nil, sheetsync.NewBackendError(sheetsync.OpRead, spreadsheetID, err)
	}

	rows, err := f.GetRows(ref.sheet)
	if err != nil {
		return nil, sheetsync.NewBackendError(sheetsync.OpRead, spreadsheetID, err)
	}

	firstRow := ref.firstRow
	if firstRow == 0 {
		firstRow = 1
	}
	lastRow := ref.lastRow
	if lastRow == 0 || lastRow > len(rows) {
		lastRow = len(rows)
	}

	var data models.Dataset
	for r := firstRow; r <= lastRow; r++ {
		data = append(data, sliceRow(rows[r-1], ref.firstCol, ref.lastCol))
	}
	return data, nil
}

// WriteRange replaces the cells at the given range address with the
// dataset. Every column within the address bounds is written, blanking
// cells the dataset does not cover, so rewriting a row with a shorter or
// empty row clears the remainder.
func (s *Store) WriteRange(ctx context.Context, spreadsheetID, address string, data models.Dataset) error {
	f, err := excelize.OpenFile(s.path(spreadsheetID))
	if err != nil {
		return sheetsync.NewBackendError(sheetsync.OpWrite, spreadsheetID, err)
	}
	defer f.Close()

	ref, err := parseAddress(address)
	if err != nil {
		return sheetsync.NewBackendError(sheetsync.OpWrite, spreadsheetID, err)
	}

	if idx, _ := f.GetSheetIndex(ref.sheet); idx < 0 {
		if _, err := f.NewSheet(ref.sheet); err != nil {
			return sheetsync.NewBackendError(sheetsync.OpWrite, spreadsheetID, err)
		}
	}

	firstRow := ref.firstRow
	if firstRow == 0 {
		firstRow = 1
	}
	width := ref.lastCol - ref.firstCol + 1

	for i, row := range data {
		out := make([]interface{}, width)
		for c := 0; c < width; c++ {
			if c < len(row) {
				out[c] = row[c]
			} else {
				out[c] = ""
			}
		}
		cell, err := excelize.CoordinatesToCellName(ref.firstCol, firstRow+i)
		if err != nil {
			return sheetsync.NewBackendError(sheetsync.OpWrite, spreadsheetID, err)
		}
		if err := f.SetSheetRow(ref.sheet, cell, &out); err != nil {
			return sheetsync.NewBackendError(sheetsync.OpWrite, spreadsheetID, err)
		}
	}

	if err := f.Save(); err != nil {
		return sheetsync.NewBackendError(sheetsync.OpWrite, spreadsheetID, err)
	}
	s.log.Debugw("range written",
		"spreadsheet", spreadsheetID,
		"address", address,
		"rows", len(data),
	)
	return nil
}

// SheetSize returns the structural capacity of a worksheet, derived from
// the workbook's dimension reference. A missing worksheet yields a zero
// size and no error.
func (s *Store) SheetSize(ctx context.Context, spreadsheetID string, worksheetID int) (models.SheetSize, error) {
	f, err := excelize.OpenFile(s.path(spreadsheetID))
	if err != nil {
		return models.SheetSize{}, sheetsync.NewBackendError(sheetsync.OpSizeQuery, spreadsheetID, err)
	}
	defer f.Close()

	name, ok := f.GetSheetMap()[worksheetID]
	if !ok {
		return models.SheetSize{}, nil
	}
	size, err := sheetDimension(f, name)
	if err != nil {
		return models.SheetSize{}, sheetsync.NewBackendError(sheetsync.OpSizeQuery, spreadsheetID, err)
	}
	return size, nil
}

// ApplyResize grows a worksheet's dimension reference to cover the
// requested row and column counts. An empty operation list is a no-op and
// does not touch the workbook file.
func (s *Store) ApplyResize(ctx context.Context, spreadsheetID string, worksheetID int, ops []models.ResizeOp) error {
	if len(ops) == 0 {
		return nil
	}

	f, err := excelize.OpenFile(s.path(spreadsheetID))
	if err != nil {
		return sheetsync.NewBackendError(sheetsync.OpResize, spreadsheetID, err)
	}
	defer f.Close()

	name, ok := f.GetSheetMap()[worksheetID]
	if !ok {
		return sheetsync.NewBackendError(sheetsync.OpResize, spreadsheetID,
			errors.Newf("worksheet %d not found", worksheetID))
	}

	size, err := sheetDimension(f, name)
	if err != nil {
		return sheetsync.NewBackendError(sheetsync.OpResize, spreadsheetID, err)
	}
	rows, cols := size.RowCount, size.ColumnCount
	for _, op := range ops {
		switch op.Dimension {
		case models.ResizeRows:
			if op.Count > rows {
				rows = op.Count
			}
		case models.ResizeColumns:
			if op.Count > cols {
				cols = op.Count
			}
		}
	}
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}

	endCell, err := excelize.CoordinatesToCellName(cols, rows)
	if err != nil {
		return sheetsync.NewBackendError(sheetsync.OpResize, spreadsheetID, err)
	}
	if err := f.SetSheetDimension(name, "A1:"+endCell); err != nil {
		return sheetsync.NewBackendError(sheetsync.OpResize, spreadsheetID, err)
	}
	if err := f.Save(); err != nil {
		return sheetsync.NewBackendError(sheetsync.OpResize, spreadsheetID, err)
	}
	s.log.Debugw("worksheet resized",
		"spreadsheet", spreadsheetID,
		"worksheet", worksheetID,
		"rows", rows,
		"columns", cols,
	)
	return nil
}

// sheetDimension parses a worksheet's dimension reference ("A1:D10", or a
// single cell for a fresh sheet) into a SheetSize.
func sheetDimension(f *excelize.File, sheet string) (models.SheetSize, error) {
	dim, err := f.GetSheetDimension(sheet)
	if err != nil {
		return models.SheetSize{}, err
	}
	if dim == "" {
		return models.SheetSize{}, nil
	}
	end := dim
	if _, rest, ok := strings.Cut(dim, ":"); ok {
		end = rest
	}
	cols, rows, err := excelize.CellNameToCoordinates(end)
	if err != nil {
		return models.SheetSize{}, err
	}
	return models.SheetSize{RowCount: rows, ColumnCount: cols}, nil
}
