package sheetsync

import "github.com/hokuto3/sheetsync-go/pkg/sheetsync/models"

// PlanResize returns the structural operations needed to make a worksheet
// hold at least rows x cols. A row resize is emitted iff the current row
// capacity is smaller than required, and likewise for columns, so at most
// two operations result and planning against the grown size yields none.
// Capacity is never shrunk.
func PlanResize(current models.SheetSize, rows, cols int) []models.ResizeOp {
	var ops []models.ResizeOp
	if current.RowCount < rows {
		ops = append(ops, models.ResizeOp{Dimension: models.ResizeRows, Count: rows})
	}
	if current.ColumnCount < cols {
		ops = append(ops, models.ResizeOp{Dimension: models.ResizeColumns, Count: cols})
	}
	return ops
}
