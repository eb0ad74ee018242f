package models

// SheetSize is the structural grid capacity of a worksheet, independent of
// how much of that capacity holds data.
type SheetSize struct {
	RowCount    int `json:"row_count"`
	ColumnCount int `json:"column_count"`
}

// ResizeDimension selects which axis a resize operation grows.
type ResizeDimension string

const (
	// ResizeRows grows the worksheet's row capacity.
	ResizeRows ResizeDimension = "rows"
	// ResizeColumns grows the worksheet's column capacity.
	ResizeColumns ResizeDimension = "columns"
)

// ResizeOp grows a worksheet's capacity along one dimension to Count.
// Resize operations never shrink.
type ResizeOp struct {
	Dimension ResizeDimension `json:"dimension"`
	Count     int             `json:"count"`
}
