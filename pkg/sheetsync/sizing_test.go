package sheetsync

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hokuto3/sheetsync-go/pkg/sheetsync/models"
)

func TestPlanResize(t *testing.T) {
	tests := []struct {
		name    string
		current models.SheetSize
		rows    int
		cols    int
		want    []models.ResizeOp
	}{
		{
			name:    "grow both dimensions",
			current: models.SheetSize{RowCount: 1, ColumnCount: 1},
			rows:    10, cols: 4,
			want: []models.ResizeOp{
				{Dimension: models.ResizeRows, Count: 10},
				{Dimension: models.ResizeColumns, Count: 4},
			},
		},
		{
			name:    "grow rows only",
			current: models.SheetSize{RowCount: 5, ColumnCount: 8},
			rows:    9, cols: 8,
			want: []models.ResizeOp{
				{Dimension: models.ResizeRows, Count: 9},
			},
		},
		{
			name:    "already large enough",
			current: models.SheetSize{RowCount: 100, ColumnCount: 26},
			rows:    10, cols: 4,
			want:    nil,
		},
		{
			name:    "never shrinks",
			current: models.SheetSize{RowCount: 50, ColumnCount: 50},
			rows:    1, cols: 1,
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlanResize(tt.current, tt.rows, tt.cols))
		})
	}
}

func TestPlanResizeIdempotent(t *testing.T) {
	current := models.SheetSize{RowCount: 2, ColumnCount: 2}
	ops := PlanResize(current, 20, 6)
	require.Len(t, ops, 2)

	// Feed the second call the size implied by the first call's output.
	for _, op := range ops {
		switch op.Dimension {
		case models.ResizeRows:
			current.RowCount = op.Count
		case models.ResizeColumns:
			current.ColumnCount = op.Count
		}
	}
	assert.Empty(t, PlanResize(current, 20, 6))
}
