package models

// Dataset is an ordered sequence of rows read from a range. Each cell is a
// string, int64, or float64. Rows may be ragged; row order is significant
// (row i of an origin corresponds positionally to row i of a destination).
type Dataset [][]interface{}

// Empty reports whether the dataset holds no rows.
func (d Dataset) Empty() bool {
	return len(d) == 0
}

// Row returns the row at index i, or an empty row when i is out of bounds.
// Comparisons between datasets of different lengths treat missing rows on
// the shorter side as empty.
func (d Dataset) Row(i int) []interface{} {
	if i < 0 || i >= len(d) {
		return nil
	}
	return d[i]
}

// MaxWidth returns the length of the widest row.
func (d Dataset) MaxWidth() int {
	width := 0
	for _, row := range d {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}
