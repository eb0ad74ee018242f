package fingerprint

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hokuto3/sheetsync-go/pkg/sheetsync/models"
)

func TestDatasetStability(t *testing.T) {
	a := models.Dataset{{"name", int64(1)}, {"bolt", 4.5}}
	b := models.Dataset{{"name", int64(1)}, {"bolt", 4.5}}
	assert.Equal(t, Dataset(a), Dataset(b))
}

func TestDatasetSensitivity(t *testing.T) {
	base := models.Dataset{{"a", "b"}, {"c", "d"}}

	oneCell := models.Dataset{{"a", "b"}, {"c", "D"}}
	assert.NotEqual(t, Dataset(base), Dataset(oneCell))

	// Row reordering changes the digest even though content is identical:
	// comparison is positional, not row-identity based.
	reordered := models.Dataset{{"c", "d"}, {"a", "b"}}
	assert.NotEqual(t, Dataset(base), Dataset(reordered))

	// Extra trailing empty rows change the digest.
	padded := models.Dataset{{"a", "b"}, {"c", "d"}, {}}
	assert.NotEqual(t, Dataset(base), Dataset(padded))
}

func TestRowLengthMatters(t *testing.T) {
	assert.NotEqual(t, Row([]interface{}{"a", "b"}), Row([]interface{}{"a", "b", ""}))
}

func TestStringAndNumberCellsDiffer(t *testing.T) {
	assert.NotEqual(t, Row([]interface{}{"1"}), Row([]interface{}{int64(1)}))
}

func TestIntAndFloatCellsDiffer(t *testing.T) {
	// "1" and "1.0" in a sheet parse to int64 and float64; they are a
	// byte-level difference and must not fingerprint equal.
	assert.NotEqual(t, Row([]interface{}{int64(1)}), Row([]interface{}{float64(1)}))
}

func TestNonFiniteCellsDigest(t *testing.T) {
	nan := Row([]interface{}{math.NaN()})
	posInf := Row([]interface{}{math.Inf(1)})
	negInf := Row([]interface{}{math.Inf(-1)})
	assert.NotEqual(t, nan, posInf)
	assert.NotEqual(t, posInf, negInf)
	assert.NotEqual(t, Row([]interface{}{"NaN"}), nan)
}

func TestNilRowEqualsEmptyRow(t *testing.T) {
	assert.Equal(t, Row(nil), Row([]interface{}{}))
}

func TestRowBoundariesUnambiguous(t *testing.T) {
	// Two rows of one cell must not collide with one row of two cells.
	a := models.Dataset{{"x"}, {"y"}}
	b := models.Dataset{{"x", "y"}}
	assert.NotEqual(t, Dataset(a), Dataset(b))
}
