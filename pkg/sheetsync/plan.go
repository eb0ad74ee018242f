package sheetsync

import (
	"github.com/hokuto3/sheetsync-go/pkg/sheetsync/fingerprint"
	"github.com/hokuto3/sheetsync-go/pkg/sheetsync/models"
)

// BuildPlan compares an origin dataset with a destination dataset and
// decides the write strategy. Equality is exact: any byte-level difference
// in any cell forces the update path.
func BuildPlan(origin, dest models.Dataset) models.UpdatePlan {
	if fingerprint.Dataset(origin) == fingerprint.Dataset(dest) {
		return models.UpdatePlan{Strategy: models.StrategySkip}
	}
	if dest.Empty() {
		return models.UpdatePlan{Strategy: models.StrategyFullRewrite}
	}
	return models.UpdatePlan{
		Strategy:   models.StrategySparseRowRewrite,
		RowIndices: diffRows(origin, dest),
	}
}

// diffRows returns the 0-based indices whose per-row fingerprints differ.
// Indices run to the longer of the two datasets; absent rows on the shorter
// side compare as empty rows. The result may be empty when the datasets
// differ only in trailing empty rows.
func diffRows(origin, dest models.Dataset) []int {
	n := len(origin)
	if len(dest) > n {
		n = len(dest)
	}

	var indices []int
	for i := 0; i < n; i++ {
		if fingerprint.Row(origin.Row(i)) != fingerprint.Row(dest.Row(i)) {
			indices = append(indices, i)
		}
	}
	return indices
}
