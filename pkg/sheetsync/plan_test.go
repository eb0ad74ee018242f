package sheetsync

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hokuto3/sheetsync-go/pkg/sheetsync/models"
)

func TestBuildPlanSkipOnEqualDatasets(t *testing.T) {
	d := models.Dataset{{"a", int64(1)}, {"b", 2.5}}
	plan := BuildPlan(d, models.Dataset{{"a", int64(1)}, {"b", 2.5}})
	assert.Equal(t, models.StrategySkip, plan.Strategy)
	assert.Empty(t, plan.RowIndices)
}

func TestBuildPlanFullRewriteOnEmptyDestination(t *testing.T) {
	plan := BuildPlan(models.Dataset{{"a"}}, nil)
	assert.Equal(t, models.StrategyFullRewrite, plan.Strategy)
}

func TestBuildPlanSparseIndices(t *testing.T) {
	origin := models.Dataset{{"a"}, {"b"}, {"c"}, {"d"}}
	dest := models.Dataset{{"a"}, {"B"}, {"c"}, {"D"}}
	plan := BuildPlan(origin, dest)
	assert.Equal(t, models.StrategySparseRowRewrite, plan.Strategy)
	assert.Equal(t, []int{1, 3}, plan.RowIndices)
}

func TestBuildPlanLengthMismatch(t *testing.T) {
	origin := models.Dataset{{"a"}, {"b"}, {"c"}}
	dest := models.Dataset{{"a"}, {"b"}, {"c"}, {"x"}, {"y"}}
	plan := BuildPlan(origin, dest)
	assert.Equal(t, []int{3, 4}, plan.RowIndices)

	// Symmetric: origin longer than destination.
	plan = BuildPlan(dest, origin)
	assert.Equal(t, []int{3, 4}, plan.RowIndices)
}

func TestBuildPlanDistinguishesNumericTypes(t *testing.T) {
	// An integer and a float of equal numeric value are still distinct
	// cell contents; the comparison must force the update path.
	plan := BuildPlan(models.Dataset{{float64(1)}}, models.Dataset{{int64(1)}})
	assert.Equal(t, models.StrategySparseRowRewrite, plan.Strategy)
	assert.Equal(t, []int{0}, plan.RowIndices)
}

func TestBuildPlanRaggedRowsCompareByLength(t *testing.T) {
	origin := models.Dataset{{"a", "b"}}
	dest := models.Dataset{{"a", "b", ""}}
	plan := BuildPlan(origin, dest)
	assert.Equal(t, models.StrategySparseRowRewrite, plan.Strategy)
	assert.Equal(t, []int{0}, plan.RowIndices)
}
