package models

// WriteStrategy selects how a stale destination is rewritten.
type WriteStrategy string

const (
	// StrategySkip means origin and destination are already identical.
	StrategySkip WriteStrategy = "skip"
	// StrategyFullRewrite means the destination starts empty and receives
	// the entire origin dataset in one write.
	StrategyFullRewrite WriteStrategy = "full_rewrite"
	// StrategySparseRowRewrite means only the individually differing rows
	// are rewritten.
	StrategySparseRowRewrite WriteStrategy = "sparse_row_rewrite"
)

// UpdatePlan is the decision produced by comparing an origin dataset with a
// destination dataset.
type UpdatePlan struct {
	Strategy WriteStrategy
	// RowIndices lists the 0-based indices of differing rows. Set only for
	// StrategySparseRowRewrite; may be empty when the datasets differ only
	// in trailing empty rows.
	RowIndices []int
}
