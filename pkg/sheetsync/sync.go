// Package sheetsync decides whether a destination spreadsheet range is
// stale relative to an origin range and, if so, rewrites it — wholesale
// when the destination starts empty, row by row otherwise.
package sheetsync

import (
	"context"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/hokuto3/sheetsync-go/pkg/sheetsync/models"
)

// Syncer mirrors an origin range onto a destination range through a
// spreadsheet Backend. It holds no state across requests; every sync
// re-reads and re-compares from scratch, which keeps a retried request
// safe after a mid-sync failure.
type Syncer struct {
	backend Backend
	log     *zap.SugaredLogger
}

// NewSyncer creates a Syncer writing through the given backend. A nil
// logger disables logging.
func NewSyncer(backend Backend, log *zap.SugaredLogger) *Syncer {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Syncer{backend: backend, log: log}
}

// Result reports the terminal state of one completed synchronization.
type Result struct {
	// Strategy is the write strategy the comparison selected.
	Strategy models.WriteStrategy
	// RowsWritten lists the 0-based row indices rewritten under
	// StrategySparseRowRewrite.
	RowsWritten []int
	// Resized is true when the destination's capacity was grown.
	Resized bool
}

// Sync runs one synchronization. It validates the request, reads both
// ranges, and either skips (datasets already equal), rewrites the whole
// destination (destination empty), or rewrites only the differing rows.
// Any backend failure aborts the remaining steps; no partial progress is
// rolled back, since every write is idempotent and re-derivable.
func (s *Syncer) Sync(ctx context.Context, req models.SyncRequest) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	origin := req.Origin()
	dest := req.Destination()

	// The two reads have no data dependency on each other.
	var originData, destData models.Dataset
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		originData, err = s.backend.ReadRange(gctx, req.OriginSpreadsheetID, origin.ReadRange())
		return err
	})
	g.Go(func() error {
		var err error
		destData, err = s.backend.ReadRange(gctx, req.DestinationSpreadsheetID, dest.ReadRange())
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "reading ranges")
	}

	plan := BuildPlan(originData, destData)
	switch plan.Strategy {
	case models.StrategySkip:
		s.log.Infow("datasets already synchronized",
			"origin", req.OriginSpreadsheetID,
			"destination", req.DestinationSpreadsheetID,
		)
		return &Result{Strategy: models.StrategySkip}, nil

	case models.StrategyFullRewrite:
		resized, err := s.ensureCapacity(ctx, req, originData)
		if err != nil {
			return nil, err
		}
		if err := s.backend.WriteRange(ctx, req.DestinationSpreadsheetID, dest.ReadRange(), originData); err != nil {
			return nil, errors.Wrap(err, "writing full range")
		}
		s.log.Infow("destination rewritten in full",
			"destination", req.DestinationSpreadsheetID,
			"rows", len(originData),
		)
		return &Result{Strategy: models.StrategyFullRewrite, Resized: resized}, nil

	default:
		return s.rewriteRows(ctx, req, originData, plan.RowIndices)
	}
}

// rewriteRows applies a sparse row rewrite. Capacity is grown before any
// row write so every positional write lands inside the grid; the row
// writes themselves are mutually independent.
func (s *Syncer) rewriteRows(ctx context.Context, req models.SyncRequest, origin models.Dataset, indices []int) (*Result, error) {
	res := &Result{Strategy: models.StrategySparseRowRewrite, RowsWritten: indices}
	if len(indices) == 0 {
		// Datasets differ only in trailing empty rows; nothing to write.
		return res, nil
	}

	resized, err := s.ensureCapacity(ctx, req, origin)
	if err != nil {
		return nil, err
	}
	res.Resized = resized

	dest := req.Destination()
	for _, i := range indices {
		row := origin.Row(i)
		if err := s.backend.WriteRange(ctx, req.DestinationSpreadsheetID, dest.RowRange(i), models.Dataset{row}); err != nil {
			return nil, errors.Wrapf(err, "writing row %d", i+1)
		}
	}
	s.log.Infow("destination rows rewritten",
		"destination", req.DestinationSpreadsheetID,
		"rows", len(indices),
	)
	return res, nil
}

// ensureCapacity grows the destination worksheet to the origin's full
// extent when its current capacity is smaller. Reports whether a resize
// was applied.
func (s *Syncer) ensureCapacity(ctx context.Context, req models.SyncRequest, origin models.Dataset) (bool, error) {
	size, err := s.backend.SheetSize(ctx, req.DestinationSpreadsheetID, req.DestinationWorksheetID)
	if err != nil {
		return false, errors.Wrap(err, "querying destination size")
	}

	ops := PlanResize(size, len(origin), origin.MaxWidth())
	if len(ops) == 0 {
		return false, nil
	}
	if err := s.backend.ApplyResize(ctx, req.DestinationSpreadsheetID, req.DestinationWorksheetID, ops); err != nil {
		return false, errors.Wrap(err, "resizing destination")
	}
	s.log.Debugw("destination resized",
		"destination", req.DestinationSpreadsheetID,
		"operations", len(ops),
	)
	return true, nil
}
