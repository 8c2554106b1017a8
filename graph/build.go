package graph

import (
	"time"

	"go.uber.org/zap"

	"github.com/arannis/conexus/dsu"
	"github.com/arannis/conexus/intern"
	"github.com/arannis/conexus/internal/telemetry/metrics"
)

// buildResult is the intermediate state shared by FindConnectedComponents
// and EdgeComponents: an interned edge list unioned into a DSF, ready for
// labelling.
type buildResult struct {
	forest  *dsu.DSF
	in      *intern.Interner
	fromIdx []uint64
	toIdx   []uint64
}

// build validates edges, interns their endpoints, applies the capacity
// check, allocates the DSF, and unions every non-self-loop edge.
//
// n_nodes, when non-nil, is validation-only: it must not be smaller than
// the maximum observed node ID, but allocation always uses the dense
// interned count, never the caller-supplied upper bound — a
// caller-supplied n_nodes driving allocation would reopen exactly the
// sparse-ID memory blowup dense interning exists to avoid.
func (e *Engine) build(op string, edges []Edge, nNodes *uint64) (*buildResult, error) {
	start := time.Now()
	defer func() {
		if e.cfg.MetricsEnabled {
			metrics.FindDurationSeconds.WithLabelValues(op).Observe(time.Since(start).Seconds())
		}
	}()

	maxID, err := validateEdges(op, edges)
	if err != nil {
		return nil, err
	}
	if nNodes != nil && *nNodes < maxID {
		return nil, wrapf(op, "n_nodes below observed max id", ErrInvalidNodeRange)
	}

	in := intern.New(len(edges) * 2)
	fromIdx := make([]uint64, len(edges))
	toIdx := make([]uint64, len(edges))
	for i, edge := range edges {
		fi, ierr := in.Intern(edge.From)
		if ierr != nil {
			return nil, wrapf(op, "interning edge endpoint", ierr)
		}
		ti, ierr := in.Intern(edge.To)
		if ierr != nil {
			return nil, wrapf(op, "interning edge endpoint", ierr)
		}
		fromIdx[i], toIdx[i] = fi, ti
	}

	n := in.Size()
	if err := e.checkCapacity(op, n); err != nil {
		return nil, err
	}

	forest := dsu.New(n)
	for i := range fromIdx {
		if fromIdx[i] == toIdx[i] {
			continue // self-loop: accepted, contributes no merge
		}
		if forest.Union(fromIdx[i], toIdx[i]) && e.cfg.MetricsEnabled {
			metrics.UnionOpsTotal.Inc()
		}
	}

	return &buildResult{forest: forest, in: in, fromIdx: fromIdx, toIdx: toIdx}, nil
}

// checkCapacity estimates the DSF's memory footprint for n nodes and
// fails fast if it would exceed the configured hard limit, logging a
// one-time advisory if it merely exceeds the (lower) advisory threshold.
// Runs before any DSF allocation.
func (e *Engine) checkCapacity(op string, n uint64) error {
	est := estimateBytes(n)
	if est > e.cfg.HardLimitBytes {
		if e.cfg.MetricsEnabled {
			metrics.CapacityRejectionsTotal.Inc()
		}
		return wrapf(op, "estimated allocation too large for n nodes", ErrCapacityExceeded)
	}
	if est > e.cfg.AdvisoryBytes {
		e.log.Warn("large sparse node-id range; proceeding with dense interned representation",
			zap.String("operation", op),
			zap.Int64("estimated_bytes", est),
			zap.Uint64("nodes", n),
		)
	}
	return nil
}
