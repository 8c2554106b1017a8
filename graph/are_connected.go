package graph

import (
	"time"

	"github.com/arannis/conexus/dsu"
	"github.com/arannis/conexus/intern"
	"github.com/arannis/conexus/internal/telemetry/metrics"
)

// AreConnected builds a DSF over the union of IDs mentioned in edges and
// queries, unions every non-self-loop edge, and for each query (a,b)
// returns find(a) == find(b). Because every query endpoint is interned
// up front (whether or not it also appears in edges), a query-only ID is
// assigned its own singleton index, so are_connected((v,v)) is true for
// any valid NodeId — even one with no incident edge — while
// are_connected((u,v)) for two distinct IDs neither of which appears in
// edges is false.
func (e *Engine) AreConnected(edges []Edge, queries []Edge) ([]bool, error) {
	const op = "AreConnected"
	start := time.Now()
	defer func() {
		if e.cfg.MetricsEnabled {
			metrics.FindDurationSeconds.WithLabelValues(op).Observe(time.Since(start).Seconds())
		}
	}()

	if _, err := validateEdges(op, edges); err != nil {
		return nil, err
	}
	if _, err := validateEdges(op, queries); err != nil {
		return nil, err
	}

	in := intern.New(2 * (len(edges) + len(queries)))

	fromIdx := make([]uint64, len(edges))
	toIdx := make([]uint64, len(edges))
	for i, edge := range edges {
		fi, err := in.Intern(edge.From)
		if err != nil {
			return nil, wrapf(op, "interning edge endpoint", err)
		}
		ti, err := in.Intern(edge.To)
		if err != nil {
			return nil, wrapf(op, "interning edge endpoint", err)
		}
		fromIdx[i], toIdx[i] = fi, ti
	}

	queryFrom := make([]uint64, len(queries))
	queryTo := make([]uint64, len(queries))
	for i, q := range queries {
		qf, err := in.Intern(q.From)
		if err != nil {
			return nil, wrapf(op, "interning query endpoint", err)
		}
		qt, err := in.Intern(q.To)
		if err != nil {
			return nil, wrapf(op, "interning query endpoint", err)
		}
		queryFrom[i], queryTo[i] = qf, qt
	}

	n := in.Size()
	if err := e.checkCapacity(op, n); err != nil {
		return nil, err
	}

	forest := dsu.New(n)
	for i := range fromIdx {
		if fromIdx[i] == toIdx[i] {
			continue
		}
		if forest.Union(fromIdx[i], toIdx[i]) && e.cfg.MetricsEnabled {
			metrics.UnionOpsTotal.Inc()
		}
	}

	results := make([]bool, len(queries))
	for i := range queries {
		results[i] = forest.Same(queryFrom[i], queryTo[i])
	}
	return results, nil
}

// AreConnected delegates to a default, unconfigured Engine.
func AreConnected(edges []Edge, queries []Edge) ([]bool, error) {
	return defaultEngine.AreConnected(edges, queries)
}
