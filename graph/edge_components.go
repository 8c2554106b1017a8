package graph

import (
	"github.com/arannis/conexus/internal/telemetry/metrics"
	"github.com/arannis/conexus/label"
)

// EdgeComponents returns the per-edge component label for every edge in
// edges, in input order. edge_from_label == edge_to_label for every
// entry by construction, so only one vector is returned; labels are
// computed entirely within this call, with no follow-up lookup required
// in caller code.
func (e *Engine) EdgeComponents(edges []Edge, compress bool) ([]uint64, error) {
	const op = "EdgeComponents"

	b, err := e.build(op, edges, nil)
	if err != nil {
		return nil, err
	}

	lab, err := label.Label(b.forest, b.fromIdx, b.toIdx, compress)
	if err != nil {
		return nil, wrapf(op, "labelling", err)
	}

	if e.cfg.MetricsEnabled {
		metrics.ComponentsTotal.WithLabelValues(op).Add(float64(lab.K))
	}
	return lab.EdgeFromLabel, nil
}

// EdgeComponents delegates to a default, unconfigured Engine.
func EdgeComponents(edges []Edge, compress bool) ([]uint64, error) {
	return defaultEngine.EdgeComponents(edges, compress)
}
