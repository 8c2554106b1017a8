package graph

import (
	"github.com/arannis/conexus/intern"
	"github.com/arannis/conexus/internal/telemetry/metrics"
	"github.com/arannis/conexus/label"
)

// Result is the output of FindConnectedComponents: per-node labels,
// component sizes, and the count of distinct components, plus the
// inverse map needed to translate internal indices back to caller IDs.
type Result struct {
	// NodeLabel[i] is the component label of interned index i.
	NodeLabel []uint64

	// Compressed reports whether labels are canonical [1,K] (true) or
	// raw, call-local root indices (false).
	Compressed bool

	// Sizes holds component sizes indexed by label-1; populated only
	// when Compressed is true.
	Sizes []uint64

	// RootSizes maps a raw root index to its component size; populated
	// only when Compressed is false.
	RootSizes map[uint64]uint64

	// K is the number of distinct connected components.
	K uint64

	// in translates an original NodeId to its interned index, and back.
	in *intern.Interner
}

// NodeLabelByID returns the component label of the given original
// NodeId and whether that ID was present in the input edge list.
func (r *Result) NodeLabelByID(id uint64) (uint64, bool) {
	idx, ok := r.in.Lookup(id)
	if !ok {
		return 0, false
	}
	return r.NodeLabel[idx], true
}

// ByID packages the result as a map keyed by original NodeId, for
// callers who want original-ID keys rather than internal indices.
func (r *Result) ByID() map[uint64]uint64 {
	out := make(map[uint64]uint64, r.in.Size())
	for i := uint64(0); i < r.in.Size(); i++ {
		out[r.in.Inverse(i)] = r.NodeLabel[i]
	}
	return out
}

// FindConnectedComponents assigns each node in edges to its connected
// component (per-edge labels come from EdgeComponents). nNodes, if
// non-nil, is an upper-bound validation
// value only: it must not be smaller than the maximum observed node ID,
// but the DSF is always sized to the dense interned node count.
//
// Sequence: validate, intern, capacity-check, allocate DSF, union every
// non-self-loop edge, label.
func (e *Engine) FindConnectedComponents(edges []Edge, nNodes *uint64, compress bool) (*Result, error) {
	const op = "FindConnectedComponents"

	b, err := e.build(op, edges, nNodes)
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

	return &Result{
		NodeLabel:  lab.NodeLabel,
		Compressed: lab.Compressed,
		Sizes:      lab.Sizes,
		RootSizes:  lab.RootSizes,
		K:          lab.K,
		in:         b.in,
	}, nil
}

// FindConnectedComponents delegates to a default, unconfigured Engine.
func FindConnectedComponents(edges []Edge, nNodes *uint64, compress bool) (*Result, error) {
	return defaultEngine.FindConnectedComponents(edges, nNodes, compress)
}
