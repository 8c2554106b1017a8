package graph

import "fmt"

// Edge is an unordered pair of NodeIds. Self-loops (From == To) are
// accepted and silently ignored for union purposes; duplicate edges are
// idempotent.
type Edge struct {
	From uint64
	To   uint64
}

// estimatedBytesPerNode is the per-node footprint used for the capacity
// estimate: 12 bytes, which covers a uint32 parent slot and a rank byte
// with room to spare. The interner's hash table and inverse slice are
// not included in the estimate.
const estimatedBytesPerNode = 12

// estimateBytes returns the capacity estimate for a forest of n nodes.
func estimateBytes(n uint64) int64 {
	return int64(n) * estimatedBytesPerNode
}

// validateEdges checks shape/value invariants common to every operation
// in this package: every ID must be >= 1. Returns the maximum ID seen,
// for n_nodes range validation.
func validateEdges(op string, edges []Edge) (maxID uint64, err error) {
	for i, e := range edges {
		if e.From == 0 || e.To == 0 {
			return 0, wrapf(op, fmt.Sprintf("edge[%d]=(%d,%d)", i, e.From, e.To), ErrInvalidNodeID)
		}
		if e.From > maxID {
			maxID = e.From
		}
		if e.To > maxID {
			maxID = e.To
		}
	}
	return maxID, nil
}
