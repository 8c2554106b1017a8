package label

import "github.com/arannis/conexus/dsu"

// Result is the output of Label: per-node and per-edge component labels,
// plus component sizes and count.
type Result struct {
	// NodeLabel[i] is the component label of internal index i.
	NodeLabel []uint64

	// EdgeFromLabel[e], EdgeToLabel[e] are the component labels of the
	// edge endpoints presented to Label, in the same order. Equal for
	// every e by construction — both endpoints were unioned together
	// (or, for a self-loop, are the same node).
	EdgeFromLabel []uint64
	EdgeToLabel   []uint64

	// Compressed reports which labelling mode produced this Result.
	Compressed bool

	// Sizes holds component sizes indexed by label-1; populated only
	// when Compressed is true, since compressed labels are contiguous
	// in [1,K].
	Sizes []uint64

	// RootSizes maps a root internal index to its component size;
	// populated only when Compressed is false, since uncompressed
	// labels (raw root indices) are not contiguous and cannot be used
	// to index a slice.
	RootSizes map[uint64]uint64

	// K is the number of distinct connected components.
	K uint64
}

// Label runs the labelling pass over a finalised DSF of size N, given
// the internal (already-interned) edge endpoints from/to in parallel,
// and a compress flag selecting canonical [1,K] labels versus raw root
// indices. Returns ErrEdgeLengthMismatch if len(from) != len(to).
//
// Algorithm: one ascending scan over [0,N) assigns node labels and
// further flattens the forest via Find; one scan over the edge list
// gathers labels for both endpoints directly from the node label table,
// with no additional lookup pass. O(N·α(N) + E) time, O(N + E) space.
func Label(f *dsu.DSF, from, to []uint64, compress bool) (*Result, error) {
	if len(from) != len(to) {
		return nil, wrapf("Label", ErrEdgeLengthMismatch)
	}

	n := f.Size()
	nodeLabel := make([]uint64, n)
	res := &Result{NodeLabel: nodeLabel, Compressed: compress}

	if compress {
		rootLabel := make(map[uint64]uint64, n)
		var sizes []uint64
		next := uint64(1)
		for i := uint64(0); i < n; i++ {
			root := f.Find(i)
			lbl, seen := rootLabel[root]
			if !seen {
				lbl = next
				rootLabel[root] = lbl
				next++
				sizes = append(sizes, 0)
			}
			nodeLabel[i] = lbl
			sizes[lbl-1]++
		}
		res.Sizes = sizes
		res.K = next - 1
	} else {
		rootSizes := make(map[uint64]uint64, n)
		for i := uint64(0); i < n; i++ {
			root := f.Find(i)
			nodeLabel[i] = root
			rootSizes[root]++
		}
		res.RootSizes = rootSizes
		res.K = uint64(len(rootSizes))
	}

	e := len(from)
	res.EdgeFromLabel = make([]uint64, e)
	res.EdgeToLabel = make([]uint64, e)
	for i := 0; i < e; i++ {
		res.EdgeFromLabel[i] = nodeLabel[from[i]]
		res.EdgeToLabel[i] = nodeLabel[to[i]]
	}

	return res, nil
}
