package intern

// Interner maps arbitrary positive NodeIds to dense [0,N) indices in
// first-appearance order, and retains the inverse mapping. A zero-value
// Interner is not usable; construct with New.
//
// Policy: indices are assigned by order of first appearance while
// scanning the input, not by numeric value of the ID. This decouples
// throughput from input sortedness. Callers that need stable,
// reproducible component numbers must canonicalise through the
// Component Labeller's compressed mode, not through raw Interner
// indices.
type Interner struct {
	tbl     *table
	inverse []uint64
}

// New returns an empty Interner. capacityHint, if > 0, preallocates the
// inverse slice to reduce reallocation for callers that know roughly how
// many distinct IDs to expect.
func New(capacityHint int) *Interner {
	inv := make([]uint64, 0, capacityHint)
	return &Interner{tbl: newTable(), inverse: inv}
}

// Intern returns the dense index assigned to id, assigning the next free
// index (len(inverse)) on first sight. Returns ErrInvalidNodeID if id is
// zero; NodeIds are unsigned 64-bit integers >= 1 by contract, so zero
// can only arrive from a caller that failed to validate upstream.
func (in *Interner) Intern(id uint64) (uint64, error) {
	if id == 0 {
		return 0, wrapf("Intern", ErrInvalidNodeID)
	}
	if idx, ok := in.tbl.get(id); ok {
		return idx, nil
	}
	idx := uint64(len(in.inverse))
	in.inverse = append(in.inverse, id)
	in.tbl.put(id, idx)
	return idx, nil
}

// Size returns N, the count of distinct IDs interned so far.
func (in *Interner) Size() uint64 { return uint64(len(in.inverse)) }

// Inverse returns the original NodeId assigned to dense index i. Panics
// if i is out of range — a programmer error, since every index handed
// out by Intern is by construction < Size().
func (in *Interner) Inverse(i uint64) uint64 { return in.inverse[i] }

// Lookup returns the dense index already assigned to id without
// interning it, and whether id has been seen. Used by
// graph.Result.NodeLabelByID to translate a caller NodeId without
// adding it to the mapping.
func (in *Interner) Lookup(id uint64) (uint64, bool) {
	return in.tbl.get(id)
}
