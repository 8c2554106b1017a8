// Package label consumes a populated disjoint-set forest and produces
// per-node and per-edge component labels, component sizes, and (in
// compressed mode) a canonical contiguous labelling starting at 1.
//
// Compressed labels are assigned by scanning nodes 0..N-1 in ascending
// internal index order and numbering each newly-seen root as it is
// encountered; this scan order is canonical, so compressed labels are
// reproducible across runs and platforms given the same interning order.
// Uncompressed labels are the raw root indices and are meaningful only
// within the call that produced them.
package label
