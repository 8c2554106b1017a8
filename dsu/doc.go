// Package dsu implements a Disjoint-Set Forest (union-find) over a dense
// [0,N) index space, with path compression and union by rank.
//
// DSF is the leaves-first component of the connectivity engine: every
// package that works on a forest (label, graph, entity) builds on top of it and
// never mutates its parent/rank slices directly.
//
// Internal representation is uint32-backed when N < 2^31 and uint64-backed
// otherwise; callers never see the difference — New always returns a *DSF
// whose Find/Union/Same operate on uint64 indices regardless of backing
// width. Find is iterative (two-pass: locate root, then re-parent) so it
// cannot stack-overflow at large N; the recursive formulation is
// deliberately not offered.
package dsu
