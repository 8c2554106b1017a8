// Package graph is the public connectivity surface: given an edge list
// over a possibly sparse 64-bit node-ID space, it assigns each node and
// each edge to its connected component in near-linear time and bounded
// memory.
//
// Three operations are exposed, all backed by the same intern -> dsu
// pipeline; the first two then run the label pass:
//
//	FindConnectedComponents — per-node labels, component sizes, K
//	EdgeComponents           — per-edge labels only, no caller-side scatter
//	AreConnected             — boolean connectivity queries
//
// Engine carries capacity limits and observability hooks (see config and
// internal/telemetry); the zero-configuration package-level functions
// delegate to a default Engine equivalent to NewEngine() with no options.
package graph
