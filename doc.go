// Package conexus is a high-throughput connectivity engine: given an edge
// list over a possibly sparse 64-bit node-ID space, it assigns each node
// (and each edge) to its connected component in near-linear time and
// bounded memory. A bipartite entity-resolution mode sits on the same
// union-find core and groups records that share any value across chosen
// columns.
//
// What is conexus?
//
//	A single-threaded, in-process batch library that brings together:
//		• dsu     — disjoint-set forest with path compression & union by rank
//		• intern  — dense [0,N) remapping of arbitrary positive uint64 IDs
//		• label   — per-node / per-edge component labelling, compressed or raw
//		• graph   — the public connectivity surface (find components, per-edge
//		            labels, are-connected queries)
//		• entity  — multi-column entity resolution over the same DSF core
//		• algorithms — peripheral BFS shortest-path and degree statistics
//
// Why conexus?
//
//   - Memory linear in distinct nodes seen, never in the maximum node ID
//   - Deterministic, canonical component numbering under compressed mode
//   - Per-edge labels computed without a follow-up scatter in caller code
//   - Pure Go, no file format, no wire protocol — a library, not a service
//
// Subpackages:
//
//	dsu/       — Disjoint-Set Forest (component 1)
//	intern/    — Node Interner (component 2)
//	label/     — Component Labeller (component 3)
//	graph/     — Graph Driver, the public connectivity surface
//	entity/    — Entity-Resolution Driver (component 4)
//	algorithms/ — ShortestPath, DegreeStats (peripheral, shares representation)
//	config/    — EngineConfig: capacity limits, logging/metrics toggles
//
// See SPEC_FULL.md and DESIGN.md at the module root for the full
// requirements and the grounding ledger behind each package.
//
//	go get github.com/arannis/conexus
package conexus
