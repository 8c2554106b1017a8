// Package algorithms implements peripheral shortest-path and
// degree-statistics operations over an edge list: they share the
// interned dense-index representation with package graph but are not
// part of the union-find core.
//
// ShortestPath is grounded on the original shortest_paths_cpp (an
// unweighted BFS with an optional max_distance cutoff) and on package
// bfs's walker style. DegreeStats is grounded on graph_stats_cpp.
package algorithms
