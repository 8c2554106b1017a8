package algorithms

import (
	"time"

	"github.com/arannis/conexus/graph"
	"github.com/arannis/conexus/intern"
	"github.com/arannis/conexus/internal/telemetry/metrics"
)

// Query is an unweighted shortest-path request from Source to Target.
type Query struct {
	Source uint64
	Target uint64
}

// ShortestPath computes, for every query, the number of edges on an
// unweighted shortest path from Source to Target: 0 if they are equal
// (even when the ID does not appear in edges), -1 if unreachable. An
// endpoint not present in edges is its own unreachable singleton, so a
// query between it and any other ID gives -1, matching
// graph.AreConnected's treatment of unseen NodeIds.
//
// maxDistance, if > 0, bounds the search: a BFS frontier already at
// maxDistance is not expanded further, mirroring the original
// shortest_paths_cpp cutoff. maxDistance <= 0 means unbounded.
func (eng *Engine) ShortestPath(edges []graph.Edge, queries []Query, maxDistance int) ([]int64, error) {
	const op = "ShortestPath"
	start := time.Now()
	defer func() {
		if eng.cfg.MetricsEnabled {
			metrics.FindDurationSeconds.WithLabelValues(op).Observe(time.Since(start).Seconds())
		}
	}()

	for _, edge := range edges {
		if edge.From == 0 || edge.To == 0 {
			return nil, wrapf(op, "invalid edge endpoint", ErrInvalidNodeID)
		}
	}
	for _, q := range queries {
		if q.Source == 0 || q.Target == 0 {
			return nil, wrapf(op, "invalid query endpoint", ErrInvalidNodeID)
		}
	}

	in := intern.New(len(edges)*2 + len(queries)*2)
	fromIdx := make([]uint64, len(edges))
	toIdx := make([]uint64, len(edges))
	for i, e := range edges {
		fi, err := in.Intern(e.From)
		if err != nil {
			return nil, wrapf(op, "interning edge endpoint", err)
		}
		ti, err := in.Intern(e.To)
		if err != nil {
			return nil, wrapf(op, "interning edge endpoint", err)
		}
		fromIdx[i], toIdx[i] = fi, ti
	}

	type pair struct{ s, t uint64 }
	interned := make([]pair, len(queries))
	for i, q := range queries {
		si, err := in.Intern(q.Source)
		if err != nil {
			return nil, wrapf(op, "interning query endpoint", err)
		}
		ti, err := in.Intern(q.Target)
		if err != nil {
			return nil, wrapf(op, "interning query endpoint", err)
		}
		interned[i] = pair{si, ti}
	}

	n := in.Size()
	adj := make([][]uint64, n)
	for i := range fromIdx {
		if fromIdx[i] == toIdx[i] {
			continue // self-loop contributes no traversal edge
		}
		adj[fromIdx[i]] = append(adj[fromIdx[i]], toIdx[i])
		adj[toIdx[i]] = append(adj[toIdx[i]], fromIdx[i])
	}

	result := make([]int64, len(queries))
	for q, p := range interned {
		if p.s == p.t {
			result[q] = 0
			continue
		}
		result[q] = bfsDistance(adj, p.s, p.t, maxDistance)
	}
	return result, nil
}

// ShortestPath delegates to a default, unconfigured Engine.
func ShortestPath(edges []graph.Edge, queries []Query, maxDistance int) ([]int64, error) {
	return defaultEngine.ShortestPath(edges, queries, maxDistance)
}

// bfsDistance runs a single-source BFS from s, stopping as soon as t is
// reached, and returns -1 if t is unreached within maxDistance (or at
// all, if maxDistance <= 0).
func bfsDistance(adj [][]uint64, s, t uint64, maxDistance int) int64 {
	distance := make([]int64, len(adj))
	for i := range distance {
		distance[i] = -1
	}
	distance[s] = 0

	queue := []uint64{s}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if maxDistance > 0 && distance[current] >= int64(maxDistance) {
			break
		}

		for _, neighbor := range adj[current] {
			if distance[neighbor] != -1 {
				continue
			}
			distance[neighbor] = distance[current] + 1
			if neighbor == t {
				return distance[neighbor]
			}
			queue = append(queue, neighbor)
		}
	}
	return -1
}
