package algorithms

import (
	"time"

	"github.com/arannis/conexus/graph"
	"github.com/arannis/conexus/intern"
	"github.com/arannis/conexus/internal/telemetry/metrics"
)

// DegreeStats summarises the degree distribution of a graph: how many
// distinct nodes and edges it has, its edge density relative to the
// complete graph on the same node set, and the per-node degree min/max/
// mean. Self-loops are accepted but contribute no degree, matching
// ShortestPath's and graph.Engine's self-loop handling.
type DegreeStats struct {
	NEdges     int
	NNodes     uint64
	Density    float64
	MinDegree  int
	MaxDegree  int
	MeanDegree float64
}

// Degrees computes DegreeStats over edges. The node set is the dense,
// interned set of distinct endpoints actually observed; there are no
// isolated nodes to account for since edges alone carry no n_nodes to
// request them.
func (eng *Engine) Degrees(edges []graph.Edge) (*DegreeStats, error) {
	const op = "Degrees"
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

	in := intern.New(len(edges) * 2)
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

	n := in.Size()
	if n == 0 {
		return nil, wrapf(op, "no edges supplied", ErrNoNodes)
	}

	degree := make([]int, n)
	nEdges := 0
	for i := range fromIdx {
		if fromIdx[i] == toIdx[i] {
			continue
		}
		degree[fromIdx[i]]++
		degree[toIdx[i]]++
		nEdges++
	}

	minDeg, maxDeg := degree[0], degree[0]
	var sum int64
	for _, d := range degree {
		if d < minDeg {
			minDeg = d
		}
		if d > maxDeg {
			maxDeg = d
		}
		sum += int64(d)
	}

	var density float64
	if n > 1 {
		maxPossibleEdges := float64(n) * float64(n-1) / 2.0
		density = float64(nEdges) / maxPossibleEdges
	}

	return &DegreeStats{
		NEdges:     nEdges,
		NNodes:     n,
		Density:    density,
		MinDegree:  minDeg,
		MaxDegree:  maxDeg,
		MeanDegree: float64(sum) / float64(n),
	}, nil
}

// Degrees delegates to a default, unconfigured Engine.
func Degrees(edges []graph.Edge) (*DegreeStats, error) {
	return defaultEngine.Degrees(edges)
}
