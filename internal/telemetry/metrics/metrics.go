package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ComponentsTotal counts connected components produced, by operation.
	ComponentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "conexus_components_total",
			Help: "Total connected components produced, by operation",
		},
		[]string{"operation"},
	)

	// UnionOpsTotal counts DSF union calls that actually merged two sets.
	UnionOpsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "conexus_union_ops_total",
			Help: "Total successful (set-merging) union operations",
		},
	)

	// FindDurationSeconds measures wall time by operation name. For
	// FindConnectedComponents and EdgeComponents it covers validation,
	// interning and the union pass; the labelling pass is not included.
	// For AreConnected, GroupID, ShortestPath and Degrees it covers the
	// whole call.
	FindDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "conexus_find_duration_seconds",
			Help:    "Duration of a connectivity operation",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 12),
		},
		[]string{"operation"},
	)

	// CapacityRejectionsTotal counts operations refused due to an
	// estimated allocation above the configured hard limit.
	CapacityRejectionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "conexus_capacity_rejections_total",
			Help: "Total operations rejected for exceeding the capacity hard limit",
		},
	)

	// EntityGroupsTotal counts groups that received a non-zero label in
	// entity resolution (every group of at least MinGroupSize records),
	// across all GroupID calls.
	EntityGroupsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "conexus_entity_groups_total",
			Help: "Total labelled entity-resolution groups produced",
		},
	)
)
