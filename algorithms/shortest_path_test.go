package algorithms_test

import (
	"testing"

	"github.com/arannis/conexus/algorithms"
	"github.com/arannis/conexus/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chainEdges() []graph.Edge {
	return []graph.Edge{
		{From: 1, To: 2},
		{From: 2, To: 3},
		{From: 3, To: 4},
	}
}

func TestShortestPath_Chain(t *testing.T) {
	dist, err := algorithms.ShortestPath(chainEdges(), []algorithms.Query{
		{Source: 1, Target: 4},
		{Source: 1, Target: 1},
		{Source: 2, Target: 3},
	}, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 0, 1}, dist)
}

func TestShortestPath_Unreachable(t *testing.T) {
	edges := []graph.Edge{{From: 1, To: 2}, {From: 5, To: 6}}
	dist, err := algorithms.ShortestPath(edges, []algorithms.Query{{Source: 1, Target: 6}}, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{-1}, dist)
}

func TestShortestPath_UnknownEndpointIsSingleton(t *testing.T) {
	dist, err := algorithms.ShortestPath(chainEdges(), []algorithms.Query{
		{Source: 999, Target: 999},
		{Source: 999, Target: 1},
	}, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), dist[0])
	assert.Equal(t, int64(-1), dist[1])
}

func TestShortestPath_MaxDistanceCutoff(t *testing.T) {
	dist, err := algorithms.ShortestPath(chainEdges(), []algorithms.Query{{Source: 1, Target: 4}}, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{-1}, dist)
}

func TestShortestPath_SelfLoopIgnored(t *testing.T) {
	edges := []graph.Edge{{From: 1, To: 1}, {From: 1, To: 2}}
	dist, err := algorithms.ShortestPath(edges, []algorithms.Query{{Source: 1, Target: 2}}, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, dist)
}

func TestShortestPath_InvalidNodeID(t *testing.T) {
	edges := []graph.Edge{{From: 0, To: 1}}
	_, err := algorithms.ShortestPath(edges, nil, 0)
	assert.ErrorIs(t, err, algorithms.ErrInvalidNodeID)
}
