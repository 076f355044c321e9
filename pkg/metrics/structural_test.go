package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchnet/matchnet/pkg/graph"
)

func buildGraph(t *testing.T, ids []string, edges []graph.Edge) *graph.Graph {
	t.Helper()
	g := graph.New()
	for _, id := range ids {
		require.NoError(t, g.AddNode(graph.Node{ID: id}))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e))
	}
	return g
}

// pathGraph is the three-player scenario: A beat B, B beat C.
func pathGraph(t *testing.T) *graph.Graph {
	t.Helper()
	return buildGraph(t, []string{"A", "B", "C"}, []graph.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: 1},
	})
}

func TestComputePath(t *testing.T) {
	s := Compute(pathGraph(t))

	assert.Equal(t, 3, s.NodeCount)
	assert.Equal(t, 2, s.EdgeCount)
	assert.InDelta(t, 2.0/3.0, s.Density, 1e-9)
	assert.Equal(t, 0.0, s.Clustering, "a path has no triangles")

	require.True(t, s.Diameter.Defined())
	assert.Equal(t, 2.0, s.Diameter.Value)

	assert.Equal(t, 1, s.WeakComponents)
	assert.Equal(t, 3, s.StrongComponents, "no cycles, every player is its own strong component")
}

func TestComputeTriangle(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "C"}, []graph.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: 1},
		{From: "C", To: "A", Weight: 1},
	})
	s := Compute(g)

	assert.InDelta(t, 1.0, s.Density, 1e-9)
	assert.InDelta(t, 1.0, s.Clustering, 1e-9)
	require.True(t, s.Diameter.Defined())
	assert.Equal(t, 1.0, s.Diameter.Value)
	assert.Equal(t, 1, s.StrongComponents, "a directed cycle is one strong component")

	// Every node has degree 2: assortativity is undefined.
	assert.ErrorIs(t, s.Assortativity.Err, ErrUniformDegrees)
	assert.Equal(t, "undefined", s.Assortativity.String())
}

func TestComputeDisconnected(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "C", "D"}, []graph.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "C", To: "D", Weight: 1},
	})
	s := Compute(g)

	assert.ErrorIs(t, s.Diameter.Err, ErrDisconnected)
	assert.Equal(t, "undefined", s.Diameter.String())
	assert.Equal(t, 2, s.WeakComponents)
	assert.Equal(t, 4, s.StrongComponents)

	// The failed diameter does not suppress the other fields.
	assert.InDelta(t, 2.0/(4.0*3.0)*2.0, s.Density, 1e-9)
}

func TestComputeNoEdges(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "C"}, nil)
	s := Compute(g)

	assert.Equal(t, 0.0, s.Density)
	assert.Equal(t, 0.0, s.Clustering)
	assert.False(t, s.Diameter.Defined())
	assert.False(t, s.Assortativity.Defined())
	assert.Equal(t, 3, s.WeakComponents)
	assert.Equal(t, 3, s.StrongComponents)
}

func TestComputeCountsParallelEdges(t *testing.T) {
	g := buildGraph(t, []string{"A", "B"}, []graph.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "A", Weight: 1},
	})
	s := Compute(g)

	assert.Equal(t, 3, s.EdgeCount, "multigraph edge count keeps parallel edges")
	assert.InDelta(t, 1.0, s.Density, 1e-9, "projection density collapses them")
	assert.Equal(t, 1, s.StrongComponents, "mutual wins form one strong component")
}

func TestAssortativityStar(t *testing.T) {
	// A star is maximally disassortative: hubs connect to leaves only.
	g := buildGraph(t, []string{"hub", "a", "b", "c"}, []graph.Edge{
		{From: "hub", To: "a", Weight: 1},
		{From: "hub", To: "b", Weight: 1},
		{From: "hub", To: "c", Weight: 1},
	})
	s := Compute(g)

	require.True(t, s.Assortativity.Defined())
	assert.InDelta(t, -1.0, s.Assortativity.Value, 1e-9)
}

func TestStrongComponentsCycleAndTail(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "C", "D"}, []graph.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: 1},
		{From: "C", To: "A", Weight: 1},
		{From: "C", To: "D", Weight: 1},
	})
	s := Compute(g)
	assert.Equal(t, 2, s.StrongComponents)
	assert.Equal(t, 1, s.WeakComponents)
}
